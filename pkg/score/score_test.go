package score

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestName(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{
			// alignment 1.0 over the shorter name, one of two words
			// shared, plus the substring bonus
			name: "prefix of longer name",
			a:    "mario",
			b:    "mario super",
			want: 0.9,
		},
		{
			name: "identical names clamp to one",
			a:    "mario",
			b:    "mario",
			want: 1.0,
		},
		{
			name: "empty left",
			a:    "",
			b:    "mario",
			want: 0,
		},
		{
			name: "empty right",
			a:    "mario",
			b:    "",
			want: 0,
		},
		{
			name: "both empty",
			a:    "",
			b:    "",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Name(tt.a, tt.b), 1e-9)
		})
	}
}

func TestNamePartialOverlap(t *testing.T) {
	// "mario" aligns as half of "mario kart", one of three distinct
	// words is shared, no substring relation
	got := Name("super mario", "mario kart")
	assert.InDelta(t, 0.5*0.6+0.4/3, got, 1e-9)
}

func TestNameSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"mario", "mario super"},
		{"super mario", "mario kart"},
		{"link", "toon link"},
		{"kirby", "king dedede"},
	}

	for _, p := range pairs {
		assert.InDelta(t, Name(p[0], p[1]), Name(p[1], p[0]), 1e-12,
			"score must be symmetric for %q / %q", p[0], p[1])
	}
}

func TestNameUnrelated(t *testing.T) {
	got := Name("kirby", "ganondorf")
	assert.Less(t, got, 0.6)
}

func TestNamesDateBoost(t *testing.T) {
	base := Name("super mario", "mario kart")

	t.Run("equal dates add three tenths", func(t *testing.T) {
		got := Names("super mario", "mario kart", date("2025-03-01"), date("2025-03-01"))
		assert.InDelta(t, base+0.3, got, 1e-9)
	})

	t.Run("dates within thirty days add fifteen hundredths", func(t *testing.T) {
		got := Names("super mario", "mario kart", date("2025-03-01"), date("2025-03-20"))
		assert.InDelta(t, base+0.15, got, 1e-9)
	})

	t.Run("distant dates add nothing", func(t *testing.T) {
		got := Names("super mario", "mario kart", date("2025-03-01"), date("2025-06-01"))
		assert.InDelta(t, base, got, 1e-9)
	})

	t.Run("missing date adds nothing", func(t *testing.T) {
		got := Names("super mario", "mario kart", date("2025-03-01"), nil)
		assert.InDelta(t, base, got, 1e-9)
	})

	t.Run("boost clamps to one", func(t *testing.T) {
		got := Names("mario", "mario", date("2025-03-01"), date("2025-03-01"))
		assert.Equal(t, 1.0, got)
	})

	t.Run("boost never rescues empty names", func(t *testing.T) {
		got := Names("", "mario", date("2025-03-01"), date("2025-03-01"))
		assert.Equal(t, 0.0, got)
	})
}

func TestNamesSymmetric(t *testing.T) {
	a, b := "super mario", "mario kart"
	da, db := date("2025-03-01"), date("2025-03-20")
	assert.InDelta(t, Names(a, b, da, db), Names(b, a, db, da), 1e-12)
}
