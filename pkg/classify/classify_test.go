package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBundle(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Mario", false},
		{"Super Smash Bros. Link", false},
		{"Splatoon 3 Starter Set", true},
		{"Animal Crossing Card Set", true},
		{"Mario 3-Pack", true},
		{"Zelda & Loftwing Bundle", true},
		{"Champions Collection", true},
		{"Power-Up Band Mario", true},
		{"Animal Crossing Series 5", true},
		{"Triple Pack - Fire Emblem", true},
		{"Double Pack", true},
		{"2-Pack Splatoon", true},
		// "series" without a number is a franchise label, not a card wave
		{"Super Mario Series Peach", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBundle(tt.name), "name %q", tt.name)
		})
	}
}

func TestIsBundleCaseInsensitive(t *testing.T) {
	assert.True(t, IsBundle("SPLATOON STARTER SET"))
	assert.True(t, IsBundle("animal crossing SERIES 5"))
}

func TestKeywordsCopied(t *testing.T) {
	kws := Keywords()
	assert.NotEmpty(t, kws)

	kws[0] = "mutated"
	assert.NotEqual(t, "mutated", Keywords()[0])
}
