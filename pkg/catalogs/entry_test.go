package catalogs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntryKey(t *testing.T) {
	e := &Entry{Head: "00000000", Tail: "00340102", Series: "Super Smash Bros."}
	assert.Equal(t, "00000000-00340102-super-smash-bros", e.Key())
}

func TestEntryKeyDistinguishesSeries(t *testing.T) {
	a := &Entry{Head: "00000000", Tail: "00000002", Series: "Super Smash Bros."}
	b := &Entry{Head: "00000000", Tail: "00000002", Series: "Super Mario"}
	assert.NotEqual(t, a.Key(), b.Key())
}

func TestEntryIsPlaceholder(t *testing.T) {
	real := &Entry{Head: "00000000", Tail: "00000002"}
	assert.False(t, real.IsPlaceholder())

	head, tail := SynthesizeID("Luigi")
	synthetic := &Entry{Head: head, Tail: tail}
	assert.True(t, synthetic.IsPlaceholder())
}

func TestEntryReleaseDate(t *testing.T) {
	e := &Entry{Release: map[Region]string{RegionNA: "2025-03-01", RegionEU: "bogus"}}

	na := e.ReleaseDate(RegionNA)
	if assert.NotNil(t, na) {
		assert.Equal(t, "2025-03-01", na.Format(ReleaseDateLayout))
	}

	assert.Nil(t, e.ReleaseDate(RegionEU), "malformed date reads as absent")
	assert.Nil(t, e.ReleaseDate(RegionJP))
}

func TestEntrySetReleaseDateAllocates(t *testing.T) {
	var e Entry
	e.SetReleaseDate(RegionNA, "2025-03-01")
	assert.Equal(t, "2025-03-01", e.Release[RegionNA])
}

func TestEntryClone(t *testing.T) {
	e := &Entry{
		Name:    "Mario",
		Release: map[Region]string{RegionNA: "2025-03-01"},
	}

	clone := e.Clone()
	clone.Name = "Luigi"
	clone.Release[RegionNA] = "2026-01-01"

	assert.Equal(t, "Mario", e.Name)
	assert.Equal(t, "2025-03-01", e.Release[RegionNA])
}

func TestSynthesizeID(t *testing.T) {
	head, tail := SynthesizeID("Luigi")

	assert.Len(t, head, 8)
	assert.Len(t, tail, 8)
	assert.True(t, len(head) > 2 && head[:2] == PlaceholderPrefix)
	assert.True(t, len(tail) > 2 && tail[:2] == PlaceholderPrefix)

	head2, tail2 := SynthesizeID("Luigi")
	assert.Equal(t, head, head2, "same name must synthesize the same identity")
	assert.Equal(t, tail, tail2)

	otherHead, _ := SynthesizeID("Mario")
	assert.NotEqual(t, head, otherHead)

	assert.NotEqual(t, UnknownID, head)
	assert.NotEqual(t, UnknownID, tail)
}
