package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	s := NewSet("common", "models")
	assert.True(t, s.Has("common"))
	assert.False(t, s.Has("vendor"))

	s.Add("vendor", "common")
	assert.True(t, s.Has("vendor"))
	assert.Len(t, s.Members(), 3)
}

func TestEmptySet(t *testing.T) {
	s := NewSet[int]()
	assert.False(t, s.Has(1))
	assert.Empty(t, s.Members())
}
