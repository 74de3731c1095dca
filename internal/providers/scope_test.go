package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterDisposesPrevious(t *testing.T) {
	s := NewScope()

	firstDisposed := false
	s.Register("file:///a.json", KindValidation, DisposeFunc(func() { firstDisposed = true }))
	assert.True(t, s.Live("file:///a.json", KindValidation))
	assert.False(t, firstDisposed)

	secondDisposed := false
	s.Register("file:///a.json", KindValidation, DisposeFunc(func() { secondDisposed = true }))
	assert.True(t, firstDisposed, "re-registration must dispose the previous instance first")
	assert.False(t, secondDisposed)
	assert.True(t, s.Live("file:///a.json", KindValidation))
}

func TestKindsAreIndependent(t *testing.T) {
	s := NewScope()

	validationDisposed := false
	s.Register("file:///a.json", KindValidation, DisposeFunc(func() { validationDisposed = true }))
	s.Register("file:///a.json", KindHover, DisposeFunc(func() {}))

	assert.False(t, validationDisposed)
	assert.True(t, s.Live("file:///a.json", KindValidation))
	assert.True(t, s.Live("file:///a.json", KindHover))
	assert.False(t, s.Live("file:///a.json", KindCompletion))
}

func TestDisposeDocument(t *testing.T) {
	s := NewScope()

	disposed := 0
	s.Register("file:///a.json", KindValidation, DisposeFunc(func() { disposed++ }))
	s.Register("file:///a.json", KindHover, DisposeFunc(func() { disposed++ }))
	s.Register("file:///b.json", KindValidation, DisposeFunc(func() { disposed++ }))

	s.DisposeDocument("file:///a.json")
	assert.Equal(t, 2, disposed)
	assert.False(t, s.Live("file:///a.json", KindValidation))
	assert.True(t, s.Live("file:///b.json", KindValidation))

	// Disposing an unknown document is a no-op
	s.DisposeDocument("file:///missing.json")
}

func TestDisposeAll(t *testing.T) {
	s := NewScope()

	disposed := 0
	s.Register("file:///a.json", KindValidation, DisposeFunc(func() { disposed++ }))
	s.Register("file:///b.json", KindHover, DisposeFunc(func() { disposed++ }))

	s.DisposeAll()
	assert.Equal(t, 2, disposed)
	assert.False(t, s.Live("file:///a.json", KindValidation))
	assert.False(t, s.Live("file:///b.json", KindHover))
}
