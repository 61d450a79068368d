package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	errFirst  = New("first")
	errSecond = New("second")
)

func TestIsAny(t *testing.T) {
	wrapped := Wrap(errSecond, "context")

	assert.True(t, IsAny(wrapped, errFirst, errSecond))
	assert.False(t, IsAny(wrapped, errFirst))
	assert.False(t, IsAny(nil, errFirst))
	assert.False(t, IsAny(wrapped))
}

func TestWrapKeepsCause(t *testing.T) {
	wrapped := Wrapf(errFirst, "step %d", 2)

	assert.Equal(t, "step 2: first", wrapped.Error())
	assert.True(t, Is(wrapped, errFirst))
	assert.Equal(t, errFirst, Cause(wrapped))
}

func TestStackTrace(t *testing.T) {
	assert.NotEmpty(t, StackTrace(WithStack(errFirst)))
	assert.Nil(t, StackTrace(errFirst))
}
