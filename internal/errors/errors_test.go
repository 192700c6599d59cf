package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New("sentinel")

type codeError struct{ code string }

func (e *codeError) Error() string { return e.code }

func TestWrapKeepsChain(t *testing.T) {
	wrapped := Wrapf(Wrap(errSentinel, "load post"), "request %d", 7)

	assert.True(t, Is(wrapped, errSentinel))
	assert.Equal(t, "request 7: load post: sentinel", wrapped.Error())
	assert.Contains(t, fmt.Sprintf("%+v", wrapped), "TestWrapKeepsChain")
	assert.NoError(t, Wrap(nil, "ignored"))
}

func TestAsThroughStack(t *testing.T) {
	err := WithStack(&codeError{code: "POST_NOT_FOUND"})

	var target *codeError
	assert.True(t, As(err, &target))
	assert.Equal(t, "POST_NOT_FOUND", target.code)
}

func TestJoin(t *testing.T) {
	other := Errorf("rollback failed: %s", "conn reset")
	joined := Join(errSentinel, other)

	assert.True(t, Is(joined, errSentinel))
	assert.True(t, Is(joined, other))
}
