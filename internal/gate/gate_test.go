package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorizeIgnoresCase(t *testing.T) {
	g := New("answer")

	assert.True(t, g.Authorize("answer"))
	assert.True(t, g.Authorize("ANSWER"))
	assert.True(t, g.Authorize("AnSwEr"))
}

func TestAuthorizeKeepsWhitespace(t *testing.T) {
	g := New("answer")

	assert.False(t, g.Authorize(" answer"))
	assert.False(t, g.Authorize("answer "))
	assert.False(t, g.Authorize(""))
}

func TestEmptySecretNeverAuthorizes(t *testing.T) {
	g := New("")
	assert.False(t, g.Authorize(""))
	assert.False(t, g.Authorize("anything"))
}
