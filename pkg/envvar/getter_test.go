package envvar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetters(t *testing.T) {
	t.Setenv("CEX_TEST_STRING", "cex")
	t.Setenv("CEX_TEST_DURATION", "1500ms")
	t.Setenv("CEX_TEST_INT", " 42 ")
	t.Setenv("CEX_TEST_BOOL", "true")
	t.Setenv("CEX_TEST_BAD", "nope")

	s, ok := String("CEX_TEST_STRING")
	assert.True(t, ok)
	assert.Equal(t, "cex", s)

	s, ok = String("CEX_TEST_MISSING", "fallback")
	assert.False(t, ok)
	assert.Equal(t, "fallback", s)

	d, ok := Duration("CEX_TEST_DURATION")
	assert.True(t, ok)
	assert.Equal(t, 1500*time.Millisecond, d)

	i, ok := Int("CEX_TEST_INT")
	assert.True(t, ok)
	assert.Equal(t, 42, i)

	i, ok = Int("CEX_TEST_BAD", 7)
	assert.False(t, ok)
	assert.Equal(t, 7, i)

	var b bool
	assert.True(t, SetBool("CEX_TEST_BOOL", &b))
	assert.True(t, b)
	assert.False(t, SetBool("CEX_TEST_BAD", &b))
	assert.True(t, b)

	assert.Equal(t, "cex", Prefixed("cex", "TEST_STRING"))
}
