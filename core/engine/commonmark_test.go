package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommonmarkConvert(t *testing.T) {
	t.Parallel()

	eng := NewCommonmark()

	got, err := eng.Convert("<p><strong>bold</strong></p>")
	require.NoError(t, err)
	assert.Equal(t, "**bold**\n", got)
}

func TestCommonmarkAcceptsUnclosedMarkup(t *testing.T) {
	t.Parallel()

	// The strict native engine rejects this input; the library engine
	// repairs it.
	got, err := NewCommonmark().Convert("<p>hello")
	require.NoError(t, err)
	assert.Contains(t, got, "hello")
	assert.True(t, strings.HasSuffix(got, "\n"))
}

func TestCommonmarkName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "commonmark", NewCommonmark().Name())
}
