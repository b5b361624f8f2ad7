package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRemovesNoise(t *testing.T) {
	t.Parallel()

	source := `<html><body>
		<nav><a href="/">home</a></nav>
		<script>alert("hi")</script>
		<p>Actual content.</p>
		<div class="sidebar">related links</div>
		<footer>copyright</footer>
	</body></html>`

	got, err := New().Extract(source)
	require.NoError(t, err)

	assert.Contains(t, got, "<p>Actual content.</p>")
	assert.NotContains(t, got, "nav")
	assert.NotContains(t, got, "alert")
	assert.NotContains(t, got, "sidebar")
	assert.NotContains(t, got, "copyright")
}

func TestExtractKeepsImages(t *testing.T) {
	t.Parallel()

	source := `<html><body><p>text</p><img src="diagram.png"></body></html>`

	got, err := New().Extract(source)
	require.NoError(t, err)

	assert.Contains(t, got, "diagram.png")
}

func TestExtractContainerPriority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		source      string
		wantContain string
		wantMissing string
	}{
		{
			name:        "main wins over body",
			source:      `<html><body><p>outside</p><main><p>inside</p></main></body></html>`,
			wantContain: "inside",
			wantMissing: "outside",
		},
		{
			name:        "article wins when there is no main",
			source:      `<html><body><p>outside</p><article><p>inside</p></article></body></html>`,
			wantContain: "inside",
			wantMissing: "outside",
		},
		{
			name:        "body is the fallback",
			source:      `<html><body><p>everything</p></body></html>`,
			wantContain: "everything",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := New().Extract(tt.source)
			require.NoError(t, err)
			assert.Contains(t, got, tt.wantContain)
			if tt.wantMissing != "" {
				assert.NotContains(t, got, tt.wantMissing)
			}
		})
	}
}

func TestExtractDropsSpacerBlocks(t *testing.T) {
	t.Parallel()

	source := `<html><body>
		<p><br><br></p>
		<div> <br> </div>
		<p>kept</p>
	</body></html>`

	got, err := New().Extract(source)
	require.NoError(t, err)

	assert.Contains(t, got, "<p>kept</p>")
	assert.NotContains(t, got, "<br")
}
