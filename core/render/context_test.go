package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassDepth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		class string
		want  int
	}{
		{name: "empty class", class: "", want: 0},
		{name: "no numeric suffix", class: "foo", want: 0},
		{name: "simple suffix", class: "foo-1", want: 1},
		{name: "word processor export token", class: "lst-kix_list_1-2", want: 2},
		{name: "first matching token wins", class: "plain foo-3 bar-4", want: 3},
		{name: "multi digit suffix", class: "foo-12", want: 12},
		{name: "trailing hyphen", class: "foo-", want: 0},
		{name: "suffix with trailing letter", class: "foo-1x", want: 0},
		{name: "zero suffix", class: "foo-0", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, classDepth(tt.class))
		})
	}
}
