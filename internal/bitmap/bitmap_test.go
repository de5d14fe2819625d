package bitmap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cross = `
#.#
.#.
#.#
`

func TestParse(t *testing.T) {
	g, err := Parse(cross)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 9, g.Size())
	assert.Equal(t, []float64{1, 0, 1, 0, 1, 0, 1, 0, 1}, g.Vector())
}

func TestParseRoundTrip(t *testing.T) {
	g, err := Parse(cross)
	require.NoError(t, err)
	assert.Equal(t, strings.TrimSpace(cross), g.String())
}

func TestParseCRLF(t *testing.T) {
	g, err := Parse("#.\r\n.#\r\n")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0, 1}, g.Vector())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"blank lines only", "\n\n"},
		{"ragged", "#.\n#"},
		{"unknown pixel", "#x\n.."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			assert.Error(t, err)
		})
	}
}

func TestOneHot(t *testing.T) {
	v, err := OneHot(3, 10)
	require.NoError(t, err)
	require.Len(t, v, 10)
	for i, x := range v {
		if i == 3 {
			assert.Equal(t, 1.0, x)
		} else {
			assert.Equal(t, 0.0, x)
		}
	}
}

func TestOneHotErrors(t *testing.T) {
	_, err := OneHot(10, 10)
	assert.Error(t, err)
	_, err = OneHot(-1, 10)
	assert.Error(t, err)
	_, err = OneHot(0, 0)
	assert.Error(t, err)
}
