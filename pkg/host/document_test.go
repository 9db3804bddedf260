package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeblew999/plat-bionic/pkg/font"
)

var (
	interRegular = font.FontName{Family: "Inter", Style: "Regular"}
	interBold    = font.FontName{Family: "Inter", Style: "Bold"}
)

func TestDocumentStyleAt(t *testing.T) {
	doc := NewDocument("hello world", interRegular)
	require.NoError(t, doc.SetRange(0, 2, interBold))

	t.Run("Known", func(t *testing.T) {
		r := doc.StyleAt(0, 2)
		assert.True(t, r.IsKnown())
		assert.Equal(t, interBold, r.Font)
	})

	t.Run("Mixed", func(t *testing.T) {
		r := doc.StyleAt(1, 3)
		assert.True(t, r.IsMixed())
		assert.Equal(t, "mixed", r.String())
	})

	t.Run("Unavailable", func(t *testing.T) {
		for _, rng := range [][2]int{{-1, 1}, {5, 4}, {11, 12}, {3, 3}} {
			r := doc.StyleAt(rng[0], rng[1])
			assert.Equal(t, StyleUnavailable, r.Kind, "range %v", rng)
			assert.ErrorIs(t, r.Err, ErrOutOfRange)
		}
	})
}

func TestDocumentRuns(t *testing.T) {
	doc := NewDocument("héllo wörld", interRegular)
	assert.Equal(t, 11, doc.Len())

	require.NoError(t, doc.SetRange(0, 3, interBold))
	require.NoError(t, doc.SetRange(6, 8, interBold))

	runs := doc.Runs()
	assert.Equal(t, []Run{
		{0, 3, interBold},
		{3, 6, interRegular},
		{6, 8, interBold},
		{8, 11, interRegular},
	}, runs)

	rebuilt, err := FromRuns(doc.Text(), runs)
	require.NoError(t, err)
	assert.Equal(t, runs, rebuilt.Runs())
}

func TestFromRunsRejectsGaps(t *testing.T) {
	_, err := FromRuns("abcd", []Run{{0, 2, interRegular}, {3, 4, interBold}})
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = FromRuns("abcd", []Run{{0, 2, interRegular}})
	assert.ErrorIs(t, err, ErrOutOfRange)

	doc, err := FromRuns("", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Len())
}

func TestDocumentFamilies(t *testing.T) {
	lora := font.FontName{Family: "Lora", Style: "Regular"}
	doc := NewDocument("abcdef", interRegular)
	require.NoError(t, doc.SetRange(2, 4, lora))
	require.NoError(t, doc.SetRange(4, 5, interBold))
	assert.Equal(t, []string{"Inter", "Lora"}, doc.Families())
}
