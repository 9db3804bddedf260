package bionic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeblew999/plat-bionic/pkg/host"
)

func applyOps(t *testing.T, h *host.MemoryHost, node host.NodeID, ops []StyleOperation) {
	t.Helper()
	for _, op := range ops {
		require.NoError(t, h.LoadFont(context.Background(), op.Font))
		require.NoError(t, h.SetStyleRange(node, op.Start, op.End, op.Font))
	}
}

func TestPlanSingle(t *testing.T) {
	text := "the quick brown fox"
	ops := PlanSingle(text, "Inter", "Regular", "Bold", Settings{FixationStrength: 50, Contrast: 300})

	require.Len(t, ops, 5)
	assert.Equal(t, StyleOperation{Start: 0, End: 19, Font: interRegular}, ops[0])
	assert.Equal(t, StyleOperation{Start: 0, End: 2, Font: interBold}, ops[1])
	assert.Equal(t, StyleOperation{Start: 4, End: 7, Font: interBold}, ops[2])
	assert.Equal(t, StyleOperation{Start: 10, End: 13, Font: interBold}, ops[3])
	assert.Equal(t, StyleOperation{Start: 16, End: 18, Font: interBold}, ops[4])

	assert.Nil(t, PlanSingle("", "Inter", "Regular", "Bold", DefaultSettings()))
}

func TestPlanSingleQuickExample(t *testing.T) {
	h := newTestHost()
	h.Add("n", host.NewDocument("the quick brown fox", interMedium))

	applyOps(t, h, "n", PlanSingle(h.Text("n"), "Inter", "Regular", "Bold", Settings{FixationStrength: 50, Contrast: 300}))

	doc, _ := h.Document("n")
	for i := 4; i < 7; i++ {
		assert.Equal(t, interBold, doc.FontAt(i), "q-u-i at %d", i)
	}
	for i := 7; i < 9; i++ {
		assert.Equal(t, interRegular, doc.FontAt(i), "c-k at %d", i)
	}
}

func TestPlanSingleIdempotent(t *testing.T) {
	text := "reading   is\tfaster when\nthe eye   has anchors"
	s := Settings{FixationStrength: 40, Contrast: 300}

	once := newTestHost()
	once.Add("n", host.NewDocument(text, interMedium))
	applyOps(t, once, "n", PlanSingle(text, "Inter", "Regular", "Bold", s))

	twice := newTestHost()
	twice.Add("n", host.NewDocument(text, interMedium))
	applyOps(t, twice, "n", PlanSingle(text, "Inter", "Regular", "Bold", s))
	applyOps(t, twice, "n", PlanSingle(text, "Inter", "Regular", "Bold", s))

	assert.Equal(t, fontsOf(t, once, "n"), fontsOf(t, twice, "n"))
}

func TestPlanMixedBasePassFirst(t *testing.T) {
	spans := []WordSpan{
		{Start: 0, End: 5, Family: "Inter", Base: "Regular", Bold: "Bold"},
		{Start: 6, End: 10, Family: "Slab", Base: "Light", Bold: "Regular"},
	}
	ops := PlanMixed(spans, Settings{FixationStrength: 50, Contrast: 300})

	assert.Equal(t, []StyleOperation{
		{Start: 0, End: 5, Font: interRegular},
		{Start: 6, End: 10, Font: slabLight},
		{Start: 0, End: 3, Font: interBold},
		{Start: 6, End: 8, Font: slabRegular},
	}, ops)
}
