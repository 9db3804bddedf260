package bionic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joeblew999/plat-bionic/pkg/host"
)

func TestAnalyze(t *testing.T) {
	ctx := context.Background()

	t.Run("RichestFamilyWins", func(t *testing.T) {
		h := newTestHost()
		h.Add("inter", host.NewDocument("inter", interRegular))
		h.Add("slab", host.NewDocument("slab", slabLight))

		opts := Analyze(ctx, h, []host.NodeID{"slab", "inter"})
		assert.Equal(t, 4, opts.MaxWeights)
		assert.Equal(t, []int{0, 100, 300, 450, 600, 900}, opts.Steps)
	})

	t.Run("DefaultsForPoorFamilies", func(t *testing.T) {
		h := newTestHost()
		h.Add("mono", host.NewDocument("mono", monoRegular))

		opts := Analyze(ctx, h, []host.NodeID{"mono", "missing"})
		assert.Equal(t, 1, opts.MaxWeights)
		assert.Equal(t, []int{300, 600, 900}, opts.Steps)
	})

	t.Run("SamplesMixedNodes", func(t *testing.T) {
		mem := newTestHost()
		mem.Add("n", mixedDocument(t, monoThenInter,
			host.Run{Start: 0, End: 14, Font: monoRegular},
			host.Run{Start: 14, End: 30, Font: interRegular},
		))
		h := &faultyHost{MemoryHost: mem, mixedFirst: true}

		opts := Analyze(ctx, h, []host.NodeID{"n"})
		assert.Equal(t, 4, opts.MaxWeights)
	})

	t.Run("NoNodes", func(t *testing.T) {
		opts := Analyze(ctx, newTestHost(), nil)
		assert.Zero(t, opts.MaxWeights)
		assert.Equal(t, []int{300, 600, 900}, opts.Steps)
	})
}

func TestMultiReporter(t *testing.T) {
	a, b := &Collector{}, &Collector{}
	var seen []NoticeKind
	r := MultiReporter(a, nil, b, ReporterFunc(func(n Notice) { seen = append(seen, n.Kind) }))

	r.Report(Notice{Kind: NoticeConverted})
	assert.Len(t, a.Notices(), 1)
	assert.Len(t, b.Notices(), 1)
	assert.Equal(t, []NoticeKind{NoticeConverted}, seen)
}
