// Package pool holds sync.Pools for the per-frame allocations of the
// renderer.
package pool

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
)

// layerCapacity covers the background, menu bar, icons, a handful of windows
// and the overlays without growing.
const layerCapacity = 32

var stringBuilderPool = sync.Pool{
	New: func() any {
		return &strings.Builder{}
	},
}

var layerSlicePool = sync.Pool{
	New: func() any {
		s := make([]*lipgloss.Layer, 0, layerCapacity)
		return &s
	},
}

// GetStringBuilder returns an empty builder.
func GetStringBuilder() *strings.Builder {
	return stringBuilderPool.Get().(*strings.Builder)
}

// PutStringBuilder resets sb and returns it to the pool.
func PutStringBuilder(sb *strings.Builder) {
	sb.Reset()
	stringBuilderPool.Put(sb)
}

// GetLayerSlice returns an empty layer slice.
func GetLayerSlice() *[]*lipgloss.Layer {
	return layerSlicePool.Get().(*[]*lipgloss.Layer)
}

// PutLayerSlice clears s and returns it to the pool.
func PutLayerSlice(s *[]*lipgloss.Layer) {
	clear(*s)
	*s = (*s)[:0]
	layerSlicePool.Put(s)
}
