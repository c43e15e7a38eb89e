package pool

import (
	"strings"
	"sync"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestStringBuilderPool(t *testing.T) {
	sb := GetStringBuilder()
	if sb == nil {
		t.Fatal("GetStringBuilder returned nil")
	}

	sb.WriteString("test")
	if sb.String() != "test" {
		t.Errorf("Expected 'test', got %q", sb.String())
	}
	PutStringBuilder(sb)

	sb2 := GetStringBuilder()
	if sb2.Len() != 0 {
		t.Errorf("String builder should be reset, but has length %d", sb2.Len())
	}
	PutStringBuilder(sb2)
}

func TestStringBuilderPool_Concurrent(t *testing.T) {
	const goroutines = 10
	const iterations = 100

	var wg sync.WaitGroup
	for g := range goroutines {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for range iterations {
				sb := GetStringBuilder()
				sb.WriteString(strings.Repeat("x", id+1))
				if sb.Len() != id+1 {
					t.Errorf("builder shared between goroutines: len %d, want %d", sb.Len(), id+1)
				}
				PutStringBuilder(sb)
			}
		}(g)
	}
	wg.Wait()
}

func TestLayerSlicePool(t *testing.T) {
	layers := GetLayerSlice()
	if layers == nil || *layers == nil {
		t.Fatal("GetLayerSlice returned nil")
	}
	if cap(*layers) < layerCapacity {
		t.Errorf("Expected capacity >= %d, got %d", layerCapacity, cap(*layers))
	}

	*layers = append(*layers, lipgloss.NewLayer("x"))
	PutLayerSlice(layers)

	layers2 := GetLayerSlice()
	if len(*layers2) != 0 {
		t.Errorf("Layer slice should be empty, has %d layers", len(*layers2))
	}
	PutLayerSlice(layers2)
}

func BenchmarkStringBuilderPool(b *testing.B) {
	b.Run("WithPool", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sb := GetStringBuilder()
			sb.WriteString("test string")
			_ = sb.String()
			PutStringBuilder(sb)
		}
	})

	b.Run("WithoutPool", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sb := &strings.Builder{}
			sb.WriteString("test string")
			_ = sb.String()
		}
	})
}

func BenchmarkLayerSlicePool(b *testing.B) {
	b.Run("WithPool", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			layers := GetLayerSlice()
			PutLayerSlice(layers)
		}
	})

	b.Run("WithoutPool", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = make([]*lipgloss.Layer, 0, layerCapacity)
		}
	})
}
