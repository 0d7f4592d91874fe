package symart

import (
	"errors"
	"testing"

	"github.com/artgrid/symart/random"
)

func TestMakeLayersNPreservesOrder(t *testing.T) {
	layers, err := MakeLayersN(20, func(i int, r *random.Rand) (int, error) {
		return i * i, nil
	})
	if err != nil {
		t.Fatalf("MakeLayersN: %v", err)
	}
	if len(layers) != 20 {
		t.Fatalf("got %d layers, want 20", len(layers))
	}
	for i, v := range layers {
		if v != i*i {
			t.Errorf("layers[%d] = %d, want %d", i, v, i*i)
		}
	}
}

func TestMakeLayersNFailsWhole(t *testing.T) {
	boom := errors.New("layer 7 failed")
	layers, err := MakeLayersN(16, func(i int, r *random.Rand) (int, error) {
		if i == 7 {
			return 0, boom
		}
		return i, nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, want %v", err, boom)
	}
	if layers != nil {
		t.Errorf("got partial layers %v, want nil", layers)
	}
}

func TestMakeLayersNWorkersGetIndependentSources(t *testing.T) {
	draws, err := MakeLayersN(8, func(i int, r *random.Rand) (float64, error) {
		if r == nil {
			t.Error("worker received nil source")
		}
		return r.Float64(), nil
	})
	if err != nil {
		t.Fatalf("MakeLayersN: %v", err)
	}
	seen := map[float64]bool{}
	for _, v := range draws {
		if seen[v] {
			t.Fatalf("two workers drew the identical value %v", v)
		}
		seen[v] = true
	}
}

func TestMakeLayersWithoutIndex(t *testing.T) {
	layers, err := MakeLayers(5, func(r *random.Rand) (string, error) {
		return "layer", nil
	})
	if err != nil {
		t.Fatalf("MakeLayers: %v", err)
	}
	if len(layers) != 5 {
		t.Errorf("got %d layers, want 5", len(layers))
	}
}
