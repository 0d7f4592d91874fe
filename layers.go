package symart

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/artgrid/symart/random"
)

// MakeLayersN computes n independent layers, possibly in parallel, and
// returns them in request order. Each invocation of f runs on its own
// worker with its own lazily seeded random source; f must not share
// mutable state across calls.
//
// Generation order is unspecified, but the returned slice is always
// ordered by index, so sequential compositing of the result is
// deterministic in structure. If any layer fails, the whole call fails and
// no partial slice is returned: a draw must composite every requested
// layer or nothing.
func MakeLayersN[T any](n int, f func(i int, r *random.Rand) (T, error)) ([]T, error) {
	out := make([]T, n)
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			rng := random.New()
			layer, err := f(i, rng)
			if err != nil {
				return err
			}
			out[i] = layer
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// MakeLayers is MakeLayersN for generators that do not need the layer
// index.
func MakeLayers[T any](n int, f func(r *random.Rand) (T, error)) ([]T, error) {
	return MakeLayersN(n, func(_ int, r *random.Rand) (T, error) {
		return f(r)
	})
}
