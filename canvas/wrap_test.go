package canvas

import "testing"

func TestModulusApply(t *testing.T) {
	tests := []struct {
		name string
		m    int
		n    int
		want int
	}{
		{"zero", 5, 0, 0},
		{"in range", 5, 3, 3},
		{"at modulus", 5, 5, 0},
		{"one period up", 5, 7, 2},
		{"negative", 5, -3, 2},
		{"negative period", 5, -5, 0},
		{"far negative", 5, -13, 2},
		{"far positive", 5, 10003, 3},
		{"modulus one", 1, -7, 0},
		{"large modulus", 100, -1, 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewModulus(tt.m).Apply(tt.n)
			if got != tt.want {
				t.Errorf("NewModulus(%d).Apply(%d) = %d, want %d", tt.m, tt.n, got, tt.want)
			}
		})
	}
}

func TestModulusPeriodicity(t *testing.T) {
	md := NewModulus(7)
	for n := -30; n <= 30; n++ {
		got := md.Apply(n)
		if got < 0 || got >= 7 {
			t.Fatalf("Apply(%d) = %d, out of [0, 7)", n, got)
		}
		for k := -3; k <= 3; k++ {
			if shifted := md.Apply(n + k*7); shifted != got {
				t.Errorf("Apply(%d) = %d, want %d (= Apply(%d))", n+k*7, shifted, got, n)
			}
		}
	}
}

func TestWrapDimensionComputeIndex(t *testing.T) {
	d := NewWrapDimension(4, 6) // height 4, width 6
	tests := []struct {
		name    string
		coord   Coord
		row     int
		col     int
	}{
		{"origin", Coord{X: 0, Y: 0}, 0, 0},
		{"in bounds", Coord{X: 5, Y: 3}, 3, 5},
		{"x wraps", Coord{X: 6, Y: 0}, 0, 0},
		{"y wraps", Coord{X: 0, Y: 4}, 0, 0},
		{"negative x", Coord{X: -1, Y: 0}, 0, 5},
		{"negative y", Coord{X: 0, Y: -1}, 3, 0},
		{"far outside", Coord{X: -13, Y: 11}, 3, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col := d.ComputeIndex(tt.coord)
			if row != tt.row || col != tt.col {
				t.Errorf("ComputeIndex(%+v) = (%d, %d), want (%d, %d)",
					tt.coord, row, col, tt.row, tt.col)
			}
		})
	}
}

func TestFromFuncVisitsEveryCellOnce(t *testing.T) {
	const h, w = 3, 5
	visits := map[[2]int]int{}
	c := FromFunc(h, w, func(x, y int) int {
		visits[[2]int{x, y}]++
		return y*w + x
	})
	if len(visits) != h*w {
		t.Fatalf("visited %d distinct cells, want %d", len(visits), h*w)
	}
	for cell, n := range visits {
		if n != 1 {
			t.Errorf("cell %v visited %d times, want 1", cell, n)
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if got := c.At(Coord{X: x, Y: y}); got != y*w+x {
				t.Errorf("At(%d, %d) = %d, want %d", x, y, got, y*w+x)
			}
		}
	}
}

func TestWrapCanvasIndexingWraps(t *testing.T) {
	const h, w = 4, 6
	c := FromFunc(h, w, func(x, y int) int { return y*w + x })
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			want := c.At(Coord{X: x, Y: y})
			for k := -2; k <= 2; k++ {
				got := c.At(Coord{X: x + k*w, Y: y + k*h})
				if got != want {
					t.Errorf("At(%d, %d) = %d, want %d (cell %d,%d)",
						x+k*w, y+k*h, got, want, x, y)
				}
			}
		}
	}
}

func TestWrapCanvasSetWraps(t *testing.T) {
	c := New[int](4, 4)
	c.Set(Coord{X: -1, Y: -1}, 42)
	if got := c.At(Coord{X: 3, Y: 3}); got != 42 {
		t.Errorf("At(3, 3) = %d, want 42 after Set(-1, -1)", got)
	}
}

func TestFromElem(t *testing.T) {
	c := FromElem(3, 3, uint8(7))
	for _, v := range c.Raw() {
		if v != 7 {
			t.Fatalf("cell = %d, want 7", v)
		}
	}
}

func TestFromRaw(t *testing.T) {
	if _, err := FromRaw(2, 3, make([]int, 5)); err == nil {
		t.Error("FromRaw with mismatched length: got nil error, want error")
	}
	c, err := FromRaw(2, 3, []int{0, 1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("FromRaw: %v", err)
	}
	if got := c.At(Coord{X: 2, Y: 1}); got != 5 {
		t.Errorf("At(2, 1) = %d, want 5", got)
	}
}
