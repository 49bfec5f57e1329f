// Package life implements Conway's Game of Life (B3/S23) on a toroidal grid.
package life

import "github.com/fandiandrian/Cellular-Automata/internal/core"

// Step derives the next generation from prev. The result is freshly
// allocated; prev is only read.
func Step(prev core.Generation) core.Generation {
	if prev.Empty() {
		return core.Generation{}
	}
	w, h := prev.Cols(), prev.Rows()
	cur := prev.Cells()
	nxt := make([]uint8, len(cur))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					neighbors += int(cur[ny*w+nx])
				}
			}
			idx := y*w + x
			if Next(cur[idx] == 1, neighbors) {
				nxt[idx] = 1
			}
		}
	}
	next, err := core.FromCells(h, w, nxt)
	if err != nil {
		// nxt is sized from prev, which is well formed.
		panic(err)
	}
	return next
}

// Next applies the birth/survival rule to a single cell.
func Next(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// NeighborCount sums the eight toroidally wrapped neighbors of (x, y).
func NeighborCount(g core.Generation, x, y int) int {
	if g.Empty() {
		return 0
	}
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n += int(g.At(x+dx, y+dy))
		}
	}
	return n
}
