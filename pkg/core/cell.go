package core

// Cell is an integer coordinate on the unbounded simulation plane.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell { return Cell{X: c.X + dx, Y: c.Y + dy} }

// DistSq returns the squared Euclidean distance between two cells.
func (c Cell) DistSq(o Cell) int {
	dx := c.X - o.X
	dy := c.Y - o.Y
	return dx*dx + dy*dy
}

// Neighbors8 returns the Moore neighborhood of c in row-major scan order
// (top row first, left to right), excluding c itself.
func (c Cell) Neighbors8() [8]Cell {
	var out [8]Cell
	i := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			out[i] = Cell{X: c.X + dx, Y: c.Y + dy}
			i++
		}
	}
	return out
}

// Block3 returns the 3x3 block centered on c, c included, in row-major order.
func (c Cell) Block3() [9]Cell {
	var out [9]Cell
	i := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			out[i] = Cell{X: c.X + dx, Y: c.Y + dy}
			i++
		}
	}
	return out
}
