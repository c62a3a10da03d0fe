package rules

const (
	// GridCount is the number of cells along each side of the board.
	GridCount = 20
	// GridSize is the pixel scale of a single cell for renderers that draw in
	// pixels. The board is GridSize*GridCount pixels wide.
	GridSize = 20
)

// Point is a single cell on the board.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Equal checks if 2 points are the same x,y coordinate
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// Add returns p shifted by delta.
func (p Point) Add(delta Point) Point {
	return Point{X: p.X + delta.X, Y: p.Y + delta.Y}
}

// InBounds reports whether p lies on the board.
func InBounds(p Point) bool {
	return p.X >= 0 && p.X < GridCount && p.Y >= 0 && p.Y < GridCount
}

func containsPoint(points []Point, p Point) bool {
	for _, o := range points {
		if o.Equal(p) {
			return true
		}
	}
	return false
}
