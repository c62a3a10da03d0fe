package rules

// Direction is the heading of the snake.
type Direction string

const (
	// DirectionUp moves the head towards y=0
	DirectionUp Direction = "up"
	// DirectionDown moves the head towards y=GridCount-1
	DirectionDown Direction = "down"
	// DirectionLeft moves the head towards x=0
	DirectionLeft Direction = "left"
	// DirectionRight moves the head towards x=GridCount-1
	DirectionRight Direction = "right"
)

// Opposite returns the reverse heading. Unknown directions return themselves.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	}
	return d
}

// Delta is the one cell step taken in direction d.
func (d Direction) Delta() Point {
	switch d {
	case DirectionUp:
		return Point{X: 0, Y: -1}
	case DirectionDown:
		return Point{X: 0, Y: 1}
	case DirectionLeft:
		return Point{X: -1, Y: 0}
	case DirectionRight:
		return Point{X: 1, Y: 0}
	}
	return Point{}
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	switch d {
	case DirectionUp, DirectionDown, DirectionLeft, DirectionRight:
		return true
	}
	return false
}
