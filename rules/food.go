package rules

// Rand is the source of randomness used to place food. *math/rand.Rand
// satisfies it.
type Rand interface {
	Intn(n int) int
}

// maxFoodAttempts bounds the random draws before falling back to a scan of
// the free cells.
const maxFoodAttempts = GridCount * GridCount

// PlaceFood picks a random cell that is not in occupied. It returns false
// only when every cell is occupied.
func PlaceFood(r Rand, occupied []Point) (Point, bool) {
	for i := 0; i < maxFoodAttempts; i++ {
		p := Point{X: r.Intn(GridCount), Y: r.Intn(GridCount)}
		if !containsPoint(occupied, p) {
			return p, true
		}
	}

	openPoints := getUnoccupiedPoints(occupied)
	if len(openPoints) == 0 {
		return Point{}, false
	}
	return openPoints[r.Intn(len(openPoints))], true
}

func getUnoccupiedPoints(occupied []Point) []Point {
	taken := make(map[Point]struct{}, len(occupied))
	for _, o := range occupied {
		taken[o] = struct{}{}
	}

	candidatePoints := make([]Point, 0, GridCount*GridCount)
	for x := 0; x < GridCount; x++ {
		for y := 0; y < GridCount; y++ {
			p := Point{X: x, Y: y}
			if _, ok := taken[p]; !ok {
				candidatePoints = append(candidatePoints, p)
			}
		}
	}
	return candidatePoints
}
