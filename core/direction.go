package core

// Direction is the heading of a moving entity on the grid
type Direction uint8

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// directionDeltas is indexed by Direction; screen space, Y grows downward
var directionDeltas = [4]Point{
	DirUp:    {X: 0, Y: -1},
	DirRight: {X: 1, Y: 0},
	DirDown:  {X: 0, Y: 1},
	DirLeft:  {X: -1, Y: 0},
}

var directionNames = [4]string{"up", "right", "down", "left"}

// Delta returns the unit step for the direction
func (d Direction) Delta() Point {
	return directionDeltas[d&3]
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	return (d + 2) & 3
}

func (d Direction) String() string {
	return directionNames[d&3]
}
