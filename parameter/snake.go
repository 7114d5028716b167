package parameter

// Board dimensions in cells (border excluded)
const (
	BoardWidth  = 30
	BoardHeight = 20
)

// Snake spawn parameters
const (
	// SnakeInitialLength is the segment count after setup/restart
	SnakeInitialLength = 3
)

// Obstacle limits
const (
	// MaxObstacles is the fixed capacity of the obstacle set
	MaxObstacles = 32

	ObstaclesEasy   = 0
	ObstaclesMedium = 6
	ObstaclesHard   = 12
)
