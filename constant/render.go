package constant

// Widget layout in terminal cells
const (
	// StatusBarHeight is the number of rows reserved below the floor line
	StatusBarHeight = 2

	// FloorRune draws the floor line
	FloorRune = '▔'

	// BallRune fills the ball disc
	BallRune = '█'

	// CellAspect compensates terminal cells being about twice as tall as wide
	CellAspect = 2.0

	// WorldUnitsPerColumn converts world units to terminal columns
	WorldUnitsPerColumn = 8.0
)
