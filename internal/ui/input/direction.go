package input

// Direction is the way a cycling selection, like the tab bar, moves.
type Direction int

const (
	Backward Direction = iota
	Forward
)
