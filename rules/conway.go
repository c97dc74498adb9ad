package rules

/*
ComputeNext applies Conway's Game of Life rules to determine the next state of a cell.

	alive, neighbors > 3       -> dies (overcrowding)
	alive, neighbors 2 or 3    -> stays alive
	dead,  neighbors == 3      -> resurrects
	otherwise                  -> dead
*/
func ComputeNext(alive bool, neighbors int) bool {
	switch {
	case alive && neighbors > 3:
		return false
	case alive && (neighbors == 2 || neighbors == 3):
		return true
	case !alive && neighbors == 3:
		return true
	default:
		return false
	}
}
