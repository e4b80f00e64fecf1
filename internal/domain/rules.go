package domain

// Axes lists the four line directions; each is walked both ways.
var Axes = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal \
	{1, -1}, // diagonal /
}

// CountInDirection counts contiguous stones of role starting one step away
// from (row, col) and moving by (deltaRow, deltaCol).
func CountInDirection(board *Board, row, col, deltaRow, deltaCol int, role Role) int {
	count := 0
	r, c := row+deltaRow, col+deltaCol
	for board.InBounds(r, c) && board.Get(r, c) == role {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}

// CheckWin reports whether the stone at coord completes a line of at least
// ToWin stones for role. Only lines through coord are inspected.
func CheckWin(board *Board, coord Coordinate, role Role) bool {
	for _, dir := range Axes {
		total := 1 +
			CountInDirection(board, coord.Row, coord.Col, dir[0], dir[1], role) +
			CountInDirection(board, coord.Row, coord.Col, -dir[0], -dir[1], role)
		if total >= ToWin {
			return true
		}
	}
	return false
}
