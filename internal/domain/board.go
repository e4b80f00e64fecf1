package domain

import "fmt"

// Board is an N×N grid of roles. Every mutation is a single-cell write.
type Board struct {
	size  int
	cells []Role
}

func NewBoard(size int) *Board {
	return &Board{
		size:  size,
		cells: make([]Role, size*size),
	}
}

// BoardFromRows builds a board from a square matrix of role values (0, 1, 2),
// indexed as rows[row][col], at most BoardSize wide.
func BoardFromRows(rows [][]int) (*Board, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidBoard)
	}
	if n > BoardSize {
		return nil, fmt.Errorf("%w: %d rows, at most %d allowed", ErrInvalidBoard, n, BoardSize)
	}
	b := NewBoard(n)
	for r, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoard, r, len(row), n)
		}
		for c, v := range row {
			role := Role(v)
			if role != Empty && !role.Valid() {
				return nil, fmt.Errorf("%w: cell (%d,%d) holds %d", ErrInvalidBoard, r, c, v)
			}
			b.cells[r*n+c] = role
		}
	}
	return b, nil
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

// Get returns the role at (row, col). Callers must stay in bounds.
func (b *Board) Get(row, col int) Role {
	return b.cells[row*b.size+col]
}

func (b *Board) Set(row, col int, role Role) {
	b.cells[row*b.size+col] = role
}

func (b *Board) At(c Coordinate) Role {
	return b.Get(c.Row, c.Col)
}

func (b *Board) Center() Coordinate {
	return Coordinate{Row: b.size / 2, Col: b.size / 2}
}

// IsEmpty reports whether no stone has been placed yet.
func (b *Board) IsEmpty() bool {
	for _, v := range b.cells {
		if v != Empty {
			return false
		}
	}
	return true
}

func (b *Board) IsFull() bool {
	for _, v := range b.cells {
		if v == Empty {
			return false
		}
	}
	return true
}

// HasNeighbor reports whether any of the 8 surrounding cells is occupied.
func (b *Board) HasNeighbor(row, col int) bool {
	for r := row - 1; r <= row+1; r++ {
		for c := col - 1; c <= col+1; c++ {
			if (r == row && c == col) || !b.InBounds(r, c) {
				continue
			}
			if b.Get(r, c) != Empty {
				return true
			}
		}
	}
	return false
}

// EmptyCells lists the empty cells in row-major order.
func (b *Board) EmptyCells() []Coordinate {
	cells := []Coordinate{}
	for i, v := range b.cells {
		if v == Empty {
			cells = append(cells, Coordinate{Row: i / b.size, Col: i % b.size})
		}
	}
	return cells
}

// this creates a deep copy of the board
func (b *Board) Clone() *Board {
	cells := make([]Role, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, cells: cells}
}

func (b *Board) Equal(other *Board) bool {
	if other == nil || b.size != other.size {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Rows converts the board to a plain int matrix for storage and the wire.
func (b *Board) Rows() [][]int {
	rows := make([][]int, b.size)
	for r := range rows {
		rows[r] = make([]int, b.size)
		for c := range rows[r] {
			rows[r][c] = int(b.Get(r, c))
		}
	}
	return rows
}

func (b *Board) String() string {
	buf := make([]byte, 0, b.size*(b.size+1))
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			switch b.Get(r, c) {
			case Black:
				buf = append(buf, 'X')
			case White:
				buf = append(buf, 'O')
			default:
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
