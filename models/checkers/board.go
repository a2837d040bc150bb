package checkers

import (
	"strings"

	cerr "github.com/saeidalz13/checkerboard/internal/error"
)

const (
	BoardSize = 8

	// Number of rows each side fills at the start
	occupiedRows = 3
)

// Board is indexed row-major, cells[y][x].
type Board struct {
	cells [BoardSize][BoardSize]CellState
}

// Creates a board with the starting layout.
// Occupier A fills the dark squares of the top three rows
// and occupier B the dark squares of the bottom three.
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

func (b *Board) Reset() {
	b.cells = [BoardSize][BoardSize]CellState{}

	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if (x+y)%2 == 0 {
				continue
			}

			switch {
			case y < occupiedRows:
				b.cells[y][x] = CellStateOccupierA
			case y >= BoardSize-occupiedRows:
				b.cells[y][x] = CellStateOccupierB
			}
		}
	}
}

func (b *Board) Get(c Coordinates) (CellState, error) {
	if !c.IsWithinBounds() {
		return CellStateEmpty, cerr.ErrXorYOutOfGridBound(c.X, c.Y)
	}
	return b.cells[c.Y][c.X], nil
}

func (b *Board) Set(c Coordinates, s CellState) error {
	if !c.IsWithinBounds() {
		return cerr.ErrXorYOutOfGridBound(c.X, c.Y)
	}
	if !s.IsValid() {
		return cerr.ErrCellStateInvalid(uint8(s))
	}

	b.cells[c.Y][c.X] = s
	return nil
}

func (b *Board) GetXY(x, y int) (CellState, error) {
	return b.Get(NewCoordinates(x, y))
}

func (b *Board) SetXY(x, y int, s CellState) error {
	return b.Set(NewCoordinates(x, y), s)
}

// Rows returns one string of symbols per row, top to bottom.
func (b *Board) Rows() []string {
	rows := make([]string, BoardSize)

	var sb strings.Builder
	for y := range b.cells {
		sb.Reset()
		for _, s := range b.cells[y] {
			sb.WriteString(s.Symbol())
		}
		rows[y] = sb.String()
	}
	return rows
}

// Render draws every row on its own line, trailing newline included.
func (b *Board) Render() string {
	return strings.Join(b.Rows(), "\n") + "\n"
}

func (b *Board) String() string {
	return b.Render()
}
