package checkers

import "fmt"

type CellState uint8

const (
	CellStateEmpty CellState = iota
	CellStateOccupierA
	CellStateOccupierB
)

func (s CellState) IsValid() bool {
	return s <= CellStateOccupierB
}

// Symbol is the single character drawn for the cell by Render.
func (s CellState) Symbol() string {
	switch s {
	case CellStateEmpty:
		return "·"
	case CellStateOccupierA:
		return "A"
	case CellStateOccupierB:
		return "B"
	default:
		panic(fmt.Sprintf("invalid cell state: %d", s))
	}
}

func (s CellState) String() string {
	switch s {
	case CellStateEmpty:
		return "empty"
	case CellStateOccupierA:
		return "occupier_a"
	case CellStateOccupierB:
		return "occupier_b"
	default:
		return fmt.Sprintf("CellState(%d)", s)
	}
}
