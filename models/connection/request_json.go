package connection

import "github.com/saeidalz13/checkerboard/models/checkers"

type ReqCell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type ReqSetCell struct {
	X     int                `json:"x"`
	Y     int                `json:"y"`
	State checkers.CellState `json:"state"`
}
