package connection

import "github.com/saeidalz13/checkerboard/models/checkers"

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

type RespCell struct {
	X      int                `json:"x"`
	Y      int                `json:"y"`
	State  checkers.CellState `json:"state"`
	Symbol string             `json:"symbol"`
}

type RespRender struct {
	Board string   `json:"board"`
	Rows  []string `json:"rows"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
