package api

import (
	"encoding/json"
	"testing"

	cerr "github.com/saeidalz13/checkerboard/internal/error"
	"github.com/saeidalz13/checkerboard/models/checkers"
	mc "github.com/saeidalz13/checkerboard/models/connection"
)

func mustMarshal(t *testing.T, v interface{}) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestHandleGetCell(t *testing.T) {
	board := checkers.NewBoard()

	tests := []struct {
		name          string
		req           mc.ReqCell
		expectedState checkers.CellState
		expectedErr   string
	}{
		{name: "empty corner", req: mc.ReqCell{X: 0, Y: 0}, expectedState: checkers.CellStateEmpty},
		{name: "occupier a", req: mc.ReqCell{X: 1, Y: 0}, expectedState: checkers.CellStateOccupierA},
		{name: "occupier b", req: mc.ReqCell{X: 0, Y: 7}, expectedState: checkers.CellStateOccupierB},
		{name: "x out of bound", req: mc.ReqCell{X: 8, Y: 0}, expectedErr: cerr.ErrXorYOutOfGridBound(8, 0).Error()},
		{name: "y out of bound", req: mc.ReqCell{X: 0, Y: -1}, expectedErr: cerr.ErrXorYOutOfGridBound(0, -1).Error()},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			msg := mc.NewMessage[mc.ReqCell](mc.CodeGetCell)
			msg.AddPayload(test.req)

			resp := NewRequest(mustMarshal(t, msg)).HandleGetCell(board)
			if resp.Code != mc.CodeGetCell {
				t.Fatalf("expected code: %d\tgot: %d", mc.CodeGetCell, resp.Code)
			}

			if test.expectedErr != "" {
				if resp.Error == nil {
					t.Fatal("expected an error in response")
				}
				if resp.Error.ErrorDetails != test.expectedErr {
					t.Fatalf("expected error: %s\tgot: %s", test.expectedErr, resp.Error.ErrorDetails)
				}
				return
			}

			if resp.Error != nil {
				t.Fatalf("unexpected error: %s", resp.Error.ErrorDetails)
			}
			expected := mc.RespCell{X: test.req.X, Y: test.req.Y, State: test.expectedState, Symbol: test.expectedState.Symbol()}
			if resp.Payload != expected {
				t.Fatalf("expected payload: %+v\tgot: %+v", expected, resp.Payload)
			}
		})
	}
}

func TestHandleSetCell(t *testing.T) {
	board := checkers.NewBoard()

	msg := mc.NewMessage[mc.ReqSetCell](mc.CodeSetCell)
	msg.AddPayload(mc.ReqSetCell{X: 3, Y: 2, State: checkers.CellStateOccupierB})

	resp := NewRequest(mustMarshal(t, msg)).HandleSetCell(board)
	if resp.Error != nil {
		t.Fatalf("unexpected error: %s", resp.Error.ErrorDetails)
	}
	if resp.Payload.Symbol != "B" {
		t.Fatalf("expected symbol B\tgot: %s", resp.Payload.Symbol)
	}

	state, err := board.GetXY(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	if state != checkers.CellStateOccupierB {
		t.Fatalf("expected state: %s\tgot: %s", checkers.CellStateOccupierB, state)
	}
}

func TestHandleSetCellRejected(t *testing.T) {
	tests := []struct {
		name string
		req  mc.ReqSetCell
	}{
		{name: "out of bound", req: mc.ReqSetCell{X: 0, Y: 8, State: checkers.CellStateOccupierA}},
		{name: "invalid state", req: mc.ReqSetCell{X: 0, Y: 0, State: checkers.CellState(9)}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			board := checkers.NewBoard()
			before := board.Render()

			msg := mc.NewMessage[mc.ReqSetCell](mc.CodeSetCell)
			msg.AddPayload(test.req)

			resp := NewRequest(mustMarshal(t, msg)).HandleSetCell(board)
			if resp.Error == nil {
				t.Fatal("expected an error in response")
			}
			if board.Render() != before {
				t.Fatal("board must not change after a rejected write")
			}
		})
	}
}

func TestHandleSetCellBadPayload(t *testing.T) {
	resp := NewRequest([]byte(`{"code": 3, "payload": "nope"}`)).HandleSetCell(checkers.NewBoard())
	if resp.Error == nil {
		t.Fatal("expected an unmarshal error in response")
	}
}

func TestHandleResetBoard(t *testing.T) {
	board := checkers.NewBoard()
	if err := board.SetXY(1, 0, checkers.CellStateEmpty); err != nil {
		t.Fatal(err)
	}

	resp := NewRequest().HandleResetBoard(board)
	if resp.Code != mc.CodeResetBoard {
		t.Fatalf("expected code: %d\tgot: %d", mc.CodeResetBoard, resp.Code)
	}
	if resp.Payload.Board != checkers.NewBoard().Render() {
		t.Fatalf("expected default board after reset, got:\n%s", resp.Payload.Board)
	}
	if len(resp.Payload.Rows) != checkers.BoardSize {
		t.Fatalf("expected %d rows\tgot: %d", checkers.BoardSize, len(resp.Payload.Rows))
	}
}
