package api

import (
	"encoding/json"

	"github.com/saeidalz13/checkerboard/models/checkers"
	mc "github.com/saeidalz13/checkerboard/models/connection"
)

type RequestHandler interface {
	HandleGetCell(board *checkers.Board) mc.Message[mc.RespCell]
	HandleSetCell(board *checkers.Board) mc.Message[mc.RespCell]
	HandleRender(board *checkers.Board) mc.Message[mc.RespRender]
	HandleResetBoard(board *checkers.Board) mc.Message[mc.RespRender]
}

// Every incoming valid request will have this structure.
// Failures are reported back in Message.Error and never
// close the connection.
type Request struct {
	payload []byte
}

var _ RequestHandler = (*Request)(nil)

func NewRequest(payload ...[]byte) Request {
	if len(payload) == 0 {
		return Request{}
	}
	return Request{payload: payload[0]}
}

func (r Request) HandleGetCell(board *checkers.Board) mc.Message[mc.RespCell] {
	resp := mc.NewMessage[mc.RespCell](mc.CodeGetCell)

	var req mc.Message[mc.ReqCell]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), "failed to unmarshal get cell request")
		return resp
	}

	c := checkers.NewCoordinates(req.Payload.X, req.Payload.Y)
	state, err := board.Get(c)
	if err != nil {
		resp.AddError(err.Error(), "failed to read cell")
		return resp
	}

	resp.AddPayload(mc.RespCell{X: c.X, Y: c.Y, State: state, Symbol: state.Symbol()})
	return resp
}

func (r Request) HandleSetCell(board *checkers.Board) mc.Message[mc.RespCell] {
	resp := mc.NewMessage[mc.RespCell](mc.CodeSetCell)

	var req mc.Message[mc.ReqSetCell]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), "failed to unmarshal set cell request")
		return resp
	}

	c := checkers.NewCoordinates(req.Payload.X, req.Payload.Y)
	if err := board.Set(c, req.Payload.State); err != nil {
		resp.AddError(err.Error(), "failed to write cell")
		return resp
	}

	state := req.Payload.State
	resp.AddPayload(mc.RespCell{X: c.X, Y: c.Y, State: state, Symbol: state.Symbol()})
	return resp
}

func (r Request) HandleRender(board *checkers.Board) mc.Message[mc.RespRender] {
	resp := mc.NewMessage[mc.RespRender](mc.CodeRender)
	resp.AddPayload(mc.RespRender{Board: board.Render(), Rows: board.Rows()})
	return resp
}

func (r Request) HandleResetBoard(board *checkers.Board) mc.Message[mc.RespRender] {
	board.Reset()

	resp := r.HandleRender(board)
	resp.Code = mc.CodeResetBoard
	return resp
}
