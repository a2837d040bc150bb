package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	mc "github.com/saeidalz13/checkerboard/models/connection"
)

const (
	URLQuerySessionIDKeyword string = "sessionID"
)

var (
	upgrader = websocket.Upgrader{
		// nothing heavy travels over this connection
		HandshakeTimeout: time.Second * 5,

		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}
)

type RequestProcessor struct {
	sessionManager mc.SessionManager
}

func NewRequestProcessor(sessionManager mc.SessionManager) RequestProcessor {
	return RequestProcessor{sessionManager: sessionManager}
}

func (rp RequestProcessor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}

	sessionIdQuery := r.URL.Query().Get(URLQuerySessionIDKeyword)
	switch sessionIdQuery {
	case "":
		log.Println("a new connection established\tRemote Addr: ", conn.RemoteAddr().String())
		session := rp.sessionManager.GenerateNewSession(conn)

		resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
		resp.AddPayload(mc.RespSessionId{SessionID: session.Id()})
		if err := rp.sessionManager.WriteToSessionConn(session, resp, mc.MessageTypeJSON); err != nil {
			_ = conn.Close()
			rp.sessionManager.TerminateSession(session.Id())
			return
		}
		rp.processSessionRequests(session)

	default:
		session, err := rp.sessionManager.AttachSession(sessionIdQuery, conn)
		if err != nil {
			// Either an expired session, an invalid session ID
			// or a session that is still in use
			msg := mc.NewMessage[mc.NoPayload](mc.CodeReceivedInvalidSessionID)
			msg.AddError(err.Error(), "could not reconnect to session")
			_ = conn.WriteJSON(msg)
			_ = conn.Close()
			return
		}

		log.Printf("session reconnected: %s\tRemote Addr: %s\n", session.Id(), conn.RemoteAddr().String())
		rp.processSessionRequests(session)
	}
}

// Reads requests off the session connection until it fails.
// The session is detached afterwards and stays reconnectable
// until the session manager cleans it up.
func (rp RequestProcessor) processSessionRequests(session *mc.Session) {
	defer func() {
		_ = session.Conn().Close()
		rp.sessionManager.DetachSession(session)
	}()

	board := session.Board()

sessionLoop:
	for {
		_, payload, err := rp.sessionManager.ReadFromSessionConn(session)
		if err != nil {
			break sessionLoop
		}

		var signal mc.Signal
		if err := json.Unmarshal(payload, &signal); err != nil || signal.Code == nil {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeSignalAbsent)
			msg.AddError("incoming req payload must contain 'code' field", "")
			if err := rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		var resp interface{}
		switch *signal.Code {
		case mc.CodeGetCell:
			resp = NewRequest(payload).HandleGetCell(board)

		case mc.CodeSetCell:
			resp = NewRequest(payload).HandleSetCell(board)

		case mc.CodeRender:
			resp = NewRequest().HandleRender(board)

		case mc.CodeResetBoard:
			resp = NewRequest().HandleResetBoard(board)

		default:
			msg := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
			msg.AddError("", "invalid code in the incoming payload")
			resp = msg
		}

		if err := rp.sessionManager.WriteToSessionConn(session, resp, mc.MessageTypeJSON); err != nil {
			break sessionLoop
		}
	}
}
