package connection

import (
	"errors"
	"log"
	"net"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/saeidalz13/checkerboard/models/checkers"
)

const (
	maxWsRetries  uint8 = 2
	backOffFactor uint8 = 2
)

const (
	MessageTypeBytes uint8 = iota
	MessageTypeJSON
)

type ConnectionHandler interface {
	handleReadFromConnErr(err error, retries uint8) uint8
	writeToConnWithRetry(msg interface{}, msgType uint8) error
	onConnErr(err error) uint8
}

// Session owns one board. Only the request loop of the
// currently attached connection touches it.
type Session struct {
	id         string
	conn       *websocket.Conn
	board      *checkers.Board
	createdAt  time.Time
	detachedAt time.Time
	connected  bool
	mu         sync.Mutex
}

func NewSession(id string, conn *websocket.Conn) *Session {
	return &Session{
		id:        id,
		conn:      conn,
		board:     checkers.NewBoard(),
		createdAt: time.Now(),
		connected: true,
	}
}

var _ ConnectionHandler = (*Session)(nil)

func (s *Session) Id() string {
	return s.id
}

func (s *Session) Conn() *websocket.Conn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn
}

func (s *Session) Board() *checkers.Board {
	return s.board
}

func (s *Session) IsConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

// attach swaps in a new connection for a detached session.
// Returns false if another connection is still attached.
func (s *Session) attach(conn *websocket.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.connected {
		return false
	}
	s.conn = conn
	s.connected = true
	return true
}

func (s *Session) detach() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.connected = false
	s.detachedAt = time.Now()
}

// isStale reports whether the session has been detached
// for longer than ttl.
func (s *Session) isStale(ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return !s.connected && time.Since(s.detachedAt) > ttl
}

func (s *Session) onConnErr(err error) uint8 {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		log.Println("timeout error:", err)
		return ConnLoopRetry
	}

	if websocket.IsCloseError(err, websocket.CloseTryAgainLater) {
		log.Println("high server load/traffic error:", err)
		return ConnLoopRetry
	}

	if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
		log.Println("close error:", err)
		return ConnLoopBreak
	}

	if websocket.IsCloseError(err, websocket.CloseProtocolError, websocket.CloseInternalServerErr, websocket.CloseTLSHandshake, websocket.CloseMandatoryExtension) {
		log.Println("critical error:", err)
		return ConnLoopBreak
	}

	// Client is probably not ours (binary frames, bad utf-8, huge payloads)
	if websocket.IsCloseError(err, websocket.CloseInvalidFramePayloadData, websocket.CloseUnsupportedData, websocket.CloseMessageTooBig, websocket.ClosePolicyViolation, websocket.CloseServiceRestart, websocket.CloseNoStatusReceived) {
		log.Println("non-critical error:", err)
		return ConnLoopBreak
	}

	log.Println("unexpected error:", err)
	return ConnLoopBreak
}

// Writes to the connection of that session and retries
// with a linear back-off when the write timed out.
func (s *Session) writeToConnWithRetry(msg interface{}, msgType uint8) error {
	var retries uint8
	conn := s.Conn()

	for {
		var err error

		switch msgType {
		case MessageTypeJSON:
			err = conn.WriteJSON(msg)

		case MessageTypeBytes:
			respBytes, ok := msg.([]byte)
			if !ok {
				return NewConnErr(ConnInvalidMsgType).AddDesc("msg type expected: []byte got invalid")
			}
			err = conn.WriteMessage(websocket.TextMessage, respBytes)

		default:
			return NewConnErr(ConnInvalidMsgType).AddDesc("invalid message type to write with retry")
		}

		if err == nil {
			return nil
		}

		if s.onConnErr(err) != ConnLoopRetry {
			return NewConnErr(ConnLoopBreak).AddDesc("breaking write loop due to: " + err.Error())
		}

		if retries >= maxWsRetries {
			log.Printf("max retries reached for writing to ws [%s]: %s", conn.RemoteAddr().String(), err)
			return NewConnErr(ConnLoopBreak).AddDesc(err.Error())
		}

		retries++
		log.Printf("writing to ws [%s] failed; retrying... (retry no. %d)\n", conn.RemoteAddr().String(), retries)
		time.Sleep(time.Duration(retries*backOffFactor) * time.Second)
	}
}

func (s *Session) handleReadFromConnErr(err error, retries uint8) uint8 {
	switch s.onConnErr(err) {
	case ConnLoopRetry:
		if retries >= maxWsRetries {
			return ConnLoopBreak
		}
		log.Printf("failed to read from ws conn [%s]; retrying... (retry no. %d)\n", s.Conn().RemoteAddr().String(), retries+1)
		time.Sleep(time.Duration((retries+1)*backOffFactor) * time.Second)
		return ConnLoopContinue

	default:
		return ConnLoopBreak
	}
}
