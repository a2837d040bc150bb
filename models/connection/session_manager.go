package connection

import (
	"context"
	"encoding/base64"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	cerr "github.com/saeidalz13/checkerboard/internal/error"
)

const DefaultCleanupInterval time.Duration = time.Minute * 20

type SessionManager interface {
	GenerateNewSession(conn *websocket.Conn) *Session
	FindSession(sessionId string) (*Session, error)
	AttachSession(sessionId string, conn *websocket.Conn) (*Session, error)
	DetachSession(session *Session)
	TerminateSession(sessionId string)

	WriteToSessionConn(session *Session, msg interface{}, msgType uint8) error
	ReadFromSessionConn(session *Session) (int, []byte, error)

	CleanupPeriodically(ctx context.Context)
	Len() int
}

type BoardSessionManager struct {
	cleanupInterval time.Duration
	sessions        map[string]*Session
	mu              sync.RWMutex
}

var _ SessionManager = (*BoardSessionManager)(nil)

func NewBoardSessionManager(cleanupInterval time.Duration) *BoardSessionManager {
	if cleanupInterval <= 0 {
		cleanupInterval = DefaultCleanupInterval
	}

	return &BoardSessionManager{
		sessions:        make(map[string]*Session, 10),
		cleanupInterval: cleanupInterval,
	}
}

func (bsm *BoardSessionManager) GenerateNewSession(conn *websocket.Conn) *Session {
	sessionId := base64.RawURLEncoding.EncodeToString([]byte(uuid.New().String()))
	session := NewSession(sessionId, conn)

	bsm.mu.Lock()
	bsm.sessions[sessionId] = session
	bsm.mu.Unlock()

	return session
}

func (bsm *BoardSessionManager) FindSession(sessionId string) (*Session, error) {
	bsm.mu.RLock()
	defer bsm.mu.RUnlock()

	session, prs := bsm.sessions[sessionId]
	if !prs || session == nil {
		return nil, cerr.ErrSessionNotExists(sessionId)
	}

	return session, nil
}

// Reconnects a client to its previous session. The board
// is picked up exactly where the last connection left it.
func (bsm *BoardSessionManager) AttachSession(sessionId string, conn *websocket.Conn) (*Session, error) {
	session, err := bsm.FindSession(sessionId)
	if err != nil {
		return nil, err
	}

	if !session.attach(conn) {
		return nil, cerr.ErrSessionAlreadyConnected(sessionId)
	}

	return session, nil
}

func (bsm *BoardSessionManager) DetachSession(session *Session) {
	session.detach()
}

func (bsm *BoardSessionManager) TerminateSession(sessionId string) {
	bsm.mu.Lock()
	delete(bsm.sessions, sessionId)
	bsm.mu.Unlock()

	log.Printf("session terminated: %s\n", sessionId)
}

func (bsm *BoardSessionManager) Len() int {
	bsm.mu.RLock()
	defer bsm.mu.RUnlock()
	return len(bsm.sessions)
}

// Sessions detached for longer than the cleanup interval
// are dropped together with their boards.
func (bsm *BoardSessionManager) CleanupPeriodically(ctx context.Context) {
	ticker := time.NewTicker(bsm.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			bsm.cleanup()
		}
	}
}

func (bsm *BoardSessionManager) cleanup() {
	bsm.mu.Lock()
	defer bsm.mu.Unlock()

	for id, session := range bsm.sessions {
		if session.isStale(bsm.cleanupInterval) {
			delete(bsm.sessions, id)
			log.Printf("removed stale session: %s", id)
		}
	}
}

func (bsm *BoardSessionManager) WriteToSessionConn(session *Session, msg interface{}, msgType uint8) error {
	err := session.writeToConnWithRetry(msg, msgType)
	if err == nil {
		return nil
	}

	var connErr ConnErr
	if errors.As(err, &connErr) {
		log.Printf("write to session %s failed: %s", session.id, connErr)
	}
	return err
}

func (bsm *BoardSessionManager) ReadFromSessionConn(session *Session) (int, []byte, error) {
	var retries uint8
	conn := session.Conn()

	for {
		messageType, payload, err := conn.ReadMessage()
		if err == nil {
			return messageType, payload, nil
		}

		if session.handleReadFromConnErr(err, retries) != ConnLoopContinue {
			return -1, []byte{}, err
		}
		retries++
	}
}
