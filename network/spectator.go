package network

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/gorilla/websocket"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/unoflip/uno/event"
)

const writeWait = 3 * time.Second

var spectatorIds int64 = 0
var spectators = hashmap.New()

type spectator struct {
	sync.Mutex
	ID   int64
	conn *websocket.Conn
}

func (s *spectator) write(payload []byte) error {
	s.Lock()
	defer s.Unlock()
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return s.conn.WriteMessage(websocket.TextMessage, payload)
}

func (s *spectator) close() {
	spectators.Del(s.ID)
	if err := s.conn.Close(); err != nil {
		log.Error(err)
	}
}

func connected(conn *websocket.Conn, snapshot []byte) (*spectator, error) {
	s := &spectator{
		ID:   atomic.AddInt64(&spectatorIds, 1),
		conn: conn,
	}
	if snapshot != nil {
		if err := s.write(snapshot); err != nil {
			return nil, err
		}
	}
	spectators.Set(s.ID, s)
	log.Infof("spectator %d connected from %s\n", s.ID, conn.RemoteAddr())
	return s, nil
}

// listening drains the connection until the spectator goes away. The feed
// is read-only, anything sent by the client is dropped.
func (s *spectator) listening() {
	defer s.close()
	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			log.Infof("spectator %d left: %v\n", s.ID, err)
			return
		}
	}
}

// Spectators is the number of connected spectators.
func Spectators() int {
	count := 0
	spectators.Foreach(func(e *hashmap.Entry) {
		count++
	})
	return count
}

// Feed forwards every game notification to the connected spectators.
type Feed struct {
	last atomic.Value
}

func NewFeed() *Feed {
	return &Feed{}
}

func (f *Feed) OnNotification(notification event.Notification) {
	payload := json.Marshal(notification)
	f.last.Store(payload)
	spectators.Foreach(func(e *hashmap.Entry) {
		s := e.Value().(*spectator)
		if err := s.write(payload); err != nil {
			log.Errorf("spectator %d write failed: %v\n", s.ID, err)
			s.close()
		}
	})
}

// Snapshot is the last notification forwarded, nil before the first one.
func (f *Feed) Snapshot() []byte {
	if payload, ok := f.last.Load().([]byte); ok {
		return payload
	}
	return nil
}
