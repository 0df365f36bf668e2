package network

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
)

type Websocket struct {
	addr string
	feed *Feed
	mux  *http.ServeMux
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func NewWebsocketServer(addr string, feed *Feed) Websocket {
	w := Websocket{addr: addr, feed: feed, mux: http.NewServeMux()}
	w.mux.HandleFunc("/ws", w.serveWs)
	return w
}

func (w Websocket) Handler() http.Handler {
	return w.mux
}

func (w Websocket) Serve() error {
	log.Infof("Websocket spectator feed listening on %s\n", w.addr)
	return http.ListenAndServe(w.addr, w.mux)
}

func (w Websocket) serveWs(rw http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(rw, r, nil)
	if err != nil {
		log.Error(err)
		return
	}
	s, err := connected(conn, w.feed.Snapshot())
	if err != nil {
		log.Error(err)
		_ = conn.Close()
		return
	}
	async.Async(s.listening)
}
