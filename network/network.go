package network

// Network is a listener exposing the match to the outside, such as the
// spectator feed.
type Network interface {
	Serve() error
}
