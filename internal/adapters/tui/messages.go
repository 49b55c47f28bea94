package tui

import "github.com/vito/progrock"

// MsgTapeUpdate wraps one status update read from the session.
type MsgTapeUpdate struct {
	Update *progrock.StatusUpdate
}

// MsgTapeEnded is sent once the session stream is exhausted.
type MsgTapeEnded struct{}
