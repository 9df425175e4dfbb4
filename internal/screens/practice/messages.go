package practice

import (
	"time"

	sess "github.com/nkapoor/lingua/internal/session"
)

// batteryReadyMsg is sent when the exercise battery has been assembled
// and the session runner is ready.
type batteryReadyMsg struct {
	Runner    *sess.Runner
	SessionID string
	Err       error
}

// timerTickMsg is sent every second while the session runs.
type timerTickMsg time.Time

// sessionEndMsg triggers the end-of-session flow.
type sessionEndMsg struct{}
