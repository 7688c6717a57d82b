package account

import (
	"time"

	"github.com/google/uuid"

	"skyledger/pkg/model"
)

// Session is the explicit handle for one authenticated identity. The
// presentation layer holds it and passes the user into core operations;
// there is no process-wide current-user state.
type Session struct {
	ID        string
	User      *model.User
	StartedAt time.Time
}

func newSession(u *model.User) *Session {
	return &Session{
		ID:        uuid.NewString(),
		User:      u,
		StartedAt: time.Now().UTC(),
	}
}
