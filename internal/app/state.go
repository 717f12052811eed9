package app

import (
	"context"

	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/ctxkeys"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/model"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/rotation"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/service"
)

// State is the application state passed between user actions:
// the signed-in identity, the password reset in progress and the room browser.
type State struct {
	User     *model.User
	Ticket   *service.ResetTicket
	Verified *service.VerifiedReset
	Browser  *rotation.Browser
}

// Context carries the signed-in user into core operations.
func (s *State) Context(ctx context.Context) context.Context {
	if s.User == nil {
		return ctx
	}
	return ctxkeys.WithUser(ctx, s.User)
}

// ResetDone forgets the reset in progress.
func (s *State) ResetDone() {
	s.Ticket = nil
	s.Verified = nil
}
