// Package gate decides whether an interaction may proceed for the
// current session. Gated actions are short-circuited for anonymous
// visitors before any state is touched.
package gate

import (
	"errors"

	"morefix/internal/domain"
)

// ErrAuthRequired signals that the caller must sign in first. Nothing
// was performed and nothing was mutated.
var ErrAuthRequired = errors.New("authentication required")

type Action string

const (
	ToggleWishlist Action = "toggle-wishlist"
	OpenContact    Action = "open-contact"
)

// Check returns ErrAuthRequired when the action needs a session and
// none is present.
func Check(u *domain.User, a Action) error {
	switch a {
	case ToggleWishlist, OpenContact:
		if u == nil {
			return ErrAuthRequired
		}
	}
	return nil
}
