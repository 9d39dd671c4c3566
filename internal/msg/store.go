// Package msg is the message-template store for diagnostics.
//
// Producers refer to messages by stable Key; the store renders the
// template for the active locale with named argument bindings. An
// unknown key is a packaging defect, not a user error: Render reports
// it and callers treat the failure as fatal to the session.
package msg

import (
	"errors"
	"fmt"

	"ember/internal/diag"
)

// Key identifies one message template.
type Key string

// ErrUnknownKey is reported when a key has no template in any locale.
var ErrUnknownKey = errors.New("unknown message key")

// Store resolves message templates with argument bindings. Render must
// tolerate being called before the surrounding diagnostic is finished:
// labels are pre-rendered eagerly and fed back as plain arguments.
type Store interface {
	Render(key Key, args *diag.Args) (string, error)
}

// MustRender renders a key that is known to exist and carries no
// placeholders needing absent arguments. It panics otherwise; use it
// only for fixed label texts.
func MustRender(s Store, key Key, args *diag.Args) string {
	out, err := s.Render(key, args)
	if err != nil {
		panic(fmt.Sprintf("msg: %v", err))
	}
	return out
}
