package recovery

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrymomot/faultkit/pkg/classify"
)

// Strategy pairs an error-matching predicate with a remediation action.
// Strategies are evaluated in order and the first match wins.
type Strategy interface {
	// CanRecover reports whether this strategy handles the given failure.
	CanRecover(cerr *classify.Error) bool
	// Recover performs the remediation. Returning an error marks the
	// recovery attempt as failed; it is never propagated to the caller.
	Recover(ctx context.Context) error
}

// Func adapts a pair of closures into a Strategy.
type Func struct {
	CanRecoverFunc func(cerr *classify.Error) bool
	RecoverFunc    func(ctx context.Context) error
}

func (f Func) CanRecover(cerr *classify.Error) bool {
	if f.CanRecoverFunc == nil {
		return false
	}
	return f.CanRecoverFunc(cerr)
}

func (f Func) Recover(ctx context.Context) error {
	if f.RecoverFunc == nil {
		return nil
	}
	return f.RecoverFunc(ctx)
}

// SessionClearer removes persisted credentials. The session package's stores
// satisfy this directly.
type SessionClearer interface {
	Clear(ctx context.Context) error
}

// LoginRedirector sends the user to a login entry point. How that happens
// (route change, full reload) is the host application's concern.
type LoginRedirector interface {
	RedirectToLogin(ctx context.Context) error
}

// Unauthorized recovers from authentication failures by clearing the
// persisted session and redirecting to login.
type Unauthorized struct {
	sessions SessionClearer
	redirect LoginRedirector
}

// NewUnauthorized builds the unauthorized-recovery strategy. The redirector
// may be nil when the host has no navigation concept (tests, CLIs).
func NewUnauthorized(sessions SessionClearer, redirect LoginRedirector) Unauthorized {
	return Unauthorized{sessions: sessions, redirect: redirect}
}

func (u Unauthorized) CanRecover(cerr *classify.Error) bool {
	return cerr != nil && cerr.Kind == classify.KindUnauthorized
}

func (u Unauthorized) Recover(ctx context.Context) error {
	if u.sessions != nil {
		if err := u.sessions.Clear(ctx); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
	}
	if u.redirect != nil {
		if err := u.redirect.RedirectToLogin(ctx); err != nil {
			return fmt.Errorf("redirect to login: %w", err)
		}
	}
	return nil
}

// Network recovers from connectivity failures by waiting a fixed delay so a
// flapping connection has a chance to settle before the caller re-attempts.
type Network struct {
	delay time.Duration
}

// NewNetwork builds the network-recovery strategy. Non-positive delays fall
// back to 2 seconds.
func NewNetwork(delay time.Duration) Network {
	if delay <= 0 {
		delay = 2 * time.Second
	}
	return Network{delay: delay}
}

func (n Network) CanRecover(cerr *classify.Error) bool {
	return cerr != nil && cerr.Kind == classify.KindNetwork
}

func (n Network) Recover(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(n.delay):
		return nil
	}
}

// Defaults returns the standard strategy ordering: unauthorized first, then
// network. A caller-supplied strategy list replaces this entirely.
func Defaults(sessions SessionClearer, redirect LoginRedirector) []Strategy {
	return []Strategy{
		NewUnauthorized(sessions, redirect),
		NewNetwork(0),
	}
}
