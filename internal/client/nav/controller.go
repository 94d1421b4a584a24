// Package nav implements the session-gated navigation state machine. Routes
// split into an unauthenticated set (login, register, verify_email) and an
// authenticated set (main with its content tabs); the two sets never share a
// history stack. Crossing the boundary always resets history, so there is no
// back-navigation from a logged-in screen into a logged-out one or the other
// way around.
package nav

import (
	"errors"
	"sync"
)

// Route names a screen.
type Route string

const (
	RouteLogin       Route = "login"
	RouteRegister    Route = "register"
	RouteVerifyEmail Route = "verify_email"
	RouteMain        Route = "main"
)

// Tabs of the main screen. They are not part of the history stack; switching
// tabs does not navigate.
const (
	TabDestinations   = "destinations"
	TabCulinary       = "culinary"
	TabGallery        = "gallery"
	TabSouvenirs      = "souvenirs"
	TabAccommodations = "accommodations"
)

// Authenticated reports which side of the session boundary the route is on.
func (r Route) Authenticated() bool {
	return r == RouteMain
}

// ErrBoundary is returned by Push when the target route is on the other side
// of the session boundary. Such transitions must go through the dedicated
// event methods, which reset history.
var ErrBoundary = errors.New("cannot push across the session boundary")

// Controller holds the route history. The zero value is not usable; build it
// with NewController.
type Controller struct {
	mu    sync.Mutex
	stack []Route
}

// NewController picks the initial route from the session state at app start.
func NewController(authenticated bool) *Controller {
	start := RouteLogin
	if authenticated {
		start = RouteMain
	}
	return &Controller{stack: []Route{start}}
}

// Current returns the visible route.
func (c *Controller) Current() Route {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stack[len(c.stack)-1]
}

// History returns a copy of the stack, oldest first.
func (c *Controller) History() []Route {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Route{}, c.stack...)
}

// Push navigates forward within the current side of the boundary.
func (c *Controller) Push(r Route) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if r.Authenticated() != c.stack[len(c.stack)-1].Authenticated() {
		return ErrBoundary
	}
	c.stack = append(c.stack, r)
	return nil
}

// Back pops the current route and returns the newly visible one. At the
// bottom of the stack it stays put.
func (c *Controller) Back() Route {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.stack) > 1 {
		c.stack = c.stack[:len(c.stack)-1]
	}
	return c.stack[len(c.stack)-1]
}

func (c *Controller) resetTo(r Route) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stack = []Route{r}
}

// LoginSucceeded moves to the main screen, discarding the logged-out history.
func (c *Controller) LoginSucceeded() {
	c.resetTo(RouteMain)
}

// RegisterSucceeded shows the email-verification notice. The session is not
// established yet, so this stays on the logged-out side.
func (c *Controller) RegisterSucceeded() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stack = append(c.stack, RouteVerifyEmail)
}

// VerificationAcknowledged returns to login with a fresh stack: the user must
// sign in manually after verifying, and neither the verification notice nor
// the registration form is reachable via back.
func (c *Controller) VerificationAcknowledged() {
	c.resetTo(RouteLogin)
}

// LoggedOut returns to login, discarding the authenticated history.
func (c *Controller) LoggedOut() {
	c.resetTo(RouteLogin)
}

// OnSessionChange is the subscription hook for the session holder: a flip of
// the authenticated flag forces the matching reset.
func (c *Controller) OnSessionChange(authenticated bool) {
	if authenticated {
		c.LoginSucceeded()
	} else {
		c.LoggedOut()
	}
}
