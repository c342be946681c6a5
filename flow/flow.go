package flow

import "fmt"

// Route names. These are the only five destinations in the app.
const (
	RouteLanding  = "landing"
	RouteLogin    = "login"
	RouteRegister = "register"
	RouteHome     = "home"
	RouteAdmin    = "admin"
)

// Router is a named-route navigator with a back stack. The stack's last
// entry is the active screen.
type Router struct {
	known map[string]struct{}
	stack []string
}

// NewRouter starts at the landing screen.
func NewRouter() *Router {
	known := make(map[string]struct{})
	for _, r := range []string{RouteLanding, RouteLogin, RouteRegister, RouteHome, RouteAdmin} {
		known[r] = struct{}{}
	}
	return &Router{
		known: known,
		stack: []string{RouteLanding},
	}
}

// Current returns the active route.
func (r *Router) Current() string {
	return r.stack[len(r.stack)-1]
}

// Navigate pushes a destination onto the back stack.
func (r *Router) Navigate(route string) error {
	if _, ok := r.known[route]; !ok {
		return fmt.Errorf("navigate: unknown route %q", route)
	}
	r.stack = append(r.stack, route)
	return nil
}

// NavigateClearing pushes a destination after popping history up to and
// including popUpTo. Successful login/register uses this so back navigation
// cannot return to an authenticated gate after passing it.
func (r *Router) NavigateClearing(route, popUpTo string) error {
	if _, ok := r.known[route]; !ok {
		return fmt.Errorf("navigateClearing: unknown route %q", route)
	}
	for i := len(r.stack) - 1; i >= 0; i-- {
		if r.stack[i] == popUpTo {
			r.stack = r.stack[:i]
			break
		}
	}
	r.stack = append(r.stack, route)
	return nil
}

// Back pops the active screen. It reports false at the root of the stack.
func (r *Router) Back() bool {
	if len(r.stack) <= 1 {
		return false
	}
	r.stack = r.stack[:len(r.stack)-1]
	return true
}

// Depth returns the back stack size.
func (r *Router) Depth() int {
	return len(r.stack)
}
