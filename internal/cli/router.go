package cli

import (
	"strings"

	"github.com/alexanderramin/checklist/internal/notify"
)

// RouteName is one of the screens the TUI can show.
type RouteName int

const (
	RouteLogin RouteName = iota
	RouteRegister
	RouteDashboard
	RouteChecklist
)

// Route is a parsed TUI location.
type Route struct {
	Name        RouteName
	ChecklistID string
}

// ParseRoute maps a path onto a Route. Unknown paths, including a
// checklist path without an id, fall back to login.
func ParseRoute(path string) Route {
	p := strings.Trim(strings.TrimSpace(path), "/")
	switch {
	case p == "login":
		return Route{Name: RouteLogin}
	case p == "register":
		return Route{Name: RouteRegister}
	case p == "dashboard":
		return Route{Name: RouteDashboard}
	case strings.HasPrefix(p, "checklist/"):
		id := strings.TrimPrefix(p, "checklist/")
		if id != "" && !strings.Contains(id, "/") {
			return Route{Name: RouteChecklist, ChecklistID: id}
		}
	}
	return Route{Name: RouteLogin}
}

// Path renders the route back to its path form.
func (r Route) Path() string {
	switch r.Name {
	case RouteRegister:
		return "/register"
	case RouteDashboard:
		return "/dashboard"
	case RouteChecklist:
		return "/checklist/" + r.ChecklistID
	default:
		return "/login"
	}
}

// private reports whether the route needs a session.
func (r Route) private() bool {
	return r.Name == RouteDashboard || r.Name == RouteChecklist
}

// guard applies the route guards. Private routes without a session go to
// login with an error notification; login and register with a session go
// to the dashboard. note is nil when nothing needs to be shown.
func guard(r Route, loggedIn bool, cat *notify.Catalog) (Route, *notify.Notification) {
	switch {
	case r.private() && !loggedIn:
		n := cat.Error(notify.SessionRequired)
		return Route{Name: RouteLogin}, &n
	case !r.private() && loggedIn:
		return Route{Name: RouteDashboard}, nil
	}
	return r, nil
}
