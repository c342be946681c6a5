package screens

import "evently/flow"

// Landing is the entry screen. It carries no state and only branches to
// login or register.
type Landing struct{}

func NewLanding() *Landing { return &Landing{} }

func (*Landing) Title() string { return "Welcome to Evently" }

func (*Landing) Tagline() string { return "The smartest professionals" }

// Destinations lists the only routes reachable from here.
func (*Landing) Destinations() []string {
	return []string{flow.RouteLogin, flow.RouteRegister}
}
