package screens

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"evently/flow"
)

func TestLanding(t *testing.T) {
	landing := NewLanding()

	assert.Equal(t, "Welcome to Evently", landing.Title())
	assert.Equal(t, "The smartest professionals", landing.Tagline())
	assert.Equal(t, []string{flow.RouteLogin, flow.RouteRegister}, landing.Destinations())
}
