package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_StartsAtLanding(t *testing.T) {
	r := NewRouter()
	assert.Equal(t, RouteLanding, r.Current())
	assert.Equal(t, 1, r.Depth())
}

func TestRouter_Navigate(t *testing.T) {
	r := NewRouter()

	require.NoError(t, r.Navigate(RouteLogin))
	assert.Equal(t, RouteLogin, r.Current())
	assert.Equal(t, 2, r.Depth())
}

func TestRouter_NavigateUnknownRoute(t *testing.T) {
	r := NewRouter()

	assert.Error(t, r.Navigate("settings"))
	assert.Error(t, r.NavigateClearing("settings", RouteLogin))
	assert.Equal(t, RouteLanding, r.Current())
}

func TestRouter_NavigateClearingRemovesGate(t *testing.T) {
	r := NewRouter()
	require.NoError(t, r.Navigate(RouteLogin))

	require.NoError(t, r.NavigateClearing(RouteHome, RouteLogin))
	assert.Equal(t, RouteHome, r.Current())

	// Back cannot land on the login gate again.
	require.True(t, r.Back())
	assert.Equal(t, RouteLanding, r.Current())
}

func TestRouter_NavigateClearingWithoutMatchJustPushes(t *testing.T) {
	r := NewRouter()
	require.NoError(t, r.Navigate(RouteLogin))

	require.NoError(t, r.NavigateClearing(RouteHome, RouteRegister))
	assert.Equal(t, RouteHome, r.Current())
	assert.Equal(t, 3, r.Depth())
}

func TestRouter_BackStopsAtRoot(t *testing.T) {
	r := NewRouter()

	assert.False(t, r.Back())
	assert.Equal(t, RouteLanding, r.Current())
}

func TestRouter_LoginRegisterCrossLinksKeepHistory(t *testing.T) {
	r := NewRouter()
	require.NoError(t, r.Navigate(RouteLogin))
	require.NoError(t, r.Navigate(RouteRegister))
	require.NoError(t, r.Navigate(RouteLogin))

	// Admin login clears only back to the most recent login entry.
	require.NoError(t, r.NavigateClearing(RouteAdmin, RouteLogin))
	assert.Equal(t, RouteAdmin, r.Current())

	require.True(t, r.Back())
	assert.Equal(t, RouteRegister, r.Current())
}
