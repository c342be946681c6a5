package screens

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evently/flow"
)

func TestRegister_PasswordMismatchMakesNoCall(t *testing.T) {
	fake := newFakeBackend()

	reg := NewRegister(fake.clients())
	reg.Email = "new@example.com"
	reg.Password = "secret1"
	reg.ConfirmPassword = "secret2"

	route, ok := reg.Submit(context.Background())

	assert.False(t, ok)
	assert.Empty(t, route)
	assert.Equal(t, "Passwords do not match!", reg.ErrorMessage)
	assert.Empty(t, fake.callLog())
}

func TestRegister_SuccessRoutesHomeAndWelcomes(t *testing.T) {
	fake := newFakeBackend()

	reg := NewRegister(fake.clients())
	reg.Email = "new@example.com"
	reg.Password = "secret1"
	reg.ConfirmPassword = "secret1"

	route, ok := reg.Submit(context.Background())

	require.True(t, ok)
	assert.Equal(t, flow.RouteHome, route)
	assert.False(t, reg.Loading)

	n := waitNotification(t, fake.notified)
	assert.Equal(t, "Welcome to Evently!", n.Title)
	assert.Equal(t, "Thank you for joining us. Explore exciting events!", n.Body)
	assert.Equal(t, []string{"new@example.com"}, n.ExternalUserIDs)
	assert.Empty(t, n.Segments)

	calls := fake.callLog()
	require.GreaterOrEqual(t, len(calls), 2)
	assert.Equal(t, []string{"SignUp", "CreateUser"}, calls[:2])
}

func TestRegister_SignUpErrorSurfacedVerbatim(t *testing.T) {
	fake := newFakeBackend()
	fake.signUpErr = errors.New("email: The email is invalid or already in use.")

	reg := NewRegister(fake.clients())
	reg.Email = "dup@example.com"
	reg.Password = "secret1"
	reg.ConfirmPassword = "secret1"

	_, ok := reg.Submit(context.Background())

	assert.False(t, ok)
	assert.Equal(t, "email: The email is invalid or already in use.", reg.ErrorMessage)
	assert.Equal(t, []string{"SignUp"}, fake.callLog())
}

func TestRegister_ProfileWriteErrorStaysPut(t *testing.T) {
	fake := newFakeBackend()
	fake.createUserErr = errors.New("store offline")

	reg := NewRegister(fake.clients())
	reg.Email = "new@example.com"
	reg.Password = "secret1"
	reg.ConfirmPassword = "secret1"

	_, ok := reg.Submit(context.Background())

	assert.False(t, ok)
	assert.Equal(t, "store offline", reg.ErrorMessage)
	assert.False(t, reg.Loading)
	assert.Equal(t, []string{"SignUp", "CreateUser"}, fake.callLog())
}
