package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionLifecycle(t *testing.T) {
	store := NewSessionStore(time.Minute)

	assert.False(t, store.IsAuthenticated("tok-1"), "unknown token")

	store.Touch("tok-1")
	assert.False(t, store.IsAuthenticated("tok-1"), "touched but not logged in")

	store.Authenticate("tok-1")
	assert.True(t, store.IsAuthenticated("tok-1"))

	store.Invalidate("tok-1")
	assert.False(t, store.IsAuthenticated("tok-1"))
}

func TestTouchDoesNotDowngrade(t *testing.T) {
	store := NewSessionStore(time.Minute)

	store.Authenticate("tok-2")
	store.Touch("tok-2")
	assert.True(t, store.IsAuthenticated("tok-2"), "re-touching must not reset the flag")
}

func TestSessionsAreIndependent(t *testing.T) {
	store := NewSessionStore(time.Minute)

	store.Authenticate("tok-a")
	store.Touch("tok-b")

	assert.True(t, store.IsAuthenticated("tok-a"))
	assert.False(t, store.IsAuthenticated("tok-b"))
}
