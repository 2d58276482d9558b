package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouter(t *testing.T) {
	r := NewRouter(ScreenRoleSelect)
	assert.Equal(t, ScreenRoleSelect, r.Current())
	assert.False(t, r.Back(), "the root is never popped")

	r.Push(ScreenLogin)
	r.Push(ScreenLogin)
	assert.Equal(t, 2, r.Depth())

	r.Reset(ScreenDashboard)
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, ScreenDashboard, r.Current())

	r.Push(ScreenClassSetup)
	r.Replace(ScreenActiveClass)
	assert.Equal(t, ScreenActiveClass, r.Current())
	assert.True(t, r.Back())
	assert.Equal(t, ScreenDashboard, r.Current())

	r.Replace(ScreenAnalytics)
	assert.Equal(t, ScreenAnalytics, r.Current())
	assert.Equal(t, 1, r.Depth())
}
