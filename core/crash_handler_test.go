package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuard_PassesThroughResult(t *testing.T) {
	want := errors.New("boom")
	assert.ErrorIs(t, Guard(func() error { return want })(), want)
	assert.NoError(t, Guard(func() error { return nil })())
}

func TestHandleCrash_IgnoresNil(t *testing.T) {
	called := false
	SetCleanup(func() { called = true })
	defer SetCleanup(nil)

	HandleCrash(nil)
	assert.False(t, called)
}
