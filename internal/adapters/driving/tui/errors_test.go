package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	assert.NotEqual(t, ErrMissingBuilderService.Error(), ErrInvalidPorts.Error())
}

func TestErrMissingBuilderService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingBuilderService.Error(), "builder service")
}

func TestErrInvalidPorts_Message(t *testing.T) {
	assert.Contains(t, ErrInvalidPorts.Error(), "invalid ports")
}
