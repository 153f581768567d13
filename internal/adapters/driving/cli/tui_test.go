package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTUICmd_Exists(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Use == "tui" {
			found = true
			break
		}
	}
	assert.True(t, found, "tui command should be registered")
}

func TestTUICmd_LongDescribesKeys(t *testing.T) {
	assert.Contains(t, tuiCmd.Long, "ctrl+g")
	assert.Contains(t, tuiCmd.Long, "ctrl+f")
}

func TestRunTUI_RequiresBuilder(t *testing.T) {
	testServices(t)
	SetServices(&Services{})

	_, err := execute(t, "tui")

	assert.ErrorIs(t, err, errNoBuilder)
}

func TestRunTUI_RequiresTerminal(t *testing.T) {
	testServices(t)
	old := isTerminal
	isTerminal = func(uintptr) bool { return false }
	t.Cleanup(func() { isTerminal = old })

	_, err := execute(t, "tui")

	assert.ErrorIs(t, err, errNotTerminal)
}

func TestRootCmd_DefaultsToTUI(t *testing.T) {
	testServices(t)
	old := isTerminal
	isTerminal = func(uintptr) bool { return false }
	t.Cleanup(func() { isTerminal = old })

	_, err := execute(t)

	assert.ErrorIs(t, err, errNotTerminal)
}
