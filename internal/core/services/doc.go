// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The form handlers in forms.go are pure functions over domain.Session;
// BuilderService holds the live session and swaps it on success.
//
// Services are pure Go with no CGO or external dependencies.
package services
