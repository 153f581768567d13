// Package memory provides in-memory implementations of driven port interfaces.
package memory
