package config

import "fmt"

// Error represents a configuration loading or validation failure.
type Error struct {
	reason string
}

func (e Error) Error() string {
	return fmt.Sprintf("config: %s", e.reason)
}
