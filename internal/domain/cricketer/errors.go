package cricketer

import "fmt"

// NotFoundError reports a lookup by name that matched no record.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no player by name %s", e.Name)
}
