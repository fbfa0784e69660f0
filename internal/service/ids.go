package service

import "github.com/google/uuid"

// newID mints a fresh unique id for records created inside services
// (repositories mint ids for their own top-level records).
func newID() string {
	return uuid.NewString()
}
