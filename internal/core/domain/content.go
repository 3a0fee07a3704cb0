package domain

import (
	"strings"
	"time"
)

// Record is implemented by every entity managed through the generic catalog
// service (teams, events, staff, leadership, sponsors).
type Record interface {
	RecordID() string
	Assign(id string, at time.Time)
	Validate() error
}

func required(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return Invalid(field + " is required")
	}
	return nil
}
