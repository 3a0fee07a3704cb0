package domain

import "time"

// Event is a tournament, meetup or other dated appearance.
type Event struct {
	ID          string     `json:"id"             db:"id"          bson:"_id"`
	Name        string     `json:"name"           db:"name"        bson:"name"`
	Location    string     `json:"location"       db:"location"    bson:"location"`
	Date        *time.Time `json:"date,omitempty" db:"date"        bson:"date,omitempty"`
	Description string     `json:"description"    db:"description" bson:"description"`
	CreatedAt   time.Time  `json:"created_at"     db:"created_at"  bson:"created_at"`
}

func (e *Event) RecordID() string { return e.ID }

func (e *Event) Assign(id string, at time.Time) {
	e.ID = id
	e.CreatedAt = at
}

func (e *Event) Validate() error {
	return required(e.Name, "Event name")
}

// ParseEventDate accepts RFC 3339 timestamps and plain calendar dates.
func ParseEventDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, Invalid("date must be an ISO 8601 date or timestamp")
}
