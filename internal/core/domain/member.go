package domain

import "time"

// Member is a person listed on the staff or leadership pages. Both
// collections share this shape but are stored separately.
type Member struct {
	ID        string    `json:"id"         db:"id"         bson:"_id"`
	Name      string    `json:"name"       db:"name"       bson:"name"`
	Position  string    `json:"position"   db:"position"   bson:"position"`
	Bio       string    `json:"bio"        db:"bio"        bson:"bio"`
	PhotoURL  string    `json:"photo_url"  db:"photo_url"  bson:"photo_url"`
	CreatedAt time.Time `json:"created_at" db:"created_at" bson:"created_at"`
}

func (m *Member) RecordID() string { return m.ID }

func (m *Member) Assign(id string, at time.Time) {
	m.ID = id
	m.CreatedAt = at
}

func (m *Member) Validate() error {
	return required(m.Name, "Name")
}
