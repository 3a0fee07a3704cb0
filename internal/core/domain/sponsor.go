package domain

import "time"

type Sponsor struct {
	ID        string    `json:"id"         db:"id"         bson:"_id"`
	Name      string    `json:"name"       db:"name"       bson:"name"`
	LogoURL   string    `json:"logo_url"   db:"logo_url"   bson:"logo_url"`
	Link      string    `json:"link"       db:"link"       bson:"link"`
	CreatedAt time.Time `json:"created_at" db:"created_at" bson:"created_at"`
}

func (s *Sponsor) RecordID() string { return s.ID }

func (s *Sponsor) Assign(id string, at time.Time) {
	s.ID = id
	s.CreatedAt = at
}

func (s *Sponsor) Validate() error {
	return required(s.Name, "Sponsor name")
}
