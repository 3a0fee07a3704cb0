package domain

import "time"

const (
	GenderMixed  = "mixed"
	GenderMale   = "male"
	GenderFemale = "female"
)

// Team is a competitive roster fielded by the organization.
type Team struct {
	ID          string    `json:"id"          db:"id"          bson:"_id"`
	Name        string    `json:"name"        db:"name"        bson:"name"`
	Description string    `json:"description" db:"description" bson:"description"`
	LogoURL     string    `json:"logo_url"    db:"logo_url"    bson:"logo_url"`
	Members     string    `json:"members"     db:"members"     bson:"members"`
	Gender      string    `json:"gender"      db:"gender"      bson:"gender"`
	GameType    string    `json:"game_type"   db:"game_type"   bson:"game_type"`
	GameLogo    string    `json:"game_logo"   db:"game_logo"   bson:"game_logo"`
	CreatedAt   time.Time `json:"created_at"  db:"created_at"  bson:"created_at"`
}

func (t *Team) RecordID() string { return t.ID }

func (t *Team) Assign(id string, at time.Time) {
	t.ID = id
	t.CreatedAt = at
}

func (t *Team) Validate() error {
	if err := required(t.Name, "Team name"); err != nil {
		return err
	}
	switch t.Gender {
	case "":
		t.Gender = GenderMixed
	case GenderMixed, GenderMale, GenderFemale:
	default:
		return Invalid("gender must be one of: mixed, male, female")
	}
	return nil
}
