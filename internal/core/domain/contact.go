package domain

import "time"

// ContactMessage is a note left through the public contact form.
type ContactMessage struct {
	ID       string    `json:"id"        db:"id"        bson:"_id"`
	Name     string    `json:"name"      db:"name"      bson:"name"`
	Email    string    `json:"email"     db:"email"     bson:"email"`
	Subject  string    `json:"subject"   db:"subject"   bson:"subject"`
	Message  string    `json:"message"   db:"message"   bson:"message"`
	DateSent time.Time `json:"date_sent" db:"date_sent" bson:"date_sent"`
}

func (m *ContactMessage) Validate() error {
	if required(m.Name, "") != nil || required(m.Email, "") != nil || required(m.Message, "") != nil {
		return Invalid("Name, email, and message are required")
	}
	return nil
}
