package domain

import "time"

// ApplicationStatus tracks a hiring application through review.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationReviewed ApplicationStatus = "reviewed"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationReviewed, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

// Application is a hiring application submitted from the public site.
type Application struct {
	ID            string            `json:"id"             db:"id"             bson:"_id"`
	Name          string            `json:"name"           db:"name"           bson:"name"`
	Email         string            `json:"email"          db:"email"          bson:"email"`
	CVURL         string            `json:"cv_url"         db:"cv_url"         bson:"cv_url"`
	Message       string            `json:"message"        db:"message"        bson:"message"`
	Status        ApplicationStatus `json:"status"         db:"status"         bson:"status"`
	DateSubmitted time.Time         `json:"date_submitted" db:"date_submitted" bson:"date_submitted"`
}

func (a *Application) Validate() error {
	if err := required(a.Name, "Name"); err != nil {
		return Invalid("Name and email are required")
	}
	if err := required(a.Email, "Email"); err != nil {
		return Invalid("Name and email are required")
	}
	return nil
}
