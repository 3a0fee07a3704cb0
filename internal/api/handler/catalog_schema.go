package handler

import (
	"strings"

	"github.com/arcadia-esports/cms-api/internal/core/domain"
)

type TeamRequest struct {
	Name        string `json:"name"        validate:"max=200"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url"    validate:"max=2048"`
	Members     string `json:"members"`
	Gender      string `json:"gender"      validate:"omitempty,oneof=mixed male female"`
	GameType    string `json:"game_type"   validate:"max=100"`
	GameLogo    string `json:"game_logo"   validate:"max=2048"`
}

func (r TeamRequest) toDomain() (*domain.Team, error) {
	return &domain.Team{
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
		LogoURL:     r.LogoURL,
		Members:     r.Members,
		Gender:      r.Gender,
		GameType:    strings.TrimSpace(r.GameType),
		GameLogo:    r.GameLogo,
	}, nil
}

type EventRequest struct {
	Name        string `json:"name"     validate:"max=200"`
	Location    string `json:"location" validate:"max=200"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

func (r EventRequest) toDomain() (*domain.Event, error) {
	date, err := domain.ParseEventDate(strings.TrimSpace(r.Date))
	if err != nil {
		return nil, err
	}
	return &domain.Event{
		Name:        strings.TrimSpace(r.Name),
		Location:    r.Location,
		Date:        date,
		Description: r.Description,
	}, nil
}

type MemberRequest struct {
	Name     string `json:"name"      validate:"max=200"`
	Position string `json:"position"  validate:"max=200"`
	Bio      string `json:"bio"`
	PhotoURL string `json:"photo_url" validate:"max=2048"`
}

func (r MemberRequest) toDomain() (*domain.Member, error) {
	return &domain.Member{
		Name:     strings.TrimSpace(r.Name),
		Position: r.Position,
		Bio:      r.Bio,
		PhotoURL: r.PhotoURL,
	}, nil
}

type SponsorRequest struct {
	Name    string `json:"name"     validate:"max=200"`
	LogoURL string `json:"logo_url" validate:"max=2048"`
	Link    string `json:"link"     validate:"omitempty,url"`
}

func (r SponsorRequest) toDomain() (*domain.Sponsor, error) {
	return &domain.Sponsor{
		Name:    strings.TrimSpace(r.Name),
		LogoURL: r.LogoURL,
		Link:    r.Link,
	}, nil
}
