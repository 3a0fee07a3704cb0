package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/arcadia-esports/cms-api/internal/core/domain"
)

type stubTeamService struct {
	created   *domain.Team
	updatedID string
	deleteErr error
	gameTypes []string
}

func (s *stubTeamService) List(context.Context) ([]domain.Team, error) {
	return []domain.Team{{ID: "t-1", Name: "Valorant Main"}}, nil
}

func (s *stubTeamService) Get(_ context.Context, id string) (*domain.Team, error) {
	if id != "t-1" {
		return nil, domain.NotFound("Team")
	}
	return &domain.Team{ID: id, Name: "Valorant Main"}, nil
}

func (s *stubTeamService) Create(_ context.Context, t *domain.Team) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	s.created = t
	return "t-2", nil
}

func (s *stubTeamService) Update(_ context.Context, id string, t *domain.Team) error {
	s.updatedID = id
	return nil
}

func (s *stubTeamService) Delete(context.Context, string) error { return s.deleteErr }

func (s *stubTeamService) GameTypes(context.Context) ([]string, error) { return s.gameTypes, nil }

func TestCatalogHandler_Create(t *testing.T) {
	svc := &stubTeamService{}
	h := NewTeamHandler(svc)

	c, rec := jsonContext(newTestEcho(), http.MethodPost, "/api/teams",
		`{"name":"  Apex Squad ","game_type":"Apex Legends","gender":"female"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	resp := decodeBody(t, rec)
	if resp["message"] != "Team created successfully" || resp["id"] != "t-2" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if svc.created.Name != "Apex Squad" || svc.created.Gender != domain.GenderFemale {
		t.Fatalf("unexpected team passed to service: %+v", svc.created)
	}
}

func TestCatalogHandler_Create_RejectsUnknownGender(t *testing.T) {
	h := NewTeamHandler(&stubTeamService{})

	c, _ := jsonContext(newTestEcho(), http.MethodPost, "/api/teams", `{"name":"X","gender":"robots"}`)
	if err := h.Create(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCatalogHandler_Create_MissingName(t *testing.T) {
	h := NewTeamHandler(&stubTeamService{})

	c, _ := jsonContext(newTestEcho(), http.MethodPost, "/api/teams", `{"description":"no name"}`)
	err := h.Create(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Message != "Team name is required" {
		t.Fatalf("expected name validation error, got %v", err)
	}
}

func TestCatalogHandler_Get_NotFound(t *testing.T) {
	h := NewTeamHandler(&stubTeamService{})

	c, _ := jsonContext(newTestEcho(), http.MethodGet, "/api/teams/nope", "")
	c.SetParamNames("id")
	c.SetParamValues("nope")
	err := h.Get(c)
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) || nf.Error() != "Team not found" {
		t.Fatalf("expected Team not found, got %v", err)
	}
}

func TestCatalogHandler_UpdateAndDelete(t *testing.T) {
	svc := &stubTeamService{}
	h := NewTeamHandler(svc)

	c, rec := jsonContext(newTestEcho(), http.MethodPut, "/api/teams/t-1", `{"name":"Renamed"}`)
	c.SetParamNames("id")
	c.SetParamValues("t-1")
	if err := h.Update(c); err != nil {
		t.Fatalf("update: %v", err)
	}
	if svc.updatedID != "t-1" {
		t.Fatalf("expected update for t-1, got %q", svc.updatedID)
	}
	if resp := decodeBody(t, rec); resp["message"] != "Team updated successfully" {
		t.Fatalf("unexpected payload: %+v", resp)
	}

	c, rec = jsonContext(newTestEcho(), http.MethodDelete, "/api/teams/t-1", "")
	c.SetParamNames("id")
	c.SetParamValues("t-1")
	if err := h.Delete(c); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if resp := decodeBody(t, rec); resp["message"] != "Team deleted successfully" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestCatalogHandler_EventDate(t *testing.T) {
	svc := &stubEventService{}
	h := NewCatalogHandler[domain.Event, EventRequest](svc, "events", "Event")

	c, _ := jsonContext(newTestEcho(), http.MethodPost, "/api/events", `{"name":"LAN Finals","date":"2026-11-20"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if svc.created.Date == nil || svc.created.Date.Day() != 20 {
		t.Fatalf("expected parsed date, got %+v", svc.created.Date)
	}

	c, _ = jsonContext(newTestEcho(), http.MethodPost, "/api/events", `{"name":"LAN Finals","date":"next friday"}`)
	if err := h.Create(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for bad date, got %v", err)
	}
}

func TestTeamHandler_GameTypes(t *testing.T) {
	h := NewTeamHandler(&stubTeamService{gameTypes: []string{"Apex Legends", "Valorant"}})

	c, rec := jsonContext(newTestEcho(), http.MethodGet, "/api/teams/game-types", "")
	if err := h.GameTypes(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Body.String() != "[\"Apex Legends\",\"Valorant\"]\n" {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}

type stubEventService struct {
	created *domain.Event
}

func (s *stubEventService) List(context.Context) ([]domain.Event, error) { return nil, nil }

func (s *stubEventService) Get(context.Context, string) (*domain.Event, error) { return nil, nil }

func (s *stubEventService) Create(_ context.Context, e *domain.Event) (string, error) {
	s.created = e
	return "e-1", nil
}

func (s *stubEventService) Update(context.Context, string, *domain.Event) error { return nil }

func (s *stubEventService) Delete(context.Context, string) error { return nil }
