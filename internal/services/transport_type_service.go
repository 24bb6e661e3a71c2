package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"itinerary/internal/domain"
	"itinerary/internal/domain/models"
	"itinerary/internal/utils"
)

// TransportTypeStore is the persistence used by TransportTypeService and TicketService.
type TransportTypeStore interface {
	Create(ctx context.Context, name string) (models.TransportType, error)
	List(ctx context.Context) ([]models.TransportType, error)
	GetByID(ctx context.Context, id int64) (models.TransportType, error)
	GetByName(ctx context.Context, name string) (models.TransportType, error)
}

// TransportTypeService manages the categories that select a rendering rule.
type TransportTypeService struct {
	Repo      TransportTypeStore
	RequestID string
}

func (s TransportTypeService) Create(ctx context.Context, name string) (models.TransportType, error) {
	name = utils.NormalizeSpace(name)
	if name == "" {
		return models.TransportType{}, domain.ValidationError{Field: "name", Msg: "name must not be empty"}
	}
	tt, err := s.Repo.Create(ctx, name)
	if err != nil {
		return models.TransportType{}, err
	}
	utils.LogEvent(s.RequestID, "transport_type", "create", fmt.Sprintf("id=%d name=%s", tt.ID, tt.Name))
	return tt, nil
}

func (s TransportTypeService) List(ctx context.Context) ([]models.TransportType, error) {
	return s.Repo.List(ctx)
}

func (s TransportTypeService) Get(ctx context.Context, id int64) (models.TransportType, error) {
	tt, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return tt, domain.NotFoundError{
			Resource: "transport type",
			Msg:      fmt.Sprintf("TransportType with id %d not found.", id),
			Err:      err,
		}
	}
	return tt, err
}

// resolveTransportType looks a transport type up by its exact stored name.
func resolveTransportType(ctx context.Context, repo TransportTypeStore, name string) (models.TransportType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.TransportType{}, domain.ValidationError{Field: "transportType.name", Msg: "transport type name is required"}
	}
	tt, err := repo.GetByName(ctx, name)
	if errors.Is(err, sql.ErrNoRows) {
		return tt, domain.NotFoundError{
			Resource: "transport type",
			Msg:      fmt.Sprintf("Transport type '%s' not found.", name),
			Err:      err,
		}
	}
	return tt, err
}
