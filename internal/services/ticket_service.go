package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"itinerary/internal/domain"
	"itinerary/internal/domain/models"
	"itinerary/internal/itinerary"
	"itinerary/internal/utils"
)

// EmptyItineraryMessage replaces the rendering when no tickets are stored.
const EmptyItineraryMessage = "No travel itinerary found. Please add tickets to generate a route."

// TicketStore is the persistence used by TicketService.
type TicketStore interface {
	Create(ctx context.Context, t models.Ticket) (int64, error)
	List(ctx context.Context) ([]models.Ticket, error)
	GetByID(ctx context.Context, id int64) (models.Ticket, error)
	Update(ctx context.Context, id int64, upd models.TicketUpdate, transportTypeID int64) error
	Delete(ctx context.Context, id int64) (int64, error)
	DeleteAll(ctx context.Context) error
}

// TicketService handles ticket CRUD and turns the stored tickets into an itinerary.
type TicketService struct {
	Tickets        TicketStore
	TransportTypes TransportTypeStore
	Reconstructor  itinerary.Reconstructor
	RequestID      string
}

func (s TicketService) Create(ctx context.Context, t models.Ticket) (models.Ticket, error) {
	t.Departure = strings.TrimSpace(t.Departure)
	t.Arrival = strings.TrimSpace(t.Arrival)
	if t.Departure == "" {
		return models.Ticket{}, domain.ValidationError{Field: "departure", Msg: "departure must not be empty"}
	}
	if t.Arrival == "" {
		return models.Ticket{}, domain.ValidationError{Field: "arrival", Msg: "arrival must not be empty"}
	}

	tt, err := s.TransportTypes.GetByName(ctx, strings.TrimSpace(t.TransportType.Name))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Ticket{}, domain.NotFoundError{Resource: "transport type", Msg: "Transport type not found", Err: err}
	}
	if err != nil {
		return models.Ticket{}, err
	}
	t.TransportType = tt

	id, err := s.Tickets.Create(ctx, t)
	if err != nil {
		return models.Ticket{}, err
	}
	utils.LogEvent(s.RequestID, "ticket", "create", fmt.Sprintf("ticket_id=%d transport_type=%s", id, tt.Name))
	return s.Get(ctx, id)
}

func (s TicketService) List(ctx context.Context) ([]models.Ticket, error) {
	return s.Tickets.List(ctx)
}

func (s TicketService) Get(ctx context.Context, id int64) (models.Ticket, error) {
	t, err := s.Tickets.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return t, ticketNotFound(id, err)
	}
	return t, err
}

// Update changes only the fields present in upd. A new transport type is
// resolved by name before anything is written.
func (s TicketService) Update(ctx context.Context, id int64, upd models.TicketUpdate) (models.Ticket, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return models.Ticket{}, err
	}

	if upd.Departure != nil && strings.TrimSpace(*upd.Departure) == "" {
		return models.Ticket{}, domain.ValidationError{Field: "departure", Msg: "departure must not be empty"}
	}
	if upd.Arrival != nil && strings.TrimSpace(*upd.Arrival) == "" {
		return models.Ticket{}, domain.ValidationError{Field: "arrival", Msg: "arrival must not be empty"}
	}

	var transportTypeID int64
	if upd.TransportTypeName != nil {
		tt, err := resolveTransportType(ctx, s.TransportTypes, *upd.TransportTypeName)
		if err != nil {
			return models.Ticket{}, err
		}
		transportTypeID = tt.ID
	}

	if err := s.Tickets.Update(ctx, id, upd, transportTypeID); err != nil {
		return models.Ticket{}, err
	}
	utils.LogEvent(s.RequestID, "ticket", "update", fmt.Sprintf("ticket_id=%d", id))

	updated, err := s.Tickets.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return updated, domain.NotFoundError{Resource: "ticket", Msg: fmt.Sprintf("Ticket with ID %d not found after update.", id), Err: err}
	}
	return updated, err
}

func (s TicketService) Delete(ctx context.Context, id int64) error {
	affected, err := s.Tickets.Delete(ctx, id)
	if err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "ticket", "delete", fmt.Sprintf("ticket_id=%d affected=%d", id, affected))
	return nil
}

func (s TicketService) DeleteAll(ctx context.Context) error {
	if err := s.Tickets.DeleteAll(ctx); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "ticket", "delete_all", "all tickets removed")
	return nil
}

// OrderedLines loads every ticket, chains them and renders the numbered
// instructions. It returns nil lines when there are no tickets.
func (s TicketService) OrderedLines(ctx context.Context) ([]string, error) {
	tickets, err := s.Tickets.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(tickets) == 0 {
		return nil, nil
	}

	ordered, err := s.Reconstructor.Reconstruct(tickets)
	if err != nil {
		utils.LogError(s.RequestID, "itinerary", "reconstruct", err)
		return nil, domain.ValidationError{Msg: err.Error(), Err: err}
	}
	if len(ordered) < len(tickets) {
		utils.LogEvent(s.RequestID, "itinerary", "reconstruct",
			fmt.Sprintf("dropped=%d unreachable or shadowed tickets", len(tickets)-len(ordered)))
	}
	return itinerary.Render(ordered), nil
}

// OrderedItinerary is OrderedLines joined with newlines, or
// EmptyItineraryMessage when no tickets are stored.
func (s TicketService) OrderedItinerary(ctx context.Context) (string, error) {
	lines, err := s.OrderedLines(ctx)
	if err != nil {
		return "", err
	}
	if lines == nil {
		return EmptyItineraryMessage, nil
	}
	return strings.Join(lines, "\n"), nil
}

func ticketNotFound(id int64, err error) error {
	return domain.NotFoundError{Resource: "ticket", Msg: fmt.Sprintf("Ticket with id %d not found.", id), Err: err}
}
