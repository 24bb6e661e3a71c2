package services

import (
	"context"
	"database/sql"
	"strings"

	"itinerary/internal/domain/models"
)

type fakeTransportTypes struct {
	types []models.TransportType
}

func (f *fakeTransportTypes) Create(_ context.Context, name string) (models.TransportType, error) {
	tt := models.TransportType{ID: int64(len(f.types) + 1), Name: name}
	f.types = append(f.types, tt)
	return tt, nil
}

func (f *fakeTransportTypes) List(context.Context) ([]models.TransportType, error) {
	return f.types, nil
}

func (f *fakeTransportTypes) GetByID(_ context.Context, id int64) (models.TransportType, error) {
	for _, tt := range f.types {
		if tt.ID == id {
			return tt, nil
		}
	}
	return models.TransportType{}, sql.ErrNoRows
}

func (f *fakeTransportTypes) GetByName(_ context.Context, name string) (models.TransportType, error) {
	for _, tt := range f.types {
		if tt.Name == name {
			return tt, nil
		}
	}
	return models.TransportType{}, sql.ErrNoRows
}

type fakeTickets struct {
	tickets []models.Ticket
	nextID  int64
}

func (f *fakeTickets) Create(_ context.Context, t models.Ticket) (int64, error) {
	f.nextID++
	t.ID = f.nextID
	f.tickets = append(f.tickets, t)
	return t.ID, nil
}

func (f *fakeTickets) List(context.Context) ([]models.Ticket, error) {
	return append([]models.Ticket(nil), f.tickets...), nil
}

func (f *fakeTickets) GetByID(_ context.Context, id int64) (models.Ticket, error) {
	for _, t := range f.tickets {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Ticket{}, sql.ErrNoRows
}

func (f *fakeTickets) Update(_ context.Context, id int64, upd models.TicketUpdate, transportTypeID int64) error {
	for i := range f.tickets {
		t := &f.tickets[i]
		if t.ID != id {
			continue
		}
		set := func(dst *string, v *string) {
			if v != nil {
				*dst = strings.TrimSpace(*v)
			}
		}
		set(&t.Departure, upd.Departure)
		set(&t.Arrival, upd.Arrival)
		set(&t.TransportNumber, upd.TransportNumber)
		set(&t.Seat, upd.Seat)
		set(&t.Gate, upd.Gate)
		set(&t.LuggageInfo, upd.LuggageInfo)
		set(&t.AdditionalInfo, upd.AdditionalInfo)
		if upd.TransportTypeName != nil {
			t.TransportType = models.TransportType{ID: transportTypeID, Name: *upd.TransportTypeName}
		}
	}
	return nil
}

func (f *fakeTickets) Delete(_ context.Context, id int64) (int64, error) {
	for i, t := range f.tickets {
		if t.ID == id {
			f.tickets = append(f.tickets[:i], f.tickets[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeTickets) DeleteAll(context.Context) error {
	f.tickets = nil
	return nil
}

func newFakeService() (TicketService, *fakeTickets) {
	tickets := &fakeTickets{}
	types := &fakeTransportTypes{types: []models.TransportType{
		{ID: 1, Name: "flight"},
		{ID: 2, Name: "bus"},
		{ID: 3, Name: "train"},
		{ID: 4, Name: "tram"},
	}}
	return TicketService{Tickets: tickets, TransportTypes: types}, tickets
}
