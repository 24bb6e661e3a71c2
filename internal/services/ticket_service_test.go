package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"itinerary/internal/domain"
	"itinerary/internal/domain/models"
	"itinerary/internal/itinerary"
)

func strPtr(s string) *string { return &s }

func TestTicketServiceOrderedItineraryEmpty(t *testing.T) {
	svc, _ := newFakeService()

	got, err := svc.OrderedItinerary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != EmptyItineraryMessage {
		t.Fatalf("got %q, want empty message", got)
	}
}

func TestTicketServiceOrderedItinerary(t *testing.T) {
	svc, _ := newFakeService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, models.Ticket{
		Departure: "B", Arrival: "C", AdditionalInfo: "Boarding at stop 5",
		TransportType: models.TransportType{Name: "bus"},
	}); err != nil {
		t.Fatalf("create bus ticket: %v", err)
	}
	if _, err := svc.Create(ctx, models.Ticket{
		Departure: " A ", Arrival: "B", TransportNumber: "123", Gate: "G1", Seat: "4A",
		LuggageInfo: "Drop bag at counter", TransportType: models.TransportType{Name: "flight"},
	}); err != nil {
		t.Fatalf("create flight ticket: %v", err)
	}

	got, err := svc.OrderedItinerary(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := strings.Join([]string{
		"0. Start.",
		"1. From A, board the flight 123 to B from gate G1, seat 4A. Drop bag at counter.",
		"2. Board the airport bus from B to C. Boarding at stop 5.",
		"3. Last destination reached.",
	}, "\n")
	if got != want {
		t.Fatalf("itinerary mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestTicketServiceOrderedItineraryLoop(t *testing.T) {
	svc, _ := newFakeService()
	ctx := context.Background()
	for _, pair := range [][2]string{{"A", "B"}, {"B", "A"}} {
		if _, err := svc.Create(ctx, models.Ticket{Departure: pair[0], Arrival: pair[1], TransportType: models.TransportType{Name: "bus"}}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	_, err := svc.OrderedItinerary(ctx)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	var noStart itinerary.NoStartingPointError
	if !errors.As(err, &noStart) {
		t.Fatalf("expected wrapped NoStartingPointError, got %v", err)
	}
}

func TestTicketServiceStrictRejectsAmbiguousStart(t *testing.T) {
	svc, _ := newFakeService()
	svc.Reconstructor = itinerary.Reconstructor{Strict: true}
	ctx := context.Background()
	for _, pair := range [][2]string{{"A", "B"}, {"X", "Y"}} {
		if _, err := svc.Create(ctx, models.Ticket{Departure: pair[0], Arrival: pair[1], TransportType: models.TransportType{Name: "bus"}}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	_, err := svc.OrderedLines(ctx)
	var ambiguous itinerary.AmbiguousStartError
	if !errors.As(err, &ambiguous) {
		t.Fatalf("expected AmbiguousStartError, got %v", err)
	}
}

func TestTicketServiceCreateUnknownTransportType(t *testing.T) {
	svc, _ := newFakeService()

	_, err := svc.Create(context.Background(), models.Ticket{
		Departure: "A", Arrival: "B", TransportType: models.TransportType{Name: "zeppelin"},
	})
	if !domain.IsNotFound(err) || err.Error() != "Transport type not found" {
		t.Fatalf("expected transport type not found, got %v", err)
	}
}

func TestTicketServiceCreateRequiresPlaces(t *testing.T) {
	svc, _ := newFakeService()

	_, err := svc.Create(context.Background(), models.Ticket{Departure: " ", Arrival: "B", TransportType: models.TransportType{Name: "bus"}})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTicketServiceGetMissing(t *testing.T) {
	svc, _ := newFakeService()

	_, err := svc.Get(context.Background(), 99)
	if !domain.IsNotFound(err) || err.Error() != "Ticket with id 99 not found." {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestTicketServiceUpdate(t *testing.T) {
	svc, _ := newFakeService()
	ctx := context.Background()
	created, err := svc.Create(ctx, models.Ticket{Departure: "A", Arrival: "B", TransportType: models.TransportType{Name: "bus"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(ctx, created.ID, models.TicketUpdate{
		Arrival:           strPtr("C"),
		TransportTypeName: strPtr("train"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Arrival != "C" || updated.Departure != "A" {
		t.Fatalf("unexpected places %+v", updated)
	}
	if updated.TransportType.ID != 3 || updated.TransportType.Name != "train" {
		t.Fatalf("transport type not updated: %+v", updated.TransportType)
	}
}

func TestTicketServiceUpdateErrors(t *testing.T) {
	svc, _ := newFakeService()
	ctx := context.Background()
	created, err := svc.Create(ctx, models.Ticket{Departure: "A", Arrival: "B", TransportType: models.TransportType{Name: "bus"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Update(ctx, 404, models.TicketUpdate{Arrival: strPtr("C")}); !domain.IsNotFound(err) {
		t.Fatalf("expected not found for missing ticket, got %v", err)
	}
	_, err = svc.Update(ctx, created.ID, models.TicketUpdate{TransportTypeName: strPtr("ferry")})
	if !domain.IsNotFound(err) || err.Error() != "Transport type 'ferry' not found." {
		t.Fatalf("expected missing transport type, got %v", err)
	}
	if _, err := svc.Update(ctx, created.ID, models.TicketUpdate{Departure: strPtr("")}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTicketServiceDelete(t *testing.T) {
	svc, store := newFakeService()
	ctx := context.Background()
	for _, pair := range [][2]string{{"A", "B"}, {"B", "C"}} {
		if _, err := svc.Create(ctx, models.Ticket{Departure: pair[0], Arrival: pair[1], TransportType: models.TransportType{Name: "tram"}}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	if err := svc.Delete(ctx, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(store.tickets) != 1 {
		t.Fatalf("expected 1 ticket left, got %d", len(store.tickets))
	}
	if err := svc.DeleteAll(ctx); err != nil {
		t.Fatalf("delete all: %v", err)
	}
	if len(store.tickets) != 0 {
		t.Fatalf("expected no tickets left, got %d", len(store.tickets))
	}
}
