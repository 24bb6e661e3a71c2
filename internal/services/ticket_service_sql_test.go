package services

import (
	"context"
	"testing"
	"time"

	"itinerary/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestTicketServiceOrderedItineraryFromMySQL(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	cols := []string{"id", "departure", "arrival", "transport_number", "seat", "gate", "luggage_info", "additional_info", "created_at", "tt_id", "tt_name"}
	mock.ExpectQuery("FROM tickets t").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, "Innsbruck Hbf", "Innsbruck Airport", "S5", "", "", "", "", now, 4, "Tram").
			AddRow(2, "St. Anton am Arlberg Bahnhof", "Innsbruck Hbf", "RJX 765", "17C", "", "", "Platform 3", now, 3, "train").
			AddRow(3, "Innsbruck Airport", "Venice Airport", "AA904", "", "", "", "", now, 5, "Hovercraft"))

	svc := TicketService{
		Tickets:        repositories.TicketRepository{DB: db},
		TransportTypes: repositories.TransportTypeRepository{DB: db},
	}
	lines, err := svc.OrderedLines(context.Background())
	if err != nil {
		t.Fatalf("OrderedLines returned error: %v", err)
	}

	want := []string{
		"0. Start.",
		"1. Board the train RJX 765, Platform 3 from St. Anton am Arlberg Bahnhof to Innsbruck Hbf. Seat number 17C.",
		"2. Board the tram S5 from Innsbruck Hbf to Innsbruck Airport.",
		"3. Board Hovercraft from Innsbruck Airport to Venice Airport.",
		"4. Last destination reached.",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
