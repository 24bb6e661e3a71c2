package models

import "time"

// TransportType is a named category of transport (flight, bus, train, ...).
type TransportType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Ticket is one departure -> arrival leg of a journey.
// Optional fields are treated as absent when empty.
type Ticket struct {
	ID              int64         `json:"id"`
	Departure       string        `json:"departure"`
	Arrival         string        `json:"arrival"`
	TransportNumber string        `json:"transportNumber,omitempty"`
	Seat            string        `json:"seat,omitempty"`
	Gate            string        `json:"gate,omitempty"`
	LuggageInfo     string        `json:"luggageInfo,omitempty"`
	AdditionalInfo  string        `json:"additionalInfo,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	TransportType   TransportType `json:"transportType"`
}

// TicketUpdate supports PUT-style partial updates via pointer presence.
type TicketUpdate struct {
	Departure         *string
	Arrival           *string
	TransportNumber   *string
	Seat              *string
	Gate              *string
	LuggageInfo       *string
	AdditionalInfo    *string
	TransportTypeName *string
}

// Empty reports whether the update carries no field at all.
func (u TicketUpdate) Empty() bool {
	return u.Departure == nil && u.Arrival == nil && u.TransportNumber == nil &&
		u.Seat == nil && u.Gate == nil && u.LuggageInfo == nil &&
		u.AdditionalInfo == nil && u.TransportTypeName == nil
}
