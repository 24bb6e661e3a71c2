package repositories

import (
	"context"
	"database/sql"
	"strings"

	intconfig "itinerary/internal/config"
	intdb "itinerary/internal/db"
	"itinerary/internal/domain/models"
)

type TicketRepository struct {
	DB *sql.DB
}

func (r TicketRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const ticketSelect = `
	SELECT
		t.id,
		t.departure,
		t.arrival,
		COALESCE(t.transport_number,''),
		COALESCE(t.seat,''),
		COALESCE(t.gate,''),
		COALESCE(t.luggage_info,''),
		COALESCE(t.additional_info,''),
		t.created_at,
		COALESCE(tt.id,0),
		COALESCE(tt.name,'')
	FROM tickets t
	LEFT JOIN transport_types tt ON tt.id = t.transport_type_id
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTicket(s rowScanner) (models.Ticket, error) {
	var t models.Ticket
	err := s.Scan(
		&t.ID,
		&t.Departure,
		&t.Arrival,
		&t.TransportNumber,
		&t.Seat,
		&t.Gate,
		&t.LuggageInfo,
		&t.AdditionalInfo,
		&t.CreatedAt,
		&t.TransportType.ID,
		&t.TransportType.Name,
	)
	return t, err
}

// Create inserts t and returns the new id. t.TransportType.ID must already be resolved.
func (r TicketRepository) Create(ctx context.Context, t models.Ticket) (int64, error) {
	res, err := r.db().ExecContext(ctx, `
		INSERT INTO tickets
			(departure, arrival, transport_number, seat, gate, luggage_info, additional_info, transport_type_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		t.Departure,
		t.Arrival,
		intdb.NullIfEmpty(t.TransportNumber),
		intdb.NullIfEmpty(t.Seat),
		intdb.NullIfEmpty(t.Gate),
		intdb.NullIfEmpty(t.LuggageInfo),
		intdb.NullIfEmpty(t.AdditionalInfo),
		t.TransportType.ID,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// List returns every ticket in insertion order, which is not travel order.
func (r TicketRepository) List(ctx context.Context) ([]models.Ticket, error) {
	rows, err := r.db().QueryContext(ctx, ticketSelect+` ORDER BY t.id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Ticket{}
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return out, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// GetByID returns sql.ErrNoRows when the id is unknown.
func (r TicketRepository) GetByID(ctx context.Context, id int64) (models.Ticket, error) {
	return scanTicket(r.db().QueryRowContext(ctx, ticketSelect+` WHERE t.id = ? LIMIT 1`, id))
}

// Update applies only the fields present in upd. transportTypeID is used when
// upd.TransportTypeName is set and must already be resolved by the caller.
func (r TicketRepository) Update(ctx context.Context, id int64, upd models.TicketUpdate, transportTypeID int64) error {
	sets := []string{}
	args := []any{}
	addSet := func(col string, val *string, required bool) {
		if val == nil {
			return
		}
		sets = append(sets, col+" = ?")
		if required {
			args = append(args, strings.TrimSpace(*val))
			return
		}
		args = append(args, intdb.NullIfEmpty(*val))
	}

	addSet("departure", upd.Departure, true)
	addSet("arrival", upd.Arrival, true)
	addSet("transport_number", upd.TransportNumber, false)
	addSet("seat", upd.Seat, false)
	addSet("gate", upd.Gate, false)
	addSet("luggage_info", upd.LuggageInfo, false)
	addSet("additional_info", upd.AdditionalInfo, false)
	if upd.TransportTypeName != nil {
		sets = append(sets, "transport_type_id = ?")
		args = append(args, transportTypeID)
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	_, err := r.db().ExecContext(ctx, `UPDATE tickets SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	return err
}

// Delete removes one ticket and reports how many rows were affected.
func (r TicketRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db().ExecContext(ctx, `DELETE FROM tickets WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r TicketRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db().ExecContext(ctx, `DELETE FROM tickets`)
	return err
}
