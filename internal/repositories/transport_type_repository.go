package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	intconfig "itinerary/internal/config"
	"itinerary/internal/domain"
	"itinerary/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

// mysqlDuplicateEntry is ER_DUP_ENTRY.
const mysqlDuplicateEntry = 1062

type TransportTypeRepository struct {
	DB *sql.DB
}

func (r TransportTypeRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Create inserts a transport type. A duplicate name yields domain.ConflictError.
func (r TransportTypeRepository) Create(ctx context.Context, name string) (models.TransportType, error) {
	res, err := r.db().ExecContext(ctx, `INSERT INTO transport_types (name) VALUES (?)`, name)
	if err != nil {
		if isDuplicateEntry(err) {
			return models.TransportType{}, domain.ConflictError{Resource: "transport type", Msg: "name '" + name + "' already exists", Err: err}
		}
		return models.TransportType{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.TransportType{}, err
	}
	return models.TransportType{ID: id, Name: name}, nil
}

func (r TransportTypeRepository) List(ctx context.Context) ([]models.TransportType, error) {
	rows, err := r.db().QueryContext(ctx, `SELECT id, name FROM transport_types ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.TransportType{}
	for rows.Next() {
		var tt models.TransportType
		if err := rows.Scan(&tt.ID, &tt.Name); err != nil {
			return out, err
		}
		out = append(out, tt)
	}
	return out, rows.Err()
}

// GetByID returns sql.ErrNoRows when the id is unknown.
func (r TransportTypeRepository) GetByID(ctx context.Context, id int64) (models.TransportType, error) {
	var tt models.TransportType
	err := r.db().QueryRowContext(ctx, `SELECT id, name FROM transport_types WHERE id = ? LIMIT 1`, id).
		Scan(&tt.ID, &tt.Name)
	return tt, err
}

// GetByName returns sql.ErrNoRows when no transport type has that exact name.
func (r TransportTypeRepository) GetByName(ctx context.Context, name string) (models.TransportType, error) {
	var tt models.TransportType
	err := r.db().QueryRowContext(ctx, `SELECT id, name FROM transport_types WHERE name = ? LIMIT 1`, strings.TrimSpace(name)).
		Scan(&tt.ID, &tt.Name)
	return tt, err
}

func isDuplicateEntry(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlDuplicateEntry
}
