package db

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"
)

//go:embed schema.sql
var schemaSQL string

// Tables lists the tables EnsureSchema creates.
var Tables = []string{"transport_types", "tickets"}

// DefaultTransportTypes are seeded so the built-in rendering rules are usable right away.
var DefaultTransportTypes = []string{"flight", "bus", "train", "tram"}

// EnsureSchema creates missing tables and seeds the default transport types.
func EnsureSchema(ctx context.Context, conn *sql.DB) error {
	for _, stmt := range schemaStatements() {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	for _, name := range DefaultTransportTypes {
		if _, err := conn.ExecContext(ctx, `INSERT IGNORE INTO transport_types (name) VALUES (?)`, name); err != nil {
			return fmt.Errorf("seed transport type %s: %w", name, err)
		}
	}
	return nil
}

func schemaStatements() []string {
	out := []string{}
	for _, stmt := range strings.Split(schemaSQL, ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}
