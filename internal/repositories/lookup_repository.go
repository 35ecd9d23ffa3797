package repositories

import (
	"context"
	"database/sql"
	"strings"

	intdb "redbus/internal/db"
	"redbus/internal/domain"
	"redbus/internal/domain/models"
)

const statesQuery = `
	SELECT r.state, s.state_name
	FROM ` + offeringTable + ` r
	JOIN ` + stateTable + ` s ON r.state = s.state
	GROUP BY r.state, s.state_name`

// LookupRepository serves the distinct values behind the cascading dropdowns.
type LookupRepository struct {
	DB *sql.DB
}

// States returns each state code present in redbus once, with its readable name.
func (r LookupRepository) States(ctx context.Context) ([]models.StateOption, error) {
	if r.DB == nil {
		return nil, domain.StorageError{Op: "list states", Unavailable: true}
	}
	rows, err := r.DB.QueryContext(ctx, statesQuery)
	if err != nil {
		return nil, intdb.Wrap("list states", err)
	}
	defer rows.Close()

	out := []models.StateOption{}
	seen := map[string]bool{}
	for rows.Next() {
		var code, name sql.NullString
		if err := rows.Scan(&code, &name); err != nil {
			return out, intdb.Wrap("list states", err)
		}
		c := strings.TrimSpace(code.String)
		if !code.Valid || c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, models.StateOption{Code: code.String, Name: name.String})
	}
	if err := rows.Err(); err != nil {
		return out, intdb.Wrap("list states", err)
	}
	return out, nil
}

// RoutesForState returns the distinct route names offered in state.
func (r LookupRepository) RoutesForState(ctx context.Context, state string) ([]string, error) {
	return r.distinct(ctx, "list routes",
		"SELECT DISTINCT route_name FROM "+offeringTable+" WHERE state = ?", state)
}

// BusNamesForRoute returns the distinct operators running route.
func (r LookupRepository) BusNamesForRoute(ctx context.Context, route string) ([]string, error) {
	return r.distinct(ctx, "list bus names",
		"SELECT DISTINCT bus_name FROM "+offeringTable+" WHERE route_name = ?", route)
}

// BusTypes returns every distinct bus type.
func (r LookupRepository) BusTypes(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "list bus types", "SELECT DISTINCT bus_type FROM "+offeringTable)
}

// distinct scans a single-column result, skipping NULL and blank values
// since the search would never return a row for them.
func (r LookupRepository) distinct(ctx context.Context, op, query string, args ...any) ([]string, error) {
	if r.DB == nil {
		return nil, domain.StorageError{Op: op, Unavailable: true}
	}
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, intdb.Wrap(op, err)
	}
	defer rows.Close()

	out := []string{}
	seen := map[string]bool{}
	for rows.Next() {
		var v sql.NullString
		if err := rows.Scan(&v); err != nil {
			return out, intdb.Wrap(op, err)
		}
		if !v.Valid || strings.TrimSpace(v.String) == "" || seen[v.String] {
			continue
		}
		seen[v.String] = true
		out = append(out, v.String)
	}
	if err := rows.Err(); err != nil {
		return out, intdb.Wrap(op, err)
	}
	return out, nil
}
