package repositories

import (
	"context"
	"database/sql"
	"strings"

	intdb "redbus/internal/db"
	"redbus/internal/domain"
	"redbus/internal/domain/models"
	"redbus/internal/utils"
)

// OfferingRows is the raw outcome of a search before display formatting.
type OfferingRows struct {
	Query         string
	Args          []any
	Rows          []models.RouteOffering
	HasSeatColumn bool
}

// OfferingRepository reads route offerings from the redbus table.
type OfferingRepository struct {
	DB *sql.DB
}

// Search runs the composed filter query and scans every returned row.
// Time columns keep their raw TIME text.
func (r OfferingRepository) Search(ctx context.Context, c models.FilterCriteria) (OfferingRows, error) {
	query, args := BuildOfferingQuery(c)
	out := OfferingRows{Query: query, Args: args, Rows: []models.RouteOffering{}}
	if r.DB == nil {
		return out, domain.StorageError{Op: "search offerings", Unavailable: true}
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return out, intdb.Wrap("search offerings", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return out, intdb.Wrap("search offerings", err)
	}
	for _, col := range cols {
		if strings.EqualFold(col, "seats_available") {
			out.HasSeatColumn = true
		}
	}

	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return out, intdb.Wrap("scan offering", err)
		}
		out.Rows = append(out.Rows, offeringFromColumns(cols, vals))
	}
	if err := rows.Err(); err != nil {
		return out, intdb.Wrap("search offerings", err)
	}
	return out, nil
}

// Count returns the number of rows in the offering table.
func (r OfferingRepository) Count(ctx context.Context) (int64, error) {
	if r.DB == nil {
		return 0, domain.StorageError{Op: "count offerings", Unavailable: true}
	}
	var n int64
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+offeringTable).Scan(&n); err != nil {
		return 0, intdb.Wrap("count offerings", err)
	}
	return n, nil
}

// offeringFromColumns maps one scanned row by column name; unknown columns are ignored.
func offeringFromColumns(cols []string, vals []any) models.RouteOffering {
	var o models.RouteOffering
	for i, col := range cols {
		v := vals[i]
		switch strings.ToLower(col) {
		case "state":
			o.State = intdb.AsString(v)
		case "route_name":
			o.RouteName = intdb.AsString(v)
		case "route_link":
			o.RouteLink = intdb.AsString(v)
		case "bus_name":
			o.BusName = intdb.AsString(v)
		case "bus_type":
			o.BusType = intdb.AsString(v)
		case "departing_time":
			o.DepartingTime, _ = utils.ClockString(v)
		case "reaching_time":
			o.ReachingTime, _ = utils.ClockString(v)
		case "duration":
			o.Duration = intdb.AsString(v)
		case "star_rating":
			o.StarRating = intdb.AsFloat(v)
		case "price":
			o.Price = intdb.AsFloat(v)
		case "seats_available":
			o.SeatsAvailable = intdb.AsInt(v)
		}
	}
	return o
}
