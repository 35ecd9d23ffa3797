package repositories

import (
	"strings"

	"redbus/internal/domain"
	"redbus/internal/domain/models"
)

const (
	offeringTable = "redbus"
	stateTable    = "redbus_state_transport"
)

// offeringBaseQuery selects every column so the caller can tell when
// seats_available is missing from the table.
const offeringBaseQuery = "SELECT * FROM " + offeringTable + " WHERE 1=1"

// keyColumns must be non-null and non-empty on every returned row.
var keyColumns = []string{"state", "route_name", "bus_name", "bus_type"}

type clauseList struct {
	sb   strings.Builder
	args []any
}

func addClause[T any](q *clauseList, column, op string, o domain.Optional[T]) {
	v, ok := o.Get()
	if !ok {
		return
	}
	q.sb.WriteString(" AND " + column + " " + op + " ?")
	q.args = append(q.args, v)
}

// BuildOfferingQuery composes the search query for c.
// Present fields add one positional clause each in a fixed order
// (state, route, operator, bus type, fare, departure time, rating); the key-column
// checks always follow. Filter values only ever travel in the returned args.
func BuildOfferingQuery(c models.FilterCriteria) (string, []any) {
	q := &clauseList{args: []any{}}
	q.sb.WriteString(offeringBaseQuery)

	addClause(q, "state", "=", c.State)
	addClause(q, "route_name", "=", c.RouteName)
	addClause(q, "bus_name", "=", c.BusName)
	addClause(q, "bus_type", "=", c.BusType)

	addClause(q, "price", ">=", c.MinPrice)
	addClause(q, "price", "<=", c.MaxPrice)

	addClause(q, "departing_time", ">=", c.MinDepartingTime)
	addClause(q, "departing_time", "<=", c.MaxDepartingTime)

	addClause(q, "star_rating", ">=", c.MinStarRating)
	addClause(q, "star_rating", "<=", c.MaxStarRating)

	for _, col := range keyColumns {
		q.sb.WriteString(" AND " + col + " IS NOT NULL AND " + col + " != ''")
	}

	return q.sb.String(), q.args
}
