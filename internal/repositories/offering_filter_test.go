package repositories

import (
	"reflect"
	"strings"
	"testing"

	"redbus/internal/domain"
	"redbus/internal/domain/models"
)

const keyColumnClauses = " AND state IS NOT NULL AND state != ''" +
	" AND route_name IS NOT NULL AND route_name != ''" +
	" AND bus_name IS NOT NULL AND bus_name != ''" +
	" AND bus_type IS NOT NULL AND bus_type != ''"

func fullCriteria() models.FilterCriteria {
	return models.FilterCriteria{
		State:            domain.Some("KL"),
		RouteName:        domain.Some("Kochi to Bangalore"),
		BusName:          domain.Some("KSRTC"),
		BusType:          domain.Some("A/C Sleeper"),
		MinPrice:         domain.Some(100.0),
		MaxPrice:         domain.Some(900.0),
		MinDepartingTime: domain.Some("06:00:00"),
		MaxDepartingTime: domain.Some("22:30:00"),
		MinStarRating:    domain.Some(2.0),
		MaxStarRating:    domain.Some(5.0),
	}
}

func TestBuildOfferingQuery_NoFilters(t *testing.T) {
	query, args := BuildOfferingQuery(models.FilterCriteria{})

	want := "SELECT * FROM redbus WHERE 1=1" + keyColumnClauses
	if query != want {
		t.Fatalf("query mismatch\n got: %s\nwant: %s", query, want)
	}
	if args == nil || len(args) != 0 {
		t.Fatalf("expected empty non-nil args, got %#v", args)
	}
	if n := strings.Count(query, "IS NOT NULL"); n != 4 {
		t.Fatalf("expected 4 key-column clauses, got %d", n)
	}
}

func TestBuildOfferingQuery_AllFiltersInFixedOrder(t *testing.T) {
	query, args := BuildOfferingQuery(fullCriteria())

	want := "SELECT * FROM redbus WHERE 1=1" +
		" AND state = ?" +
		" AND route_name = ?" +
		" AND bus_name = ?" +
		" AND bus_type = ?" +
		" AND price >= ?" +
		" AND price <= ?" +
		" AND departing_time >= ?" +
		" AND departing_time <= ?" +
		" AND star_rating >= ?" +
		" AND star_rating <= ?" +
		keyColumnClauses
	if query != want {
		t.Fatalf("query mismatch\n got: %s\nwant: %s", query, want)
	}

	wantArgs := []any{"KL", "Kochi to Bangalore", "KSRTC", "A/C Sleeper", 100.0, 900.0, "06:00:00", "22:30:00", 2.0, 5.0}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Fatalf("args mismatch\n got: %#v\nwant: %#v", args, wantArgs)
	}
	if n := strings.Count(query, "?"); n != len(args) {
		t.Fatalf("placeholder count %d does not match %d args", n, len(args))
	}
}

func TestBuildOfferingQuery_SingleBounds(t *testing.T) {
	c := models.FilterCriteria{
		MaxPrice:         domain.Some(500.0),
		MinDepartingTime: domain.Some("08:00:00"),
		MinStarRating:    domain.Some(4.0),
	}
	query, args := BuildOfferingQuery(c)

	want := "SELECT * FROM redbus WHERE 1=1" +
		" AND price <= ?" +
		" AND departing_time >= ?" +
		" AND star_rating >= ?" +
		keyColumnClauses
	if query != want {
		t.Fatalf("query mismatch\n got: %s\nwant: %s", query, want)
	}
	if !reflect.DeepEqual(args, []any{500.0, "08:00:00", 4.0}) {
		t.Fatalf("unexpected args %#v", args)
	}
}

func TestBuildOfferingQuery_ValuesNeverInterpolated(t *testing.T) {
	hostile := "KL' OR '1'='1"
	query, args := BuildOfferingQuery(models.FilterCriteria{
		State:   domain.Some(hostile),
		BusName: domain.Some("x; DROP TABLE redbus; --"),
	})

	if strings.Contains(query, hostile) || strings.Contains(query, "DROP TABLE") {
		t.Fatalf("filter value leaked into query text: %s", query)
	}
	if len(args) != 2 || args[0] != hostile {
		t.Fatalf("expected hostile value as first bound arg, got %#v", args)
	}
}

func TestBuildOfferingQuery_LiteralNoneIsAValue(t *testing.T) {
	_, args := BuildOfferingQuery(models.FilterCriteria{BusType: domain.Some("None")})
	if len(args) != 1 || args[0] != "None" {
		t.Fatalf("a present \"None\" must be bound like any other value, got %#v", args)
	}
}
