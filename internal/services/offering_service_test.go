package services

import (
	"context"
	"testing"
	"time"

	"redbus/internal/domain"
	"redbus/internal/domain/models"
	"redbus/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newService(t *testing.T) (OfferingService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
		db.Close()
	})
	return OfferingService{
		Offerings:    repositories.OfferingRepository{DB: db},
		Lookups:      repositories.LookupRepository{DB: db},
		QueryTimeout: time.Second,
		RequestID:    "test",
	}, mock
}

func TestOfferingServiceSearch(t *testing.T) {
	svc, mock := newService(t)
	c := models.FilterCriteria{State: domain.Some("KL"), RouteName: domain.Some("Kochi to Bangalore")}
	query, _ := repositories.BuildOfferingQuery(c)

	mock.ExpectQuery(query).WithArgs("KL", "Kochi to Bangalore").
		WillReturnRows(sqlmock.NewRows([]string{"state", "route_name", "bus_name", "bus_type", "departing_time", "reaching_time", "seats_available"}).
			AddRow("KL", "Kochi to Bangalore", "KSRTC", "Sleeper", "21:15:00.000000", nil, int64(10)).
			AddRow("KL", "Kochi to Bangalore", "Kallada", "Seater", "22:00", "07:05:30.500000", int64(4)).
			AddRow("KL", "Kochi to Bangalore", "KSRTC", "Seater", "", "", nil))

	res, err := svc.Search(context.Background(), c)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if res.Count != 3 || res.Empty() || res.Message != "" {
		t.Fatalf("unexpected result %#v", res)
	}
	if res.Query != query || len(res.Params) != 2 {
		t.Fatalf("query/params not carried through: %q %#v", res.Query, res.Params)
	}

	if got := res.Rows[0].DepartingTime; got != "21:15:00" {
		t.Fatalf("fractional time not trimmed, got %q", got)
	}
	if got := res.Rows[0].ReachingTime; got != "N/A" {
		t.Fatalf("NULL time should be N/A, got %q", got)
	}
	if got := res.Rows[1].DepartingTime; got != "22:00" {
		t.Fatalf("unmatched time should pass through unchanged, got %q", got)
	}
	if got := res.Rows[1].ReachingTime; got != "07:05:30" {
		t.Fatalf("got %q", got)
	}
	if got := res.Rows[2].DepartingTime; got != "N/A" {
		t.Fatalf("empty time should be N/A, got %q", got)
	}

	if !res.Chart.HasData || res.Chart.Total != 14 || len(res.Chart.Slices) != 2 {
		t.Fatalf("unexpected chart %#v", res.Chart)
	}
	if res.Chart.Slices[0].BusName != "KSRTC" || res.Chart.Slices[0].Seats != 10 {
		t.Fatalf("unexpected first slice %#v", res.Chart.Slices[0])
	}
}

func TestOfferingServiceSearch_EmptyIsNotAnError(t *testing.T) {
	svc, mock := newService(t)
	query, _ := repositories.BuildOfferingQuery(models.FilterCriteria{})
	mock.ExpectQuery(query).
		WillReturnRows(sqlmock.NewRows([]string{"state", "route_name", "bus_name", "bus_type", "seats_available"}))

	res, err := svc.Search(context.Background(), models.FilterCriteria{})
	if err != nil {
		t.Fatalf("empty result should not error, got %v", err)
	}
	if !res.Empty() || res.Count != 0 || res.Message != NoRowsMessage {
		t.Fatalf("unexpected empty result %#v", res)
	}
	if res.Rows == nil {
		t.Fatalf("rows should be an empty slice, not nil")
	}
	if res.Chart.HasData {
		t.Fatalf("chart should signal no data")
	}
}

func TestOfferingServiceLookups(t *testing.T) {
	svc, mock := newService(t)
	mock.ExpectQuery("SELECT DISTINCT route_name FROM redbus WHERE state = ?").WithArgs("TN").
		WillReturnRows(sqlmock.NewRows([]string{"route_name"}).AddRow("Chennai to Madurai"))
	mock.ExpectQuery("SELECT DISTINCT bus_name FROM redbus WHERE route_name = ?").WithArgs("Chennai to Madurai").
		WillReturnRows(sqlmock.NewRows([]string{"bus_name"}).AddRow("SETC").AddRow("SETC"))

	routes, err := svc.RoutesForState(context.Background(), " TN ")
	if err != nil || len(routes) != 1 {
		t.Fatalf("RoutesForState: %v %#v", err, routes)
	}
	buses, err := svc.BusNamesForRoute(context.Background(), routes[0])
	if err != nil || len(buses) != 1 || buses[0] != "SETC" {
		t.Fatalf("BusNamesForRoute: %v %#v", err, buses)
	}
}
