package services

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"redbus/internal/domain"
	"redbus/internal/domain/models"
)

func fixedNow() time.Time { return time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC) }

func TestReportServiceRender(t *testing.T) {
	price := 750.0
	rating := 4.2
	rows := []models.RouteOffering{
		{State: "KL", RouteName: "Kochi to Bangalore", BusName: "KSRTC", BusType: "Sleeper",
			DepartingTime: "21:15:00", ReachingTime: "06:45:00", Price: &price, StarRating: &rating, SeatsAvailable: seats(12)},
		{State: "KL", RouteName: "Kochi to Bangalore", BusName: "Kallada Travels (Luxury Multi-Axle Volvo) Premium Night Service",
			BusType: "A/C Seater", DepartingTime: "N/A", ReachingTime: "N/A", SeatsAvailable: seats(3)},
	}
	res := models.SearchResult{
		Query: "SELECT * FROM redbus WHERE 1=1 AND state = ?",
		Count: len(rows),
		Rows:  rows,
		Chart: BuildSeatChart(rows, true),
	}
	c := models.FilterCriteria{State: domain.Some("KL")}

	pdf, filename, err := ReportService{Now: fixedNow}.Render(res, c)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF")
	}
	if filename != "REDBUS_KL_20240501_093000.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestReportServiceRender_Empty(t *testing.T) {
	res := models.SearchResult{Rows: []models.RouteOffering{}, Chart: BuildSeatChart(nil, true)}
	pdf, filename, err := ReportService{Now: fixedNow}.Render(res, models.FilterCriteria{})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if len(pdf) == 0 || !strings.HasPrefix(filename, "REDBUS_ALL_") {
		t.Fatalf("unexpected output len=%d filename=%q", len(pdf), filename)
	}
}

func TestSafeFilenamePart(t *testing.T) {
	if got := safeFilenamePart(" a/b c "); got != "a_b_c" {
		t.Fatalf("got %q", got)
	}
	if got := safeFilenamePart(""); got != "NA" {
		t.Fatalf("got %q", got)
	}
}
