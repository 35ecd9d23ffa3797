package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"redbus/internal/domain/models"
	"redbus/internal/repositories"
	"redbus/internal/utils"
)

const (
	NoRowsMessage      = "No data available for the selected filters."
	NoChartDataMessage = "No data available to display the pie chart."
)

// OfferingService runs filter searches and cascading lookups over one storage handle.
type OfferingService struct {
	Offerings    repositories.OfferingRepository
	Lookups      repositories.LookupRepository
	QueryTimeout time.Duration
	RequestID    string
}

// Search composes and runs the filter query, formats the time columns and
// builds the seat chart. An empty match is returned as an empty result, not an error.
func (s OfferingService) Search(ctx context.Context, c models.FilterCriteria) (models.SearchResult, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	raw, err := s.Offerings.Search(ctx, c)
	if err != nil {
		utils.LogEvent(s.RequestID, "offerings", "search_failed", err.Error())
		return models.SearchResult{}, err
	}

	for i := range raw.Rows {
		raw.Rows[i].DepartingTime = utils.FormatClock(raw.Rows[i].DepartingTime)
		raw.Rows[i].ReachingTime = utils.FormatClock(raw.Rows[i].ReachingTime)
	}

	res := models.SearchResult{
		Query:         raw.Query,
		Params:        raw.Args,
		Count:         len(raw.Rows),
		Rows:          raw.Rows,
		Chart:         BuildSeatChart(raw.Rows, raw.HasSeatColumn),
		HasSeatColumn: raw.HasSeatColumn,
	}
	if res.Empty() {
		res.Message = NoRowsMessage
	}

	utils.LogEvent(s.RequestID, "offerings", "search",
		fmt.Sprintf("filters=%d rows=%d chart=%t", len(c.Summary()), res.Count, res.Chart.HasData))
	return res, nil
}

func (s OfferingService) States(ctx context.Context) ([]models.StateOption, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	out, err := s.Lookups.States(ctx)
	s.logLookup("states", len(out), err)
	return out, err
}

func (s OfferingService) RoutesForState(ctx context.Context, state string) ([]string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	out, err := s.Lookups.RoutesForState(ctx, strings.TrimSpace(state))
	s.logLookup("routes", len(out), err)
	return out, err
}

func (s OfferingService) BusNamesForRoute(ctx context.Context, route string) ([]string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	out, err := s.Lookups.BusNamesForRoute(ctx, strings.TrimSpace(route))
	s.logLookup("bus_names", len(out), err)
	return out, err
}

func (s OfferingService) BusTypes(ctx context.Context) ([]string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	out, err := s.Lookups.BusTypes(ctx)
	s.logLookup("bus_types", len(out), err)
	return out, err
}

func (s OfferingService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if s.QueryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.QueryTimeout)
}

func (s OfferingService) logLookup(kind string, n int, err error) {
	if err != nil {
		utils.LogEvent(s.RequestID, "lookups", kind+"_failed", err.Error())
		return
	}
	utils.LogEvent(s.RequestID, "lookups", kind, fmt.Sprintf("values=%d", n))
}
