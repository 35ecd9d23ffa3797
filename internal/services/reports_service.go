package services

import (
	"sort"
	"strings"

	"redbus/internal/domain"
	"redbus/internal/domain/models"
)

// OthersLabel groups rows without an operator name.
const OthersLabel = "Others"

// SeatsByOperator sums available seats per operator for a pie chart.
// Slices are ordered by operator name. An empty result, or one without a
// seats_available column, yields domain.ErrNoData.
func SeatsByOperator(rows []models.RouteOffering, hasSeatColumn bool) ([]models.SeatSlice, error) {
	if len(rows) == 0 || !hasSeatColumn {
		return nil, domain.ErrNoData
	}

	totals := map[string]int64{}
	for _, r := range rows {
		name := r.BusName
		if strings.TrimSpace(name) == "" {
			name = OthersLabel
		}
		seats := int64(0)
		if r.SeatsAvailable != nil {
			seats = *r.SeatsAvailable
		}
		totals[name] += seats
	}

	var sum int64
	for _, v := range totals {
		sum += v
	}

	out := make([]models.SeatSlice, 0, len(totals))
	for name, seats := range totals {
		share := 0.0
		if sum > 0 {
			share = float64(seats) / float64(sum)
		}
		out = append(out, models.SeatSlice{BusName: name, Seats: seats, Share: share})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BusName < out[j].BusName })
	return out, nil
}

// BuildSeatChart wraps SeatsByOperator into the chart payload handed to surfaces.
func BuildSeatChart(rows []models.RouteOffering, hasSeatColumn bool) models.SeatChart {
	slices, err := SeatsByOperator(rows, hasSeatColumn)
	if domain.IsNoData(err) {
		return models.SeatChart{HasData: false, Slices: []models.SeatSlice{}, Message: NoChartDataMessage}
	}
	var total int64
	for _, s := range slices {
		total += s.Seats
	}
	return models.SeatChart{HasData: true, Total: total, Slices: slices}
}
