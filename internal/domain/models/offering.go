package models

// RouteOffering mirrors one row of the redbus table.
// Time columns hold the display form (HH:MM:SS or N/A) once a search has run.
type RouteOffering struct {
	State          string   `json:"state"`
	RouteName      string   `json:"route_name"`
	RouteLink      string   `json:"route_link,omitempty"`
	BusName        string   `json:"bus_name"`
	BusType        string   `json:"bus_type"`
	DepartingTime  string   `json:"departing_time"`
	Duration       string   `json:"duration,omitempty"`
	ReachingTime   string   `json:"reaching_time"`
	StarRating     *float64 `json:"star_rating"`
	Price          *float64 `json:"price"`
	SeatsAvailable *int64   `json:"seats_available"` // nullable
}

// StateOption pairs a state code with its readable name (redbus_state_transport).
type StateOption struct {
	Code string `json:"state"`
	Name string `json:"state_name"`
}

// SeatSlice is one operator's share of the available seats.
type SeatSlice struct {
	BusName string  `json:"bus_name"`
	Seats   int64   `json:"seats_available"`
	Share   float64 `json:"share"`
}

// SeatChart is the chart-ready aggregate of a search.
type SeatChart struct {
	HasData bool        `json:"has_data"`
	Total   int64       `json:"total_seats"`
	Slices  []SeatSlice `json:"slices"`
	Message string      `json:"message,omitempty"`
}
