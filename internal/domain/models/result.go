package models

// SearchResult is what a surface receives for one filter interaction.
type SearchResult struct {
	Query   string          `json:"query"`
	Params  []any           `json:"params"`
	Count   int             `json:"count"`
	Rows    []RouteOffering `json:"rows"`
	Chart   SeatChart       `json:"chart"`
	Message string          `json:"message,omitempty"`

	// HasSeatColumn is false when the result set carried no seats_available column.
	HasSeatColumn bool `json:"-"`
}

// Empty reports whether the search matched no rows.
func (r SearchResult) Empty() bool {
	return len(r.Rows) == 0
}
