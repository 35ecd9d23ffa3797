package models

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"redbus/internal/domain"
	"redbus/internal/utils"

	"github.com/go-playground/validator/v10"
)

// FilterCriteria is the set of optional predicates for one search.
// Every field defaults to absent; an absent field contributes no clause.
type FilterCriteria struct {
	State     domain.Optional[string] `json:"state"`
	RouteName domain.Optional[string] `json:"route_name"`
	BusName   domain.Optional[string] `json:"bus_name"`
	BusType   domain.Optional[string] `json:"bus_type"`

	MinPrice domain.Optional[float64] `json:"min_price"`
	MaxPrice domain.Optional[float64] `json:"max_price"`

	// Departure bounds are normalized HH:MM:SS strings.
	MinDepartingTime domain.Optional[string] `json:"min_departing_time"`
	MaxDepartingTime domain.Optional[string] `json:"max_departing_time"`

	MinStarRating domain.Optional[float64] `json:"min_star_rating"`
	MaxStarRating domain.Optional[float64] `json:"max_star_rating"`
}

// Summary lists the present filters as key=value pairs in clause order.
func (c FilterCriteria) Summary() []string {
	out := []string{}
	addText := func(key string, o domain.Optional[string]) {
		if v, ok := o.Get(); ok {
			out = append(out, key+"="+v)
		}
	}
	addNum := func(key string, o domain.Optional[float64]) {
		if v, ok := o.Get(); ok {
			out = append(out, key+"="+strconv.FormatFloat(v, 'f', -1, 64))
		}
	}
	addText("state", c.State)
	addText("route_name", c.RouteName)
	addText("bus_name", c.BusName)
	addText("bus_type", c.BusType)
	addNum("min_price", c.MinPrice)
	addNum("max_price", c.MaxPrice)
	addText("min_departing_time", c.MinDepartingTime)
	addText("max_departing_time", c.MaxDepartingTime)
	addNum("min_star_rating", c.MinStarRating)
	addNum("max_star_rating", c.MaxStarRating)
	return out
}

// CriteriaInput carries raw filter values as a surface receives them
// (query string, CLI flags). Exact-match fields use "" or "None" for no filter.
type CriteriaInput struct {
	State            string `form:"state" json:"state"`
	RouteName        string `form:"route_name" json:"route_name"`
	BusName          string `form:"bus_name" json:"bus_name"`
	BusType          string `form:"bus_type" json:"bus_type"`
	MinPrice         string `form:"min_price" json:"min_price" validate:"omitempty,numeric"`
	MaxPrice         string `form:"max_price" json:"max_price" validate:"omitempty,numeric"`
	MinDepartingTime string `form:"min_departing_time" json:"min_departing_time"`
	MaxDepartingTime string `form:"max_departing_time" json:"max_departing_time"`
	MinStarRating    string `form:"min_star_rating" json:"min_star_rating" validate:"omitempty,numeric"`
	MaxStarRating    string `form:"max_star_rating" json:"max_star_rating" validate:"omitempty,numeric"`
}

const (
	minRating = 1
	maxRating = 5
)

var inputValidator = newInputValidator()

func newInputValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Criteria converts raw input into FilterCriteria, rejecting malformed bounds.
func (in CriteriaInput) Criteria() (FilterCriteria, error) {
	in = in.trimmed()
	if err := inputValidator.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return FilterCriteria{}, domain.ValidationError{Field: verrs[0].Field(), Msg: "must be numeric", Err: err}
		}
		return FilterCriteria{}, domain.ValidationError{Msg: "invalid filter", Err: err}
	}

	c := FilterCriteria{
		State:     selection(in.State),
		RouteName: selection(in.RouteName),
		BusName:   selection(in.BusName),
		BusType:   selection(in.BusType),
	}

	var err error
	if c.MinPrice, err = number("min_price", in.MinPrice); err != nil {
		return FilterCriteria{}, err
	}
	if c.MaxPrice, err = number("max_price", in.MaxPrice); err != nil {
		return FilterCriteria{}, err
	}
	if c.MinDepartingTime, err = clock("min_departing_time", in.MinDepartingTime); err != nil {
		return FilterCriteria{}, err
	}
	if c.MaxDepartingTime, err = clock("max_departing_time", in.MaxDepartingTime); err != nil {
		return FilterCriteria{}, err
	}
	if c.MinStarRating, err = number("min_star_rating", in.MinStarRating); err != nil {
		return FilterCriteria{}, err
	}
	if c.MaxStarRating, err = number("max_star_rating", in.MaxStarRating); err != nil {
		return FilterCriteria{}, err
	}

	if err := c.validateRanges(); err != nil {
		return FilterCriteria{}, err
	}
	return c, nil
}

func (in CriteriaInput) trimmed() CriteriaInput {
	return CriteriaInput{
		State:            utils.TrimOrEmpty(in.State),
		RouteName:        utils.TrimOrEmpty(in.RouteName),
		BusName:          utils.TrimOrEmpty(in.BusName),
		BusType:          utils.TrimOrEmpty(in.BusType),
		MinPrice:         utils.TrimOrEmpty(in.MinPrice),
		MaxPrice:         utils.TrimOrEmpty(in.MaxPrice),
		MinDepartingTime: utils.TrimOrEmpty(in.MinDepartingTime),
		MaxDepartingTime: utils.TrimOrEmpty(in.MaxDepartingTime),
		MinStarRating:    utils.TrimOrEmpty(in.MinStarRating),
		MaxStarRating:    utils.TrimOrEmpty(in.MaxStarRating),
	}
}

func (c FilterCriteria) validateRanges() error {
	for _, r := range []struct {
		field string
		v     domain.Optional[float64]
	}{{"min_price", c.MinPrice}, {"max_price", c.MaxPrice}} {
		if v, ok := r.v.Get(); ok && v < 0 {
			return domain.ValidationError{Field: r.field, Msg: "must not be negative"}
		}
	}
	for _, r := range []struct {
		field string
		v     domain.Optional[float64]
	}{{"min_star_rating", c.MinStarRating}, {"max_star_rating", c.MaxStarRating}} {
		if v, ok := r.v.Get(); ok && (v < minRating || v > maxRating) {
			return domain.ValidationError{Field: r.field, Msg: fmt.Sprintf("must be between %d and %d", minRating, maxRating)}
		}
	}

	if lo, ok := c.MinPrice.Get(); ok {
		if hi, ok := c.MaxPrice.Get(); ok && lo > hi {
			return domain.ValidationError{Field: "min_price", Msg: "must not exceed max_price"}
		}
	}
	if lo, ok := c.MinDepartingTime.Get(); ok {
		if hi, ok := c.MaxDepartingTime.Get(); ok && lo > hi {
			return domain.ValidationError{Field: "min_departing_time", Msg: "must not be later than max_departing_time"}
		}
	}
	if lo, ok := c.MinStarRating.Get(); ok {
		if hi, ok := c.MaxStarRating.Get(); ok && lo > hi {
			return domain.ValidationError{Field: "min_star_rating", Msg: "must not exceed max_star_rating"}
		}
	}
	return nil
}

func selection(s string) domain.Optional[string] {
	if utils.IsUnselected(s) {
		return domain.None[string]()
	}
	return domain.Some(s)
}

func number(field, s string) (domain.Optional[float64], error) {
	if s == "" {
		return domain.None[float64](), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return domain.None[float64](), domain.ValidationError{Field: field, Msg: "must be numeric", Err: err}
	}
	return domain.Some(v), nil
}

func clock(field, s string) (domain.Optional[string], error) {
	if s == "" {
		return domain.None[string](), nil
	}
	v, err := utils.ParseClock(s)
	if err != nil {
		return domain.None[string](), domain.ValidationError{Field: field, Msg: "must be HH:MM or HH:MM:SS", Err: err}
	}
	return domain.Some(v), nil
}
