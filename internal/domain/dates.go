package domain

import (
	"fmt"
	"time"
)

// Date-combination caps. Planning never emits more than
// MaxPlannedCombinations pairs, and one processing run dispatches at most
// MaxDispatchedCombinations of them to the search provider. Both exist to cap
// external API fan-out against quota exhaustion; raising them is a
// configuration decision, not a code change.
const (
	MaxPlannedCombinations    = 5
	MaxDispatchedCombinations = 3
)

// DateRange is an inclusive span of calendar dates.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Days returns the number of calendar days spanned, inclusive.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Validate checks that the range is ordered.
func (r DateRange) Validate() error {
	if r.End.Before(r.Start) {
		return fmt.Errorf("%w: date range end precedes start", ErrInvalidRequest)
	}
	return nil
}

// Midpoint returns the middle of the range, truncated to a calendar date.
func (r DateRange) Midpoint() time.Time {
	mid := r.Start.Add(r.End.Sub(r.Start) / 2)
	return time.Date(mid.Year(), mid.Month(), mid.Day(), 0, 0, 0, 0, mid.Location())
}

// TravelDates carries the user's requested dates: either a single departure
// date or a departure range, and optionally a single return date or a return
// range.
type TravelDates struct {
	DepartureDate  *time.Time `json:"departureDate,omitempty"`
	DepartureRange *DateRange `json:"departureRange,omitempty"`
	ReturnDate     *time.Time `json:"returnDate,omitempty"`
	ReturnRange    *DateRange `json:"returnRange,omitempty"`
}

// Validate checks that a departure is specified one way or the other and that
// any ranges are ordered.
func (d TravelDates) Validate() error {
	if d.DepartureDate == nil && d.DepartureRange == nil {
		return fmt.Errorf("%w: a departure date or departure date range is required", ErrInvalidRequest)
	}
	if d.DepartureRange != nil {
		if err := d.DepartureRange.Validate(); err != nil {
			return err
		}
	}
	if d.ReturnRange != nil {
		if err := d.ReturnRange.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// DateCombination is one concrete (departure, optional return) pair
// dispatched as a single search call. Immutable once planned.
type DateCombination struct {
	Departure time.Time  `json:"departure"`
	Return    *time.Time `json:"return,omitempty"`
}

// PlanDateCombinations expands the requested dates into a bounded list of
// concrete pairs to query.
//
// A single departure date yields exactly one combination. A departure range
// is walked from start to end with stride max(1, inclusiveDays/5), emitting
// at most MaxPlannedCombinations pairs. When a return range is given, its
// midpoint is reused for every generated departure; the return side never
// varies independently; a single return date is reused verbatim.
func PlanDateCombinations(d TravelDates) []DateCombination {
	if d.DepartureDate != nil {
		return []DateCombination{{
			Departure: *d.DepartureDate,
			Return:    returnFor(d),
		}}
	}

	if d.DepartureRange == nil {
		return nil
	}

	ret := returnFor(d)
	totalDays := d.DepartureRange.Days()
	stride := totalDays / MaxPlannedCombinations
	if stride < 1 {
		stride = 1
	}

	var combos []DateCombination
	for cur := d.DepartureRange.Start; !cur.After(d.DepartureRange.End) && len(combos) < MaxPlannedCombinations; cur = cur.AddDate(0, 0, stride) {
		combos = append(combos, DateCombination{Departure: cur, Return: ret})
	}
	return combos
}

// returnFor resolves the return date shared by every combination.
func returnFor(d TravelDates) *time.Time {
	if d.ReturnRange != nil {
		mid := d.ReturnRange.Midpoint()
		return &mid
	}
	return d.ReturnDate
}
