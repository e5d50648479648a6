package domain

import "encoding/json"

// AirlineSet is an insertion-order-preserving set of airline codes.
// Display surfaces (airline distribution, per-flight airline lists) depend on
// first-seen order, so a plain map is not enough.
type AirlineSet struct {
	codes []string
	seen  map[string]struct{}
}

// NewAirlineSet creates an AirlineSet containing the given codes, in order,
// with duplicates dropped.
func NewAirlineSet(codes ...string) AirlineSet {
	var s AirlineSet
	for _, c := range codes {
		s.Add(c)
	}
	return s
}

// Add inserts a code if it is non-empty and not already present.
func (s *AirlineSet) Add(code string) {
	if code == "" {
		return
	}
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[code]; ok {
		return
	}
	s.seen[code] = struct{}{}
	s.codes = append(s.codes, code)
}

// AddAll inserts every code from another set, preserving this set's order.
func (s *AirlineSet) AddAll(other AirlineSet) {
	for _, c := range other.codes {
		s.Add(c)
	}
}

// Contains reports whether the code is in the set.
func (s AirlineSet) Contains(code string) bool {
	_, ok := s.seen[code]
	return ok
}

// ContainsAny reports whether any of the given codes is in the set.
func (s AirlineSet) ContainsAny(codes []string) bool {
	for _, c := range codes {
		if s.Contains(c) {
			return true
		}
	}
	return false
}

// Codes returns the codes in insertion order. The returned slice is a copy.
func (s AirlineSet) Codes() []string {
	out := make([]string, len(s.codes))
	copy(out, s.codes)
	return out
}

// Len returns the number of distinct codes.
func (s AirlineSet) Len() int {
	return len(s.codes)
}

// MarshalJSON renders the set as a JSON array in insertion order.
func (s AirlineSet) MarshalJSON() ([]byte, error) {
	if s.codes == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.codes)
}

// UnmarshalJSON rebuilds the set from a JSON array.
func (s *AirlineSet) UnmarshalJSON(data []byte) error {
	var codes []string
	if err := json.Unmarshal(data, &codes); err != nil {
		return err
	}
	*s = NewAirlineSet(codes...)
	return nil
}
