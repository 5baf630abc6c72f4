// Package charges keeps per-month charge overrides for advanced mode.
//
// Storage is keyed by month number, so values entered for month 18 survive a
// month count being lowered to 12 and come back when it is raised again.
package charges

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Storage maps a 1-based month number to its charge override.
type Storage map[int]float64

// New returns an empty Storage.
func New() Storage {
	return make(Storage)
}

// Set records the charge for month m.
func (s Storage) Set(m int, v float64) {
	s[m] = v
}

// Get returns the stored charge for month m.
func (s Storage) Get(m int) (float64, bool) {
	v, ok := s[m]
	return v, ok
}

// Clear removes every override.
func (s Storage) Clear() {
	for k := range s {
		delete(s, k)
	}
}

// Len returns the number of overrides.
func (s Storage) Len() int {
	return len(s)
}

// Months returns the months that have an override, ascending.
func (s Storage) Months() []int {
	months := make([]int, 0, len(s))
	for m := range s {
		months = append(months, m)
	}
	sort.Ints(months)
	return months
}

// Array builds the per-month charge sequence for a run of the given length,
// using fallback for months without an override.
func (s Storage) Array(months int, fallback float64) []float64 {
	if months <= 0 {
		return []float64{}
	}
	out := make([]float64, months)
	for m := 1; m <= months; m++ {
		if v, ok := s[m]; ok {
			out[m-1] = v
			continue
		}
		out[m-1] = fallback
	}
	return out
}

// Fill sets months 1..months to v.
func (s Storage) Fill(months int, v float64) {
	for m := 1; m <= months; m++ {
		s[m] = v
	}
}

// Sync copies a visible grid (index 0 = month 1) back into the storage.
func (s Storage) Sync(grid []float64) {
	for i, v := range grid {
		s[i+1] = v
	}
}

// Clone returns an independent copy.
func (s Storage) Clone() Storage {
	out := make(Storage, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// MarshalJSON writes the storage as an object keyed by month number.
func (s Storage) MarshalJSON() ([]byte, error) {
	obj := make(map[string]float64, len(s))
	for k, v := range s {
		obj[strconv.Itoa(k)] = v
	}
	return json.Marshal(obj)
}

// UnmarshalJSON reads an object keyed by month number. Keys that are not
// positive integers are rejected.
func (s *Storage) UnmarshalJSON(data []byte) error {
	var obj map[string]float64
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	out := make(Storage, len(obj))
	for k, v := range obj {
		m, err := strconv.Atoi(k)
		if err != nil || m < 1 {
			return fmt.Errorf("invalid month key %q", k)
		}
		out[m] = v
	}
	*s = out
	return nil
}
