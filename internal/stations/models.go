package stations

import (
	"fmt"
	"strings"
)

// SortOption selects the ordering of station listings.
type SortOption int

const (
	SortByName SortOption = iota
	SortByID
	SortByState
	SortByDistance
)

var sortOptionNames = map[SortOption]string{
	SortByName:     "name",
	SortByID:       "id",
	SortByState:    "state",
	SortByDistance: "distance",
}

func (s SortOption) String() string {
	if name, ok := sortOptionNames[s]; ok {
		return name
	}
	return fmt.Sprintf("unknown (%d)", int(s))
}

// ParseSortOption normalizes a user-supplied sort key. The empty string
// means the default, sorting by name.
func ParseSortOption(s string) (SortOption, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "name":
		return SortByName, nil
	case "id":
		return SortByID, nil
	case "state":
		return SortByState, nil
	case "distance":
		return SortByDistance, nil
	}
	return 0, fmt.Errorf("%w: %q (valid options: name, id, state, distance)", ErrInvalidSortOption, s)
}
