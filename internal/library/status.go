package library

import "encoding/json"

// Status is the closed set of reading states a library item can hold.
// The string values double as the persisted representation and the
// user-facing labels.
type Status string

const (
	// StatusNone is not a storable state; passing it to SetStatus removes
	// the item.
	StatusNone Status = ""

	StatusWantIt    Status = "Want It"
	StatusTBR       Status = "TBR"
	StatusReading   Status = "Reading"
	StatusCompleted Status = "Read"
)

// legacyWantIt is the pre-rename wishlist label still found in old
// persisted libraries. It is accepted on read and never written back.
const legacyWantIt = "My List"

// Statuses lists the storable states in display order.
func Statuses() []Status {
	return []Status{StatusWantIt, StatusTBR, StatusReading, StatusCompleted}
}

// Valid reports whether s is a storable status.
func (s Status) Valid() bool {
	switch s {
	case StatusWantIt, StatusTBR, StatusReading, StatusCompleted:
		return true
	}
	return false
}

// Title returns the view heading for the status's dedicated page.
func (s Status) Title() string {
	switch s {
	case StatusWantIt:
		return "Want It"
	case StatusTBR:
		return "To Be Read"
	case StatusCompleted:
		return "Read History"
	default:
		return string(s)
	}
}

func (s Status) canonical() Status {
	if string(s) == legacyWantIt {
		return StatusWantIt
	}
	return s
}

// UnmarshalJSON decodes a status string, mapping the legacy wishlist label
// onto StatusWantIt.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = Status(raw).canonical()
	return nil
}
