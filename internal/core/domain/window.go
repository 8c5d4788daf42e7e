package domain

import "time"

// Window selects the slice of history an analytics computation runs over.
// The zero value means "all history". Days and StartDate are mutually
// exclusive; when both are set StartDate wins.
type Window struct {
	Days      int        `json:"days,omitempty"` // Keep transactions dated within the trailing N days, inclusive
	StartDate *time.Time `json:"startDate,omitempty"`
}

// All reports whether the window passes the full history through.
func (w Window) All() bool {
	return w.Days <= 0 && w.StartDate == nil
}
