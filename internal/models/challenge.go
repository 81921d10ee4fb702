package models

// Challenge is a fixed-length daily commitment: one check-in per calendar
// day until CurrentDay reaches Duration.
type Challenge struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Description       string     `json:"description,omitempty"`
	Icon              string     `json:"icon,omitempty"`
	Color             string     `json:"color,omitempty"`
	Difficulty        Difficulty `json:"difficulty"`
	Duration          int        `json:"duration"`
	CurrentDay        int        `json:"current_day"`
	LastCompletedDate string     `json:"last_completed_date,omitempty"` // YYYY-MM-DD
}

// Finished reports whether every day of the challenge has been checked in.
func (c Challenge) Finished() bool {
	return c.CurrentDay >= c.Duration
}
