package countdown

import "time"

// Parts breaks a remaining duration into calendar-free display units.
type Parts struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// Zero reports whether nothing remains on the clock.
func (p Parts) Zero() bool {
	return p.Days == 0 && p.Hours == 0 && p.Minutes == 0 && p.Seconds == 0
}

// Until computes the time left between now and end. A nil or already
// passed end yields the zero value, never negative components.
func Until(end *time.Time, now time.Time) Parts {
	if end == nil {
		return Parts{}
	}
	remaining := end.Sub(now)
	if remaining <= 0 {
		return Parts{}
	}
	total := int(remaining / time.Second)
	return Parts{
		Days:    total / 86400,
		Hours:   (total % 86400) / 3600,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
	}
}
