package locale

import (
	"fmt"

	"mazadWeb/internal/countdown"
)

// CountdownUnits carries the unit captions rendered under each digit
// group of an auction timer.
type CountdownUnits struct {
	Days    string `json:"days"`
	Hours   string `json:"hours"`
	Minutes string `json:"minutes"`
	Seconds string `json:"seconds"`
}

// CountdownLabels returns the Arabic unit captions.
func CountdownLabels() CountdownUnits {
	return CountdownUnits{Days: "يوم", Hours: "ساعة", Minutes: "دقيقة", Seconds: "ثانية"}
}

// FormatCountdown renders remaining time as a single phrase for
// notifications and page titles: "1 يوم 1 ساعة 1 دقيقة 1 ثانية".
// A finished countdown reads "انتهى".
func FormatCountdown(p countdown.Parts) string {
	if p.Zero() {
		return "انتهى"
	}
	units := CountdownLabels()
	out := ""
	add := func(v int, unit string) {
		if v == 0 {
			return
		}
		if out != "" {
			out += " "
		}
		out += fmt.Sprintf("%d %s", v, unit)
	}
	add(p.Days, units.Days)
	add(p.Hours, units.Hours)
	add(p.Minutes, units.Minutes)
	add(p.Seconds, units.Seconds)
	return out
}
