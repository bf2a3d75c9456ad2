package locale

import (
	"fmt"
	"time"
)

var arabicMonths = [...]string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

var arabicWeekdays = [...]string{
	"الأحد", "الاثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت",
}

// FormatDate renders "15 يونيو 2025".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), arabicMonths[t.Month()-1], t.Year())
}

// FormatDateTime renders "الأحد 15 يونيو 2025، 18:30".
func FormatDateTime(t time.Time) string {
	return fmt.Sprintf("%s %d %s %d، %02d:%02d",
		arabicWeekdays[t.Weekday()], t.Day(), arabicMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

// FormatRelative renders how long ago a moment was, for listing cards
// and bid histories.
func FormatRelative(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "الآن"
	case d < time.Hour:
		return fmt.Sprintf("قبل %d دقيقة", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("قبل %d ساعة", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("قبل %d يوم", int(d.Hours()/24))
	default:
		return FormatDate(t)
	}
}
