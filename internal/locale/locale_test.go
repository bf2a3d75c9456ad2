package locale

import (
	"testing"
	"time"

	"mazadWeb/internal/countdown"
)

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{450000, "450,000 ر.س"},
		{1250.5, "1,250.50 ر.س"},
		{999, "999 ر.س"},
		{1000, "1,000 ر.س"},
		{12345678, "12,345,678 ر.س"},
		{0, "0 ر.س"},
		{-5000, "-5,000 ر.س"},
	}

	for _, tc := range cases {
		if got := FormatPrice(tc.amount); got != tc.want {
			t.Fatalf("FormatPrice(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestFormatCompactPrice(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{2500000, "2.5 مليون ر.س"},
		{1000000, "1 مليون ر.س"},
		{450000, "450 ألف ر.س"},
		{750, "750 ر.س"},
	}

	for _, tc := range cases {
		if got := FormatCompactPrice(tc.amount); got != tc.want {
			t.Fatalf("FormatCompactPrice(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestLabelsKnownCodes(t *testing.T) {
	if got := AuctionStatusLabel("live"); got != "مباشر" {
		t.Fatalf("AuctionStatusLabel(live) = %q", got)
	}
	if got := AuctionTypeLabel("charity"); got != "مزاد خيري" {
		t.Fatalf("AuctionTypeLabel(charity) = %q", got)
	}
	if got := PropertyStatusLabel("sold"); got != "مباع" {
		t.Fatalf("PropertyStatusLabel(sold) = %q", got)
	}
	if got := PropertyTypeLabel("villa"); got != "فيلا" {
		t.Fatalf("PropertyTypeLabel(villa) = %q", got)
	}
	if got := RoleLabel("agent"); got != "وسيط عقاري" {
		t.Fatalf("RoleLabel(agent) = %q", got)
	}
}

func TestLabelsUnknownCodeFallsBack(t *testing.T) {
	for _, fn := range []func(string) string{
		AuctionStatusLabel, AuctionTypeLabel, PropertyStatusLabel, PropertyTypeLabel, RoleLabel,
	} {
		if got := fn("mystery_code"); got != "mystery_code" {
			t.Fatalf("unknown code mapped to %q, want raw code", got)
		}
	}
}

func TestStyles(t *testing.T) {
	if got := AuctionStatusStyle("live"); got != "success" {
		t.Fatalf("AuctionStatusStyle(live) = %q", got)
	}
	if got := AuctionStatusStyle("cancelled"); got != "danger" {
		t.Fatalf("AuctionStatusStyle(cancelled) = %q", got)
	}
	if got := AuctionTypeStyle("private"); got != "warning" {
		t.Fatalf("AuctionTypeStyle(private) = %q", got)
	}
	if got := PropertyStatusStyle("pending"); got != "warning" {
		t.Fatalf("PropertyStatusStyle(pending) = %q", got)
	}

	for _, fn := range []func(string) string{
		AuctionStatusStyle, AuctionTypeStyle, PropertyStatusStyle,
	} {
		if got := fn("mystery_code"); got != "default" {
			t.Fatalf("unknown code styled %q, want default", got)
		}
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)
	if got := FormatDate(d); got != "15 يونيو 2025" {
		t.Fatalf("FormatDate() = %q", got)
	}
	if got := FormatDateTime(d); got != "الأحد 15 يونيو 2025، 18:30" {
		t.Fatalf("FormatDateTime() = %q", got)
	}
}

func TestFormatRelative(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		at   time.Time
		want string
	}{
		{"just now", now.Add(-30 * time.Second), "الآن"},
		{"minutes", now.Add(-5 * time.Minute), "قبل 5 دقيقة"},
		{"hours", now.Add(-3 * time.Hour), "قبل 3 ساعة"},
		{"days", now.Add(-48 * time.Hour), "قبل 2 يوم"},
		{"older than a month", now.Add(-40 * 24 * time.Hour), "6 مايو 2025"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatRelative(tc.at, now); got != tc.want {
				t.Fatalf("FormatRelative() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatCountdown(t *testing.T) {
	cases := []struct {
		name string
		p    countdown.Parts
		want string
	}{
		{"full", countdown.Parts{Days: 1, Hours: 1, Minutes: 1, Seconds: 1}, "1 يوم 1 ساعة 1 دقيقة 1 ثانية"},
		{"hours only", countdown.Parts{Hours: 4}, "4 ساعة"},
		{"done", countdown.Parts{}, "انتهى"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatCountdown(tc.p); got != tc.want {
				t.Fatalf("FormatCountdown() = %q, want %q", got, tc.want)
			}
		})
	}
}
