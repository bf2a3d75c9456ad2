package countdown

import (
	"testing"
	"time"
)

func TestUntil(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	at := func(seconds int) *time.Time {
		end := now.Add(time.Duration(seconds) * time.Second)
		return &end
	}

	cases := []struct {
		name string
		end  *time.Time
		want Parts
	}{
		{"90061 seconds", at(90061), Parts{Days: 1, Hours: 1, Minutes: 1, Seconds: 1}},
		{"exactly one day", at(86400), Parts{Days: 1}},
		{"under a minute", at(42), Parts{Seconds: 42}},
		{"one second", at(1), Parts{Seconds: 1}},
		{"zero remaining", at(0), Parts{}},
		{"already ended", at(-3600), Parts{}},
		{"no end time", nil, Parts{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Until(tc.end, now); got != tc.want {
				t.Fatalf("Until() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestUntilTruncatesSubSecond(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	end := now.Add(2*time.Second + 900*time.Millisecond)

	got := Until(&end, now)
	if got != (Parts{Seconds: 2}) {
		t.Fatalf("Until() = %+v, want 2 seconds", got)
	}
}

func TestPartsZero(t *testing.T) {
	if !(Parts{}).Zero() {
		t.Fatal("empty parts should be zero")
	}
	if (Parts{Seconds: 1}).Zero() {
		t.Fatal("one second left should not be zero")
	}
}
