package timestamp

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSameDay(t *testing.T) {
	noon := time.Date(2025, time.March, 8, 12, 0, 0, 0, time.Local)
	ts := New(noon)

	if !ts.SameDay(noon.Add(11 * time.Hour)) {
		t.Fatalf("expected same day for 23:00")
	}
	if ts.SameDay(noon.Add(13 * time.Hour)) {
		t.Fatalf("expected different day after midnight")
	}
	if ts.SameDay(noon.AddDate(1, 0, 0)) {
		t.Fatalf("expected different day one year later")
	}
}

func TestDayStart(t *testing.T) {
	ts := New(time.Date(2025, time.March, 8, 17, 45, 12, 99, time.Local))
	got := ts.DayStart()
	want := time.Date(2025, time.March, 8, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	orig := New(time.Date(2025, time.March, 8, 17, 45, 12, 0, time.UTC))
	b, err := json.Marshal(&orig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var back Timestamp
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !back.Equal(orig.Time) {
		t.Fatalf("expected %v, got %v", orig, back)
	}
}

func TestJSONZero(t *testing.T) {
	var zero Timestamp
	b, err := json.Marshal(&zero)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `""` {
		t.Fatalf("expected empty string, got %s", b)
	}
	var back Timestamp
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !back.IsZero() {
		t.Fatalf("expected zero timestamp, got %v", back)
	}
}

func TestRelative(t *testing.T) {
	now := time.Date(2025, time.March, 8, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		age  time.Duration
		want string
	}{
		{"minutes", 30 * time.Minute, "Just now"},
		{"hours", 3 * time.Hour, "3h ago"},
		{"days", 50 * time.Hour, "2d ago"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Relative(now.Add(-tc.age), now); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
