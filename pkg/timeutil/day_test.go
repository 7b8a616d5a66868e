package timeutil

import (
	"reflect"
	"testing"
)

func TestParseDay(t *testing.T) {
	got, err := ParseDay("2024-05-01")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if FormatDay(got) != "2024-05-01" {
		t.Fatalf("round trip = %q", FormatDay(got))
	}
	for _, bad := range []string{"", "05/01/2024", "2024-13-01", "2024-02-30", "yesterday"} {
		if _, err := ParseDay(bad); err == nil {
			t.Errorf("parsed %q", bad)
		}
	}
}

func TestValid(t *testing.T) {
	if !Valid("2024-02-29") {
		t.Errorf("leap day rejected")
	}
	if Valid("2023-02-29") {
		t.Errorf("non-leap day accepted")
	}
}

func TestBefore(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"2024-05-01", "2024-05-02", true},
		{"2024-05-02", "2024-05-01", false},
		{"2024-05-01", "2024-05-01", false},
		{"2023-12-31", "2024-01-01", true},
		{"garbage", "2024-05-01", false},
		{"2024-05-01", "garbage", false},
	}
	for _, tt := range tests {
		if got := Before(tt.a, tt.b); got != tt.want {
			t.Errorf("Before(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestShiftCrossesMonthAndYear(t *testing.T) {
	tests := []struct {
		date string
		n    int
		want string
	}{
		{"2024-05-01", 1, "2024-05-02"},
		{"2024-04-30", 1, "2024-05-01"},
		{"2024-01-01", -1, "2023-12-31"},
		{"2024-02-28", 1, "2024-02-29"},
	}
	for _, tt := range tests {
		got, err := Shift(tt.date, tt.n)
		if err != nil {
			t.Fatalf("Shift(%q, %d): %v", tt.date, tt.n, err)
		}
		if got != tt.want {
			t.Errorf("Shift(%q, %d) = %q, want %q", tt.date, tt.n, got, tt.want)
		}
	}
	if _, err := Shift("bad", 1); err == nil {
		t.Errorf("shifted malformed day")
	}
}

func TestWeekOfStartsMonday(t *testing.T) {
	tests := []struct {
		date, start, end string
	}{
		{"2024-05-01", "2024-04-29", "2024-05-05"}, // Wednesday
		{"2024-04-29", "2024-04-29", "2024-05-05"}, // Monday
		{"2024-05-05", "2024-04-29", "2024-05-05"}, // Sunday
	}
	for _, tt := range tests {
		start, end, err := WeekOf(tt.date)
		if err != nil {
			t.Fatalf("WeekOf(%q): %v", tt.date, err)
		}
		if start != tt.start || end != tt.end {
			t.Errorf("WeekOf(%q) = %q..%q, want %q..%q", tt.date, start, end, tt.start, tt.end)
		}
	}
}

func TestRange(t *testing.T) {
	got := Range("2024-04-29", "2024-05-02")
	want := []string{"2024-04-29", "2024-04-30", "2024-05-01", "2024-05-02"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Range = %v, want %v", got, want)
	}
	if got := Range("2024-05-01", "2024-05-01"); len(got) != 1 {
		t.Fatalf("single-day range = %v", got)
	}
	if Range("2024-05-02", "2024-05-01") != nil {
		t.Fatalf("inverted range not nil")
	}
	if Range("bad", "2024-05-01") != nil {
		t.Fatalf("malformed range not nil")
	}
}
