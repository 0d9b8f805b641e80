package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{"rfc3339", "2025-05-16T15:32:25Z", time.Date(2025, 5, 16, 15, 32, 25, 0, time.UTC), false},
		{"rfc3339 nano", "2025-05-16T15:32:25.181226Z", time.Date(2025, 5, 16, 15, 32, 25, 181226000, time.UTC), false},
		{"no timezone", "2025-05-16T15:32:25", time.Date(2025, 5, 16, 15, 32, 25, 0, time.UTC), false},
		{"milliseconds no timezone", "2025-05-16T15:32:25.000", time.Date(2025, 5, 16, 15, 32, 25, 0, time.UTC), false},
		{"bare date", "2025-05-16", time.Date(2025, 5, 16, 0, 0, 0, 0, time.UTC), false},
		{"garbage", "next tuesday", time.Time{}, true},
		{"empty", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseDate(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) error: %v", tt.input, err)
			}
			if !got.Equal(tt.expected) {
				t.Errorf("ParseDate(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestJSONTimeUnmarshal(t *testing.T) {
	var jt JSONTime
	if err := json.Unmarshal([]byte(`"2025-05-16"`), &jt); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got := time.Time(jt); !got.Equal(time.Date(2025, 5, 16, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("got %v", got)
	}

	if err := json.Unmarshal([]byte(`"not a date"`), &jt); err == nil {
		t.Error("expected error for unparseable value")
	}
}

func TestJSONTimeMarshal(t *testing.T) {
	jt := JSONTime(time.Date(2025, 5, 16, 15, 32, 25, 0, time.UTC))
	out, err := json.Marshal(jt)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != `"2025-05-16T15:32:25Z"` {
		t.Errorf("Marshal = %s", out)
	}
}

func TestJSONTimeScan(t *testing.T) {
	var jt JSONTime
	when := time.Date(2025, 5, 16, 15, 32, 25, 0, time.UTC)

	if err := jt.Scan(when); err != nil {
		t.Fatalf("Scan(time.Time): %v", err)
	}
	if !time.Time(jt).Equal(when) {
		t.Errorf("got %v", time.Time(jt))
	}

	if err := jt.Scan(nil); err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if !time.Time(jt).IsZero() {
		t.Errorf("Scan(nil) should zero the value, got %v", time.Time(jt))
	}

	if err := jt.Scan(42); err == nil {
		t.Error("expected error for unsupported source type")
	}
}
