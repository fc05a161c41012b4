package sqlite

import (
	"testing"
	"time"
)

func TestFormatTimeForDB(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	in := time.Date(2024, 3, 1, 11, 30, 0, 500, loc)

	got := FormatTimeForDB(in)
	want := "2024-03-01T10:30:00.0000005Z"
	if got != want {
		t.Errorf("FormatTimeForDB() = %q, want %q", got, want)
	}

	back, err := ParseTimeFromDB(got)
	if err != nil {
		t.Fatalf("ParseTimeFromDB() error = %v", err)
	}
	if !back.Equal(in) {
		t.Errorf("round trip = %v, want %v", back, in)
	}
}

func TestParseTimeFromDB(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Time
		wantErr bool
	}{
		{input: "2024-03-01T10:00:00Z", want: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{input: "2024-03-01T12:00:00+02:00", want: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{input: "2024-03-01 10:00:00", want: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{input: "", wantErr: true},
		{input: "01/03/2024", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimeFromDB(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseTimeFromDB(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTimeFromDB(%q) error = %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseTimeFromDB(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
