package pickup

import (
	"testing"
	"time"
)

func TestParseInstantInvalidDates(t *testing.T) {
	tests := []struct {
		name string
		date string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"two parts hyphen", "2024-3"},
		{"two parts slash", "03/05"},
		{"four parts", "2024-03-05-01"},
		{"non integer day", "03/xx/2024"},
		{"non integer year", "2024x-03-05"},
		{"iso timestamp", "2024-03-05T10:00:00"},
		{"words", "next tuesday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseInstantIn(time.UTC, tt.date, "2:30pm")
			if got.Valid() {
				t.Fatalf("expected invalid, got %s", got)
			}
		})
	}
}

func TestParseInstantLocal(t *testing.T) {
	tests := []struct {
		date, clock string
		want        time.Time
	}{
		{"2024-03-05", "2:30pm", time.Date(2024, 3, 5, 14, 30, 0, 0, time.Local)},
		{"03/05/2024", "2:30", time.Date(2024, 3, 5, 14, 30, 0, 0, time.Local)},
		{"2024-03-05", "9:00am", time.Date(2024, 3, 5, 9, 0, 0, 0, time.Local)},
	}

	for _, tt := range tests {
		t.Run(tt.date+" "+tt.clock, func(t *testing.T) {
			got, ok := ParseInstant(tt.date, tt.clock).Time()
			if !ok {
				t.Fatalf("expected valid instant")
			}
			if !got.Equal(tt.want) {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParseInstantClock(t *testing.T) {
	tests := []struct {
		name      string
		clock     string
		hour, min int
	}{
		{"pm", "2:30pm", 14, 30},
		{"pm with space", "2:30 PM", 14, 30},
		{"noon pm", "12:15pm", 12, 15},
		{"midnight am", "12:00am", 0, 0},
		{"morning am", "9:05am", 9, 5},
		{"afternoon heuristic low", "1:00", 13, 0},
		{"afternoon heuristic high", "7:45", 19, 45},
		{"eight stays morning", "8:00", 8, 0},
		{"zero stays midnight", "0:30", 0, 30},
		{"twenty four hour", "16:20", 16, 20},
		{"hour only", "9", 9, 0},
		{"hour only heuristic", "3", 15, 0},
		{"range start", "2:00-3:00", 14, 0},
		{"range start pm", "11:30am - 12:30pm", 11, 30},
		{"empty", "", 0, 0},
		{"garbage", "abc", 0, 0},
		{"bad minute", "10:xx", 10, 0},
		{"early am with marker", "5:00am", 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseInstantIn(time.UTC, "2024-03-05", tt.clock).Time()
			if !ok {
				t.Fatalf("expected valid instant")
			}
			if got.Hour() != tt.hour || got.Minute() != tt.min {
				t.Fatalf("expected %02d:%02d, got %02d:%02d", tt.hour, tt.min, got.Hour(), got.Minute())
			}
		})
	}
}

func TestParseInstantDateFormats(t *testing.T) {
	want := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	for _, date := range []string{"2024-03-05", "03/05/2024", "3/5/2024", "03-05-2024", " 2024-3-5 "} {
		t.Run(date, func(t *testing.T) {
			got, ok := ParseInstantIn(time.UTC, date, "").Time()
			if !ok {
				t.Fatalf("expected valid instant")
			}
			if !got.Equal(want) {
				t.Fatalf("expected %s, got %s", want, got)
			}
		})
	}
}

func TestParseInstantIdempotent(t *testing.T) {
	a := ParseInstantIn(time.UTC, "03/05/2024", "4:15")
	b := ParseInstantIn(time.UTC, "03/05/2024", "4:15")
	if !a.Equal(b) {
		t.Fatalf("expected %s, got %s", a, b)
	}
	if !ParseInstantIn(time.UTC, "", "4:15").Equal(ParseInstantIn(time.UTC, "", "4:15")) {
		t.Fatalf("expected invalid results to compare equal")
	}
}
