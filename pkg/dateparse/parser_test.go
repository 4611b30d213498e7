package dateparse

import "testing"

func TestFindDate(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{"literal", "check availability on 08-08-2024 please", "08-08-2024", true},
		{"spelled out", "is a general dentist available on 8 august 2024?", "08-08-2024", true},
		{"ordinal", "book me for the 8th august 2024", "08-08-2024", true},
		{"no year", "free on 8 august at 8 pm?", "08-08-2024", true},
		{"with of", "the 3rd of september 2024", "03-09-2024", true},
		{"none", "I would like an appointment", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := FindDate(tt.text)
			if found != tt.found {
				t.Fatalf("found = %v, want %v", found, tt.found)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFindTime(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{"24 hour", "the slot at 20:00", "20:00", true},
		{"pm with minutes", "around 8:30 pm works", "20:30", true},
		{"pm hour only", "book it at 8 pm", "20:00", true},
		{"noon", "come at 12 pm", "12:00", true},
		{"midnight", "emergency at 12 am", "00:00", true},
		{"none", "any time is fine", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := FindTime(tt.text)
			if found != tt.found {
				t.Fatalf("found = %v, want %v", found, tt.found)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTo12Hour(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"20:00", "8:00 PM"},
		{"09:15", "9:15 AM"},
		{"00:30", "12:30 AM"},
		{"12:00", "12:00 PM"},
	}

	for _, tt := range tests {
		if got := To12Hour(tt.in); got != tt.want {
			t.Errorf("To12Hour(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
