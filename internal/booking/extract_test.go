package booking

import "testing"

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Extraction
	}{
		{
			name: "specialization listing with 12-hour time",
			text: "Available general dentist appointments on 08-08-2024:\n\nDr. Emily Johnson:\n8:00 PM",
			want: Extraction{Doctor: "emily johnson", Date: "08-08-2024", Time: "20:00"},
		},
		{
			name: "doctor listing with 24-hour time",
			text: "Availability for Dr. John Doe on 05-08-2024:\nAvailable slots: 08:30",
			want: Extraction{Doctor: "john doe", Date: "05-08-2024", Time: "08:30"},
		},
		{
			name: "noon stays 12",
			text: "Dr. Jane Smith has a slot at 12:30 PM on 08-08-2024",
			want: Extraction{Doctor: "jane smith", Date: "08-08-2024", Time: "12:30"},
		},
		{
			name: "midnight becomes zero hours",
			text: "Dr. Jane Smith has a slot at 12:15 AM on 08-08-2024",
			want: Extraction{Doctor: "jane smith", Date: "08-08-2024", Time: "00:15"},
		},
		{
			name: "morning time",
			text: "Dr. Susan Davis: 9:00 AM on 10-08-2024",
			want: Extraction{Doctor: "susan davis", Date: "10-08-2024", Time: "09:00"},
		},
		{
			name: "nothing extractable",
			text: "I could not find anything useful.",
			want: Extraction{},
		},
		{
			name: "partial: date only",
			text: "No available slots for general dentist on 09-08-2024. All slots are booked.",
			want: Extraction{Date: "09-08-2024"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Extract(tc.text)
			if got != tc.want {
				t.Errorf("Extract(%q) = %+v, want %+v", tc.text, got, tc.want)
			}
		})
	}
}

func TestExtractionComplete(t *testing.T) {
	full := Extraction{Doctor: "emily johnson", Date: "08-08-2024", Time: "20:00"}
	if !full.Complete() {
		t.Error("complete extraction reported incomplete")
	}
	for _, partial := range []Extraction{
		{Date: "08-08-2024", Time: "20:00"},
		{Doctor: "emily johnson", Time: "20:00"},
		{Doctor: "emily johnson", Date: "08-08-2024"},
		{},
	} {
		if partial.Complete() {
			t.Errorf("%+v reported complete", partial)
		}
	}
}
