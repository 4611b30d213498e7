package appointment

import "testing"

func TestValidateDate(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{name: "valid", date: "08-08-2024", wantErr: false},
		{name: "valid end of month", date: "31-12-2024", wantErr: false},
		{name: "iso layout rejected", date: "2024-08-08", wantErr: true},
		{name: "single digit day", date: "8-08-2024", wantErr: true},
		{name: "impossible day", date: "32-01-2024", wantErr: true},
		{name: "impossible month", date: "01-13-2024", wantErr: true},
		{name: "datetime rejected", date: "08-08-2024 10:00", wantErr: true},
		{name: "empty", date: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDate(tc.date)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateDate(%q) error = %v, wantErr %v", tc.date, err, tc.wantErr)
			}
		})
	}
}

func TestValidateDateTime(t *testing.T) {
	tests := []struct {
		name    string
		dt      string
		wantErr bool
	}{
		{name: "valid morning", dt: "05-08-2024 08:30", wantErr: false},
		{name: "valid evening", dt: "08-08-2024 20:00", wantErr: false},
		{name: "midnight", dt: "08-08-2024 00:00", wantErr: false},
		{name: "hour 24 rejected", dt: "08-08-2024 24:00", wantErr: true},
		{name: "single digit hour", dt: "08-08-2024 8:30", wantErr: true},
		{name: "date only", dt: "08-08-2024", wantErr: true},
		{name: "12 hour suffix", dt: "08-08-2024 08:30 PM", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDateTime(tc.dt)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateDateTime(%q) error = %v, wantErr %v", tc.dt, err, tc.wantErr)
			}
		})
	}
}

func TestValidatePatientID(t *testing.T) {
	tests := []struct {
		name    string
		id      int
		wantErr bool
	}{
		{name: "seven digits", id: 1000082, wantErr: false},
		{name: "eight digits", id: 10000082, wantErr: false},
		{name: "six digits", id: 100008, wantErr: true},
		{name: "nine digits", id: 100000082, wantErr: true},
		{name: "zero", id: 0, wantErr: true},
		{name: "negative", id: -1000082, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePatientID(tc.id)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidatePatientID(%d) error = %v, wantErr %v", tc.id, err, tc.wantErr)
			}
		})
	}
}

func TestValidateDoctorName(t *testing.T) {
	if err := ValidateDoctorName("emily johnson"); err != nil {
		t.Errorf("known doctor rejected: %v", err)
	}
	if err := ValidateDoctorName("Emily Johnson"); err != nil {
		t.Errorf("casing should not matter: %v", err)
	}
	if err := ValidateDoctorName(" kevin anderson "); err != nil {
		t.Errorf("surrounding spaces should be trimmed: %v", err)
	}
	if err := ValidateDoctorName("gregory house"); err == nil {
		t.Error("unknown doctor accepted")
	}
}

func TestValidateSpecialization(t *testing.T) {
	if err := ValidateSpecialization("general_dentist"); err != nil {
		t.Errorf("known specialization rejected: %v", err)
	}
	if err := ValidateSpecialization("cardiologist"); err == nil {
		t.Error("unknown specialization accepted")
	}
}

func TestTitleCase(t *testing.T) {
	if got := TitleCase("emily johnson"); got != "Emily Johnson" {
		t.Errorf("TitleCase = %q, want %q", got, "Emily Johnson")
	}
	if got := TitleCase("JOHN DOE"); got != "John Doe" {
		t.Errorf("TitleCase = %q, want %q", got, "John Doe")
	}
}

func TestSlotDateTime(t *testing.T) {
	s := Slot{DateSlot: "08-08-2024 20:00"}
	if s.Date() != "08-08-2024" {
		t.Errorf("Date() = %q", s.Date())
	}
	if s.Time() != "20:00" {
		t.Errorf("Time() = %q", s.Time())
	}
}
