package appointment

import "strings"

// Slot is one bookable unit of doctor capacity.
// DateSlot is stored as "DD-MM-YYYY HH:MM" (24-hour), matching the store file.
type Slot struct {
	DoctorName     string
	Specialization string
	DateSlot       string
	IsAvailable    bool
	PatientID      *int // nil when the slot is unassigned
}

// Date returns the DD-MM-YYYY part of the slot key.
func (s Slot) Date() string {
	if i := strings.IndexByte(s.DateSlot, ' '); i >= 0 {
		return s.DateSlot[:i]
	}
	return s.DateSlot
}

// Time returns the HH:MM part of the slot key, empty if absent.
func (s Slot) Time() string {
	if i := strings.IndexByte(s.DateSlot, ' '); i >= 0 {
		return s.DateSlot[i+1:]
	}
	return ""
}

// DoctorNames is the closed set of doctors in the practice.
var DoctorNames = []string{
	"kevin anderson", "robert martinez", "susan davis", "daniel miller",
	"sarah wilson", "michael green", "lisa brown", "jane smith",
	"emily johnson", "john doe",
}

// Specializations is the closed set of specialization values.
var Specializations = []string{
	"general_dentist", "cosmetic_dentist", "prosthodontist", "pediatric_dentist",
	"emergency_dentist", "oral_surgeon", "orthodontist",
}

// --- UseCase Inputs ---

type CheckByDoctorInput struct {
	Date       string // DD-MM-YYYY
	DoctorName string // lowercase
}

type CheckBySpecializationInput struct {
	Date           string // DD-MM-YYYY
	Specialization string
}

type SetInput struct {
	DateTime   string // DD-MM-YYYY HH:MM
	PatientID  int
	DoctorName string
}

type CancelInput struct {
	DateTime   string
	PatientID  int
	DoctorName string
}

type RescheduleInput struct {
	OldDateTime string
	NewDateTime string
	PatientID   int
	DoctorName  string
}

// --- UseCase Outputs ---

// CheckByDoctorOutput reports a single doctor's open times on a date.
// SlotsExist distinguishes "fully booked" from "not scheduled at all".
type CheckByDoctorOutput struct {
	DoctorName     string
	Date           string
	AvailableTimes []string
	SlotsExist     bool
}

// DoctorAvailability groups one doctor's open times.
type DoctorAvailability struct {
	DoctorName string
	Times      []string
}

// CheckBySpecializationOutput reports every doctor of a specialization with
// open times on a date.
type CheckBySpecializationOutput struct {
	Specialization string
	Date           string
	Doctors        []DoctorAvailability
	SlotsExist     bool
}
