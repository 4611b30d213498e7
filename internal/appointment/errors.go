package appointment

import "errors"

var (
	ErrInvalidDate           = errors.New("date must be in DD-MM-YYYY format")
	ErrInvalidDateTime       = errors.New("datetime must be in DD-MM-YYYY HH:MM format")
	ErrInvalidPatientID      = errors.New("patient id must be a 7 or 8 digit number")
	ErrInvalidDoctorName     = errors.New("unknown doctor name")
	ErrInvalidSpecialization = errors.New("unknown specialization")

	// ErrSlotNotFound: no slot row exists for the doctor at that datetime.
	ErrSlotNotFound = errors.New("slot not found")
	// ErrSlotAlreadyBooked: the slot exists but another patient holds it.
	ErrSlotAlreadyBooked = errors.New("slot already booked")
	// ErrBookingNotFound: no booking held by this patient matches the cancel key.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrNewSlotUnavailable: reschedule target is missing or taken.
	ErrNewSlotUnavailable = errors.New("new slot unavailable")
)
