package appointment

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	dateRe      = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)
	dateTimeRe  = regexp.MustCompile(`^\d{2}-\d{2}-\d{4} \d{2}:\d{2}$`)
	patientIDRe = regexp.MustCompile(`^\d{7,8}$`)

	doctorSet         = toSet(DoctorNames)
	specializationSet = toSet(Specializations)
)

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// ValidateDate checks the DD-MM-YYYY shape and that the date exists on the
// calendar.
func ValidateDate(date string) error {
	if !dateRe.MatchString(date) {
		return ErrInvalidDate
	}
	if _, err := time.Parse("02-01-2006", date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// ValidateDateTime checks the "DD-MM-YYYY HH:MM" shape, 24-hour clock.
func ValidateDateTime(dt string) error {
	if !dateTimeRe.MatchString(dt) {
		return ErrInvalidDateTime
	}
	if _, err := time.Parse("02-01-2006 15:04", dt); err != nil {
		return ErrInvalidDateTime
	}
	return nil
}

// ValidatePatientID enforces the 7-8 digit identification number rule.
func ValidatePatientID(id int) error {
	if id < 0 {
		return ErrInvalidPatientID
	}
	if !patientIDRe.MatchString(strconv.Itoa(id)) {
		return ErrInvalidPatientID
	}
	return nil
}

// ValidateDoctorName accepts any casing of a known doctor name.
func ValidateDoctorName(name string) error {
	if _, ok := doctorSet[strings.ToLower(strings.TrimSpace(name))]; !ok {
		return ErrInvalidDoctorName
	}
	return nil
}

// ValidateSpecialization accepts only the closed specialization set.
func ValidateSpecialization(spec string) error {
	if _, ok := specializationSet[strings.ToLower(strings.TrimSpace(spec))]; !ok {
		return ErrInvalidSpecialization
	}
	return nil
}

// TitleCase renders a lowercase doctor name for user-facing text,
// e.g. "emily johnson" -> "Emily Johnson".
func TitleCase(name string) string {
	words := strings.Fields(strings.ToLower(name))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
