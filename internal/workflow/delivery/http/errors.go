package http

import (
	"errors"

	"github.com/cchtnn/doctor-appointment-multiagent/internal/appointment"
)

var errInvalidRequest = errors.New("invalid request")

// mapError translates use-case errors into client-facing ones. Only the id
// shape can fail here; everything else resolves inside the loop.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, appointment.ErrInvalidPatientID):
		return appointment.ErrInvalidPatientID
	default:
		return errInvalidRequest
	}
}
