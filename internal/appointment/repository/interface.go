package repository

import (
	"context"

	"github.com/cchtnn/doctor-appointment-multiagent/internal/appointment"
)

// SlotRepository reads and rewrites the whole slot table. The store is small
// enough that mutations work as load-modify-save; Update runs that cycle
// atomically with respect to other callers.
type SlotRepository interface {
	Load(ctx context.Context) ([]appointment.Slot, error)
	Save(ctx context.Context, slots []appointment.Slot) error
	Update(ctx context.Context, fn func(slots []appointment.Slot) ([]appointment.Slot, error)) error
}
