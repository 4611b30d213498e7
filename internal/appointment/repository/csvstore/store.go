package csvstore

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/cchtnn/doctor-appointment-multiagent/internal/appointment"
	"github.com/cchtnn/doctor-appointment-multiagent/internal/appointment/repository"
	pkgLog "github.com/cchtnn/doctor-appointment-multiagent/pkg/log"
)

var header = []string{"doctor_name", "specialization", "date_slot", "is_available", "patient_to_attend"}

// Store keeps the slot table in a single CSV file. A mutex serializes
// writers so concurrent requests cannot interleave a load-modify-save.
type Store struct {
	l    pkgLog.Logger
	path string
	mu   sync.Mutex
}

var _ repository.SlotRepository = (*Store)(nil)

func New(l pkgLog.Logger, path string) *Store {
	return &Store{l: l, path: path}
}

func (s *Store) Load(ctx context.Context) ([]appointment.Slot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *Store) load(ctx context.Context) ([]appointment.Slot, error) {
	f, err := os.Open(s.path)
	if err != nil {
		s.l.Errorf(ctx, "csvstore.Store.load: open %s: %v", s.path, err)
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		s.l.Errorf(ctx, "csvstore.Store.load: parse %s: %v", s.path, err)
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csvstore: %s is empty", s.path)
	}

	slots := make([]appointment.Slot, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("csvstore: row %d has %d columns, want %d", i+2, len(rec), len(header))
		}
		slot, err := parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("csvstore: row %d: %w", i+2, err)
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

func (s *Store) Save(ctx context.Context, slots []appointment.Slot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, slots)
}

func (s *Store) save(ctx context.Context, slots []appointment.Slot) error {
	// Write to a sibling temp file and rename so a crash mid-write never
	// leaves a truncated table behind.
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".slots-*.csv")
	if err != nil {
		s.l.Errorf(ctx, "csvstore.Store.save: create temp: %v", err)
		return err
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		tmp.Close()
		return err
	}
	for _, slot := range slots {
		if err := w.Write(formatRow(slot)); err != nil {
			tmp.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		s.l.Errorf(ctx, "csvstore.Store.save: rename: %v", err)
		return err
	}
	return nil
}

// Update runs fn against the current table under the writer lock and
// persists the result when fn succeeds.
func (s *Store) Update(ctx context.Context, fn func(slots []appointment.Slot) ([]appointment.Slot, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	slots, err := s.load(ctx)
	if err != nil {
		return err
	}
	updated, err := fn(slots)
	if err != nil {
		return err
	}
	return s.save(ctx, updated)
}

func parseRow(rec []string) (appointment.Slot, error) {
	slot := appointment.Slot{
		DoctorName:     strings.ToLower(strings.TrimSpace(rec[0])),
		Specialization: strings.ToLower(strings.TrimSpace(rec[1])),
		DateSlot:       strings.TrimSpace(rec[2]),
	}

	switch strings.ToLower(strings.TrimSpace(rec[3])) {
	case "true", "1":
		slot.IsAvailable = true
	case "false", "0":
		slot.IsAvailable = false
	default:
		return appointment.Slot{}, fmt.Errorf("bad is_available value %q", rec[3])
	}

	raw := strings.TrimSpace(rec[4])
	if raw != "" {
		// Tables exported from other tooling carry ids as floats ("1000082.0").
		raw = strings.TrimSuffix(raw, ".0")
		id, err := strconv.Atoi(raw)
		if err != nil {
			return appointment.Slot{}, fmt.Errorf("bad patient_to_attend value %q", rec[4])
		}
		slot.PatientID = &id
	}
	return slot, nil
}

func formatRow(slot appointment.Slot) []string {
	avail := "False"
	if slot.IsAvailable {
		avail = "True"
	}
	patient := ""
	if slot.PatientID != nil {
		patient = strconv.Itoa(*slot.PatientID)
	}
	return []string{slot.DoctorName, slot.Specialization, slot.DateSlot, avail, patient}
}
