package csvstore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cchtnn/doctor-appointment-multiagent/internal/appointment"
	pkgLog "github.com/cchtnn/doctor-appointment-multiagent/pkg/log"
)

const sampleCSV = `doctor_name,specialization,date_slot,is_available,patient_to_attend
emily johnson,general_dentist,08-08-2024 20:00,True,
john doe,orthodontist,05-08-2024 08:30,False,1000082.0
jane smith,cosmetic_dentist,05-08-2024 09:00,True,
`

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doctor_availability.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	return New(pkgLog.Init(pkgLog.ZapConfig{Level: "error", Mode: "development"}), path)
}

func TestStoreLoad(t *testing.T) {
	s := newTestStore(t)

	slots, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(slots) != 3 {
		t.Fatalf("got %d slots, want 3", len(slots))
	}

	free := slots[0]
	if free.DoctorName != "emily johnson" || !free.IsAvailable || free.PatientID != nil {
		t.Errorf("unexpected first slot: %+v", free)
	}

	taken := slots[1]
	if taken.IsAvailable {
		t.Error("booked slot parsed as available")
	}
	if taken.PatientID == nil || *taken.PatientID != 1000082 {
		t.Errorf("float-form patient id not parsed: %+v", taken.PatientID)
	}
	if taken.DateSlot != "05-08-2024 08:30" {
		t.Errorf("DateSlot = %q", taken.DateSlot)
	}
}

func TestStoreSaveRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	slots, err := s.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	patient := 7654321
	slots[0].IsAvailable = false
	slots[0].PatientID = &patient

	if err := s.Save(ctx, slots); err != nil {
		t.Fatalf("Save: %v", err)
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if lines[0] != strings.Join([]string{"doctor_name", "specialization", "date_slot", "is_available", "patient_to_attend"}, ",") {
		t.Errorf("header rewritten as %q", lines[0])
	}
	if lines[1] != "emily johnson,general_dentist,08-08-2024 20:00,False,7654321" {
		t.Errorf("booked row = %q", lines[1])
	}

	reloaded, err := s.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded[0].PatientID == nil || *reloaded[0].PatientID != patient {
		t.Error("patient id lost across save/load")
	}
}

func TestStoreUpdate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.Update(ctx, func(slots []appointment.Slot) ([]appointment.Slot, error) {
		slots[2].IsAvailable = false
		return slots, nil
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	slots, err := s.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if slots[2].IsAvailable {
		t.Error("mutation not persisted")
	}
}

func TestStoreUpdateAbortLeavesFileUntouched(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	wantErr := appointment.ErrSlotAlreadyBooked
	err := s.Update(ctx, func(slots []appointment.Slot) ([]appointment.Slot, error) {
		slots[0].IsAvailable = false
		return slots, wantErr
	})
	if err != wantErr {
		t.Fatalf("Update error = %v, want %v", err, wantErr)
	}

	slots, err := s.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !slots[0].IsAvailable {
		t.Error("aborted update still wrote the file")
	}
}

func TestStoreLoadRejectsBadRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	bad := "doctor_name,specialization,date_slot,is_available,patient_to_attend\n" +
		"emily johnson,general_dentist,08-08-2024 20:00,maybe,\n"
	if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}
	s := New(pkgLog.Init(pkgLog.ZapConfig{Level: "error", Mode: "development"}), path)

	if _, err := s.Load(context.Background()); err == nil {
		t.Error("bad is_available value accepted")
	}
}
