package windows

import (
	"errors"
	"testing"
	"time"
)

func TestCreateAndGet(t *testing.T) {
	reg := NewRegistry()

	info, err := reg.Create("settings", "Settings", 640, 480)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if info.Label != "settings" || info.Width != 640 || info.Height != 480 {
		t.Fatalf("unexpected window info: %+v", info)
	}
	if info.CreatedUnix == 0 {
		t.Fatal("created timestamp not set")
	}

	got, err := reg.Get("settings")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != info {
		t.Fatalf("get returned %+v, created %+v", got, info)
	}
}

func TestCreateAppliesDefaultSize(t *testing.T) {
	reg := NewRegistry()
	info, err := reg.Create("popup", "Popup", 0, -5)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if info.Width != defaultWidth || info.Height != defaultHeight {
		t.Fatalf("expected default size, got %dx%d", info.Width, info.Height)
	}
}

func TestCreateRejectsDuplicateAndReservedLabels(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.Create("notes", "Notes", 0, 0); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := reg.Create("notes", "Notes again", 0, 0); err == nil {
		t.Fatal("expected duplicate label to fail")
	}
	if _, err := reg.Create(MainLabel, "Main", 0, 0); err == nil {
		t.Fatal("expected reserved label to fail")
	}
	if _, err := reg.Create("   ", "Blank", 0, 0); err == nil {
		t.Fatal("expected blank label to fail")
	}
}

func TestCloseAndNotFound(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.Create("notes", "Notes", 0, 0); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := reg.Close("notes"); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if err := reg.Close("notes"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := reg.Get("notes"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := reg.Close(MainLabel); err == nil {
		t.Fatal("closing the host window must be rejected")
	}
}

func TestListOrdering(t *testing.T) {
	reg := NewRegistry()
	base := time.Unix(1000, 0)
	step := 0
	reg.now = func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Second)
	}

	for _, label := range []string{"c", "a", "b"} {
		if _, err := reg.Create(label, label, 0, 0); err != nil {
			t.Fatalf("create %q failed: %v", label, err)
		}
	}

	list := reg.List()
	if len(list) != 3 {
		t.Fatalf("expected 3 windows, got %d", len(list))
	}
	if list[0].Label != "c" || list[1].Label != "a" || list[2].Label != "b" {
		t.Fatalf("expected creation order, got %+v", list)
	}
	if reg.Count() != 3 {
		t.Fatalf("expected count 3, got %d", reg.Count())
	}
}
