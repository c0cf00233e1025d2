package grid_test

import (
	"testing"

	"github.com/StudioAP/kaigi-scheduler/internal/grid"
	"github.com/StudioAP/kaigi-scheduler/internal/model"
)

func TestClickSetsSingleSlot(t *testing.T) {
	g := grid.New([]string{"a", "b", "c"})

	g.Press("b", model.Available)
	g.Release()

	if v, ok := g.Value("b"); !ok || v != model.Available {
		t.Errorf("slot b = %q, %v; want available", v, ok)
	}
	if _, ok := g.Value("a"); ok {
		t.Error("slot a should stay unset")
	}
}

func TestDragPaintsEnteredSlots(t *testing.T) {
	g := grid.New([]string{"a", "b", "c", "d"})

	g.Press("a", model.Tentative)
	g.Enter("b")
	g.Enter("c")
	g.Release()

	for _, id := range []string{"a", "b", "c"} {
		if v, _ := g.Value(id); v != model.Tentative {
			t.Errorf("slot %s = %q, want tentative", id, v)
		}
	}
	if _, ok := g.Value("d"); ok {
		t.Error("slot d was never entered, should stay unset")
	}
}

func TestEnterOutsideDragIsIgnored(t *testing.T) {
	g := grid.New([]string{"a", "b"})

	g.Enter("a")
	if _, ok := g.Value("a"); ok {
		t.Error("enter without press should not paint")
	}

	g.Press("a", model.Available)
	g.Release()
	g.Enter("b")
	if _, ok := g.Value("b"); ok {
		t.Error("enter after release should not paint")
	}
}

func TestLeaveEndsDrag(t *testing.T) {
	g := grid.New([]string{"a", "b"})

	g.Press("a", model.Unavailable)
	g.Leave()
	if g.Dragging() {
		t.Error("leaving the container should end the drag")
	}
	g.Enter("b")
	if _, ok := g.Value("b"); ok {
		t.Error("slot b painted after the drag ended")
	}
}

func TestRepaintOverwrites(t *testing.T) {
	g := grid.New([]string{"a"})

	g.Press("a", model.Available)
	g.Release()
	g.Press("a", model.Unavailable)
	g.Release()

	if v, _ := g.Value("a"); v != model.Unavailable {
		t.Errorf("slot a = %q, want unavailable after repaint", v)
	}
}

func TestUnknownSlotIgnored(t *testing.T) {
	g := grid.New([]string{"a"})

	g.Press("ghost", model.Available)
	if g.Dragging() {
		t.Error("press on unknown slot should not start a drag")
	}
}

func TestResponsesDefaultsUnsetToUnavailable(t *testing.T) {
	g := grid.New([]string{"a", "b", "c"})

	g.Press("a", model.Available)
	g.Enter("b")
	g.Release()

	got := g.Responses()
	if len(got) != 3 {
		t.Fatalf("want one response per slot, got %d", len(got))
	}
	want := []model.Availability{model.Available, model.Available, model.Unavailable}
	for i, r := range got {
		if r.Availability != want[i] {
			t.Errorf("slot %s = %q, want %q", r.TimeSlotID, r.Availability, want[i])
		}
	}
}
