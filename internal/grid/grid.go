// Package grid models the response form's drag-to-fill selection as a small
// state machine: press a cell to set its value and start dragging, every
// cell the pointer enters while dragging is painted with that value, release
// (or leaving the grid) stops painting. A plain click is press + release on
// one cell.
//
// One Grid belongs to one form session. The accumulated selection only
// reaches the service when the form is submitted.
package grid

import (
	"github.com/StudioAP/kaigi-scheduler/internal/model"
	"github.com/StudioAP/kaigi-scheduler/internal/service"
)

type Grid struct {
	slotIDs   []string
	known     map[string]bool
	responses map[string]model.Availability

	dragging  bool
	dragValue model.Availability
}

// New builds a grid for the meeting's slots, all initially unset.
func New(slotIDs []string) *Grid {
	g := &Grid{
		slotIDs:   slotIDs,
		known:     make(map[string]bool, len(slotIDs)),
		responses: make(map[string]model.Availability, len(slotIDs)),
	}
	for _, id := range slotIDs {
		g.known[id] = true
	}
	return g
}

// Press records value for the slot and starts a drag with that value.
// Presses on slots the grid does not know are ignored.
func (g *Grid) Press(slotID string, value model.Availability) {
	if !g.known[slotID] {
		return
	}
	g.responses[slotID] = value
	g.dragging = true
	g.dragValue = value
}

// Enter paints the slot with the current drag value. Outside a drag it does
// nothing.
func (g *Grid) Enter(slotID string) {
	if !g.dragging || !g.known[slotID] {
		return
	}
	g.responses[slotID] = g.dragValue
}

// Release ends the drag.
func (g *Grid) Release() {
	g.dragging = false
}

// Leave is the pointer leaving the grid container, which also ends the drag.
func (g *Grid) Leave() {
	g.dragging = false
}

func (g *Grid) Dragging() bool {
	return g.dragging
}

// Value reports the slot's current selection, if any.
func (g *Grid) Value(slotID string) (model.Availability, bool) {
	v, ok := g.responses[slotID]
	return v, ok
}

// Responses flattens the selection for submission: one response per slot in
// grid order, with unset slots defaulting to unavailable.
func (g *Grid) Responses() []service.ResponseInput {
	out := make([]service.ResponseInput, len(g.slotIDs))
	for i, id := range g.slotIDs {
		v, ok := g.responses[id]
		if !ok {
			v = model.Unavailable
		}
		out[i] = service.ResponseInput{TimeSlotID: id, Availability: v}
	}
	return out
}
