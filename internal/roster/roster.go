// Package roster implements the drag-and-drop reorder protocol: an
// ordered member list that applies a drop immediately and persists the new
// order in the background, without blocking or rolling back.
package roster

import (
	"context"
	"math"
	"sync"

	"team-awesome/internal/logger"
	"team-awesome/internal/model"
)

// Persister stores a confirmed ordering. *store.Store satisfies it.
type Persister interface {
	UpdateOrder(ctx context.Context, ids []int) error
}

type Roster struct {
	mu      sync.Mutex
	members []model.MemberView
	persist Persister
}

func New(p Persister) *Roster { return &Roster{persist: p} }

// Load replaces the held ordering with a fresh snapshot from the store.
func (r *Roster) Load(members []model.MemberView) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.members = append(r.members[:0:0], members...)
}

// Members returns a copy of the current ordering.
func (r *Roster) Members() []model.MemberView {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.MemberView(nil), r.members...)
}

// DragEnd moves the member with movedID to the target index: the element
// is removed and reinserted, not swapped. The new order takes effect
// immediately; persistence runs in a background goroutine and a failure is
// logged, never reverted. Two overlapping drags race with no sequencing
// guarantee, last write wins per row.
func (r *Roster) DragEnd(ctx context.Context, movedID, target int) bool {
	r.mu.Lock()
	from := -1
	for i, m := range r.members {
		if m.ID == movedID {
			from = i
			break
		}
	}
	if from < 0 {
		r.mu.Unlock()
		return false
	}
	if target < 0 {
		target = 0
	}
	if target >= len(r.members) {
		target = len(r.members) - 1
	}
	moved := r.members[from]
	r.members = append(r.members[:from], r.members[from+1:]...)
	r.members = append(r.members[:target], append([]model.MemberView{moved}, r.members[target:]...)...)

	ids := make([]int, len(r.members))
	for i, m := range r.members {
		ids[i] = m.ID
	}
	r.mu.Unlock()

	// The interaction path does not wait for the write; the optimistic
	// order stays authoritative even if it never lands.
	go func(ctx context.Context) {
		if err := r.persist.UpdateOrder(ctx, ids); err != nil {
			logger.Warn("roster: persist order failed, keeping local order", "err", err)
		}
	}(context.WithoutCancel(ctx))

	return true
}

// DefaultDragThreshold is how far the pointer has to travel before a press
// counts as a drag instead of a click.
const DefaultDragThreshold = 8.0

// Gesture disambiguates click-to-open-detail from drag-to-reorder by
// pointer travel distance. Begin, any number of Moves, then End.
type Gesture struct {
	startX, startY float64
	threshold      float64
	active         bool
	dragging       bool
}

func NewGesture(threshold float64) *Gesture {
	if threshold <= 0 {
		threshold = DefaultDragThreshold
	}
	return &Gesture{threshold: threshold}
}

func (g *Gesture) Begin(x, y float64) {
	g.startX, g.startY = x, y
	g.active = true
	g.dragging = false
}

// Move updates the gesture; once the pointer passes the threshold the
// gesture is a drag for the rest of its life, it cannot drop back to a
// click by returning near the origin.
func (g *Gesture) Move(x, y float64) {
	if !g.active || g.dragging {
		return
	}
	if math.Hypot(x-g.startX, y-g.startY) >= g.threshold {
		g.dragging = true
	}
}

// End finishes the gesture and reports whether it was a drag; false means
// the press was a click.
func (g *Gesture) End() bool {
	dragging := g.active && g.dragging
	g.active = false
	g.dragging = false
	return dragging
}
