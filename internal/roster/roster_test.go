package roster

import (
	"context"
	"errors"
	"testing"
	"time"

	"team-awesome/internal/model"

	"github.com/stretchr/testify/require"
)

type fakePersister struct {
	calls chan []int
	err   error
}

func newFakePersister(err error) *fakePersister {
	return &fakePersister{calls: make(chan []int, 8), err: err}
}

func (f *fakePersister) UpdateOrder(ctx context.Context, ids []int) error {
	f.calls <- append([]int(nil), ids...)
	return f.err
}

func (f *fakePersister) wait(t *testing.T) []int {
	t.Helper()
	select {
	case ids := <-f.calls:
		return ids
	case <-time.After(2 * time.Second):
		t.Fatal("persist was never called")
		return nil
	}
}

func members(ids ...int) []model.MemberView {
	out := make([]model.MemberView, len(ids))
	for i, id := range ids {
		out[i] = model.MemberView{ID: id}
	}
	return out
}

func orderOf(ms []model.MemberView) []int {
	out := make([]int, len(ms))
	for i, m := range ms {
		out[i] = m.ID
	}
	return out
}

func TestDragEndMovesNotSwaps(t *testing.T) {
	p := newFakePersister(nil)
	r := New(p)
	r.Load(members(1, 2, 3, 4))

	// dropping 1 on index 2 shifts 2 and 3 left, it does not swap 1 and 3
	require.True(t, r.DragEnd(context.Background(), 1, 2))
	require.Equal(t, []int{2, 3, 1, 4}, orderOf(r.Members()))
	require.Equal(t, []int{2, 3, 1, 4}, p.wait(t))
}

func TestDragEndBackward(t *testing.T) {
	p := newFakePersister(nil)
	r := New(p)
	r.Load(members(1, 2, 3, 4))

	require.True(t, r.DragEnd(context.Background(), 4, 0))
	require.Equal(t, []int{4, 1, 2, 3}, orderOf(r.Members()))
	require.Equal(t, []int{4, 1, 2, 3}, p.wait(t))
}

func TestDragEndClampsTarget(t *testing.T) {
	p := newFakePersister(nil)
	r := New(p)
	r.Load(members(1, 2, 3))

	require.True(t, r.DragEnd(context.Background(), 1, 99))
	require.Equal(t, []int{2, 3, 1}, orderOf(r.Members()))
	p.wait(t)

	require.True(t, r.DragEnd(context.Background(), 1, -5))
	require.Equal(t, []int{1, 2, 3}, orderOf(r.Members()))
	p.wait(t)
}

func TestDragEndUnknownID(t *testing.T) {
	p := newFakePersister(nil)
	r := New(p)
	r.Load(members(1, 2))

	require.False(t, r.DragEnd(context.Background(), 42, 0))
	require.Equal(t, []int{1, 2}, orderOf(r.Members()))
	select {
	case <-p.calls:
		t.Fatal("persist must not run for an unknown id")
	case <-time.After(50 * time.Millisecond):
	}
}

// A failed write keeps the optimistic order; the UI never sees a revert.
func TestPersistFailureKeepsLocalOrder(t *testing.T) {
	p := newFakePersister(errors.New("db down"))
	r := New(p)
	r.Load(members(1, 2, 3))

	require.True(t, r.DragEnd(context.Background(), 3, 0))
	p.wait(t)
	require.Equal(t, []int{3, 1, 2}, orderOf(r.Members()))
}

// The background write must survive the request context being cancelled
// right after the response goes out.
func TestPersistOutlivesCancelledContext(t *testing.T) {
	p := newFakePersister(nil)
	r := New(p)
	r.Load(members(1, 2))

	ctx, cancel := context.WithCancel(context.Background())
	require.True(t, r.DragEnd(ctx, 2, 0))
	cancel()
	require.Equal(t, []int{2, 1}, p.wait(t))
}

func TestMembersReturnsCopy(t *testing.T) {
	r := New(newFakePersister(nil))
	r.Load(members(1, 2))

	got := r.Members()
	got[0].ID = 99
	require.Equal(t, []int{1, 2}, orderOf(r.Members()))
}

func TestGestureThreshold(t *testing.T) {
	g := NewGesture(0) // 0 falls back to the default threshold

	g.Begin(100, 100)
	g.Move(103, 104) // distance 5, under the default 8
	require.False(t, g.End())

	g.Begin(100, 100)
	g.Move(106, 108) // distance 10
	require.True(t, g.End())
}

func TestGestureLatchesOnceDragging(t *testing.T) {
	g := NewGesture(8)

	g.Begin(0, 0)
	g.Move(20, 0)
	g.Move(0, 0) // back at the origin, still a drag
	require.True(t, g.End())

	// state resets between gestures
	g.Begin(0, 0)
	require.False(t, g.End())
}
