package sat

import "testing"

func TestWatchVectors_AddAndIterate(t *testing.T) {
	w := newWatchVectors()
	w.grow(4)

	l := Literal(2)
	w.add(l, binaryWatch(Literal(5)))
	w.add(l, clauseWatch(Handle(7), Literal(9)))

	list := w.lists[l]
	if len(list) != 2 {
		t.Fatalf("len(lists[%v]) = %d, want 2", l, len(list))
	}
	if !list[0].isBinary || list[0].lit != Literal(5) {
		t.Errorf("entry 0 = %+v, want binary watch for literal 5", list[0])
	}
	if list[1].isBinary || list[1].handle != Handle(7) || list[1].blocker != Literal(9) {
		t.Errorf("entry 1 = %+v, want clause watch {handle:7, blocker:9}", list[1])
	}
}

func TestWatchVectors_RemoveClausePreservesOrderAndSkipsBinaries(t *testing.T) {
	w := newWatchVectors()
	w.grow(2)

	l := Literal(0)
	w.add(l, binaryWatch(Literal(1)))
	w.add(l, clauseWatch(Handle(1), Literal(2)))
	w.add(l, binaryWatch(Literal(3)))
	w.add(l, clauseWatch(Handle(2), Literal(4)))
	w.add(l, clauseWatch(Handle(1), Literal(5)))

	w.removeClause(l, Handle(1))

	list := w.lists[l]
	if len(list) != 3 {
		t.Fatalf("len(lists) after removeClause = %d, want 3", len(list))
	}
	if !list[0].isBinary || list[0].lit != Literal(1) {
		t.Errorf("entry 0 = %+v, want binary watch for literal 1", list[0])
	}
	if !list[1].isBinary || list[1].lit != Literal(3) {
		t.Errorf("entry 1 = %+v, want binary watch for literal 3", list[1])
	}
	if list[2].isBinary || list[2].handle != Handle(2) {
		t.Errorf("entry 2 = %+v, want clause watch for handle 2", list[2])
	}
}

func TestWatchVectors_Clear(t *testing.T) {
	w := newWatchVectors()
	w.grow(1)

	l := Literal(0)
	w.add(l, binaryWatch(Literal(1)))
	w.add(l, binaryWatch(Literal(2)))

	w.clear(l)
	if got := len(w.lists[l]); got != 0 {
		t.Errorf("len(lists) after clear = %d, want 0", got)
	}
}

func TestGrowCapacity_RoundsUpToMultipleOf4(t *testing.T) {
	var list []watchEntry
	grown := growCapacity(list)
	if cap(grown) != 4 {
		t.Errorf("growCapacity(nil) cap = %d, want 4", cap(grown))
	}
	if len(grown) != 0 {
		t.Errorf("growCapacity(nil) len = %d, want 0", len(grown))
	}

	list = make([]watchEntry, 8, 8)
	grown = growCapacity(list)
	// old=8, next=8+4=12, already a multiple of 4.
	if cap(grown) != 12 {
		t.Errorf("growCapacity(cap=8) cap = %d, want 12", cap(grown))
	}
	if len(grown) != 8 {
		t.Errorf("growCapacity(cap=8) len = %d, want 8", len(grown))
	}
}
