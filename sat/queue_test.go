package sat

import "testing"

func TestLitQueue_PushPop_FIFO(t *testing.T) {
	q := newLitQueue(2)

	want := []Literal{10, 11, 12, 13, 14}
	for _, l := range want {
		q.push(l)
	}
	if q.isEmpty() {
		t.Fatalf("isEmpty() = true after pushes")
	}

	var got []Literal
	for !q.isEmpty() {
		got = append(got, q.pop())
	}

	if len(got) != len(want) {
		t.Fatalf("got %d literals, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pop #%d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLitQueue_ResizePreservesWrappedOrder(t *testing.T) {
	q := newLitQueue(4)

	// Fill, drain some, refill so start wraps around before growing past
	// capacity, exercising the copy-in-two-pieces path in resize.
	for _, l := range []Literal{1, 2, 3, 4} {
		q.push(l)
	}
	q.pop()
	q.pop()
	for _, l := range []Literal{5, 6, 7} {
		q.push(l)
	}

	want := []Literal{3, 4, 5, 6, 7}
	var got []Literal
	for !q.isEmpty() {
		got = append(got, q.pop())
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pop #%d = %v, want %v (got=%v)", i, got[i], want[i], got)
		}
	}
}

func TestNextPow2(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 4: 4, 5: 8, 17: 32}
	for in, want := range cases {
		if got := nextPow2(in); got != want {
			t.Errorf("nextPow2(%d) = %d, want %d", in, got, want)
		}
	}
}
