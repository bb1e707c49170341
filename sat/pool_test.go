package sat

import "testing"

func TestPool_AllocateProblemAndLearned(t *testing.T) {
	p := NewPool()

	ph := p.AllocateProblem([]Literal{2, 4, 6})
	lh := p.AllocateLearned([]Literal{3, 5})

	if ph.Learned() {
		t.Errorf("problem handle reports Learned() = true")
	}
	if !lh.Learned() {
		t.Errorf("learned handle reports Learned() = false")
	}

	if got, want := p.Len(ph), 3; got != want {
		t.Errorf("Len(problem) = %d, want %d", got, want)
	}
	if got, want := p.Len(lh), 2; got != want {
		t.Errorf("Len(learned) = %d, want %d", got, want)
	}
	for i, want := range []Literal{2, 4, 6} {
		if got := p.Lit(ph, i); got != want {
			t.Errorf("Lit(problem, %d) = %v, want %v", i, got, want)
		}
	}

	if got, want := p.NumClauses(false), 1; got != want {
		t.Errorf("NumClauses(problem) = %d, want %d", got, want)
	}
	if got, want := p.NumClauses(true), 1; got != want {
		t.Errorf("NumClauses(learned) = %d, want %d", got, want)
	}
}

func TestPool_SetLitAndSwapLits(t *testing.T) {
	p := NewPool()
	h := p.AllocateProblem([]Literal{10, 20, 30})

	p.SetLit(h, 1, 99)
	if got := p.Lit(h, 1); got != 99 {
		t.Errorf("Lit(1) = %v, want 99", got)
	}

	p.SwapLits(h, 0, 2)
	want := []Literal{30, 99, 10}
	for i, w := range want {
		if got := p.Lit(h, i); got != w {
			t.Errorf("Lit(%d) = %v, want %v", i, got, w)
		}
	}
}

func TestPool_ActivityAndSignatureShareAuxWord(t *testing.T) {
	p := NewPool()
	h := p.AllocateLearned([]Literal{1, 2})

	p.SetActivity(h, 3.5)
	if got := p.Activity(h); got != 3.5 {
		t.Errorf("Activity() = %v, want 3.5", got)
	}

	// Signature aliases the same auxiliary word as Activity; writing one
	// overwrites the other, as the preprocessing and learned-clause phases
	// never touch the same arena at once.
	p.SetSignature(h, 0xABCD)
	if got := p.Signature(h); got != 0xABCD {
		t.Errorf("Signature() = %v, want 0xABCD", got)
	}
}

func TestPool_MarkSurvivesCompactionAndRelocates(t *testing.T) {
	p := NewPool()
	h1 := p.AllocateLearned([]Literal{1, 2})
	h2 := p.AllocateLearned([]Literal{3, 4})
	h3 := p.AllocateLearned([]Literal{5, 6})

	p.Mark(h2)
	p.Delete(h1)

	relocated := map[Handle]Handle{}
	p.CompactLearned(func(old, new Handle) {
		relocated[old] = new
	})

	if got, want := p.NumClauses(true), 2; got != want {
		t.Fatalf("NumClauses(learned) after compaction = %d, want %d", got, want)
	}
	newH2, ok := relocated[h2]
	if !ok {
		t.Fatalf("marked clause h2 was not reported by CompactLearned")
	}
	if _, ok := relocated[h3]; ok {
		t.Errorf("unmarked clause h3 was reported by CompactLearned")
	}
	if p.IsMarked(newH2) {
		t.Errorf("relocated clause still marked after compaction")
	}
	if got, want := p.Lit(newH2, 0), Literal(3); got != want {
		t.Errorf("Lit(relocated h2, 0) = %v, want %v", got, want)
	}
}

func TestPool_ShrinkReducesLengthInPlace(t *testing.T) {
	p := NewPool()
	h := p.AllocateProblem([]Literal{1, 2, 3, 4})

	p.Shrink(h, 2)
	if got, want := p.Len(h), 2; got != want {
		t.Errorf("Len() after Shrink = %d, want %d", got, want)
	}
	if got, want := p.Lit(h, 0), Literal(1); got != want {
		t.Errorf("Lit(0) after Shrink = %v, want %v", got, want)
	}
	if got, want := p.Lit(h, 1), Literal(2); got != want {
		t.Errorf("Lit(1) after Shrink = %v, want %v", got, want)
	}
}

func TestPool_EachVisitsLiveClausesOnly(t *testing.T) {
	p := NewPool()
	h1 := p.AllocateProblem([]Literal{1, 2})
	p.AllocateProblem([]Literal{3, 4})
	h3 := p.AllocateProblem([]Literal{5, 6})

	p.Delete(h1)

	var seen []Handle
	p.Each(false, func(h Handle) bool {
		seen = append(seen, h)
		return true
	})

	if len(seen) != 2 {
		t.Fatalf("Each visited %d clauses, want 2 (deleted clause should be skipped)", len(seen))
	}
	if seen[len(seen)-1] != h3 {
		t.Errorf("last clause visited = %v, want %v", seen[len(seen)-1], h3)
	}
}

func TestPool_EachStopsOnFalse(t *testing.T) {
	p := NewPool()
	p.AllocateProblem([]Literal{1, 2})
	p.AllocateProblem([]Literal{3, 4})
	p.AllocateProblem([]Literal{5, 6})

	count := 0
	p.Each(false, func(h Handle) bool {
		count++
		return false
	})
	if count != 1 {
		t.Errorf("Each visited %d clauses before stopping, want 1", count)
	}
}

func TestPool_NeedsGCReflectsPaddingThresholds(t *testing.T) {
	p := NewPool()
	if p.NeedsGC(false) {
		t.Errorf("NeedsGC() = true on an empty pool")
	}

	// A handful of deletes on a tiny arena never crosses the absolute
	// padding floor, regardless of the fractional share.
	var handles []Handle
	for i := 0; i < 4; i++ {
		handles = append(handles, p.AllocateProblem([]Literal{1, 2, 3}))
	}
	for _, h := range handles {
		p.Delete(h)
	}
	if p.NeedsGC(false) {
		t.Errorf("NeedsGC() = true with padding below the absolute floor")
	}
}
