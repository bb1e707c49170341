package sat

// printStats writes a single diagnostic line summarizing search progress so
// far. It is only called when Verbosity > 0.
func (s *Solver) printStats() {
	avgLBD := 0.0
	avgLen := 0.0
	if s.stats.LearnedCnt > 0 {
		avgLBD = float64(s.stats.LBDSum) / float64(s.stats.LearnedCnt)
		avgLen = float64(s.stats.LearnedSum) / float64(s.stats.LearnedCnt)
	}

	s.printf(
		"conflicts=%d decisions=%d restarts=%d reductions=%d vars=%d/%d binary=%d problem=%d learned=%d avgLBD=%.2f avgLen=%.2f maxDepth=%d\n",
		s.stats.Conflicts,
		s.stats.Decisions,
		s.stats.Restarts,
		s.stats.Reductions,
		s.numAssigned(),
		s.NumVars(),
		s.numBinary,
		s.pool.NumClauses(false),
		s.pool.NumClauses(true),
		avgLBD,
		avgLen,
		s.stats.MaxDepth,
	)
}
