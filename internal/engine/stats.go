package engine

// Stats counts engine operations since construction.
type Stats struct {
	Accepted        int
	RejectedLineCap int
	RejectedBlock   int
	Resets          int

	Randomized        int
	RandomizeFailures int
	// Attempts sums sampled candidates over every Randomize call;
	// LastAttempts holds the count for the most recent one.
	Attempts     int
	LastAttempts int
}

// Rejected returns the number of toggles refused for any reason.
func (s Stats) Rejected() int { return s.RejectedLineCap + s.RejectedBlock }

func (s *Stats) recordRejection(k ViolationKind) {
	switch k {
	case ViolationLineCap:
		s.RejectedLineCap++
	case ViolationBlock:
		s.RejectedBlock++
	}
}
