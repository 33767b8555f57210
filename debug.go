package cardtable

import "time"

// sessionStats holds per-drag counters. Only reported when debug is enabled.
type sessionStats struct {
	started  time.Duration
	checks   int // intersection checks actually executed
	ticks    int // refreshes seen by the scanner, including skipped ones
	enters   int
	leaves   int
	writes   int // throttled transform writes applied
	moves    int // pointer moves received
	duration time.Duration
}

// debugLog prints the stats of a finished session.
func (st sessionStats) debugLog(l *logger, id string) {
	l.printf("stats", "%s: %v | moves: %d | writes: %d | ticks: %d | checks: %d | enter: %d | leave: %d",
		id, st.duration, st.moves, st.writes, st.ticks, st.checks, st.enters, st.leaves)
}
