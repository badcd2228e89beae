package domain

import "sync/atomic"

// Sequencer hands out transaction ordinals. Values start at 0 and every call
// to Next returns a value no other caller has seen. The counter lives in
// memory only and restarts at 0 with the process.
type Sequencer struct {
	next atomic.Uint64
}

func NewSequencer() *Sequencer {
	return &Sequencer{}
}

// Next returns the next ordinal. Safe for concurrent use.
func (s *Sequencer) Next() uint64 {
	return s.next.Add(1) - 1
}

// Issued returns how many ordinals have been handed out so far.
func (s *Sequencer) Issued() uint64 {
	return s.next.Load()
}
