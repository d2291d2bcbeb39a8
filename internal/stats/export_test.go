package stats

import "time"

// Test hooks for pinning the clock, streaks and trailing windows anchor
// on "today".

func (a *Analyzer) SetNowFunc(now func() time.Time) {
	a.now = now
}

func (p *Progress) SetNowFunc(now func() time.Time) {
	p.now = now
}

func (s *Suggester) SetNowFunc(now func() time.Time) {
	s.now = now
}

func (h *Handler) SetNowFunc(now func() time.Time) {
	h.analyzer.now = now
	h.progress.now = now
	h.suggester.now = now
}
