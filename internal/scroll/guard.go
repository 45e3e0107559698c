package scroll

// MoveReporter is the part of a scroller a ClickGuard polls.
type MoveReporter interface {
	HasMoved() bool
	ResetMoved()
}

// ClickGuard suppresses navigation clicks that trail a drag. It is given the
// scrollers it must consult explicitly.
type ClickGuard struct {
	reporters []MoveReporter
}

func NewClickGuard(reporters ...MoveReporter) *ClickGuard {
	return &ClickGuard{reporters: reporters}
}

// Allow reports whether a navigation click may proceed. Every moved flag it
// sees is consumed, so only the click right after a drag is suppressed.
func (g *ClickGuard) Allow() bool {
	allow := true
	for _, r := range g.reporters {
		if r.HasMoved() {
			r.ResetMoved()
			allow = false
		}
	}
	return allow
}
