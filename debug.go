package letterfield

// debugStats holds per-frame counters. Only populated when Scene.debug is
// true.
type debugStats struct {
	frame         uint64
	state         State
	pulls         int
	returns       int
	activeTweens  int
	pendingFrames int
	cached        int
}

func (s *Scene) collectStats() debugStats {
	pulls, returns := s.engine.takeStats()
	return debugStats{
		frame:         s.frames.Frames(),
		state:         s.engine.State(),
		pulls:         pulls,
		returns:       returns,
		activeTweens:  s.tweens.Active(),
		pendingFrames: s.frames.Pending(),
		cached:        len(s.engine.centers),
	}
}

// debugLog writes the frame's counters at debug level. Idle frames with no
// work are skipped.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	if stats.state == StateIdle && stats.pulls == 0 && stats.returns == 0 && stats.activeTweens == 0 {
		return
	}
	Logger().Debug("letterfield: frame",
		"frame", stats.frame,
		"state", stats.state.String(),
		"pulls", stats.pulls,
		"returns", stats.returns,
		"tweens", stats.activeTweens,
		"pendingFrames", stats.pendingFrames,
		"cached", stats.cached,
	)
}
