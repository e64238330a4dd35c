package resource

// Playthrough is the per-life progress the HUD and level flow read.
type Playthrough struct {
	Defected     bool
	Victory      bool
	PlayerDead   bool
	Kills        int
	ExitsReached int
	Frames       int

	// LevelIndex is the level currently loaded; LevelRequest, when set, is
	// the level the session should load after this frame.
	LevelIndex   int
	LevelRequest *LevelRequest
}

// LevelRequest asks the session to load another level. An empty Name means
// the next level in order.
type LevelRequest struct {
	Name string
}

// Score combines the playthrough counters into a single number for display.
func (p *Playthrough) Score() int {
	if p == nil {
		return 0
	}
	score := p.Kills*100 + p.ExitsReached*250
	if p.Defected {
		score += 500
	}
	if p.Victory {
		score += 1000
	}
	return score
}

func (p *Playthrough) Reset() {
	if p == nil {
		return
	}
	*p = Playthrough{}
}
