package minigame

// RecentWindow is how many reaction samples feed the rolling average.
const RecentWindow = 10

// ReactionStats outlives sessions: an all-time best and the last samples.
type ReactionStats struct {
	Best    int   `json:"best"`
	HasBest bool  `json:"hasBest"`
	Recent  []int `json:"recent"`
}

// Record adds one sample in milliseconds.
func (s *ReactionStats) Record(ms int) {
	if ms < 0 {
		ms = 0
	}
	if !s.HasBest || ms < s.Best {
		s.Best = ms
		s.HasBest = true
	}
	s.Recent = append(s.Recent, ms)
	if len(s.Recent) > RecentWindow {
		s.Recent = append([]int(nil), s.Recent[len(s.Recent)-RecentWindow:]...)
	}
}

// Average of the recent window; ok is false when empty.
func (s *ReactionStats) Average() (avg float64, ok bool) {
	if s == nil || len(s.Recent) == 0 {
		return 0, false
	}
	sum := 0
	for _, v := range s.Recent {
		sum += v
	}
	return float64(sum) / float64(len(s.Recent)), true
}
