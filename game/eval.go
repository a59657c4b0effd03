package game

// Evaluate scores a state between -1 and 1 from the current player's perspective.
type Evaluate func(s *State) float64

// EvaluatePaths compares the shortest path of each player to its goal row: a
// shorter path than the opponent's gives a positive score.
func EvaluatePaths(s *State) float64 {
	if s.IsTerminal() {
		return terminalScore(s)
	}
	current := s.CurrentPlayer
	opponent := s.NextPlayer()

	own := s.Walls.Distance(s.Position(current), current.GoalRow())
	other := s.Walls.Distance(s.Position(opponent), opponent.GoalRow())
	if own < 0 || other < 0 {
		return 0
	}
	return normalize(float64(other), float64(own))
}

// EvaluatePathsAndWalls adds the wall stock of each player to EvaluatePaths.
func EvaluatePathsAndWalls(s *State) float64 {
	if s.IsTerminal() {
		return terminalScore(s)
	}
	current := s.CurrentPlayer
	opponent := s.NextPlayer()
	wallScore := normalize(float64(s.Remaining(current)), float64(s.Remaining(opponent)))

	return (EvaluatePaths(s) + wallScore) / 2
}

func terminalScore(s *State) float64 {
	if s.Winner() == s.CurrentPlayer {
		return 1
	}
	return -1
}

func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
