package learner

const (
	// MinDifficulty is the beginner level.
	MinDifficulty = 1
	// MaxDifficulty is the expert level.
	MaxDifficulty = 4
)

// LevelNames maps difficulty levels to display names, index 0 = level 1.
var LevelNames = [4]string{"Beginner", "Intermediate", "Advanced", "Expert"}

// LevelName returns the display name for a difficulty level, clamping
// out-of-range values.
func LevelName(level int) string {
	if level < MinDifficulty {
		level = MinDifficulty
	}
	if level > MaxDifficulty {
		level = MaxDifficulty
	}
	return LevelNames[level-1]
}

// AdjustDifficulty recomputes the session's difficulty level from rolling
// accuracy and returns it. Accuracy >= 0.8 steps the level up, < 0.4 steps
// it down; the level moves at most one step per call and stays in
// [MinDifficulty, MaxDifficulty].
//
// This runs on every inbound message, not only after quiz answers, so the
// level can drift between quizzes while the score ratio is stale. That
// matches the deployed behavior and is kept intentionally.
func (s *Session) AdjustDifficulty() int {
	acc := s.Accuracy()

	if acc >= 0.8 && s.DifficultyLevel < MaxDifficulty {
		s.DifficultyLevel++
	} else if acc < 0.4 && s.DifficultyLevel > MinDifficulty {
		s.DifficultyLevel--
	}

	if s.DifficultyLevel < MinDifficulty {
		s.DifficultyLevel = MinDifficulty
	}
	if s.DifficultyLevel > MaxDifficulty {
		s.DifficultyLevel = MaxDifficulty
	}
	return s.DifficultyLevel
}
