package grading

import "unicode"

// Latency steps: a correct answer inside the fast window keeps full credit;
// slower-but-correct answers are capped one or two points lower. The cap is
// a coarse step function and monotonic in time taken.
const (
	maxQuestionScore = 10.0
	fastSeconds      = 60.0
	slowSeconds      = 300.0
)

func latencyCap(timeTakenSeconds float64) float64 {
	switch {
	case timeTakenSeconds <= fastSeconds:
		return maxQuestionScore
	case timeTakenSeconds <= slowSeconds:
		return 9
	default:
		return 8
	}
}

// applyRubric folds the capability's judgment into the numeric policy:
// incorrect answers score exactly 0; correct answers are capped by the
// latency step; an answer exactly matching the reference (normalized) is
// always correct, regardless of what the capability said.
func applyRubric(sa StudentAnswer, isCorrect bool, score float64, justification string) GradedAnswer {
	exact := sa.CorrectAnswer != "" && !sa.Answer.multi &&
		normalize(sa.Answer.Flatten()) == normalize(sa.CorrectAnswer)

	if exact {
		isCorrect = true
		score = latencyCap(sa.TimeTakenSeconds)
	}

	if !isCorrect {
		score = 0
	} else {
		if cap := latencyCap(sa.TimeTakenSeconds); score > cap {
			score = cap
		}
		if score < 0 {
			score = 0
		}
	}

	if justification == "" {
		if isCorrect {
			justification = "Matches the reference answer."
		} else {
			justification = "Does not match the reference answer."
		}
	}

	return GradedAnswer{
		StudentAnswer: sa,
		IsCorrect:     isCorrect,
		Score:         score,
		Justification: justification,
	}
}

// normalize casefolds and strips punctuation and extra whitespace for
// reference comparisons.
func normalize(s string) string {
	out := make([]rune, 0, len(s))
	space := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			space = true
		case unicode.IsPunct(r):
			// skip
		default:
			if space && len(out) > 0 {
				out = append(out, ' ')
			}
			space = false
			out = append(out, unicode.ToLower(r))
		}
	}
	return string(out)
}
