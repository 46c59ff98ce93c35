package generation

import "strings"

var (
	truthyAnswers = map[string]struct{}{
		"true": {}, "t": {}, "yes": {}, "y": {}, "1": {},
	}
	falsyAnswers = map[string]struct{}{
		"false": {}, "f": {}, "no": {}, "n": {}, "0": {},
	}
)

const shortAnswerOverlapThreshold = 0.7

// ValidateAnswer checks a submitted answer against a generated question.
// Multiple-choice answers must match the correct option exactly (ignoring
// case and surrounding whitespace). True/false accepts the common yes/no
// spellings. Short answers pass when at least 70% of the significant words
// of the correct answer appear in the submission.
func ValidateAnswer(q GeneratedQuestion, answer string) bool {
	submitted := strings.ToLower(strings.TrimSpace(answer))
	correct := strings.ToLower(strings.TrimSpace(q.CorrectAnswer))

	switch q.QuestionType {
	case MultipleChoice:
		return submitted == correct

	case TrueFalse:
		if _, ok := truthyAnswers[submitted]; ok {
			return correct == "true"
		}
		if _, ok := falsyAnswers[submitted]; ok {
			return correct == "false"
		}
		return false

	case ShortAnswer:
		keywords := significantWords(correct)
		if len(keywords) == 0 {
			return submitted != ""
		}
		matched := 0
		for _, kw := range keywords {
			if strings.Contains(submitted, kw) {
				matched++
			}
		}
		return float64(matched)/float64(len(keywords)) >= shortAnswerOverlapThreshold

	default:
		return false
	}
}

// significantWords keeps the words long enough to carry meaning, so
// articles and prepositions do not inflate the overlap ratio.
func significantWords(s string) []string {
	var words []string
	for _, w := range strings.Fields(s) {
		w = strings.Trim(w, ".,;:!?\"'()")
		if len(w) > 3 {
			words = append(words, w)
		}
	}
	return words
}

// DifficultyScore maps a difficulty label to a numeric weight for
// aggregate scoring. Unknown labels score as medium.
func DifficultyScore(d Difficulty) int {
	switch d {
	case Easy:
		return 1
	case Hard:
		return 3
	default:
		return 2
	}
}
