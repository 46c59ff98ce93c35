package evaluation

import (
	"fmt"
	"strings"

	"github.com/quizforge/backend/internal/generation"
)

// Report summarizes the quality of one generated question batch. It is a
// pure aggregation; the input batch is never mutated.
type Report struct {
	TotalQuestions      int                                      `json:"total_questions" yaml:"total_questions"`
	CountsByType        map[generation.QuestionType]int          `json:"counts_by_type" yaml:"counts_by_type"`
	AvgConfidence       float64                                  `json:"avg_confidence" yaml:"avg_confidence"`
	MinConfidence       float64                                  `json:"min_confidence" yaml:"min_confidence"`
	AvgConfidenceByType map[generation.QuestionType]float64      `json:"avg_confidence_by_type" yaml:"avg_confidence_by_type"`
	FallbackAnswers     int                                      `json:"fallback_answers" yaml:"fallback_answers"`
	FallbackShare       float64                                  `json:"fallback_share" yaml:"fallback_share"`
	DuplicateQuestions  int                                      `json:"duplicate_questions" yaml:"duplicate_questions"`
	Flags               []Flag                                   `json:"flags,omitempty" yaml:"flags,omitempty"`
}

// Flag marks one suspect record by its batch index.
type Flag struct {
	Index  int    `json:"index" yaml:"index"`
	Reason string `json:"reason" yaml:"reason"`
}

// Evaluate aggregates quality signals over a question batch: per-type
// counts and confidence, answers that are the synthesizer's fallback
// phrase, duplicate question texts, and structurally broken records.
func Evaluate(questions []generation.GeneratedQuestion) *Report {
	report := &Report{
		TotalQuestions:      len(questions),
		CountsByType:        make(map[generation.QuestionType]int),
		AvgConfidenceByType: make(map[generation.QuestionType]float64),
	}
	if len(questions) == 0 {
		return report
	}

	confidenceTotals := make(map[generation.QuestionType]float64)
	seenTexts := make(map[string]int)
	minConfidence := questions[0].ConfidenceScore
	var totalConfidence float64

	for i, q := range questions {
		report.CountsByType[q.QuestionType]++
		confidenceTotals[q.QuestionType] += q.ConfidenceScore
		totalConfidence += q.ConfidenceScore
		if q.ConfidenceScore < minConfidence {
			minConfidence = q.ConfidenceScore
		}

		if isFallbackAnswer(q.CorrectAnswer) {
			report.FallbackAnswers++
		}
		seenTexts[q.QuestionText]++

		if strings.TrimSpace(q.QuestionText) == "" {
			report.Flags = append(report.Flags, Flag{Index: i, Reason: "empty question text"})
		}
		if q.QuestionType == generation.MultipleChoice && !validOptionSet(q) {
			report.Flags = append(report.Flags, Flag{Index: i, Reason: "malformed option set"})
		}
		if q.QuestionType == generation.TrueFalse &&
			q.CorrectAnswer != "true" && q.CorrectAnswer != "false" {
			report.Flags = append(report.Flags, Flag{Index: i, Reason: "true/false answer out of domain"})
		}
	}

	for _, n := range seenTexts {
		if n > 1 {
			report.DuplicateQuestions += n - 1
		}
	}

	total := float64(len(questions))
	report.AvgConfidence = totalConfidence / total
	report.MinConfidence = minConfidence
	report.FallbackShare = float64(report.FallbackAnswers) / total
	for qt, sum := range confidenceTotals {
		report.AvgConfidenceByType[qt] = sum / float64(report.CountsByType[qt])
	}

	return report
}

func isFallbackAnswer(answer string) bool {
	return strings.HasPrefix(answer, "Information about ") &&
		strings.HasSuffix(answer, " from the provided text")
}

func validOptionSet(q generation.GeneratedQuestion) bool {
	if len(q.Options) != 4 {
		return false
	}
	correct := 0
	for _, opt := range q.Options {
		if opt == "" {
			return false
		}
		if opt == q.CorrectAnswer {
			correct++
		}
	}
	return correct == 1
}

// String renders the report for terminals and logs.
func (r *Report) String() string {
	out := fmt.Sprintf(`
Question Batch Report
=====================

Total Questions: %d

By Type:
- Multiple Choice: %d (avg confidence %.2f)
- True/False: %d (avg confidence %.2f)
- Short Answer: %d (avg confidence %.2f)

Confidence:
- Average: %.2f
- Minimum: %.2f

Quality Signals:
- Fallback Answers: %d (%.1f%%)
- Duplicate Question Texts: %d
- Flagged Records: %d
`,
		r.TotalQuestions,
		r.CountsByType[generation.MultipleChoice], r.AvgConfidenceByType[generation.MultipleChoice],
		r.CountsByType[generation.TrueFalse], r.AvgConfidenceByType[generation.TrueFalse],
		r.CountsByType[generation.ShortAnswer], r.AvgConfidenceByType[generation.ShortAnswer],
		r.AvgConfidence,
		r.MinConfidence,
		r.FallbackAnswers, r.FallbackShare*100,
		r.DuplicateQuestions,
		len(r.Flags),
	)

	for _, flag := range r.Flags {
		out += fmt.Sprintf("  [%d] %s\n", flag.Index, flag.Reason)
	}

	return out
}
