package generation

import "fmt"

// Four templates for three slots: the spare only fills in when a rendered
// template happens to equal the correct answer.
var distractorTemplates = []string{
	"Alternative definition of %s",
	"Common misconception about %s",
	"Related but incorrect information about %s",
	"An unrelated fact often confused with %s",
}

// generateDistractors returns exactly three non-empty wrong options, each
// distinct from correctAnswer.
func generateDistractors(concept, correctAnswer string) []string {
	distractors := make([]string, 0, 3)
	for _, tmpl := range distractorTemplates {
		if len(distractors) == 3 {
			break
		}
		d := fmt.Sprintf(tmpl, concept)
		if d == correctAnswer {
			continue
		}
		distractors = append(distractors, d)
	}
	return distractors
}
