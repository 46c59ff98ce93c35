package generation

// QuestionType identifies one of the supported question formats.
type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	TrueFalse      QuestionType = "true_false"
	ShortAnswer    QuestionType = "short_answer"
)

// Difficulty is the target difficulty label attached to generated questions.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// ConceptKind says which extraction pass produced a concept.
type ConceptKind string

const (
	KindEntity     ConceptKind = "entity"
	KindNounPhrase ConceptKind = "noun_phrase"
	KindKeyword    ConceptKind = "keyword"
)

// Concept is a candidate topic extracted from source text. Importance only
// ranks candidates; entities outrank noun phrases, which outrank keywords.
type Concept struct {
	Text       string      `json:"text" yaml:"text"`
	Kind       ConceptKind `json:"kind" yaml:"kind"`
	Label      string      `json:"label,omitempty" yaml:"label,omitempty"`
	Importance float64     `json:"importance" yaml:"importance"`
}

// GeneratedQuestion is the pipeline's sole output unit. Instances are
// constructed once and never mutated afterward; ownership passes entirely
// to the caller.
type GeneratedQuestion struct {
	QuestionText       string       `json:"question_text" yaml:"question_text"`
	QuestionType       QuestionType `json:"question_type" yaml:"question_type"`
	Options            []string     `json:"options,omitempty" yaml:"options,omitempty"`
	CorrectAnswer      string       `json:"correct_answer" yaml:"correct_answer"`
	Explanation        string       `json:"explanation" yaml:"explanation"`
	DifficultyLevel    Difficulty   `json:"difficulty_level" yaml:"difficulty_level"`
	Topic              string       `json:"topic" yaml:"topic"`
	Keywords           []string     `json:"keywords" yaml:"keywords"`
	ConfidenceScore    float64      `json:"confidence_score" yaml:"confidence_score"`
	SourceSentence     string       `json:"source_sentence" yaml:"source_sentence"`
	BloomTaxonomyLevel string       `json:"bloom_taxonomy_level,omitempty" yaml:"bloom_taxonomy_level,omitempty"`
}

// Request describes one generation run.
type Request struct {
	Text          string
	NumQuestions  int
	QuestionTypes []QuestionType
	Difficulty    Difficulty
	// BloomLevel is stamped onto every generated question when set. It is
	// a passthrough tag; the pipeline never derives it.
	BloomLevel string
}
