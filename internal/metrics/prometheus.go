package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	GenerationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quizforge_generation_duration_seconds",
			Help:    "Question generation duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
		},
	)

	GenerationRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quizforge_generation_requests_total",
			Help: "Total generation requests by outcome",
		},
		[]string{"status"},
	)

	QuestionsGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quizforge_questions_generated_total",
			Help: "Total questions generated by type",
		},
		[]string{"question_type"},
	)

	ConceptsExtracted = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quizforge_concepts_extracted",
			Help:    "Number of concepts extracted per text",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100, 200},
		},
	)

	ConfidenceScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quizforge_confidence_score",
			Help:    "Confidence scores of generated questions",
			Buckets: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
		},
	)

	ProviderFallbacks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "quizforge_provider_fallbacks_total",
			Help: "Total provider failures recovered by the heuristic path",
		},
	)

	DocumentsExtracted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quizforge_documents_extracted_total",
			Help: "Total documents extracted by format",
		},
		[]string{"format"},
	)
)

func Init() {
	prometheus.MustRegister(GenerationDuration)
	prometheus.MustRegister(GenerationRequests)
	prometheus.MustRegister(QuestionsGenerated)
	prometheus.MustRegister(ConceptsExtracted)
	prometheus.MustRegister(ConfidenceScore)
	prometheus.MustRegister(ProviderFallbacks)
	prometheus.MustRegister(DocumentsExtracted)
}
