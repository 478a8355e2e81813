package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pagesProcessedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "promptgen_pipeline_pages_total",
		Help: "Количество обработанных страниц по модели и статусу.",
	}, []string{"model", "status"})

	promptsGeneratedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "promptgen_pipeline_prompts_total",
		Help: "Количество сгенерированных промптов по модели.",
	}, []string{"model"})

	pageProcessingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "promptgen_pipeline_page_duration_seconds",
		Help:    "Длительность обработки страницы.",
		Buckets: prometheus.DefBuckets,
	}, []string{"model"})

	enhanceCacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "promptgen_pipeline_enhance_cache_total",
		Help: "Попадания и промахи кэша улучшения промптов.",
	}, []string{"result"})
)
