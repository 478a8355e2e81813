package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	tasksReceivedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "promptgen_worker_tasks_received_total",
		Help: "Количество задач, полученных из очереди.",
	})

	tasksProcessedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "promptgen_worker_tasks_total",
		Help: "Количество обработанных задач по статусу.",
	}, []string{"status"})

	taskProcessingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "promptgen_worker_task_duration_seconds",
		Help:    "Длительность обработки одной задачи.",
		Buckets: prometheus.DefBuckets,
	})
)
