package worker

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	commandCalls = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "snake",
			Subsystem: "worker",
			Name:      "commands_duration_seconds",
			Help:      "Seconds spent on commands and ticks by the game loop.",
		},
		[]string{"method"},
	)
	ticksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "snake",
		Subsystem: "worker",
		Name:      "ticks_total",
		Help:      "Ticks applied to running games.",
	})
	foodEaten = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "snake",
		Subsystem: "worker",
		Name:      "food_eaten_total",
		Help:      "Food eaten across all games.",
	})
	gamesOver = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "worker",
			Name:      "games_over_total",
			Help:      "Games ended, by cause.",
		},
		[]string{"cause"},
	)
	restarts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "worker",
			Name:      "restarts_total",
			Help:      "Tick timer starts, by difficulty.",
		},
		[]string{"difficulty"},
	)
)

func instrument(method string) func() {
	t := prometheus.NewTimer(commandCalls.WithLabelValues(method))
	return t.ObserveDuration
}

func init() {
	prometheus.MustRegister(commandCalls, ticksTotal, foodEaten, gamesOver, restarts)
}
