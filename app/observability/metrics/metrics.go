package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
// Make fields public so they can be accessed from other packages.
type AppMetrics struct {
	PlacesRequestsTotal          metric.Int64Counter
	PlacesRequestDurationSeconds metric.Float64Histogram
	LlmRequestsTotal             metric.Int64Counter
	LlmRequestDurationSeconds    metric.Float64Histogram
	PlanValidationFailuresTotal  metric.Int64Counter
}

var (
	// Global instance of AppMetrics (initialized once)
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metrics instruments ONLY ONCE.
// It gets the Meter from the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("BarHopAPI")
		var err error
		m := &AppMetrics{}

		m.PlacesRequestsTotal, err = meter.Int64Counter(
			"places_requests_total",
			metric.WithDescription("Total number of requests issued to the places API"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create places_requests_total: %v", err)
		}

		m.PlacesRequestDurationSeconds, err = meter.Float64Histogram(
			"places_request_duration_seconds",
			metric.WithDescription("Duration of places API requests in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create places_request_duration_seconds: %v", err)
		}

		m.LlmRequestsTotal, err = meter.Int64Counter(
			"llm_requests_total",
			metric.WithDescription("Total number of completion requests sent to the language model"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create llm_requests_total: %v", err)
		}

		m.LlmRequestDurationSeconds, err = meter.Float64Histogram(
			"llm_request_duration_seconds",
			metric.WithDescription("Duration of language model requests in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create llm_request_duration_seconds: %v", err)
		}

		m.PlanValidationFailuresTotal, err = meter.Int64Counter(
			"plan_validation_failures_total",
			metric.WithDescription("Total number of generated crawl plans rejected by the validator"),
			metric.WithUnit("{plan}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create plan_validation_failures_total: %v", err)
		}

		log.Println("Application metrics instruments initialized.")
		appMetrics = m
	})
}

// Get returns the globally initialized AppMetrics instance.
// Panics if InitAppMetrics was not called first.
func Get() *AppMetrics {
	if appMetrics == nil {
		// This indicates a programming error - InitAppMetrics must be called at startup.
		panic("metrics instruments not initialized. Call metrics.InitAppMetrics() first.")
	}
	return appMetrics
}
