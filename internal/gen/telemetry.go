package gen

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"seedgen/internal/models"
)

// Tier latency ranges in milliseconds: enterprise is fastest, free is the
// slowest and widest.
var tierLatencyMs = map[string][2]int{
	models.TierEnterprise: {200, 500},
	models.TierPro:        {300, 1000},
	models.TierFree:       {500, 4500},
}

type runError struct {
	code string
	msg  string
}

var runErrors = []runError{
	{code: "TIMEOUT", msg: "Execution exceeded SLA timeout."},
	{code: "UPSTREAM_ERROR", msg: "Dependency service returned 500."},
	{code: "MISSING_DATA", msg: "Required dataset unavailable."},
}

// TelemetryConfig shapes the report-run workload.
type TelemetryConfig struct {
	Hours       int
	RunsPerHour int
}

// TelemetryTrafficGenerator synthesizes report-execution records over an
// hour-granularity window. Runs are independent: no state is shared between
// them or with the commerce generators, so persistence order is irrelevant.
type TelemetryTrafficGenerator struct {
	sink        Sink
	rng         *Rand
	subscribers []models.Subscriber
	reportTypes []string
	cfg         TelemetryConfig

	OutlierChance float64 // tail-latency injection
	FailureChance float64
	BatchSize     int
}

func NewTelemetryTrafficGenerator(sink Sink, rng *Rand, cfg TelemetryConfig) *TelemetryTrafficGenerator {
	return &TelemetryTrafficGenerator{
		sink:          sink,
		rng:           rng,
		subscribers:   baseSubscribers(),
		reportTypes:   baseReportTypes(),
		cfg:           cfg,
		OutlierChance: 0.05,
		FailureChance: 0.10,
		BatchSize:     1000,
	}
}

// Generate synthesizes hours*runsPerHour runs and persists them in batches.
// Returns the number of runs inserted.
func (t *TelemetryTrafficGenerator) Generate(ctx context.Context) (int, error) {
	total := t.cfg.Hours * t.cfg.RunsPerHour
	if total <= 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	inserted := 0
	batch := make([]interface{}, 0, t.BatchSize)

	for i := 0; i < total; i++ {
		batch = append(batch, t.BuildRun(now))
		if len(batch) >= t.BatchSize {
			if err := t.sink.InsertMany(ctx, CollReportRuns, batch); err != nil {
				return inserted, fmt.Errorf("failed to insert report runs: %w", err)
			}
			inserted += len(batch)
			batch = batch[:0]
		}
	}
	if len(batch) > 0 {
		if err := t.sink.InsertMany(ctx, CollReportRuns, batch); err != nil {
			return inserted, fmt.Errorf("failed to insert report runs: %w", err)
		}
		inserted += len(batch)
	}
	return inserted, nil
}

// BuildRun synthesizes one report run requested within the window ending
// at now. Completion may land shortly past the window's end when the
// request is drawn near it; only requested/started/completed ordering is
// guaranteed.
func (t *TelemetryTrafficGenerator) BuildRun(now time.Time) models.ReportRun {
	subscriber := t.subscribers[t.rng.Index(len(t.subscribers))]
	windowMs := int64(t.cfg.Hours) * int64(time.Hour/time.Millisecond)
	requestedAt := now.Add(-time.Duration(t.rng.FloatBetween(0, float64(windowMs))) * time.Millisecond)

	latencyMs := t.baseLatencyMs(subscriber.Tier)
	if t.rng.Chance(t.OutlierChance) {
		// tail-latency outlier: several seconds on top
		latencyMs += t.rng.IntBetween(3000, 11000)
	}

	// 20-60% of the total latency is spent queueing, the rest executing.
	queueMs := int(float64(latencyMs) * t.rng.FloatBetween(0.2, 0.6))
	startedAt := requestedAt.Add(time.Duration(queueMs) * time.Millisecond)
	completedAt := startedAt.Add(time.Duration(latencyMs-queueMs) * time.Millisecond)

	run := models.ReportRun{
		RunID:        uuid.New().String(),
		SubscriberID: subscriber.ID,
		ReportType:   t.reportTypes[t.rng.Index(len(t.reportTypes))],
		RequestedAt:  requestedAt,
		StartedAt:    startedAt,
		CompletedAt:  completedAt,
		Status:       models.RunStatusCompleted,
	}

	if t.rng.Chance(t.FailureChance) {
		failure := runErrors[t.rng.Index(len(runErrors))]
		run.Status = models.RunStatusFailed
		run.ErrorCode = failure.code
		run.ErrorMessage = failure.msg
	}
	return run
}

func (t *TelemetryTrafficGenerator) baseLatencyMs(tier string) int {
	bounds, ok := tierLatencyMs[tier]
	if !ok {
		bounds = tierLatencyMs[models.TierFree]
	}
	return t.rng.IntBetween(bounds[0], bounds[1])
}
