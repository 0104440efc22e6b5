package models

import (
	"time"
)

// ReportRun is one record of report-execution telemetry. Timestamps are
// monotonic: RequestedAt <= StartedAt <= CompletedAt. Runs are created once
// and never mutated.
type ReportRun struct {
	RunID        string    `bson:"run_id" json:"run_id"`
	SubscriberID string    `bson:"subscriber_id" json:"subscriber_id"`
	ReportType   string    `bson:"report_type" json:"report_type"`
	RequestedAt  time.Time `bson:"requested_at" json:"requested_at"`
	StartedAt    time.Time `bson:"started_at" json:"started_at"`
	CompletedAt  time.Time `bson:"completed_at" json:"completed_at"`
	Status       string    `bson:"status" json:"status"`
	ErrorCode    string    `bson:"error_code,omitempty" json:"error_code,omitempty"`
	ErrorMessage string    `bson:"error_message,omitempty" json:"error_message,omitempty"`
}

// Subscriber is a report consumer with a service tier that shapes the
// simulated latency distribution.
type Subscriber struct {
	ID   string
	Tier string
}

// Run statuses
const (
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// Subscriber tiers
const (
	TierEnterprise = "enterprise"
	TierPro        = "pro"
	TierFree       = "free"
)
