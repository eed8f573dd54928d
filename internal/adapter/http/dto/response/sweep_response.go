package response

import (
	"time"

	"buyback_service/internal/usecase"
)

type SweepResultResponse struct {
	StartedAt   time.Time      `json:"started_at"`
	DurationMs  int64          `json:"duration_ms"`
	LockSkipped bool           `json:"lock_skipped"`
	Scanned     int            `json:"scanned"`
	Sent        map[string]int `json:"sent"`
	Skipped     int            `json:"skipped"`
	Failed      int            `json:"failed"`
	Expired     int            `json:"expired"`
}

func FromSweepResult(r usecase.SweepResult) SweepResultResponse {
	sent := make(map[string]int, len(r.Sent))
	for t, n := range r.Sent {
		sent[string(t)] = n
	}
	return SweepResultResponse{
		StartedAt:   r.StartedAt,
		DurationMs:  r.Duration.Milliseconds(),
		LockSkipped: r.LockSkipped,
		Scanned:     r.Scanned,
		Sent:        sent,
		Skipped:     r.Skipped,
		Failed:      r.Failed,
		Expired:     r.Expired,
	}
}
