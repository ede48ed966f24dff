// Package divergence describes partial-success reports published for the
// reconciliation job.
package divergence

import (
	"time"

	"github.com/abhishek622/streetsmart/pkg/consistency"
)

// Report describes a relationship left inconsistent by a partial success.
type Report struct {
	Operation  string    `json:"operation"`
	ResourceID string    `json:"resourceId"`
	Completed  []string  `json:"completed"`
	Failed     string    `json:"failed"`
	Skipped    []string  `json:"skipped,omitempty"`
	Error      string    `json:"error"`
	OccurredAt time.Time `json:"occurredAt"`
}

// FromError converts a partial success into a report.
func FromError(e *consistency.PartialSuccessError, now time.Time) Report {
	r := Report{
		Operation:  e.Operation,
		ResourceID: e.ResourceID,
		Completed:  e.Completed,
		Failed:     e.Failed,
		Skipped:    e.Skipped,
		OccurredAt: now.UTC(),
	}
	if e.Err != nil {
		r.Error = e.Err.Error()
	}
	return r
}
