package notifying

import (
	"context"
	"time"
)

// DispatchSummary resume uma execução do despacho de notificações.
type DispatchSummary struct {
	Evaluated int `json:"evaluated"`
	Processed int `json:"processed"`
	Errors    int `json:"errors"`
}

type Notifier interface {
	Run(ctx context.Context, now time.Time) (*DispatchSummary, error)
}
