package services

import (
	"context"
	"time"
)

func ensuredContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

// monthKey buckets a timestamp into its calendar month. Monthly rollups are
// computed in Go because the date functions of the supported SQL drivers
// (sqlite, mysql, postgres) are mutually incompatible.
func monthKey(t time.Time) string {
	return t.Format("2006-01")
}
