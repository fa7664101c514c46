package nxt

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records the outcome of API calls.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
