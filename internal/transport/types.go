package transport

import "github.com/ben-haim/Nxt2Monitor/internal/model"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// StateReporter exposes the state of the current sync session.
	StateReporter interface {
		State() model.SessionState
		Server() string
	}
)
