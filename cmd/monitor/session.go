package main

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/ben-haim/Nxt2Monitor/internal/clock"
	"github.com/ben-haim/Nxt2Monitor/internal/config"
	"github.com/ben-haim/Nxt2Monitor/internal/model"
)

type (
	session interface {
		Run(ctx context.Context) error
		State() model.SessionState
	}
	// sessionFactory builds a session for conn. release is called once the session has ended.
	sessionFactory func(ctx context.Context, conn config.Connection) (s session, release func(), err error)
)

type activeSession struct {
	server  string
	session session
}

// supervisor runs one session at a time, moving to the next connection after a
// session ends. A zero reconnect delay ends the process with the first session.
type supervisor struct {
	conns          []config.Connection
	newSession     sessionFactory
	reconnectDelay time.Duration
	logger         *zap.Logger

	current atomic.Pointer[activeSession]
}

func newSupervisor(conns []config.Connection, newSession sessionFactory, reconnectDelay time.Duration, logger *zap.Logger) (*supervisor, error) {
	if len(conns) == 0 {
		return nil, errors.New("at least one connection is required")
	}
	if newSession == nil {
		return nil, errors.New("session factory is required")
	}
	return &supervisor{
		conns:          conns,
		newSession:     newSession,
		reconnectDelay: reconnectDelay,
		logger:         logger,
	}, nil
}

// State reports the state of the current session.
func (s *supervisor) State() model.SessionState {
	if a := s.current.Load(); a != nil {
		return a.session.State()
	}
	return model.SessionIdle
}

// Server reports the address of the current session.
func (s *supervisor) Server() string {
	if a := s.current.Load(); a != nil {
		return a.server
	}
	return ""
}

// Run returns nil once ctx is cancelled, or the error of the last session when
// reconnecting is disabled.
func (s *supervisor) Run(ctx context.Context) error {
	for attempt := 0; ; attempt++ {
		conn := s.conns[attempt%len(s.conns)]
		err := s.runOne(ctx, conn)
		if ctx.Err() != nil {
			return nil
		}
		if s.reconnectDelay <= 0 {
			return err
		}

		s.logger.Warn("session ended, reconnecting",
			zap.String("server", conn.Address()),
			zap.Duration("delay", s.reconnectDelay),
			zap.Error(err),
		)
		if sleepErr := clock.SleepWithContext(ctx, s.reconnectDelay); sleepErr != nil {
			return nil
		}
	}
}

func (s *supervisor) runOne(ctx context.Context, conn config.Connection) error {
	sess, release, err := s.newSession(ctx, conn)
	if err != nil {
		return err
	}
	defer release()

	s.current.Store(&activeSession{server: conn.Address(), session: sess})
	s.logger.Info("session starting", zap.String("server", conn.Address()))
	return sess.Run(ctx)
}
