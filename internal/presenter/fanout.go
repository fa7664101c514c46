// Package presenter holds the sinks that consume projection changes from a sync session.
package presenter

import "github.com/ben-haim/Nxt2Monitor/internal/model"

type Presenter interface {
	OnSnapshot(snapshot model.Snapshot)
	OnDelta(delta model.Delta)
	OnStatus(status model.Status)
}

// Fanout forwards every call to each presenter in order.
type Fanout []Presenter

func (f Fanout) OnSnapshot(snapshot model.Snapshot) {
	for _, p := range f {
		p.OnSnapshot(snapshot)
	}
}

func (f Fanout) OnDelta(delta model.Delta) {
	for _, p := range f {
		p.OnDelta(delta)
	}
}

func (f Fanout) OnStatus(status model.Status) {
	for _, p := range f {
		p.OnStatus(status)
	}
}
