package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// Autosaver periodically flushes every collection to disk as a
// durability backstop, superseding any per-mutation write that failed
// transiently. Flushes run inline in a single loop, so a slow flush
// never stacks up behind itself; ticks that fire during a flush are
// coalesced by the ticker.
type Autosaver struct {
	store    *Store
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
}

// StartAutosave begins flushing all collections every interval. The
// returned Autosaver keeps running until Stop is called.
func (s *Store) StartAutosave(interval time.Duration) *Autosaver {
	ctx, cancel := context.WithCancel(context.Background())
	a := &Autosaver{
		store:    s,
		interval: interval,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	go a.run(ctx)
	return a
}

func (a *Autosaver) run(ctx context.Context) {
	defer close(a.done)
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	log.WithField("interval", a.interval).Info("autosave started")
	for {
		select {
		case <-ctx.Done():
			log.Info("autosave stopped")
			return
		case <-ticker.C:
			if !a.store.Ready() {
				// Never overwrite files the startup load could not read.
				continue
			}
			if err := a.store.FlushAll(); err != nil {
				log.WithError(err).Error("autosave flush failed")
			}
		}
	}
}

// Stop halts the autosave loop and waits for an in-flight flush to
// finish. Safe to call once.
func (a *Autosaver) Stop() {
	a.cancel()
	<-a.done
}
