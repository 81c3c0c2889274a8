// Package syncer drives when local and remote progress records get
// merged: at login, at startup (bulk), and after every mutation.
package syncer

import (
	"context"
	"time"

	"github.com/oguzk/denizci/internal/cloud"
	"github.com/oguzk/denizci/internal/progress"
	"github.com/oguzk/denizci/internal/store"
)

// pushTimeout bounds a fire-and-forget push.
const pushTimeout = 2 * time.Second

// Syncer owns the local store and an optional remote client. A nil
// client means local-only mode, which is fully functional.
type Syncer struct {
	store  *store.Store
	client *cloud.Client
}

// New creates a Syncer. client may be nil for local-only mode.
func New(st *store.Store, client *cloud.Client) *Syncer {
	return &Syncer{store: st, client: client}
}

// Store exposes the underlying local store.
func (s *Syncer) Store() *store.Store {
	return s.store
}

// CloudEnabled reports whether a remote store is configured.
func (s *Syncer) CloudEnabled() bool {
	return s.client != nil
}

// Login merges a learner's local record with their remote document and
// returns the result. The merged record is persisted locally first,
// then pushed to the remote without waiting. Any remote read failure is
// treated as an absent document: login never fails on the network.
func (s *Syncer) Login(ctx context.Context, name string) progress.Record {
	local := s.store.Load(name)

	var remote *progress.Record
	if s.client != nil {
		if rec, err := s.client.Fetch(ctx, name); err == nil {
			remote = rec
		}
	}

	merged := progress.Merge(local, remote)
	_ = s.store.Save(name, merged)
	s.push(name, merged)
	return merged
}

// SyncAll pulls the full remote listing and merges every document into
// the corresponding local record, creating records for learners seen
// only remotely. A failed or empty listing is a no-op.
func (s *Syncer) SyncAll(ctx context.Context) {
	if s.client == nil {
		return
	}

	listing, err := s.client.FetchAll(ctx)
	if err != nil || len(listing) == 0 {
		return
	}

	records := s.store.LoadAll()
	for name, remote := range listing {
		local, ok := records[name]
		if !ok {
			local = progress.NewRecord()
		}
		remote := remote
		records[name] = progress.Merge(local, &remote)
	}
	_ = s.store.SaveAll(records)
}

// Save persists a mutated record locally, then mirrors it to the remote
// store without blocking. Local persistence is authoritative; a dropped
// push is recovered by the next login-time merge.
func (s *Syncer) Save(name string, rec progress.Record) error {
	if err := s.store.Save(name, rec); err != nil {
		return err
	}
	s.push(name, rec)
	return nil
}

// push mirrors a record to the remote store: at most once, no retry, no
// queue. The result is deliberately discarded — sync is advisory and a
// push failure must never surface to the learner.
func (s *Syncer) push(name string, rec progress.Record) {
	if s.client == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
		defer cancel()
		_ = s.client.Push(ctx, name, rec)
	}()
}
