package syncer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzk/denizci/internal/cloud"
	"github.com/oguzk/denizci/internal/progress"
	"github.com/oguzk/denizci/internal/store"
)

// fakeRemote is an in-memory remote store speaking the document protocol.
type fakeRemote struct {
	mu      sync.Mutex
	docs    map[string]progress.Record
	pushed  chan string
	failing bool
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		docs:   make(map[string]progress.Record),
		pushed: make(chan string, 16),
	}
}

func (f *fakeRemote) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		if f.failing {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		switch {
		case r.URL.Path == "/users.json":
			_ = json.NewEncoder(w).Encode(f.docs)
		case r.Method == http.MethodPut:
			key := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/users/"), ".json")
			var rec progress.Record
			_ = json.NewDecoder(r.Body).Decode(&rec)
			f.docs[key] = rec
			select {
			case f.pushed <- key:
			default:
			}
		default:
			key := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/users/"), ".json")
			rec, ok := f.docs[key]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_ = json.NewEncoder(w).Encode(rec)
		}
	}
}

func newTestSyncer(t *testing.T, remote *fakeRemote) *Syncer {
	t.Helper()
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)

	if remote == nil {
		return New(st, nil)
	}
	server := httptest.NewServer(remote.handler())
	t.Cleanup(server.Close)
	return New(st, cloud.NewClient(server.URL, server.Client()))
}

func waitForPush(t *testing.T, remote *fakeRemote, key string) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case got := <-remote.pushed:
			if got == key {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for push of %q", key)
		}
	}
}

func TestLoginMergesRemoteIntoLocal(t *testing.T) {
	remote := newFakeRemote()
	remoteRec := progress.NewRecord()
	remoteRec.Answers[3] = 1
	remoteRec.Completed["Seyir"] = true
	remote.docs["Kaptan"] = remoteRec

	s := newTestSyncer(t, remote)
	localRec := progress.NewRecord()
	localRec.Answers[1] = 0
	localRec.Answers[3] = 2 // conflicts with remote; local wins
	require.NoError(t, s.Store().Save("Kaptan", localRec))

	merged := s.Login(context.Background(), "Kaptan")

	assert.Equal(t, 0, merged.Answers[1])
	assert.Equal(t, 2, merged.Answers[3], "local answer wins on collision")
	assert.True(t, merged.Completed["Seyir"], "remote-only section survives the merge")

	// Merged result is persisted locally and mirrored back to the remote.
	assert.Equal(t, merged.Answers, s.Store().Load("Kaptan").Answers)
	waitForPush(t, remote, "Kaptan")
	remote.mu.Lock()
	defer remote.mu.Unlock()
	assert.Equal(t, 2, remote.docs["Kaptan"].Answers[3])
}

func TestLoginRemoteDownFallsBackToLocal(t *testing.T) {
	remote := newFakeRemote()
	remote.failing = true

	s := newTestSyncer(t, remote)
	localRec := progress.NewRecord()
	localRec.Answers[1] = 0
	require.NoError(t, s.Store().Save("Kaptan", localRec))

	merged := s.Login(context.Background(), "Kaptan")

	assert.Equal(t, 0, merged.Answers[1])
	assert.Len(t, merged.Answers, 1)
}

func TestLoginLocalOnlyMode(t *testing.T) {
	s := newTestSyncer(t, nil)

	merged := s.Login(context.Background(), "yeni")

	assert.Empty(t, merged.Answers)
	assert.False(t, s.CloudEnabled())
}

func TestSyncAllCreatesRemoteOnlyLearners(t *testing.T) {
	remote := newFakeRemote()
	rec := progress.NewRecord()
	rec.Answers[9] = 3
	remote.docs["Uzak"] = rec

	s := newTestSyncer(t, remote)
	s.SyncAll(context.Background())

	got := s.Store().Load("Uzak")
	assert.Equal(t, 3, got.Answers[9])
}

func TestSyncAllMergesIntoExistingLocal(t *testing.T) {
	remote := newFakeRemote()
	remoteRec := progress.NewRecord()
	remoteRec.Answers[2] = 1
	remote.docs["Kaptan"] = remoteRec

	s := newTestSyncer(t, remote)
	localRec := progress.NewRecord()
	localRec.Answers[1] = 0
	require.NoError(t, s.Store().Save("Kaptan", localRec))

	s.SyncAll(context.Background())

	got := s.Store().Load("Kaptan")
	assert.Equal(t, 0, got.Answers[1])
	assert.Equal(t, 1, got.Answers[2])
}

func TestSyncAllRemoteDownIsNoop(t *testing.T) {
	remote := newFakeRemote()
	remote.failing = true

	s := newTestSyncer(t, remote)
	localRec := progress.NewRecord()
	localRec.Answers[1] = 0
	require.NoError(t, s.Store().Save("Kaptan", localRec))

	s.SyncAll(context.Background())

	got := s.Store().Load("Kaptan")
	assert.Equal(t, 0, got.Answers[1])
	assert.Len(t, got.Answers, 1)
}

func TestSavePersistsLocallyAndPushes(t *testing.T) {
	remote := newFakeRemote()
	s := newTestSyncer(t, remote)

	rec := progress.NewRecord().WithAnswer(7, 2)
	require.NoError(t, s.Save("Kaptan", rec))

	assert.Equal(t, 2, s.Store().Load("Kaptan").Answers[7])
	waitForPush(t, remote, "Kaptan")
}

func TestSavePushFailureIsSilent(t *testing.T) {
	remote := newFakeRemote()
	remote.failing = true
	s := newTestSyncer(t, remote)

	rec := progress.NewRecord().WithAnswer(7, 2)
	require.NoError(t, s.Save("Kaptan", rec), "a failed push must not surface")

	assert.Equal(t, 2, s.Store().Load("Kaptan").Answers[7])
}
