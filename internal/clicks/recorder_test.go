package clicks

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"linkly-be/internal/entities"
	"linkly-be/internal/repository"
)

// fakeLinkRepo implements the subset of repository.LinkRepository the
// recorder touches. The embedded interface panics on anything else.
type fakeLinkRepo struct {
	repository.LinkRepository

	mu         sync.Mutex
	links      map[string]*entities.Link
	increments map[string]int
	incrErr    error
}

func newFakeLinkRepo(links ...*entities.Link) *fakeLinkRepo {
	byCode := make(map[string]*entities.Link)
	for _, l := range links {
		byCode[l.ShortCode] = l
	}
	return &fakeLinkRepo{
		links:      byCode,
		increments: make(map[string]int),
	}
}

func (f *fakeLinkRepo) FindByShortCode(_ context.Context, shortCode string) (*entities.Link, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	link, ok := f.links[shortCode]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return link, nil
}

func (f *fakeLinkRepo) IncrementClicks(_ context.Context, shortCode string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.incrErr != nil {
		return f.incrErr
	}
	f.increments[shortCode]++
	return nil
}

type fakeClickRepo struct {
	repository.ClickRepository

	mu       sync.Mutex
	inserted []entities.ClickMetadata
	urlIDs   []string
}

func (f *fakeClickRepo) Insert(_ context.Context, urlID string, _ time.Time, meta entities.ClickMetadata) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inserted = append(f.inserted, meta)
	f.urlIDs = append(f.urlIDs, urlID)
	return nil
}

func (f *fakeClickRepo) insertCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.inserted)
}

func testLink(shortCode string) *entities.Link {
	return &entities.Link{
		ID:        "url-" + shortCode,
		ShortCode: shortCode,
		TargetURL: "https://example.com/" + shortCode,
		UserID:    "user-1",
	}
}

func stopRecorder(t *testing.T, r *Recorder) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.Stop(ctx); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
}

func TestRecordAppendsEventAndIncrements(t *testing.T) {
	links := newFakeLinkRepo(testLink("promo"))
	clickStore := &fakeClickRepo{}

	r := NewRecorder(links, clickStore, 16)
	r.Start()

	ua := "curl/8.0"
	r.Record("promo", entities.ClickMetadata{UserAgent: &ua})
	stopRecorder(t, r)

	if got := clickStore.insertCount(); got != 1 {
		t.Fatalf("inserted %d events, want 1", got)
	}
	if clickStore.urlIDs[0] != "url-promo" {
		t.Errorf("event attributed to %q, want %q", clickStore.urlIDs[0], "url-promo")
	}
	if clickStore.inserted[0].UserAgent == nil || *clickStore.inserted[0].UserAgent != ua {
		t.Errorf("UserAgent not carried through to the event")
	}
	if clickStore.inserted[0].Country != nil {
		t.Errorf("Country = %v, want nil for absent metadata", *clickStore.inserted[0].Country)
	}
	if links.increments["promo"] != 1 {
		t.Errorf("increments = %d, want 1", links.increments["promo"])
	}
}

func TestRecordUnknownCodeInsertsNothing(t *testing.T) {
	links := newFakeLinkRepo(testLink("promo"))
	clickStore := &fakeClickRepo{}

	r := NewRecorder(links, clickStore, 16)
	r.Start()

	r.Record("ghost", entities.ClickMetadata{})
	stopRecorder(t, r)

	if got := clickStore.insertCount(); got != 0 {
		t.Fatalf("inserted %d events for unknown code, want 0", got)
	}
	if len(links.increments) != 0 {
		t.Errorf("increments = %v, want none", links.increments)
	}
}

func TestConcurrentRecordsAllCounted(t *testing.T) {
	const n = 100

	links := newFakeLinkRepo(testLink("promo"))
	clickStore := &fakeClickRepo{}

	r := NewRecorder(links, clickStore, n)
	r.Start()

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Record("promo", entities.ClickMetadata{})
		}()
	}
	wg.Wait()
	stopRecorder(t, r)

	if links.increments["promo"] != n {
		t.Errorf("counter = %d after %d concurrent redirects, want %d", links.increments["promo"], n, n)
	}
	if got := clickStore.insertCount(); got != n {
		t.Errorf("event rows = %d, want %d", got, n)
	}
}

func TestIncrementFailureKeepsEventLog(t *testing.T) {
	links := newFakeLinkRepo(testLink("promo"))
	links.incrErr = errors.New("deadlock detected")
	clickStore := &fakeClickRepo{}

	r := NewRecorder(links, clickStore, 16)
	r.Start()

	r.Record("promo", entities.ClickMetadata{})
	stopRecorder(t, r)

	// The event log is the source of truth; a failed counter update must
	// not take the event with it.
	if got := clickStore.insertCount(); got != 1 {
		t.Fatalf("inserted %d events, want 1", got)
	}
	if links.increments["promo"] != 0 {
		t.Errorf("increments = %d, want 0 when the update fails", links.increments["promo"])
	}
}

func TestFullQueueDropsInsteadOfBlocking(t *testing.T) {
	links := newFakeLinkRepo(testLink("promo"))
	clickStore := &fakeClickRepo{}

	// Worker not started yet: only the buffered slots accept events.
	r := NewRecorder(links, clickStore, 2)

	for i := 0; i < 5; i++ {
		done := make(chan struct{})
		go func() {
			r.Record("promo", entities.ClickMetadata{})
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Record() blocked on a full queue")
		}
	}

	r.Start()
	stopRecorder(t, r)

	if got := clickStore.insertCount(); got != 2 {
		t.Errorf("inserted %d events, want the 2 that fit the queue", got)
	}
}
