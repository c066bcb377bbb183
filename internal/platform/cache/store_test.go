package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestStore_GetOrLoad_DeduplicatesConcurrentLoads(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32
	loadErr := errors.New("db down")

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return nil, loadErr
	}

	for i := 0; i < 2; i++ {
		if _, err := store.GetOrLoad(context.Background(), "k", loader); !errors.Is(err, loadErr) {
			t.Fatalf("expected load error, got %v", err)
		}
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("loader called %d times, want 2", got)
	}
}

func TestStore_ExpiresEntries(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "k", 1)
	if _, ok := store.Get(context.Background(), "k"); !ok {
		t.Fatalf("expected fresh entry")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Fatalf("expected expired entry to be dropped")
	}
	if store.size() != 0 {
		t.Fatalf("expected expired entry to be removed, len=%d", store.size())
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore(0)
	ctx := context.Background()
	store.Set(ctx, "cricketer:name:a", 1)
	store.Set(ctx, "cricketer:list:x", 2)
	store.Set(ctx, "other", 3)

	store.DeletePrefix(ctx, "cricketer:")

	if store.size() != 1 {
		t.Fatalf("expected only unrelated key to remain, len=%d", store.size())
	}
	if _, ok := store.Get(ctx, "other"); !ok {
		t.Fatalf("expected unrelated key to survive")
	}
}

func TestStore_GetOrLoad_DropsLoadOverlappingDelete(t *testing.T) {
	t.Parallel()

	store := NewStore(0)
	ctx := context.Background()
	loading := make(chan struct{})
	release := make(chan struct{})
	done := make(chan any)

	go func() {
		v, _ := store.GetOrLoad(ctx, "cricketer:name:smith", func(context.Context) (any, error) {
			close(loading)
			<-release
			return "stale", nil
		})
		done <- v
	}()

	<-loading
	store.DeletePrefix(ctx, "cricketer:")
	close(release)

	if got := <-done; got != "stale" {
		t.Fatalf("caller should still receive its own load, got %v", got)
	}
	if _, ok := store.Get(ctx, "cricketer:name:smith"); ok {
		t.Fatalf("value loaded before the delete must not be cached")
	}

	v, err := store.GetOrLoad(ctx, "cricketer:name:smith", func(context.Context) (any, error) {
		return "fresh", nil
	})
	if err != nil || v != "fresh" {
		t.Fatalf("expected fresh load, got %v err=%v", v, err)
	}
	if _, ok := store.Get(ctx, "cricketer:name:smith"); !ok {
		t.Fatalf("load without an overlapping delete should be cached")
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
