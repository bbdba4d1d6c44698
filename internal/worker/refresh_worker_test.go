package worker

import (
	"context"
	"errors"
	"sync"
	"testing"

	"mulga/internal/amqp"
	"mulga/internal/core"
	"mulga/internal/log"
)

type fakeFetcher struct {
	mu     sync.Mutex
	series map[string]core.Series
	errs   map[string]error
	calls  []string
}

func (f *fakeFetcher) FetchYearly(ctx context.Context, code, startYear, endYear string) (core.Series, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, code)
	if err, ok := f.errs[code]; ok {
		return nil, err
	}
	return f.series[code], nil
}

type fakeStore struct {
	mu    sync.Mutex
	saved map[string]core.Series
	err   error
}

func (s *fakeStore) Save(ctx context.Context, code string, series core.Series) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if s.saved == nil {
		s.saved = make(map[string]core.Series)
	}
	s.saved[code] = series
	return nil
}

func testLogger() *log.Logger {
	return log.New(log.DefaultConfig())
}

func TestRefreshCode(t *testing.T) {
	series := core.Series{{Year: "2014", Index: 80}, {Year: "2024", Index: 114.2}}

	t.Run("fetches and saves", func(t *testing.T) {
		fetcher := &fakeFetcher{series: map[string]core.Series{"110K01119": series}}
		store := &fakeStore{}
		w := NewRefreshWorker(fetcher, store, "1990", 2, testLogger())

		if err := w.RefreshCode(context.Background(), "110K01119"); err != nil {
			t.Fatalf("RefreshCode: %v", err)
		}
		if len(store.saved["110K01119"]) != 2 {
			t.Errorf("saved %d points, want 2", len(store.saved["110K01119"]))
		}
	})

	t.Run("empty series skips save", func(t *testing.T) {
		fetcher := &fakeFetcher{series: map[string]core.Series{}}
		store := &fakeStore{}
		w := NewRefreshWorker(fetcher, store, "1990", 2, testLogger())

		if err := w.RefreshCode(context.Background(), "110K01119"); err != nil {
			t.Fatalf("RefreshCode: %v", err)
		}
		if len(store.saved) != 0 {
			t.Error("empty series must not overwrite a snapshot")
		}
	})

	t.Run("fetch error propagates", func(t *testing.T) {
		fetcher := &fakeFetcher{errs: map[string]error{"110K01119": errors.New("upstream down")}}
		store := &fakeStore{}
		w := NewRefreshWorker(fetcher, store, "1990", 2, testLogger())

		if err := w.RefreshCode(context.Background(), "110K01119"); err == nil {
			t.Error("expected fetch error")
		}
	})

	t.Run("save error propagates", func(t *testing.T) {
		fetcher := &fakeFetcher{series: map[string]core.Series{"110K01119": series}}
		store := &fakeStore{err: errors.New("disk full")}
		w := NewRefreshWorker(fetcher, store, "1990", 2, testLogger())

		if err := w.RefreshCode(context.Background(), "110K01119"); err == nil {
			t.Error("expected save error")
		}
	})
}

func TestRefreshAll(t *testing.T) {
	series := core.Series{{Year: "2024", Index: 100}}

	t.Run("refreshes every code", func(t *testing.T) {
		fetcher := &fakeFetcher{series: map[string]core.Series{
			"a": series, "b": series, "c": series,
		}}
		store := &fakeStore{}
		w := NewRefreshWorker(fetcher, store, "1990", 2, testLogger())

		if err := w.RefreshAll(context.Background(), []string{"a", "b", "c"}); err != nil {
			t.Fatalf("RefreshAll: %v", err)
		}
		if len(store.saved) != 3 {
			t.Errorf("saved %d codes, want 3", len(store.saved))
		}
	})

	t.Run("one failure does not stop the rest", func(t *testing.T) {
		fetcher := &fakeFetcher{
			series: map[string]core.Series{"a": series, "c": series},
			errs:   map[string]error{"b": errors.New("boom")},
		}
		store := &fakeStore{}
		w := NewRefreshWorker(fetcher, store, "1990", 1, testLogger())

		err := w.RefreshAll(context.Background(), []string{"a", "b", "c"})
		if err == nil {
			t.Error("expected the failure to surface")
		}
		if len(fetcher.calls) != 3 {
			t.Errorf("fetched %d codes, want all 3", len(fetcher.calls))
		}
		if _, ok := store.saved["c"]; !ok {
			t.Error("codes after the failure should still refresh")
		}
	})
}

func TestHandleRefreshMessage(t *testing.T) {
	fetcher := &fakeFetcher{series: map[string]core.Series{"110K01119": {{Year: "2024", Index: 114.2}}}}
	store := &fakeStore{}
	w := NewRefreshWorker(fetcher, store, "1990", 2, testLogger())

	msg := amqp.NewRefreshMessage("110K01119", amqp.ReasonStale)
	if err := w.HandleRefreshMessage(context.Background(), msg); err != nil {
		t.Fatalf("HandleRefreshMessage: %v", err)
	}
	if _, ok := store.saved["110K01119"]; !ok {
		t.Error("expected snapshot saved")
	}
}
