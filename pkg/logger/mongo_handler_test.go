package logger

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"
)

func newTestMongoHandler(insert func(context.Context, []interface{}) error) *MongoHandler {
	h := &MongoHandler{
		insert:  insert,
		queue:   make(chan LogDocument, mongoQueueSize),
		done:    make(chan struct{}),
		drained: make(chan struct{}),
	}
	go h.drain()
	return h
}

func TestMongoHandlerCloseFlushesPendingRecords(t *testing.T) {
	var mu sync.Mutex
	inserted := 0
	h := newTestMongoHandler(func(_ context.Context, docs []interface{}) error {
		mu.Lock()
		defer mu.Unlock()
		inserted += len(docs)
		return nil
	})

	rec := slog.NewRecord(time.Now(), slog.LevelInfo, "order placed", 0)
	for i := 0; i < 7; i++ {
		if err := h.Handle(context.Background(), rec); err != nil {
			t.Fatalf("Handle: %v", err)
		}
	}

	if err := h.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if inserted != 7 {
		t.Errorf("inserted %d records, want 7", inserted)
	}
}

func TestMongoHandlerCloseWaitsForFinalInsert(t *testing.T) {
	finished := make(chan struct{})
	h := newTestMongoHandler(func(_ context.Context, _ []interface{}) error {
		time.Sleep(150 * time.Millisecond)
		close(finished)
		return nil
	})

	rec := slog.NewRecord(time.Now(), slog.LevelInfo, "checkout started", 0)
	if err := h.Handle(context.Background(), rec); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if err := h.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	select {
	case <-finished:
	default:
		t.Error("Close returned before the final insert completed")
	}
}
