package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	r.events = append(r.events, event)
}

func TestLogUseCaseObserver(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "log-health",
		Duration: 5 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"date": "2025-06-02"},
	})

	out := buf.String()
	assert.Contains(t, out, "use_case=log-health")
	assert.Contains(t, out, "success=true")
	assert.Contains(t, out, "date=2025-06-02")
}

func TestLogUseCaseObserverError(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "log-mood",
		Err:  errors.New("boom"),
	})

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "error=boom")
}

func TestLogUseCaseObserverNilWriter(t *testing.T) {
	obs := NewLogUseCaseObserver(nil)
	assert.IsType(t, NoopUseCaseObserver{}, obs)
}

func TestUseCaseObserverOrNoop(t *testing.T) {
	t.Run("empty yields noop", func(t *testing.T) {
		obs := useCaseObserverOrNoop(nil)
		assert.IsType(t, NoopUseCaseObserver{}, obs)
	})

	t.Run("nil entries skipped", func(t *testing.T) {
		rec := &recordingObserver{}
		obs := useCaseObserverOrNoop([]UseCaseObserver{nil, rec})
		obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "x"})
		assert.Len(t, rec.events, 1)
	})

	t.Run("multiple fan out", func(t *testing.T) {
		a := &recordingObserver{}
		b := &recordingObserver{}
		obs := useCaseObserverOrNoop([]UseCaseObserver{a, b})
		obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "weekly-story"})
		assert.Len(t, a.events, 1)
		assert.Len(t, b.events, 1)
		assert.Equal(t, "weekly-story", a.events[0].Name)
	})
}
