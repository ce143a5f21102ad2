package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go-gin-parking/internal/metrics"
	"go-gin-parking/internal/model"
	"go-gin-parking/internal/queue"
	queuemocks "go-gin-parking/internal/queue/mocks"
	"go-gin-parking/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newEvent() *model.ParkingEvent {
	return &model.ParkingEvent{
		EventID:          uuid.New(),
		Kind:             model.ParkingEventAdmitted,
		TicketNumber:     uuid.New(),
		VehicleRegNumber: "ABC-123",
		SpotID:           1,
		Category:         model.VehicleCategoryCar,
		OccurredAt:       time.Now(),
	}
}

func TestAuditWorker_AcksRecordedEvent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	event := newEvent()
	eventService := mocks.NewMockParkingEventService(t)
	eventService.EXPECT().Record(mock.Anything, event).Return(nil).Once()

	deliveries := make(chan queue.Delivery, 1)
	q := queuemocks.NewMockEventQueue(t)
	q.EXPECT().SubscribeEvents(mock.Anything).Return((<-chan queue.Delivery)(deliveries), nil).Once()

	acked := make(chan struct{})
	deliveries <- queue.Delivery{
		Data: event,
		Ack:  func() { close(acked) },
		Nack: func(bool) { t.Error("unexpected nack") },
	}

	done, err := NewAuditWorker(eventService, q, metrics.NewParkingMetrics()).Start(ctx)
	require.NoError(t, err)

	select {
	case <-acked:
	case <-time.After(time.Second):
		t.Fatal("event was not acked")
	}
	close(deliveries)
	<-done
}

func TestAuditWorker_NacksWithRequeueOnFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	event := newEvent()
	eventService := mocks.NewMockParkingEventService(t)
	eventService.EXPECT().Record(mock.Anything, event).Return(errors.New("db down")).Once()

	deliveries := make(chan queue.Delivery, 1)
	q := queuemocks.NewMockEventQueue(t)
	q.EXPECT().SubscribeEvents(mock.Anything).Return((<-chan queue.Delivery)(deliveries), nil).Once()

	requeued := make(chan bool, 1)
	deliveries <- queue.Delivery{
		Data: event,
		Ack:  func() { t.Error("unexpected ack") },
		Nack: func(requeue bool) { requeued <- requeue },
	}

	done, err := NewAuditWorker(eventService, q, nil).Start(ctx)
	require.NoError(t, err)

	select {
	case requeue := <-requeued:
		assert.True(t, requeue)
	case <-time.After(time.Second):
		t.Fatal("event was not nacked")
	}
	close(deliveries)
	<-done
}

func TestAuditWorker_SubscribeError(t *testing.T) {
	q := queuemocks.NewMockEventQueue(t)
	q.EXPECT().SubscribeEvents(mock.Anything).Return(nil, errors.New("no group")).Once()

	done, err := NewAuditWorker(mocks.NewMockParkingEventService(t), q, nil).Start(context.Background())
	assert.Error(t, err)
	assert.Nil(t, done)
}

func TestAuditWorker_WithMemoryQueue(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := queue.NewMemoryEventQueue(4, nil)
	recorded := make(chan *model.ParkingEvent, 2)
	eventService := mocks.NewMockParkingEventService(t)
	eventService.EXPECT().Record(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, e *model.ParkingEvent) error {
			recorded <- e
			return nil
		}).Twice()

	done, err := NewAuditWorker(eventService, q, nil).Start(ctx)
	require.NoError(t, err)

	first, second := newEvent(), newEvent()
	require.NoError(t, q.PublishEvent(ctx, first))
	require.NoError(t, q.PublishEvent(ctx, second))

	for _, want := range []*model.ParkingEvent{first, second} {
		select {
		case got := <-recorded:
			assert.Equal(t, want.EventID, got.EventID)
		case <-time.After(time.Second):
			t.Fatal("event not recorded")
		}
	}
	cancel()
	<-done
}

func TestAuditWorker_GivesUpOnPersistentFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	const maxRetry = 3
	q := queue.NewMemoryEventQueue(4, &queue.MemoryEventQueueConfig{
		MaxRetryCount: maxRetry,
		RetryBackoff:  time.Millisecond,
	})

	var calls atomic.Int32
	eventService := mocks.NewMockParkingEventService(t)
	eventService.EXPECT().Record(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *model.ParkingEvent) error {
			calls.Add(1)
			return errors.New("db down")
		}).Maybe()

	done, err := NewAuditWorker(eventService, q, nil).Start(ctx)
	require.NoError(t, err)
	require.NoError(t, q.PublishEvent(ctx, newEvent()))

	assert.Eventually(t, func() bool { return calls.Load() == maxRetry }, time.Second, 5*time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(maxRetry), calls.Load())

	cancel()
	<-done
}
