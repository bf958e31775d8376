package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adityamhatre/VSBookingSchedulerNotificationServer/internal/domain"
	"github.com/adityamhatre/VSBookingSchedulerNotificationServer/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_TriggerScan(t *testing.T) {
	scanner := mocks.NewMockReminderScanner(t)
	s := New(scanner, domain.DefaultSchedule(), newTestLogger(t))

	scanner.EXPECT().ScanUpcoming(mock.Anything, 930).Return(2, nil)

	count, err := s.TriggerScan(context.Background(), 930)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestScheduler_TriggerScan_Error(t *testing.T) {
	scanner := mocks.NewMockReminderScanner(t)
	s := New(scanner, domain.DefaultSchedule(), newTestLogger(t))

	scanner.EXPECT().ScanUpcoming(mock.Anything, 1100).Return(0, domain.ErrUnknownSlot)

	_, err := s.TriggerScan(context.Background(), 1100)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownSlot)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	scanner := mocks.NewMockReminderScanner(t)
	s := New(scanner, domain.DefaultSchedule(), newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_TickFiresForDueSlot(t *testing.T) {
	scanner := mocks.NewMockReminderScanner(t)

	schedule := domain.DefaultSchedule()
	s := New(scanner, schedule, newTestLogger(t))

	// pin the clock just before the 09:30 slot so the timer fires immediately
	now := time.Now()
	loc := schedule.Location
	local := now.In(loc)
	fire := time.Date(local.Year(), local.Month(), local.Day(), 9, 30, 0, 0, loc)
	s.clock = func() time.Time { return fire.Add(-30 * time.Millisecond) }

	scanner.EXPECT().ScanUpcoming(mock.Anything, 930).Return(0, nil)
	// the other two slots never come due inside the test window
	scanner.EXPECT().ScanUpcoming(mock.Anything, mock.Anything).Return(0, nil).Maybe()

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	s.Start(ctx)
}

func TestScheduler_TickErrorDoesNotStopLoop(t *testing.T) {
	scanner := mocks.NewMockReminderScanner(t)
	s := New(scanner, domain.DefaultSchedule(), newTestLogger(t))

	scanner.EXPECT().ScanUpcoming(mock.Anything, 930).Return(0, errors.New("db down"))

	// tick directly: a failing scan logs and returns
	s.tick(context.Background(), 930)
}

func TestNextFire_TodayWhenAhead(t *testing.T) {
	loc := domain.DefaultSchedule().Location
	slot := domain.Slot{Token: 1600, Label: "04:00 PM"}

	now := time.Date(2021, time.January, 15, 9, 0, 0, 0, loc)
	fire := nextFire(now, slot, loc)

	assert.Equal(t, time.Date(2021, time.January, 15, 16, 0, 0, 0, loc), fire)
}

func TestNextFire_TomorrowWhenPassed(t *testing.T) {
	loc := domain.DefaultSchedule().Location
	slot := domain.Slot{Token: 930, Label: "09:30 AM"}

	now := time.Date(2021, time.January, 15, 10, 0, 0, 0, loc)
	fire := nextFire(now, slot, loc)

	assert.Equal(t, time.Date(2021, time.January, 16, 9, 30, 0, 0, loc), fire)
}

func TestNextFire_ExactBoundaryRollsOver(t *testing.T) {
	loc := domain.DefaultSchedule().Location
	slot := domain.Slot{Token: 930, Label: "09:30 AM"}

	now := time.Date(2021, time.January, 15, 9, 30, 0, 0, loc)
	fire := nextFire(now, slot, loc)

	assert.Equal(t, time.Date(2021, time.January, 16, 9, 30, 0, 0, loc), fire)
}
