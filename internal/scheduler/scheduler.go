package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/adityamhatre/VSBookingSchedulerNotificationServer/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type reminderScanner interface {
	ScanUpcoming(ctx context.Context, token int) (int, error)
}

// Scheduler drives one reminder scan per configured slot per day. Each slot
// gets its own timer goroutine that fires at the slot's wall-clock time in
// the schedule's zone.
type Scheduler struct {
	scanner  reminderScanner
	schedule domain.Schedule
	clock    func() time.Time
	logger   logger.Logger
}

func New(
	scanner reminderScanner,
	schedule domain.Schedule,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		scanner:  scanner,
		schedule: schedule,
		clock:    time.Now,
		logger:   logger,
	}
}

// Start blocks until ctx is cancelled, running all slot timers.
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("scheduler started",
		logger.Int("slots", len(s.schedule.Slots)),
	)

	var wg sync.WaitGroup
	for _, slot := range s.schedule.Slots {
		wg.Add(1)
		go func(slot domain.Slot) {
			defer wg.Done()
			s.runSlot(ctx, slot)
		}(slot)
	}

	wg.Wait()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) runSlot(ctx context.Context, slot domain.Slot) {
	for {
		now := s.clock()
		wait := nextFire(now, slot, s.schedule.Location).Sub(now)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			s.tick(ctx, slot.Token)
		}
	}
}

// TriggerScan runs one out-of-band tick for the given token, e.g. from an
// HTTP cron-ping. Same code path as the timers.
func (s *Scheduler) TriggerScan(ctx context.Context, token int) (int, error) {
	return s.scanner.ScanUpcoming(ctx, token)
}

func (s *Scheduler) tick(ctx context.Context, token int) {
	count, err := s.scanner.ScanUpcoming(ctx, token)
	if err != nil {
		// Skip this tick; unnotified bookings stay unnotified, so the next
		// scheduled tick re-attempts naturally.
		s.logger.Error("reminder scan failed",
			logger.Int("token", token),
			logger.String("error", err.Error()),
		)
		return
	}

	s.logger.Info("reminder scan done",
		logger.Int("token", token),
		logger.Int("matched", count),
	)
}

// nextFire returns the next wall-clock instant the slot fires: today at the
// slot's time-of-day in loc if that is still ahead, otherwise tomorrow.
func nextFire(now time.Time, slot domain.Slot, loc *time.Location) time.Time {
	hour, minute := slot.Clock()

	local := now.In(loc)
	fire := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc)
	if !fire.After(now) {
		fire = fire.AddDate(0, 0, 1)
	}
	return fire
}
