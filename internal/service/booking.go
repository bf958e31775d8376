package service

import (
	"context"
	"fmt"

	"github.com/adityamhatre/VSBookingSchedulerNotificationServer/internal/domain"
	"github.com/adityamhatre/VSBookingSchedulerNotificationServer/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	repo       ports.BookingRepo
	dispatcher ports.Dispatcher
	clock      ports.Clock
	schedule   domain.Schedule
	logger     logger.Logger
}

func NewBookingService(
	repo ports.BookingRepo,
	dispatcher ports.Dispatcher,
	clock ports.Clock,
	schedule domain.Schedule,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		repo:       repo,
		dispatcher: dispatcher,
		clock:      clock,
		schedule:   schedule,
		logger:     logger,
	}
}

// Create persists an incoming "booking created" event and pushes the
// immediate notification. The push is fire-and-forget: a send failure never
// rolls back the stored record.
func (s *BookingService) Create(ctx context.Context, b *domain.Booking) error {
	if b.ID == "" {
		return fmt.Errorf("%w: missing booking id", domain.ErrValidation)
	}

	if err := s.repo.Upsert(ctx, b); err != nil {
		return fmt.Errorf("store booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", b.ID),
		logger.String("check_in", b.CheckIn),
	)

	go s.dispatch(context.WithoutCancel(ctx), domain.TopicNewBooking, b)

	return nil
}

// Update replaces the stored record. The upsert resets the notified flag, so
// a booking whose check-in moved is re-armed for the next matching scan.
func (s *BookingService) Update(ctx context.Context, b *domain.Booking) error {
	if b.ID == "" {
		return fmt.Errorf("%w: missing booking id", domain.ErrValidation)
	}

	if err := s.repo.Upsert(ctx, b); err != nil {
		return fmt.Errorf("store booking: %w", err)
	}

	s.logger.Info("booking updated",
		logger.String("booking_id", b.ID),
		logger.String("check_in", b.CheckIn),
	)

	go s.dispatch(context.WithoutCancel(ctx), domain.TopicUpdatedBooking, b)

	return nil
}

// Delete removes the record. No notification is pushed for deletions.
func (s *BookingService) Delete(ctx context.Context, bookingID string) error {
	if bookingID == "" {
		return fmt.Errorf("%w: missing booking id", domain.ErrValidation)
	}

	if err := s.repo.Delete(ctx, bookingID); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	s.logger.Info("booking deleted",
		logger.String("booking_id", bookingID),
	)

	return nil
}

// ScanUpcoming runs one reminder tick for the given slot token: it computes
// tomorrow's date in the schedule's zone, queries bookings checking in at that
// slot, and for each match dispatches the reminder and then marks the record
// notified. Dispatch comes first so a crash between the two steps re-sends on
// the next tick instead of silently skipping. Returns the number of bookings
// processed.
func (s *BookingService) ScanUpcoming(ctx context.Context, token int) (int, error) {
	label, ok := s.schedule.SlotLabel(token)
	if !ok {
		return 0, fmt.Errorf("%w: %d", domain.ErrUnknownSlot, token)
	}

	tomorrow := s.clock.Now().In(s.schedule.Location).AddDate(0, 0, 1)
	checkingFor := domain.CheckInString(tomorrow, label)

	bookings, err := s.repo.ListUnnotifiedByCheckIn(ctx, checkingFor)
	if err != nil {
		return 0, fmt.Errorf("query unnotified bookings: %w", err)
	}

	for _, b := range bookings {
		if err := s.dispatcher.SendTopicNotification(ctx, domain.TopicTomorrowBooking, b); err != nil {
			s.logger.Error("failed to send reminder",
				logger.String("booking_id", b.ID),
				logger.String("error", err.Error()),
			)
		}

		// Marking is attempted regardless of the send outcome; an unmarked
		// booking would be re-sent on every later tick of the same date.
		if err := s.repo.MarkNotified(ctx, b.ID); err != nil {
			s.logger.Error("failed to mark booking notified",
				logger.String("booking_id", b.ID),
				logger.String("error", err.Error()),
			)
		}
	}

	if len(bookings) > 0 {
		s.logger.Info("reminders dispatched",
			logger.String("checking_for", checkingFor),
			logger.Int("count", len(bookings)),
		)
	}

	return len(bookings), nil
}

func (s *BookingService) dispatch(ctx context.Context, topic domain.Topic, b *domain.Booking) {
	if err := s.dispatcher.SendTopicNotification(ctx, topic, b); err != nil {
		s.logger.Error("failed to send notification",
			logger.String("topic", topic.String()),
			logger.String("booking_id", b.ID),
			logger.String("error", err.Error()),
		)
	}
}
