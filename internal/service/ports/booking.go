package ports

import (
	"context"

	"github.com/adityamhatre/VSBookingSchedulerNotificationServer/internal/domain"
)

type BookingRepo interface {
	// Upsert creates or replaces the record keyed by booking id and forces
	// notified back to false, re-arming the reminder.
	Upsert(ctx context.Context, b *domain.Booking) error
	// Delete removes the record; deleting an absent id is not an error.
	Delete(ctx context.Context, bookingID string) error
	// MarkNotified flips notified to true; a no-op if the record was deleted
	// between scan and mark.
	MarkNotified(ctx context.Context, bookingID string) error
	// ListUnnotifiedByCheckIn returns every record whose check-in field equals
	// checkIn exactly and whose reminder has not been sent yet.
	ListUnnotifiedByCheckIn(ctx context.Context, checkIn string) ([]*domain.Booking, error)
}
