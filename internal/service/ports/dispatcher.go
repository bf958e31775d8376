package ports

import (
	"context"

	"github.com/adityamhatre/VSBookingSchedulerNotificationServer/internal/domain"
)

type Dispatcher interface {
	// SendTopicNotification pushes the booking to every subscriber of topic.
	// The returned error reports the send outcome; callers decide whether it
	// rolls anything back (it never should).
	SendTopicNotification(ctx context.Context, topic domain.Topic, b *domain.Booking) error
}
