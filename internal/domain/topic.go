package domain

// Topic is a named push channel that subscribed clients listen on.
type Topic string

const (
	TopicNewBooking      Topic = "new-booking-topic"
	TopicUpdatedBooking  Topic = "updated-booking-topic"
	TopicTomorrowBooking Topic = "tomorrow-booking-topic"
)

func (t Topic) String() string { return string(t) }
