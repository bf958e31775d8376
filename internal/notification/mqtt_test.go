package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/adityamhatre/VSBookingSchedulerNotificationServer/internal/domain"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

type fakeToken struct {
	err error
}

func (t *fakeToken) Wait() bool                     { return true }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (t *fakeToken) Error() error { return t.err }

type fakePublisher struct {
	topics   []string
	payloads [][]byte
	err      error
}

func (p *fakePublisher) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	p.topics = append(p.topics, topic)
	p.payloads = append(p.payloads, payload.([]byte))
	return &fakeToken{err: p.err}
}

func (p *fakePublisher) IsConnected() bool { return true }
func (p *fakePublisher) Disconnect(uint)   {}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:                    "b1",
		MainPerson:            "Aditya",
		CheckIn:               "16 January 2021, 09:30 AM",
		CheckOut:              "18 January 2021, 09:30 AM",
		AdvancedPaymentAmount: domain.PaymentAmountNotApplicable,
	}
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "New booking for Aditya", Title(domain.TopicNewBooking, "Aditya"))
	assert.Equal(t, "Booking updated for Aditya", Title(domain.TopicUpdatedBooking, "Aditya"))
	assert.Equal(t, "Tomorrow is Aditya's booking!", Title(domain.TopicTomorrowBooking, "Aditya"))
}

func TestBuildMessage(t *testing.T) {
	msg := BuildMessage(domain.TopicTomorrowBooking, testBooking(), "n-1")

	assert.Equal(t, "tomorrow-booking-topic", msg.Topic)
	assert.Equal(t, "Tomorrow is Aditya's booking!", msg.Notification.Title)
	assert.Equal(t, "From 16 January 2021, 09:30 AM to 18 January 2021, 09:30 AM", msg.Notification.Body)
	assert.Equal(t, notificationIcon, msg.Notification.Icon)
	assert.Equal(t, notificationClickAction, msg.Notification.ClickAction)

	assert.Equal(t, "b1", msg.Data["bookingId"])
	assert.Equal(t, "n-1", msg.Data["notificationId"])
	assert.Equal(t, "tomorrow-booking-topic", msg.Data["topic"])
	assert.Equal(t, "-1", msg.Data["advancedPaymentAmount"])
	assert.Equal(t, "false", msg.Data["advancedPaymentReceived"])
}

func TestSendTopicNotification_PublishesToTopic(t *testing.T) {
	pub := &fakePublisher{}
	d := NewWithClient(pub, newTestLogger(t))

	err := d.SendTopicNotification(context.Background(), domain.TopicNewBooking, testBooking())

	require.NoError(t, err)
	require.Len(t, pub.topics, 1)
	assert.Equal(t, "new-booking-topic", pub.topics[0])

	var msg Message
	require.NoError(t, json.Unmarshal(pub.payloads[0], &msg))
	assert.Equal(t, "New booking for Aditya", msg.Notification.Title)
	assert.NotEmpty(t, msg.Data["notificationId"])
}

func TestSendTopicNotification_FreshIDPerSend(t *testing.T) {
	pub := &fakePublisher{}
	d := NewWithClient(pub, newTestLogger(t))

	b := testBooking()
	require.NoError(t, d.SendTopicNotification(context.Background(), domain.TopicNewBooking, b))
	require.NoError(t, d.SendTopicNotification(context.Background(), domain.TopicNewBooking, b))

	var first, second Message
	require.NoError(t, json.Unmarshal(pub.payloads[0], &first))
	require.NoError(t, json.Unmarshal(pub.payloads[1], &second))
	assert.NotEqual(t, first.Data["notificationId"], second.Data["notificationId"])
}

func TestSendTopicNotification_PublishError(t *testing.T) {
	pub := &fakePublisher{err: errors.New("broker unreachable")}
	d := NewWithClient(pub, newTestLogger(t))

	err := d.SendTopicNotification(context.Background(), domain.TopicNewBooking, testBooking())

	require.Error(t, err)
}

func TestSendTopicNotification_CancelledContext(t *testing.T) {
	pub := &fakePublisher{}
	d := NewWithClient(pub, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.SendTopicNotification(ctx, domain.TopicNewBooking, testBooking())

	require.Error(t, err)
	assert.Empty(t, pub.topics)
}
