package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/adityamhatre/VSBookingSchedulerNotificationServer/internal/domain"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

const (
	notificationIcon        = "notification_icon"
	notificationClickAction = "FLUTTER_NOTIFICATION_CLICK"

	publishQoS     = 1
	connectTimeout = 5 * time.Second
)

// Publisher is the slice of the paho client the dispatcher needs. Kept narrow
// so tests can substitute a deterministic fake.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	IsConnected() bool
	Disconnect(quiesce uint)
}

// Message is the wire envelope subscribed clients receive. Data keys keep the
// front end's camelCase names because clients parse them as-is.
type Message struct {
	Topic        string            `json:"topic"`
	Notification PlatformNote      `json:"notification"`
	Data         map[string]string `json:"data"`
}

type PlatformNote struct {
	Title       string `json:"title"`
	Body        string `json:"body"`
	Icon        string `json:"icon"`
	ClickAction string `json:"click_action"`
}

type MQTTDispatcher struct {
	client Publisher
	logger logger.Logger
}

// NewMQTTDispatcher connects to the broker and returns a dispatcher bound to
// it.
func NewMQTTDispatcher(broker, clientID string, log logger.Logger) (*MQTTDispatcher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetConnectTimeout(connectTimeout).
		SetAutoReconnect(true)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("connect mqtt broker: %w", token.Error())
	}

	return &MQTTDispatcher{client: client, logger: log}, nil
}

// NewWithClient wires a dispatcher onto an already-connected client.
func NewWithClient(client Publisher, log logger.Logger) *MQTTDispatcher {
	return &MQTTDispatcher{client: client, logger: log}
}

// SendTopicNotification publishes the booking to every subscriber of topic.
// Each send carries a fresh notification id so clients can deduplicate
// redundant reminders.
func (d *MQTTDispatcher) SendTopicNotification(ctx context.Context, topic domain.Topic, b *domain.Booking) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := BuildMessage(topic, b, uuid.New().String())

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	token := d.client.Publish(topic.String(), publishQoS, false, payload)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}

	d.logger.Debug("notification published",
		logger.String("topic", topic.String()),
		logger.String("booking_id", b.ID),
		logger.String("notification_id", msg.Data["notificationId"]),
	)

	return nil
}

// BuildMessage assembles the envelope for one send. Pure so tests can assert
// the exact wire shape.
func BuildMessage(topic domain.Topic, b *domain.Booking, notificationID string) Message {
	return Message{
		Topic: topic.String(),
		Notification: PlatformNote{
			Title:       Title(topic, b.MainPerson),
			Body:        fmt.Sprintf("From %s to %s", b.CheckIn, b.CheckOut),
			Icon:        notificationIcon,
			ClickAction: notificationClickAction,
		},
		Data: dataPayload(topic, b, notificationID),
	}
}

// Title returns the per-topic display phrasing.
func Title(topic domain.Topic, mainPerson string) string {
	switch topic {
	case domain.TopicNewBooking:
		return fmt.Sprintf("New booking for %s", mainPerson)
	case domain.TopicUpdatedBooking:
		return fmt.Sprintf("Booking updated for %s", mainPerson)
	case domain.TopicTomorrowBooking:
		return fmt.Sprintf("Tomorrow is %s's booking!", mainPerson)
	default:
		return fmt.Sprintf("Booking notification for %s", mainPerson)
	}
}

func dataPayload(topic domain.Topic, b *domain.Booking, notificationID string) map[string]string {
	return map[string]string{
		"bookingId":               b.ID,
		"mainPerson":              b.MainPerson,
		"checkIn":                 b.CheckIn,
		"checkOut":                b.CheckOut,
		"accommodations":          b.Accommodations,
		"totalNumberOfPeople":     b.TotalNumberOfPeople,
		"bookedBy":                b.BookedBy,
		"advancedPaymentReceived": strconv.FormatBool(b.AdvancedPaymentReceived),
		"advancedPaymentType":     b.AdvancedPaymentType,
		"advancedPaymentAmount":   strconv.Itoa(b.AdvancedPaymentAmount),
		"phoneNumber":             b.PhoneNumber,
		"notes":                   b.Notes,
		"topic":                   topic.String(),
		"notificationId":          notificationID,
	}
}

// Close disconnects from the broker.
func (d *MQTTDispatcher) Close() {
	if d.client.IsConnected() {
		d.client.Disconnect(250)
	}
}
