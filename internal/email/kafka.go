package email

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sethvargo/go-retry"

	"github.com/RaikyD/storefront-checkout/internal/domain"
	"github.com/RaikyD/storefront-checkout/internal/logger"
)

// confirmationMessage is the wire format consumed by the mailer.
type confirmationMessage struct {
	Email string             `json:"email"`
	Order domain.OrderResult `json:"order"`
}

// KafkaNotifier publishes confirmations to a topic for a downstream
// mailer. Publishing retries with backoff here, in the collaborator
// client; the checkout orchestrator itself never retries.
type KafkaNotifier struct {
	w *kafka.Writer
}

func NewKafkaNotifier(brokersSTR, topic string) *KafkaNotifier {
	brokers := strings.Split(brokersSTR, ",")

	return &KafkaNotifier{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
			Async:        false,
		},
	}
}

func (n *KafkaNotifier) Close() error {
	return n.w.Close()
}

func (n *KafkaNotifier) SendOrderConfirmation(ctx context.Context, email string, order domain.OrderResult) error {
	b, err := json.Marshal(confirmationMessage{Email: email, Order: order})
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(order.OrderID),
		Value: b,
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
		},
	}

	backoff := retry.WithMaxRetries(3, retry.NewExponential(200*time.Millisecond))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := n.w.WriteMessages(ctx, msg); err != nil {
			logger.Warn("confirmation publish failed, retrying", "order_id", order.OrderID, "err", err)
			return retry.RetryableError(err)
		}
		return nil
	})
}
