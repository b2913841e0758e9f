package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dhatucraft-be/internal/order"

	"github.com/segmentio/kafka-go"
)

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
	}
	return &Producer{writer: writer}
}

func (p *Producer) Publish(ctx context.Context, key string, eventType string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	envelope, err := json.Marshal(Envelope{
		EventType: eventType,
		Payload:   data,
	})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: envelope,
		Time:  time.Now(),
	})
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

// OrderEvents adapts the producer to the order service's Notifier contract.
type OrderEvents struct {
	producer *Producer
}

func NewOrderEvents(producer *Producer) *OrderEvents {
	return &OrderEvents{producer: producer}
}

func (e *OrderEvents) OrderPlaced(ctx context.Context, o *order.Order) error {
	items := make([]EventItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = EventItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	event := OrderPlacedEvent{
		OrderID:  o.ID,
		UserID:   o.UserID,
		Username: o.Username,
		Email:    o.Email,
		Total:    o.TotalAmount,
		Items:    items,
	}

	return e.producer.Publish(ctx, fmt.Sprint(o.ID), EventOrderPlaced, event)
}
