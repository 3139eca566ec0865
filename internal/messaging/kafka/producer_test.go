package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	log "github.com/sirupsen/logrus"
)

func TestProducer_PublishOrderPlaced(t *testing.T) {
	// Создаем mock producer
	mockProducer := mocks.NewSyncProducer(t, nil)

	producer := &Producer{
		producer: mockProducer,
		logger:   log.WithField("component", "kafka-producer-test"),
	}

	// Настраиваем ожидания и проверяем содержимое сообщения
	mockProducer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(raw []byte) error {
		var event OrderPlacedEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			return err
		}
		if event.EventType != EventTypeOrderPlaced {
			t.Errorf("expected event type %s, got %s", EventTypeOrderPlaced, event.EventType)
		}
		if event.OrderID != "order-123" {
			t.Errorf("expected order id order-123, got %s", event.OrderID)
		}
		if len(event.Lines) != 1 || event.Lines[0].PriceMinor != 1000 {
			t.Errorf("unexpected lines: %+v", event.Lines)
		}
		return nil
	})

	event := NewOrderPlacedEvent("order-123", "cust-1", 3000, []OrderPlacedLine{
		{ProductID: "prod-1", PriceMinor: 1000, Qty: 3},
	})

	if err := producer.PublishOrderPlaced(event); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Проверяем, что все ожидания выполнены
	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestProducer_PublishEvent_Error(t *testing.T) {
	// Создаем mock producer с ошибкой
	mockProducer := mocks.NewSyncProducer(t, nil)

	producer := &Producer{
		producer: mockProducer,
		logger:   log.WithField("component", "kafka-producer-test"),
	}

	// Настраиваем ожидание ошибки
	mockProducer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	event := NewOrderPlacedEvent("order-123", "cust-1", 0, nil)

	err := producer.PublishEvent(TopicOrderEvents, "order-123", event)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestNewOrderPlacedEvent(t *testing.T) {
	lines := []OrderPlacedLine{
		{ProductID: "prod-1", PriceMinor: 1000, Qty: 2},
		{ProductID: "prod-2", PriceMinor: 250, Qty: 1},
	}

	event := NewOrderPlacedEvent("order-123", "cust-1", 2250, lines)

	if event.EventType != EventTypeOrderPlaced {
		t.Errorf("expected event type %s, got %s", EventTypeOrderPlaced, event.EventType)
	}

	if event.OrderID != "order-123" {
		t.Errorf("expected order id order-123, got %s", event.OrderID)
	}

	if event.CustomerID != "cust-1" {
		t.Errorf("expected customer id cust-1, got %s", event.CustomerID)
	}

	if event.AmountMinor != 2250 {
		t.Errorf("expected amount 2250, got %d", event.AmountMinor)
	}

	if len(event.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(event.Lines))
	}

	// Проверяем, что timestamp установлен
	if event.Timestamp.IsZero() {
		t.Error("timestamp should not be zero")
	}

	if time.Since(event.Timestamp) > time.Second {
		t.Error("timestamp should be close to current time")
	}
}
