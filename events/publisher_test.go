package events

import (
	"coffee-shop/models"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error { return nil }

func TestKafkaPublisher_PublishOrderCreated(t *testing.T) {
	w := &recordingWriter{}
	p := &KafkaPublisher{w: w}

	order := models.Order{
		OrderID:      "#AAAAA-BBBBB",
		Items:        []models.CartItem{{Price: 1}, {Price: 2}},
		Total:        71500,
		Status:       models.StatusOnProgress,
		CustomerInfo: models.CustomerInfo{Email: "ana@example.com"},
		CreatedAt:    time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	require.NoError(t, p.PublishOrderCreated(context.Background(), NewOrderCreated("guest:x", order)))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "#AAAAA-BBBBB", string(msg.Key))
	assert.Equal(t, "type", msg.Headers[0].Key)

	var evt OrderCreated
	require.NoError(t, json.Unmarshal(msg.Value, &evt))
	assert.Equal(t, TypeOrderCreated, evt.Type)
	assert.Equal(t, 2, evt.Items)
	assert.Equal(t, int64(71500), evt.Total)
	assert.Equal(t, "guest:x", evt.Session)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	p := &KafkaPublisher{w: &recordingWriter{err: errors.New("broker down")}}

	err := p.PublishOrderCreated(context.Background(), OrderCreated{OrderID: "#1"})
	assert.ErrorContains(t, err, "broker down")
}
