package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockWriter struct{ mock.Mock }

func (m *mockWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	return m.Called(ctx, msgs).Error(0)
}

func (m *mockWriter) Close() error {
	return m.Called().Error(0)
}

type fakeChannel struct {
	published []amqp.Publishing
	keys      []string
	acks      chan amqp.Confirmation
	nackAt    int
	err       error
}

func (c *fakeChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	if c.err != nil {
		return c.err
	}
	c.published = append(c.published, msg)
	c.keys = append(c.keys, key)
	c.acks <- amqp.Confirmation{DeliveryTag: uint64(len(c.published)), Ack: len(c.published) != c.nackAt}
	return nil
}

func (c *fakeChannel) Close() error { return nil }

func sampleEvents() []ports.StatusEvent {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return []ports.StatusEvent{
		{ID: kernel.NewUUID(), Subject: ports.OrderSubject, SubjectID: kernel.NewUUID(), Status: "claimed", ChangedBy: kernel.NewUUID(), ChangedAt: at},
		{ID: kernel.NewUUID(), Subject: ports.WorkerSubject, SubjectID: kernel.NewUUID(), Status: "active", ChangedBy: kernel.NewUUID(), ChangedAt: at.Add(time.Second)},
	}
}

func TestEncode(t *testing.T) {
	e := sampleEvents()[0]

	body, err := encode(e)
	require.NoError(t, err)

	var msg map[string]any
	require.NoError(t, json.Unmarshal(body, &msg))
	assert.Equal(t, "order", msg["subject"])
	assert.Equal(t, e.SubjectID.String(), msg["subject_id"])
	assert.Equal(t, "claimed", msg["status"])
	assert.Equal(t, "2025-06-01T12:00:00Z", msg["changed_at"])
	assert.Equal(t, "order.status.claimed", routingKey(e))
}

func TestKafkaPublisher_Publish(t *testing.T) {
	events := sampleEvents()
	writer := new(mockWriter)
	writer.On("WriteMessages", mock.Anything, mock.MatchedBy(func(msgs []kafka.Message) bool {
		return len(msgs) == 2 &&
			string(msgs[0].Key) == events[0].SubjectID.String() &&
			string(msgs[1].Key) == events[1].SubjectID.String()
	})).Return(nil).Once()

	p := &KafkaPublisher{writer: writer}
	require.NoError(t, p.Publish(context.Background(), events))
	writer.AssertExpectations(t)
}

func TestKafkaPublisher_WriteFailure(t *testing.T) {
	writer := new(mockWriter)
	writer.On("WriteMessages", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	p := &KafkaPublisher{writer: writer}
	err := p.Publish(context.Background(), sampleEvents())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker down")
}

func TestKafkaPublisher_EmptyBatchSkipsWriter(t *testing.T) {
	writer := new(mockWriter)
	p := &KafkaPublisher{writer: writer}

	require.NoError(t, p.Publish(context.Background(), nil))
	writer.AssertNotCalled(t, "WriteMessages", mock.Anything, mock.Anything)
}

func TestRabbitMQPublisher_PublishesWithRoutingKeys(t *testing.T) {
	ch := &fakeChannel{acks: make(chan amqp.Confirmation, 4)}
	p := &RabbitMQPublisher{ch: ch, acks: ch.acks, exchange: "status"}

	require.NoError(t, p.Publish(context.Background(), sampleEvents()))

	assert.Equal(t, []string{"order.status.claimed", "worker.status.active"}, ch.keys)
	require.Len(t, ch.published, 2)
	assert.Equal(t, amqp.Persistent, ch.published[0].DeliveryMode)
	assert.Equal(t, contentType, ch.published[0].ContentType)
}

func TestRabbitMQPublisher_Nack(t *testing.T) {
	ch := &fakeChannel{acks: make(chan amqp.Confirmation, 4), nackAt: 2}
	p := &RabbitMQPublisher{ch: ch, acks: ch.acks, exchange: "status"}

	err := p.Publish(context.Background(), sampleEvents())

	assert.ErrorIs(t, err, ErrPublishNacked)
}

func TestLogPublisher(t *testing.T) {
	var buf bytes.Buffer
	p := NewLogPublisher(slog.New(slog.NewJSONHandler(&buf, nil)))

	require.NoError(t, p.Publish(context.Background(), sampleEvents()))
	assert.Contains(t, buf.String(), "order.status.claimed")
	assert.Contains(t, buf.String(), "worker.status.active")
	assert.NoError(t, p.Close())
}
