package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/retrosynth/internal/testutil"
)

type mockKafkaWriter struct {
	writeFunc func(ctx context.Context, msgs ...kafka.Message) error
	closeFunc func() error
}

func (m *mockKafkaWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if m.writeFunc != nil {
		return m.writeFunc(ctx, msgs...)
	}
	return nil
}

func (m *mockKafkaWriter) Close() error {
	if m.closeFunc != nil {
		return m.closeFunc()
	}
	return nil
}

func newTestProducer(w WriterInterface) *Producer {
	return &Producer{
		writer:  w,
		logger:  testutil.NewMockLogger(),
		metrics: &ProducerMetrics{},
	}
}

func TestValidateProducerConfig_Valid(t *testing.T) {
	err := ValidateProducerConfig(ProducerConfig{Brokers: []string{"localhost:9092"}})
	assert.NoError(t, err)
}

func TestValidateProducerConfig_EmptyBrokers(t *testing.T) {
	err := ValidateProducerConfig(ProducerConfig{})
	assert.Error(t, err)
}

func TestPublishRouteCompleted_Success(t *testing.T) {
	var captured []kafka.Message
	mock := &mockKafkaWriter{
		writeFunc: func(ctx context.Context, msgs ...kafka.Message) error {
			captured = msgs
			return nil
		},
	}
	p := newTestProducer(mock)

	err := p.PublishRouteCompleted(context.Background(), RouteCompletedEvent{
		TargetSMILES: "c1ccccc1C(=O)O",
		RolloutCount: 42,
		PathCount:    3,
		Done:         true,
	})
	require.NoError(t, err)
	require.Len(t, captured, 1)
	assert.Equal(t, TopicRouteCompleted, captured[0].Topic)

	var env EventEnvelope
	require.NoError(t, json.Unmarshal(captured[0].Value, &env))
	assert.Equal(t, EventTypeRouteCompleted, env.EventType)

	var decoded RouteCompletedEvent
	require.NoError(t, env.DecodePayload(&decoded))
	assert.Equal(t, "c1ccccc1C(=O)O", decoded.TargetSMILES)
	assert.Equal(t, 42, decoded.RolloutCount)

	sent, failed, _ := p.GetMetrics()
	assert.Equal(t, int64(1), sent)
	assert.Equal(t, int64(0), failed)
}

func TestPublishRouteExpanded_WriteFailure(t *testing.T) {
	mock := &mockKafkaWriter{
		writeFunc: func(ctx context.Context, msgs ...kafka.Message) error {
			return errors.New("broker unavailable")
		},
	}
	p := newTestProducer(mock)

	err := p.PublishRouteExpanded(context.Background(), RouteExpandedEvent{
		TargetSMILES:  "CCO",
		RolloutIndex:  5,
		ChemicalNodes: 10,
		ReactionNodes: 4,
	})
	assert.Error(t, err)

	_, failed, _ := p.GetMetrics()
	assert.Equal(t, int64(1), failed)
}

func TestPublish_AfterClose(t *testing.T) {
	p := newTestProducer(&mockKafkaWriter{})
	require.NoError(t, p.Close())

	err := p.PublishRouteCompleted(context.Background(), RouteCompletedEvent{})
	assert.ErrorIs(t, err, ErrProducerClosed)
}

func TestClose_Idempotent(t *testing.T) {
	closeCalls := 0
	mock := &mockKafkaWriter{
		closeFunc: func() error {
			closeCalls++
			return nil
		},
	}
	p := newTestProducer(mock)
	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	assert.Equal(t, 1, closeCalls)
}

//Personal.AI order the ending
