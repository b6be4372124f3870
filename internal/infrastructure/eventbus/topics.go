package eventbus

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/turtacn/retrosynth/pkg/errors"
)

// Topic names for the two route lifecycle events this module publishes.
const (
	TopicRouteCompleted = "retrosynth.route.completed"
	TopicRouteExpanded  = "retrosynth.route.expanded"
)

// Event type identifiers carried in EventEnvelope.EventType.
const (
	EventTypeRouteCompleted = "route.completed"
	EventTypeRouteExpanded  = "route.expanded"
)

// RouteCompletedEvent reports the outcome of one build_tree run. Published
// once, after get_buyable_paths has been computed, from the HTTP handler.
type RouteCompletedEvent struct {
	TargetSMILES string        `json:"target_smiles"`
	RolloutCount int           `json:"rollout_count"`
	PathCount    int           `json:"path_count"`
	Elapsed      time.Duration `json:"elapsed_ns"`
	Done         bool          `json:"done"`
}

// RouteExpandedEvent reports incremental DAG growth partway through a
// rollout loop, for consumers that want progress rather than a final
// summary. Not required by any core invariant; the driver may skip
// publishing it entirely when no consumer is configured.
type RouteExpandedEvent struct {
	TargetSMILES  string `json:"target_smiles"`
	RolloutIndex  int    `json:"rollout_index"`
	ChemicalNodes int    `json:"chemical_nodes"`
	ReactionNodes int    `json:"reaction_nodes"`
}

// EventEnvelope standardizes event messages across both topics.
type EventEnvelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	Source        string          `json:"source"`
	Timestamp     time.Time       `json:"timestamp"`
	SchemaVersion string          `json:"schema_version"`
	Payload       json.RawMessage `json:"payload"`
}

// NewEventEnvelope marshals payload and wraps it with envelope metadata.
func NewEventEnvelope(eventType string, payload interface{}) (*EventEnvelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to marshal event payload")
	}
	return &EventEnvelope{
		EventID:       uuid.New().String(),
		EventType:     eventType,
		Source:        "retrosynth-engine",
		Timestamp:     time.Now().UTC(),
		SchemaVersion: "v1",
		Payload:       data,
	}, nil
}

// DecodePayload unmarshals the envelope's payload into target. Exposed for
// consumer-side code and for this package's tests.
func (e *EventEnvelope) DecodePayload(target interface{}) error {
	if len(e.Payload) == 0 || string(e.Payload) == "null" {
		return nil
	}
	return json.Unmarshal(e.Payload, target)
}

// ToMessage serializes the envelope for publication to topic.
func (e *EventEnvelope) ToMessage(topic string) (kafka.Message, error) {
	val, err := json.Marshal(e)
	if err != nil {
		return kafka.Message{}, errors.Wrap(err, errors.CodeInternal, "failed to marshal event envelope")
	}
	return kafka.Message{Topic: topic, Key: []byte(e.EventID), Value: val, Time: e.Timestamp}, nil
}

//Personal.AI order the ending
