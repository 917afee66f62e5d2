package healthstore

import (
	"PreTrip_Health_Sender/internal/health-sender/model"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
)

// mqttSamplePayload is what wearables publish on <prefix>/<kind>.
type mqttSamplePayload struct {
	Value     float64    `json:"value"`
	Unit      string     `json:"unit"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

type mqttHealthStore struct {
	client      mqtt.Client
	topicPrefix string
	buffer      *MemoryHealthStore
	logger      *zap.Logger
	now         func() time.Time
}

func (s *mqttHealthStore) IsHealthDataAvailable() bool {
	return s.client != nil && s.client.IsConnectionOpen()
}

func (s *mqttHealthStore) RequestAuthorization(ctx context.Context, kinds []model.SampleKind) (bool, error) {
	granted, err := s.buffer.RequestAuthorization(ctx, kinds)
	if err != nil {
		return false, fmt.Errorf("mqttHealthStore.RequestAuthorization: %w", err)
	}
	return granted, nil
}

func (s *mqttHealthStore) QuerySamples(ctx context.Context, query model.SampleQuery) ([]model.Sample, error) {
	samples, err := s.buffer.QuerySamples(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("mqttHealthStore.QuerySamples: %w", err)
	}
	return samples, nil
}

func (s *mqttHealthStore) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	sample, err := s.decodeSample(msg.Topic(), msg.Payload())
	if err != nil {
		s.logger.Warn("dropping health sample message", zap.String("topic", msg.Topic()), zap.Error(err))
		return
	}
	if err = s.buffer.Add(sample); err != nil {
		s.logger.Warn("dropping health sample message", zap.String("topic", msg.Topic()), zap.Error(err))
	}
}

func (s *mqttHealthStore) decodeSample(topic string, payload []byte) (model.Sample, error) {
	kind, err := model.ParseSampleKind(strings.TrimPrefix(topic, s.topicPrefix+"/"))
	if err != nil {
		return model.Sample{}, fmt.Errorf("mqttHealthStore.decodeSample: %w", err)
	}
	var p mqttSamplePayload
	if err = json.Unmarshal(payload, &p); err != nil {
		return model.Sample{}, fmt.Errorf("mqttHealthStore.decodeSample: %w", err)
	}
	unit, err := model.ParseUnit(p.Unit)
	if err != nil {
		return model.Sample{}, fmt.Errorf("mqttHealthStore.decodeSample: %w", err)
	}
	start := s.now()
	if p.StartDate != nil {
		start = *p.StartDate
	}
	end := start
	if p.EndDate != nil {
		end = *p.EndDate
	}
	return model.Sample{
		Kind:      kind,
		Quantity:  model.Quantity{Value: p.Value, Unit: unit},
		StartDate: start,
		EndDate:   end,
	}, nil
}

// NewMQTTHealthStore subscribes to <topicPrefix>/+ and buffers every valid sample it receives.
func NewMQTTHealthStore(client mqtt.Client, topicPrefix string, grantedKinds []model.SampleKind, capacity int, logger *zap.Logger) (HealthStore, error) {
	s := &mqttHealthStore{
		client:      client,
		topicPrefix: strings.TrimSuffix(topicPrefix, "/"),
		buffer:      NewMemoryHealthStore(capacity, grantedKinds),
		logger:      logger,
		now:         time.Now,
	}
	topic := s.topicPrefix + "/+"
	token := client.Subscribe(topic, 1, s.handleMessage)
	if token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("NewMQTTHealthStore subscribe %s: %w", topic, token.Error())
	}
	logger.Info("subscribed to health sample topic", zap.String("topic", topic))
	return s, nil
}
