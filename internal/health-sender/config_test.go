package health_sender

import (
	"PreTrip_Health_Sender/internal/health-sender/model"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	testCases := []struct {
		name        string
		env         map[string]string
		expectedErr bool
		check       func(t *testing.T, cfg AppConfig)
	}{
		{
			name: "Defaults",
			env: map[string]string{
				"HEALTH_ENDPOINT_URL": "https://example.com/api/healthdata",
			},
			check: func(t *testing.T, cfg AppConfig) {
				assert.Equal(t, "info", cfg.Server.LogLevel)
				assert.Equal(t, "8080", cfg.Server.HTTPPort)
				assert.Equal(t, "latest", cfg.Sync.SampleMode)
				assert.Equal(t, 10*time.Second, cfg.Sync.QueryTimeout)
				assert.Equal(t, "@hourly", cfg.Sync.Schedule)
				assert.Equal(t, time.Minute, cfg.Sync.Timeout)
				assert.Equal(t, StoreDriverMemory, cfg.Store.Driver)
				assert.Equal(t, "./data/device-id", cfg.Device.IDFile)
				assert.False(t, cfg.Kafka.Enabled())
				kinds, err := cfg.MQTT.GrantedKinds()
				require.NoError(t, err)
				assert.Equal(t, model.AllSampleKinds(), kinds)
			},
		},
		{
			name:        "Endpoint is required",
			env:         map[string]string{},
			expectedErr: true,
		},
		{
			name: "Endpoint must be a url",
			env: map[string]string{
				"HEALTH_ENDPOINT_URL": "not a url",
			},
			expectedErr: true,
		},
		{
			name: "Unknown sample mode",
			env: map[string]string{
				"HEALTH_ENDPOINT_URL": "https://example.com/api/healthdata",
				"SAMPLE_MODE":         "average",
			},
			expectedErr: true,
		},
		{
			name: "Postgres driver needs connection settings",
			env: map[string]string{
				"HEALTH_ENDPOINT_URL": "https://example.com/api/healthdata",
				"HEALTH_STORE_DRIVER": "postgres",
			},
			expectedErr: true,
		},
		{
			name: "Postgres driver",
			env: map[string]string{
				"HEALTH_ENDPOINT_URL": "https://example.com/api/healthdata",
				"HEALTH_STORE_DRIVER": "postgres",
				"POSTGRES_HOST":       "db",
				"POSTGRES_USER":       "sender",
				"POSTGRES_DB":         "health",
			},
			check: func(t *testing.T, cfg AppConfig) {
				assert.Equal(t, 5432, cfg.Postgres.Port)
				assert.Equal(t, "disable", cfg.Postgres.SSLMode)
			},
		},
		{
			name: "MQTT driver with unknown kind",
			env: map[string]string{
				"HEALTH_ENDPOINT_URL":   "https://example.com/api/healthdata",
				"HEALTH_STORE_DRIVER":   "mqtt",
				"MQTT_BROKER":           "tcp://localhost:1883",
				"MQTT_AUTHORIZED_KINDS": "heart_rate,steps",
			},
			expectedErr: true,
		},
		{
			name: "MQTT driver with credentials",
			env: map[string]string{
				"HEALTH_ENDPOINT_URL": "https://example.com/api/healthdata",
				"HEALTH_STORE_DRIVER": "mqtt",
				"MQTT_BROKER":         "tcp://localhost:1883",
				"MQTT_USERNAME":       "sender",
				"MQTT_PASSWORD":       "secret",
			},
			check: func(t *testing.T, cfg AppConfig) {
				assert.Equal(t, "sender", cfg.MQTT.Username)
				assert.Equal(t, "secret", cfg.MQTT.Password)
			},
		},
		{
			name: "Memory seed file must exist",
			env: map[string]string{
				"HEALTH_ENDPOINT_URL": "https://example.com/api/healthdata",
				"MEMORY_SEED_FILE":    "./does/not/exist.json",
			},
			expectedErr: true,
		},
		{
			name: "Kafka brokers enable reporting",
			env: map[string]string{
				"HEALTH_ENDPOINT_URL": "https://example.com/api/healthdata",
				"KAFKA_BROKERS":       "kafka-1:9092,kafka-2:9092",
			},
			check: func(t *testing.T, cfg AppConfig) {
				assert.True(t, cfg.Kafka.Enabled())
				assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
				assert.Equal(t, "health-sync-outcomes", cfg.Kafka.OutcomeTopic)
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tc.check(t, cfg)
		})
	}
}

func TestLoadConfig_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HEALTH_ENDPOINT_URL=https://example.com/from-file\nSAMPLE_MODE=series\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("HEALTH_ENDPOINT_URL")
		os.Unsetenv("SAMPLE_MODE")
	})

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/from-file", cfg.Sync.EndpointURL)
	assert.Equal(t, "series", cfg.Sync.SampleMode)
}

func TestAppConfig_Validate_ReportsField(t *testing.T) {
	cfg := AppConfig{
		Server:   ServerConfig{LogLevel: "info", LogFile: "x.log", HTTPPort: "8080"},
		Sync:     SyncConfig{EndpointURL: "https://example.com", SampleMode: "latest", QueryTimeout: time.Second, Schedule: "@hourly", Timeout: time.Second},
		Store:    StoreConfig{Driver: StoreDriverRedis},
		Postgres: PostgresConfig{SSLMode: "disable"},
		MQTT:     MQTTConfig{TopicPrefix: "health/samples"},
	}
	err := cfg.Validate()
	require.Error(t, err)
	var validationErrors validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrors)
	assert.Equal(t, "required_for_driver", validationErrors[0].Tag())
}
