package health_sender

import (
	"PreTrip_Health_Sender/internal/health-sender/model"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverRedis    = "redis"
	StoreDriverMQTT     = "mqtt"
	StoreDriverMemory   = "memory"
)

type AppConfig struct {
	Server   ServerConfig
	Sync     SyncConfig
	Device   DeviceConfig
	Store    StoreConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	MQTT     MQTTConfig
	Kafka    KafkaConfig
}

type ServerConfig struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error fatal"`
	LogFile  string `envconfig:"LOG_FILE" default:"./log/health-sender.log" validate:"required"`
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080" validate:"required,numeric"`
}

type SyncConfig struct {
	EndpointURL  string        `envconfig:"HEALTH_ENDPOINT_URL" required:"true" validate:"required,url"`
	SampleMode   string        `envconfig:"SAMPLE_MODE" default:"latest" validate:"oneof=latest series"`
	QueryTimeout time.Duration `envconfig:"QUERY_TIMEOUT" default:"10s" validate:"gt=0"`
	Schedule     string        `envconfig:"SYNC_SCHEDULE" default:"@hourly" validate:"required"`
	OnStart      bool          `envconfig:"SYNC_ON_START" default:"false"`
	Timeout      time.Duration `envconfig:"SYNC_TIMEOUT" default:"60s" validate:"gt=0"`
}

type DeviceConfig struct {
	ID     string `envconfig:"DEVICE_ID"`
	IDFile string `envconfig:"DEVICE_ID_FILE" default:"./data/device-id"`
}

type StoreConfig struct {
	Driver string `envconfig:"HEALTH_STORE_DRIVER" default:"memory" validate:"oneof=postgres redis mqtt memory"`

	// MemorySeedFile is a JSON array of samples for the memory driver. Without it the memory
	// driver reports health data as unavailable.
	MemorySeedFile string `envconfig:"MEMORY_SEED_FILE" validate:"omitempty,file"`
}

type PostgresConfig struct {
	Host     string `envconfig:"POSTGRES_HOST"`
	Port     int    `envconfig:"POSTGRES_PORT" default:"5432"`
	User     string `envconfig:"POSTGRES_USER"`
	Password string `envconfig:"POSTGRES_PASSWORD"`
	DBName   string `envconfig:"POSTGRES_DB"`
	SSLMode  string `envconfig:"POSTGRES_SSLMODE" default:"disable" validate:"oneof=disable allow prefer require verify-ca verify-full"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0" validate:"gte=0"`
}

type MQTTConfig struct {
	Broker          string   `envconfig:"MQTT_BROKER"`
	ClientID        string   `envconfig:"MQTT_CLIENT_ID" default:"health-sender"`
	Username        string   `envconfig:"MQTT_USERNAME"`
	Password        string   `envconfig:"MQTT_PASSWORD"`
	TopicPrefix     string   `envconfig:"MQTT_TOPIC_PREFIX" default:"health/samples" validate:"required"`
	AuthorizedKinds []string `envconfig:"MQTT_AUTHORIZED_KINDS" default:"heart_rate,blood_pressure_systolic,blood_pressure_diastolic,body_temperature,blood_alcohol_content"`
}

// GrantedKinds parses AuthorizedKinds.
func (m MQTTConfig) GrantedKinds() ([]model.SampleKind, error) {
	kinds := make([]model.SampleKind, 0, len(m.AuthorizedKinds))
	for _, s := range m.AuthorizedKinds {
		k, err := model.ParseSampleKind(s)
		if err != nil {
			return nil, fmt.Errorf("MQTTConfig.GrantedKinds: %w", err)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

type KafkaConfig struct {
	// empty disables outcome reporting
	Brokers      []string `envconfig:"KAFKA_BROKERS"`
	OutcomeTopic string   `envconfig:"KAFKA_OUTCOME_TOPIC" default:"health-sync-outcomes"`
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

func validateStoreSettings(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(AppConfig)
	switch cfg.Store.Driver {
	case StoreDriverPostgres:
		if cfg.Postgres.Host == "" {
			sl.ReportError(cfg.Postgres.Host, "Postgres.Host", "Host", "required_for_driver", StoreDriverPostgres)
		}
		if cfg.Postgres.User == "" {
			sl.ReportError(cfg.Postgres.User, "Postgres.User", "User", "required_for_driver", StoreDriverPostgres)
		}
		if cfg.Postgres.DBName == "" {
			sl.ReportError(cfg.Postgres.DBName, "Postgres.DBName", "DBName", "required_for_driver", StoreDriverPostgres)
		}
	case StoreDriverRedis:
		if cfg.Redis.Host == "" {
			sl.ReportError(cfg.Redis.Host, "Redis.Host", "Host", "required_for_driver", StoreDriverRedis)
		}
	case StoreDriverMQTT:
		if cfg.MQTT.Broker == "" {
			sl.ReportError(cfg.MQTT.Broker, "MQTT.Broker", "Broker", "required_for_driver", StoreDriverMQTT)
		}
		if _, err := cfg.MQTT.GrantedKinds(); err != nil {
			sl.ReportError(cfg.MQTT.AuthorizedKinds, "MQTT.AuthorizedKinds", "AuthorizedKinds", "sample_kind", "")
		}
	}
	if cfg.Kafka.Enabled() && cfg.Kafka.OutcomeTopic == "" {
		sl.ReportError(cfg.Kafka.OutcomeTopic, "Kafka.OutcomeTopic", "OutcomeTopic", "required_with", "Brokers")
	}
}

func (cfg AppConfig) Validate() error {
	v := validator.New()
	v.RegisterStructValidation(validateStoreSettings, AppConfig{})
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("AppConfig.Validate: %w", err)
	}
	return nil
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}
