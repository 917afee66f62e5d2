package main

import (
	health_sender "PreTrip_Health_Sender/internal/health-sender"
	"PreTrip_Health_Sender/internal/health-sender/collector"
	"PreTrip_Health_Sender/internal/health-sender/device"
	"PreTrip_Health_Sender/internal/health-sender/healthstore"
	"PreTrip_Health_Sender/internal/health-sender/model"
	"PreTrip_Health_Sender/internal/health-sender/pipeline"
	"PreTrip_Health_Sender/internal/health-sender/transmitter"
	"PreTrip_Health_Sender/pkg/infra"
	"PreTrip_Health_Sender/pkg/logger"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const (
	serviceName      = "health-sender"
	storePingTimeout = 2 * time.Second
)

// app owns every long-lived handle built from the configuration.
type app struct {
	cfg        health_sender.AppConfig
	logger     *zap.Logger
	fileSyncer *logger.ReopenableWriteSyncer
	deviceID   device.IdentifierProvider
	pipeline   pipeline.SyncPipeline
	closers    []func() error
	stopReload context.CancelFunc
}

func loadApp(envFile string) (*app, error) {
	cfg, err := health_sender.LoadConfig(envFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	fileSyncer, err := logger.NewReopenableWriteSyncer(cfg.Server.LogFile)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	zapLogger := logger.NewLogger(cfg.Server.LogLevel, fileSyncer, serviceName)
	reloadCtx, stopReload := context.WithCancel(context.Background())
	logger.ReloadOnSIGHUP(reloadCtx, fileSyncer, zapLogger)

	a := &app{
		cfg:        cfg,
		logger:     zapLogger,
		fileSyncer: fileSyncer,
		stopReload: stopReload,
	}
	if err = a.wire(); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *app) wire() error {
	if a.cfg.Device.ID != "" {
		a.deviceID = device.NewStaticIdentifierProvider(a.cfg.Device.ID)
	} else {
		a.deviceID = device.NewFileIdentifierProvider(a.cfg.Device.IDFile, a.logger)
	}

	store, err := a.newHealthStore()
	if err != nil {
		return err
	}

	mode, err := model.ParseSampleMode(a.cfg.Sync.SampleMode)
	if err != nil {
		return fmt.Errorf("sample mode: %w", err)
	}
	sampleCollector := collector.NewSampleCollector(store, a.deviceID, mode, a.cfg.Sync.QueryTimeout, a.logger)
	client := transmitter.NewTransmissionClient(infra.NewHTTPClient(a.logger), a.cfg.Sync.EndpointURL, a.logger)

	var reporter pipeline.OutcomeReporter
	if a.cfg.Kafka.Enabled() {
		kafkaWriter := infra.NewKafkaWriter(a.cfg.Kafka.Brokers, a.cfg.Kafka.OutcomeTopic)
		a.closers = append(a.closers, kafkaWriter.Close)
		reporter = pipeline.NewKafkaOutcomeReporter(kafkaWriter)
		a.logger.Info("reporting sync outcomes to kafka", zap.Strings("brokers", a.cfg.Kafka.Brokers), zap.String("topic", a.cfg.Kafka.OutcomeTopic))
	}

	a.pipeline = pipeline.NewSyncPipeline(sampleCollector, client, reporter, a.deviceID, a.logger)
	return nil
}

func (a *app) newHealthStore() (healthstore.HealthStore, error) {
	switch a.cfg.Store.Driver {
	case health_sender.StoreDriverPostgres:
		db, err := infra.NewPostgresConnection(infra.PostgresConfig{
			Host:     a.cfg.Postgres.Host,
			Port:     a.cfg.Postgres.Port,
			User:     a.cfg.Postgres.User,
			Password: a.cfg.Postgres.Password,
			DBName:   a.cfg.Postgres.DBName,
			SSLMode:  a.cfg.Postgres.SSLMode,
		})
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("get sql.DB from gorm: %w", err)
		}
		a.closers = append(a.closers, sqlDB.Close)
		a.logger.Info("connected to postgres successfully")
		return healthstore.NewPostgresHealthStore(db, storePingTimeout), nil
	case health_sender.StoreDriverRedis:
		client, err := infra.NewRedisConnection(infra.RedisConfig{
			Host:     a.cfg.Redis.Host,
			Port:     a.cfg.Redis.Port,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		a.closers = append(a.closers, client.Close)
		a.logger.Info("connected to redis successfully")
		return healthstore.NewRedisHealthStore(client, storePingTimeout), nil
	case health_sender.StoreDriverMQTT:
		kinds, err := a.cfg.MQTT.GrantedKinds()
		if err != nil {
			return nil, err
		}
		client, err := infra.NewMQTTConnection(infra.MQTTConfig{
			Broker:   a.cfg.MQTT.Broker,
			ClientID: a.cfg.MQTT.ClientID,
			Username: a.cfg.MQTT.Username,
			Password: a.cfg.MQTT.Password,
		}, a.logger)
		if err != nil {
			return nil, fmt.Errorf("connect to mqtt: %w", err)
		}
		a.closers = append(a.closers, func() error {
			client.Disconnect(250)
			return nil
		})
		a.logger.Info("connected to mqtt successfully", zap.String("broker", a.cfg.MQTT.Broker))
		return healthstore.NewMQTTHealthStore(client, a.cfg.MQTT.TopicPrefix, kinds, healthstore.DefaultMemoryCapacity, a.logger)
	default:
		store := healthstore.NewMemoryHealthStore(healthstore.DefaultMemoryCapacity, model.AllSampleKinds())
		if a.cfg.Store.MemorySeedFile == "" {
			store.SetAvailable(false)
			a.logger.Warn("memory health store has no seed file, health data is unavailable")
			return store, nil
		}
		n, err := store.LoadSeedFile(a.cfg.Store.MemorySeedFile)
		if err != nil {
			return nil, fmt.Errorf("seed memory health store: %w", err)
		}
		a.logger.Info("seeded memory health store", zap.String("path", a.cfg.Store.MemorySeedFile), zap.Int("samples", n))
		return store, nil
	}
}

// Close releases handles in reverse order of creation.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Error("failed to close resource", zap.Error(err))
		}
	}
	a.stopReload()
	_ = a.logger.Sync()
	_ = a.fileSyncer.Close()
}
