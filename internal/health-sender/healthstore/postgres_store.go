package healthstore

import (
	apperrors "PreTrip_Health_Sender/internal/health-sender/errors"
	"PreTrip_Health_Sender/internal/health-sender/model"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type sampleRow struct {
	ID        int64
	Kind      string
	Value     float64
	Unit      string
	StartDate time.Time
	EndDate   time.Time
}

func (sampleRow) TableName() string {
	return "health_samples"
}

type authorizationRow struct {
	Kind      string `gorm:"primaryKey"`
	Granted   bool
	UpdatedAt time.Time
}

func (authorizationRow) TableName() string {
	return "health_authorizations"
}

type postgresHealthStore struct {
	db          *gorm.DB
	pingTimeout time.Duration
}

func (s *postgresHealthStore) IsHealthDataAvailable() bool {
	sqlDB, err := s.db.DB()
	if err != nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.pingTimeout)
	defer cancel()
	return sqlDB.PingContext(ctx) == nil
}

// RequestAuthorization grants access only when every requested kind has a granted row in
// health_authorizations.
func (s *postgresHealthStore) RequestAuthorization(ctx context.Context, kinds []model.SampleKind) (bool, error) {
	if err := validateKinds(kinds); err != nil {
		return false, fmt.Errorf("postgresHealthStore.RequestAuthorization: %w", err)
	}
	seen := make(map[model.SampleKind]struct{}, len(kinds))
	var requested []string
	for _, k := range kinds {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		requested = append(requested, string(k))
	}
	var granted int64
	err := s.db.WithContext(ctx).Model(&authorizationRow{}).Where("kind IN ? AND granted = ?", requested, true).Count(&granted).Error
	if err != nil {
		return false, fmt.Errorf("postgresHealthStore.RequestAuthorization: %w", translatePostgresError(err))
	}
	return granted == int64(len(requested)), nil
}

func (s *postgresHealthStore) QuerySamples(ctx context.Context, query model.SampleQuery) ([]model.Sample, error) {
	tx := s.db.WithContext(ctx).Where("kind = ? AND start_date >= ? AND start_date < ?", string(query.Kind), query.Start, query.End)
	if query.Order == model.SortAscending {
		tx = tx.Order("start_date ASC")
	} else {
		tx = tx.Order("start_date DESC")
	}
	if query.Limit > 0 {
		tx = tx.Limit(query.Limit)
	}
	var rows []sampleRow
	if err := tx.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("postgresHealthStore.QuerySamples: %w", translatePostgresError(err))
	}
	samples := make([]model.Sample, 0, len(rows))
	for _, row := range rows {
		samples = append(samples, model.Sample{
			Kind:      query.Kind,
			Quantity:  model.Quantity{Value: row.Value, Unit: model.Unit(row.Unit)},
			StartDate: row.StartDate,
			EndDate:   row.EndDate,
		})
	}
	return samples, nil
}

// translatePostgresError maps a missing schema to ErrHealthDataUnavailable.
func translatePostgresError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (pgErr.Code == pgerrcode.UndefinedTable || pgErr.Code == pgerrcode.InvalidSchemaName) {
		return fmt.Errorf("%w: %s", apperrors.ErrHealthDataUnavailable, pgErr.Message)
	}
	return err
}

func NewPostgresHealthStore(db *gorm.DB, pingTimeout time.Duration) HealthStore {
	if pingTimeout <= 0 {
		pingTimeout = 2 * time.Second
	}
	return &postgresHealthStore{
		db:          db,
		pingTimeout: pingTimeout,
	}
}
