// internal/common/store/reports.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"credit-workers/internal/common/metrics"
	"credit-workers/internal/models"

	"github.com/redis/go-redis/v9"
)

// ErrReportNotFound is returned when no report row exists for the client.
// The bureau-integration pipeline owns writes; this store only reads.
var ErrReportNotFound = errors.New("credit report not found")

const reportKeyPrefix = "credit:report:"

// ReportStore resolves credit report snapshots with a Redis cache in front of
// the Postgres credit_reports table.
type ReportStore struct {
	db    *sql.DB
	redis *redis.Client
	ttl   time.Duration
}

func NewReportStore(db *sql.DB, rdb *redis.Client, ttl time.Duration) *ReportStore {
	return &ReportStore{db: db, redis: rdb, ttl: ttl}
}

// Get returns the latest snapshot for a client. Cache hits skip Postgres;
// misses read the row and repopulate the cache.
func (s *ReportStore) Get(ctx context.Context, clientID string) (*models.CreditReportSnapshot, error) {
	key := reportKeyPrefix + clientID
	if val, err := s.redis.Get(ctx, key).Result(); err == nil {
		var snap models.CreditReportSnapshot
		if err := json.Unmarshal([]byte(val), &snap); err == nil {
			metrics.ReportCacheHits.WithLabelValues("hit").Inc()
			return &snap, nil
		}
	}
	metrics.ReportCacheHits.WithLabelValues("miss").Inc()

	row := s.db.QueryRowContext(ctx, `
		SELECT report
		FROM credit_reports
		WHERE client_id = $1
		ORDER BY fetched_at DESC
		LIMIT 1`, clientID)

	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("query credit report: %w", err)
	}

	var snap models.CreditReportSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("decode credit report: %w", err)
	}
	if snap.ClientID == "" {
		snap.ClientID = clientID
	}

	if data, err := json.Marshal(snap); err == nil {
		s.redis.Set(ctx, key, data, s.ttl)
	}

	return &snap, nil
}

// Invalidate drops the cached snapshot, e.g. after a bureau refresh event.
func (s *ReportStore) Invalidate(ctx context.Context, clientID string) error {
	return s.redis.Del(ctx, reportKeyPrefix+clientID).Err()
}
