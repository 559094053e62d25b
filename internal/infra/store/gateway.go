package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultListLimit applies when a caller asks for a non-positive count.
const DefaultListLimit = 50

var (
	// ErrStore wraps every database failure surfaced by the gateway.
	ErrStore = errors.New("record store request failed")
	// ErrNotFound is returned by Update when the record does not exist.
	ErrNotFound = errors.New("record not found")
)

type Gateway struct {
	db  *gorm.DB
	log *zap.Logger
}

func New(db *gorm.DB, log *zap.Logger) *Gateway {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gateway{db: db, log: log}
}

// List returns up to maxCount records of a collection, newest first.
//
// If the ordered query fails for any reason, List falls back to an unordered
// fetch of the whole collection and truncates it. Callers must not rely on
// ordering.
func (g *Gateway) List(ctx context.Context, collection string, maxCount int) ([]Record, error) {
	if maxCount <= 0 {
		maxCount = DefaultListLimit
	}

	var recs []Record
	err := g.inCollection(ctx, collection).
		Order("created_at DESC").
		Limit(maxCount).
		Find(&recs).Error
	if err == nil {
		return recs, nil
	}

	g.log.Warn("ordered listing failed, falling back to unordered fetch",
		zap.String("collection", collection),
		zap.Error(err),
	)

	recs = nil
	if err := g.inCollection(ctx, collection).Find(&recs).Error; err != nil {
		return nil, wrap(err)
	}
	if len(recs) > maxCount {
		recs = recs[:maxCount]
	}
	return recs, nil
}

// Get looks a record up by id. A blank id or an absent record yields
// found == false and a nil error.
func (g *Gateway) Get(ctx context.Context, collection, id string) (Record, bool, error) {
	if strings.TrimSpace(id) == "" {
		return Record{}, false, nil
	}

	var rec Record
	err := g.inCollection(ctx, collection).Where("id = ?", id).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, wrap(err)
	}
	return rec, true, nil
}

// Create stores a new record and returns its id. Timestamps are set by the
// gateway, never by the caller.
func (g *Gateway) Create(ctx context.Context, collection string, fields map[string]any) (string, error) {
	data, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("encode %s record: %w", collection, err)
	}

	rec := Record{
		Collection: collection,
		ID:         uuid.NewString(),
		Data:       data,
	}
	if err := g.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return "", wrap(err)
	}
	return rec.ID, nil
}

// Update merges fields into the stored document (top-level keys replace
// existing ones) and stamps updatedAt.
func (g *Gateway) Update(ctx context.Context, collection, id string, fields map[string]any, updatedAt time.Time) error {
	patch, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("encode %s patch: %w", collection, err)
	}

	res := g.inCollection(ctx, collection).
		Where("id = ?", id).
		Updates(map[string]any{
			"data":       gorm.Expr("data || ?::jsonb", string(patch)),
			"updated_at": updatedAt,
		})
	if res.Error != nil {
		return wrap(res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s/%s: %w", collection, id, ErrNotFound)
	}
	return nil
}

func (g *Gateway) inCollection(ctx context.Context, collection string) *gorm.DB {
	return g.db.WithContext(ctx).
		Model(&Record{}).
		Where("collection = ?", collection)
}

func wrap(err error) error {
	return fmt.Errorf("%w: %w", ErrStore, err)
}
