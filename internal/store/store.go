package store

import (
	"context"
	"fmt"
	"sync"

	"gamecatalog/backend/internal/models"
	"gamecatalog/backend/internal/schema"

	"gorm.io/gorm"
)

// DefaultBatchSize is the number of rows per INSERT statement during ReplaceAll.
const DefaultBatchSize = 500

// RawRow holds the driver values of one stored row in schema.Columns order.
type RawRow []any

// Predicate is a parameterized WHERE expression. Values are only ever
// passed through Args.
type Predicate struct {
	SQL  string
	Args []any
}

// Catalog owns the game_data table. Readers run concurrently; ReplaceAll
// calls are serialized and each runs in a single transaction.
type Catalog struct {
	db        *gorm.DB
	batchSize int
	mu        sync.Mutex
}

// NewCatalog returns a store over db. A non-positive batchSize selects
// DefaultBatchSize.
func NewCatalog(db *gorm.DB, batchSize int) *Catalog {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Catalog{db: db, batchSize: batchSize}
}

// Migrate creates the table if it does not exist.
func (c *Catalog) Migrate(ctx context.Context) error {
	if err := c.db.WithContext(ctx).AutoMigrate(&models.GameRow{}); err != nil {
		return fmt.Errorf("migrate game_data: %w", err)
	}
	return nil
}

// ReplaceAll discards the current dataset and installs rows in one
// transaction. On error the previous dataset is left untouched.
func (c *Catalog) ReplaceAll(ctx context.Context, rows []models.GameRow) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.GameRow{}).Error; err != nil {
			return fmt.Errorf("clear game_data: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, c.batchSize).Error; err != nil {
			return fmt.Errorf("insert game_data: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("replace dataset: %w", err)
	}
	return nil
}

// Query returns the rows matching p ordered by AppID. An empty predicate
// matches every row.
func (c *Catalog) Query(ctx context.Context, p Predicate) ([]RawRow, error) {
	cols := schema.Columns()
	q := c.db.WithContext(ctx).Model(&models.GameRow{}).Select(cols)
	if p.SQL != "" {
		q = q.Where(p.SQL, p.Args...)
	}

	rows, err := q.Order("app_id").Rows()
	if err != nil {
		return nil, fmt.Errorf("query game_data: %w", err)
	}
	defer rows.Close()

	var out []RawRow
	for rows.Next() {
		vals := make(RawRow, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan game_data: %w", err)
		}
		out = append(out, vals)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate game_data: %w", err)
	}
	return out, nil
}

// Count returns the number of stored rows.
func (c *Catalog) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := c.db.WithContext(ctx).Model(&models.GameRow{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count game_data: %w", err)
	}
	return n, nil
}
