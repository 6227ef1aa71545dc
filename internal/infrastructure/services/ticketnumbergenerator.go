package services

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"
)

// TicketNumberGenerator issues T-YYYYMMDD-NNNN numbers. The per-day sequence
// is seeded from the database once and cached; the mutex keeps concurrent
// creations on one instance from reusing a sequence value.
type TicketNumberGenerator struct {
	db    *gorm.DB
	mu    sync.Mutex
	cache map[string]int
}

func NewTicketNumberGenerator(db *gorm.DB) *TicketNumberGenerator {
	return &TicketNumberGenerator{
		db:    db,
		cache: make(map[string]int),
	}
}

func (g *TicketNumberGenerator) Generate(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	dateStr := time.Now().UTC().Format("20060102")
	prefix := fmt.Sprintf("T-%s-", dateStr)

	seq, err := g.getNextSequence(ctx, dateStr)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%04d", prefix, seq), nil
}

func (g *TicketNumberGenerator) getNextSequence(ctx context.Context, dateStr string) (int, error) {
	if seq, ok := g.cache[dateStr]; ok {
		g.cache[dateStr] = seq + 1
		return seq + 1, nil
	}

	var maxNumber sql.NullString
	prefix := fmt.Sprintf("T-%s-%%", dateStr)

	err := g.db.WithContext(ctx).
		Table("tickets").
		Select("MAX(number)").
		Where("number LIKE ?", prefix).
		Scan(&maxNumber).Error

	if err != nil && err != gorm.ErrRecordNotFound {
		return 0, fmt.Errorf("failed to get max ticket number: %w", err)
	}

	seq := 1
	if maxNumber.Valid && maxNumber.String != "" {
		fmt.Sscanf(maxNumber.String, prefix[:len(prefix)-1]+"%d", &seq)
		seq++
	}

	g.cache[dateStr] = seq
	return seq, nil
}
