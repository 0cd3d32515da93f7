package postgres

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// SequenceIDGenerator draws ids from a Postgres sequence shared by all
// entities that use it.
type SequenceIDGenerator struct {
	db       *gorm.DB
	sequence string
}

func NewSequenceIDGenerator(db *gorm.DB, sequence string) *SequenceIDGenerator {
	return &SequenceIDGenerator{db: db, sequence: sequence}
}

func (g *SequenceIDGenerator) NextID(ctx context.Context) (int64, error) {
	var id int64
	query := fmt.Sprintf("SELECT nextval('%s')", strings.ReplaceAll(g.sequence, "'", "''"))
	if err := g.db.WithContext(ctx).Raw(query).Scan(&id).Error; err != nil {
		return 0, fmt.Errorf("failed to read sequence %s: %w", g.sequence, err)
	}
	if id == 0 {
		return 0, fmt.Errorf("sequence %s returned no value", g.sequence)
	}
	return id, nil
}
