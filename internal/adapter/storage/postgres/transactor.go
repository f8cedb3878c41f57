package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Transactor hands out database transactions for fund movements. Purchase
// processing locks wallet and merchant rows inside one transaction so a
// debit can never commit without its matching credit.
type Transactor struct {
	pool Pool
}

func NewTransactor(pool Pool) *Transactor {
	return &Transactor{pool: pool}
}

// Begin opens a transaction at the pool's default isolation level
// (read committed). Row locks, not serializable isolation, provide the
// purchase ordering guarantees.
func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return t.pool.Begin(ctx)
}
