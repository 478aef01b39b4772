package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/snti-mx/snti-api/internal/application/usecase"
	"github.com/snti-mx/snti-api/internal/domain/repository"
)

var _ usecase.HijoTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunRegistroHijo inicia una transacción, ejecuta fn con repos atados a la tx
// y hace Commit o Rollback. Cubre la secuencia documento→hijo del alta y de la
// actualización con acta nueva.
func (r *TxRunner) RunRegistroHijo(ctx context.Context, fn func(
	docRepo repository.DocumentoRepository,
	hijoRepo repository.HijoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	docRepo := NewDocumentoRepository(tx)
	hijoRepo := NewHijoRepository(tx)

	if err := fn(docRepo, hijoRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
