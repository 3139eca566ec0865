package memory

import (
	"context"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// txRunner — in-memory "транзакция": откат не поддерживается,
// fn выполняется напрямую. Поведение совпадает с последовательной записью
// исходного сервиса; атомарность даёт только PostgreSQL-бэкенд.
type txRunner struct{}

// NewTxRunner возвращает TxRunner без реальных транзакций.
func NewTxRunner() domain.TxRunner {
	return txRunner{}
}

func (txRunner) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var _ domain.TxRunner = txRunner{}
