package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// productRepositoryInMemory — простая in-memory реализация ProductRepository.
type productRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]domain.Product
}

// NewProductRepository возвращает in-memory каталог для локальной разработки и тестов.
func NewProductRepository() domain.ProductRepository {
	return &productRepositoryInMemory{
		items: make(map[string]domain.Product),
	}
}

// Create сохраняет новый товар, проверяя уникальность имени.
func (r *productRepositoryInMemory) Create(_ context.Context, product domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if strings.EqualFold(existing.Name, product.Name) {
			return domain.ErrProductNameTaken
		}
	}
	r.items[product.ID] = product
	return nil
}

// FindByID возвращает товар или ErrProductNotFound, если его нет.
func (r *productRepositoryInMemory) FindByID(_ context.Context, id string) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.items[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return product, nil
}

// FindAllByID возвращает существующие товары из набора идентификаторов.
// Дубликаты во входе схлопываются; порядок результата — порядок первого
// вхождения идентификатора во входном наборе.
func (r *productRepositoryInMemory) FindAllByID(_ context.Context, ids []string) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{}, len(ids))
	result := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if product, ok := r.items[id]; ok {
			result = append(result, product)
		}
	}
	return result, nil
}

// UpdateQuantities применяет пакет новых остатков. Пакет применяется
// целиком под одной блокировкой.
func (r *productRepositoryInMemory) UpdateQuantities(_ context.Context, batch []domain.ProductQuantity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Сначала проверяем весь пакет, чтобы не применить его частично.
	for _, upd := range batch {
		if _, ok := r.items[upd.ProductID]; !ok {
			return domain.ErrProductNotFound
		}
		if upd.Quantity < 0 {
			return domain.ErrProductQuantityInvalid
		}
	}

	now := time.Now().UTC()
	for _, upd := range batch {
		product := r.items[upd.ProductID]
		product.Quantity = upd.Quantity
		product.UpdatedAt = now
		r.items[upd.ProductID] = product
	}
	return nil
}

var _ domain.ProductRepository = (*productRepositoryInMemory)(nil)
