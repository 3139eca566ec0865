package domain

import "context"

// CustomerRepository описывает требования к справочнику клиентов.
type CustomerRepository interface {
	// Create сохраняет нового клиента. Возвращает ErrCustomerEmailTaken,
	// если email уже занят.
	Create(ctx context.Context, customer Customer) error
	// FindByID возвращает клиента или ErrCustomerNotFound, если его нет.
	FindByID(ctx context.Context, id string) (Customer, error)
	// FindByEmail возвращает клиента по email или ErrCustomerNotFound.
	FindByEmail(ctx context.Context, email string) (Customer, error)
}

// ProductRepository описывает требования к каталогу товаров.
type ProductRepository interface {
	// Create сохраняет новый товар. Возвращает ErrProductNameTaken,
	// если имя уже занято.
	Create(ctx context.Context, product Product) error
	// FindByID возвращает товар или ErrProductNotFound, если его нет.
	FindByID(ctx context.Context, id string) (Product, error)
	// FindAllByID возвращает только существующие товары из переданного
	// набора идентификаторов; порядок результата определяется каталогом.
	FindAllByID(ctx context.Context, ids []string) ([]Product, error)
	// UpdateQuantities применяет пакет новых остатков одним вызовом.
	UpdateQuantities(ctx context.Context, batch []ProductQuantity) error
}

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	// Create сохраняет новый заказ вместе с позициями.
	Create(ctx context.Context, order Order) error
	// Get возвращает заказ по идентификатору или ErrOrderNotFound.
	Get(ctx context.Context, id string) (Order, error)
	// ListByCustomer возвращает заказы клиента с опциональным ограничением на количество.
	ListByCustomer(ctx context.Context, customerID string, limit int) ([]Order, error)
}

// TxRunner выполняет функцию внутри одной транзакции хранилища.
// Бэкенды без транзакций выполняют fn напрямую.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
