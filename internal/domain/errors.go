package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrCustomerNotFound возвращается, если клиент с указанным ID не найден.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrCustomerEmailTaken сигнализирует о попытке создать клиента с занятым email.
	ErrCustomerEmailTaken = errors.New("customer email already taken")
	// Ошибка отсутствующего имени клиента.
	ErrCustomerNameRequired = errors.New("customer name is required")
	// Ошибка отсутствующего email клиента.
	ErrCustomerEmailRequired = errors.New("customer email is required")
	// ErrProductNotFound возвращается, если хотя бы один из запрошенных товаров отсутствует в каталоге.
	ErrProductNotFound = errors.New("product not found")
	// ErrProductNameTaken сигнализирует о попытке создать товар с занятым именем.
	ErrProductNameTaken = errors.New("product name already taken")
	// Ошибка отсутствующего имени товара.
	ErrProductNameRequired = errors.New("product name is required")
	// Ошибка отрицательной цены товара.
	ErrProductPriceInvalid = errors.New("product price must be non-negative")
	// Ошибка отрицательного остатка товара.
	ErrProductQuantityInvalid = errors.New("product quantity must be non-negative")
	// ErrInsufficientStock возвращается, когда запрошенное количество превышает остаток на складе.
	ErrInsufficientStock = errors.New("insufficient product quantity")
	// ErrOrderNotFound возвращается, если заказ не найден в репозитории.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderExists возвращается при попытке повторно сохранить заказ с тем же ID.
	ErrOrderExists = errors.New("order already exists")
	// Ошибка отсутствующего идентификатора клиента в заказе.
	ErrOrderCustomerRequired = errors.New("order customer_id is required")
	// Ошибка отсутствия хотя бы одной позиции в заказе.
	ErrOrderLinesRequired = errors.New("order must contain at least one line")
	// Ошибка при некорректном количестве в позиции заказа (<= 0).
	ErrOrderLineQtyInvalid = errors.New("order line qty must be greater than zero")
	// Ошибка, если зафиксированная цена позиции отрицательная.
	ErrOrderLinePriceInvalid = errors.New("order line price must be non-negative")
	// Ошибка несоответствия суммы заказа и сумм позиций.
	ErrOrderAmountMismatch = errors.New("order amount does not match lines sum")
	// Ошибка при пустом списке запрошенных позиций.
	ErrRequestLinesRequired = errors.New("at least one product is required")
	// Ошибка при некорректном запрошенном количестве (<= 0).
	ErrRequestQtyInvalid = errors.New("requested qty must be greater than zero")
)

// InsufficientStockError уточняет, по какому товару не хватило остатка.
type InsufficientStockError struct {
	ProductID string
	Requested int32
	OnHand    int32
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient product quantity: product %s requested %d, on hand %d", e.ProductID, e.Requested, e.OnHand)
}

// Unwrap позволяет сверять ошибку с ErrInsufficientStock через errors.Is.
func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// IsNotFound проверяет, относится ли ошибка к категории "не найдено".
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCustomerNotFound) ||
		errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrOrderNotFound)
}

// IsInsufficientStock проверяет, является ли ошибка нехваткой остатка.
func IsInsufficientStock(err error) bool {
	return errors.Is(err, ErrInsufficientStock)
}

// IsConflict проверяет, вызвана ли ошибка нарушением уникальности.
func IsConflict(err error) bool {
	return errors.Is(err, ErrCustomerEmailTaken) ||
		errors.Is(err, ErrProductNameTaken) ||
		errors.Is(err, ErrOrderExists)
}
