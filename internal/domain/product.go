package domain

import "time"

// Product описывает позицию каталога: цену и остаток на складе.
type Product struct {
	ID   string
	Name string
	// PriceMinor — цена за единицу в минимальных денежных единицах (например, копейки).
	PriceMinor int64
	// Quantity — остаток на складе, доступный для заказа.
	Quantity  int32
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProductQuantity задаёт новое значение остатка для пакетного обновления каталога.
type ProductQuantity struct {
	ProductID string
	Quantity  int32
}

// Validate проверяет базовые инварианты позиции каталога.
func (p *Product) Validate() []error {
	var errs []error

	if p.Name == "" {
		errs = append(errs, ErrProductNameRequired)
	}
	if p.PriceMinor < 0 {
		errs = append(errs, ErrProductPriceInvalid)
	}
	if p.Quantity < 0 {
		errs = append(errs, ErrProductQuantityInvalid)
	}

	return errs
}
