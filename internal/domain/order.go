package domain

import "time"

// RequestLine — одна запрошенная позиция заказа: недоверенный вход.
type RequestLine struct {
	ProductID string
	Qty       int32
}

// OrderLine представляет сохранённую позицию заказа.
// PriceMinor фиксируется в момент оформления и далее не пересчитывается,
// даже если цена в каталоге изменится.
type OrderLine struct {
	ProductID string
	// PriceMinor — снимок цены каталога на момент оформления.
	PriceMinor int64
	// Qty — заказанное количество единиц товара.
	Qty int32
}

// Order агрегирует оформленный заказ и его позиции. После создания
// заказ этим ядром не изменяется.
type Order struct {
	ID         string
	CustomerID string
	Lines      []OrderLine
	// AmountMinor — суммарная стоимость заказа по зафиксированным ценам.
	AmountMinor int64
	CreatedAt   time.Time
}

// LinesAmount считает сумму заказа по позициям: qty * price.
func (o *Order) LinesAmount() int64 {
	var sum int64
	for _, line := range o.Lines {
		sum += int64(line.Qty) * line.PriceMinor
	}
	return sum
}

// ValidateInvariants проверяет базовые инварианты заказа и возвращает список замечаний.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if o.CustomerID == "" {
		errs = append(errs, ErrOrderCustomerRequired)
	}
	if len(o.Lines) == 0 {
		errs = append(errs, ErrOrderLinesRequired)
	}

	for _, line := range o.Lines {
		if line.Qty <= 0 {
			errs = append(errs, ErrOrderLineQtyInvalid)
		}
		if line.PriceMinor < 0 {
			errs = append(errs, ErrOrderLinePriceInvalid)
		}
	}
	if o.LinesAmount() != o.AmountMinor {
		errs = append(errs, ErrOrderAmountMismatch)
	}

	return errs
}
