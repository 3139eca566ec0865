package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/storefront/internal/metrics"
)

// Service реализует процесс оформления заказа: проверка клиента и каталога,
// фиксация цен, сохранение заказа и списание остатков как одна логическая операция.
type Service struct {
	customers domain.CustomerRepository
	products  domain.ProductRepository
	orders    domain.OrderRepository
	tx        domain.TxRunner
	logger    *log.Entry
	metrics   *metrics.OrderMetrics
	producer  *kafka.Producer // опциональный Kafka producer для событий заказов
}

// NewService создаёт рабочий экземпляр процесса оформления.
func NewService(
	customers domain.CustomerRepository,
	products domain.ProductRepository,
	orders domain.OrderRepository,
	tx domain.TxRunner,
	logger *log.Entry,
) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "order-placement")
	}
	return &Service{
		customers: customers,
		products:  products,
		orders:    orders,
		tx:        tx,
		logger:    logger,
		metrics:   metrics.NewOrderMetrics(),
	}
}

// NewServiceWithKafka создаёт сервис с Kafka producer для публикации событий заказов.
func NewServiceWithKafka(
	customers domain.CustomerRepository,
	products domain.ProductRepository,
	orders domain.OrderRepository,
	tx domain.TxRunner,
	producer *kafka.Producer,
	logger *log.Entry,
) *Service {
	svc := NewService(customers, products, orders, tx, logger)
	svc.producer = producer
	return svc
}

// NewServiceWithoutMetrics создаёт сервис без метрик (для тестов).
func NewServiceWithoutMetrics(
	customers domain.CustomerRepository,
	products domain.ProductRepository,
	orders domain.OrderRepository,
	tx domain.TxRunner,
	logger *log.Entry,
) *Service {
	svc := NewService(customers, products, orders, tx, logger)
	svc.metrics = nil
	return svc
}

// PlaceOrder оформляет заказ клиента по списку запрошенных позиций.
//
// Валидация строго последовательная: существование клиента, существование
// всех товаров, достаточность остатка по каждой позиции. Первое нарушение
// прерывает операцию целиком; до этапа записи никаких побочных эффектов нет.
// Запись заказа и списание остатков выполняются внутри одного WithinTx:
// PostgreSQL-бэкенд даёт настоящую транзакцию, in-memory — последовательную
// запись без отката.
//
// Порядок позиций в сохранённом заказе повторяет порядок, в котором каталог
// вернул товары, а не порядок запроса.
func (s *Service) PlaceOrder(ctx context.Context, customerID string, requested []domain.RequestLine) (domain.Order, error) {
	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.RecordPlacementDuration(time.Since(start))
		}
	}()

	if len(requested) == 0 {
		return domain.Order{}, domain.ErrRequestLinesRequired
	}
	for _, line := range requested {
		if line.Qty <= 0 {
			return domain.Order{}, domain.ErrRequestQtyInvalid
		}
	}

	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			s.reject(metrics.RejectReasonCustomerNotFound)
			return domain.Order{}, err
		}
		return domain.Order{}, fmt.Errorf("resolve customer: %w", err)
	}

	// Дубликаты идентификаторов схлопываются; для каждого товара берётся
	// первая запрошенная позиция с его ID.
	ids := make([]string, 0, len(requested))
	requestByID := make(map[string]domain.RequestLine, len(requested))
	for _, line := range requested {
		if _, dup := requestByID[line.ProductID]; dup {
			continue
		}
		requestByID[line.ProductID] = line
		ids = append(ids, line.ProductID)
	}

	found, err := s.products.FindAllByID(ctx, ids)
	if err != nil {
		return domain.Order{}, fmt.Errorf("resolve products: %w", err)
	}
	if len(found) < len(ids) {
		s.reject(metrics.RejectReasonProductNotFound)
		return domain.Order{}, domain.ErrProductNotFound
	}

	now := time.Now().UTC()
	lines := make([]domain.OrderLine, 0, len(found))
	decrements := make([]domain.ProductQuantity, 0, len(found))
	var unitsTotal int64

	// Позиции заказа и списания строятся в порядке выдачи каталога.
	for _, product := range found {
		line, ok := requestByID[product.ID]
		if !ok {
			// Каталог вернул товар, которого не было в запросе: недостижимо
			// при корректном FindAllByID.
			s.reject(metrics.RejectReasonProductNotFound)
			return domain.Order{}, domain.ErrProductNotFound
		}
		if product.Quantity < line.Qty {
			s.reject(metrics.RejectReasonInsufficientStock)
			return domain.Order{}, &domain.InsufficientStockError{
				ProductID: product.ID,
				Requested: line.Qty,
				OnHand:    product.Quantity,
			}
		}

		lines = append(lines, domain.OrderLine{
			ProductID:  product.ID,
			PriceMinor: product.PriceMinor,
			Qty:        line.Qty,
		})
		decrements = append(decrements, domain.ProductQuantity{
			ProductID: product.ID,
			Quantity:  product.Quantity - line.Qty,
		})
		unitsTotal += int64(line.Qty)
	}

	order := domain.Order{
		ID:         uuid.NewString(),
		CustomerID: customer.ID,
		Lines:      lines,
		CreatedAt:  now,
	}
	order.AmountMinor = order.LinesAmount()

	if errs := order.ValidateInvariants(); len(errs) > 0 {
		return domain.Order{}, fmt.Errorf("order invariants violated: %s", joinErrors(errs))
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.orders.Create(ctx, order); err != nil {
			return fmt.Errorf("persist order: %w", err)
		}
		if err := s.products.UpdateQuantities(ctx, decrements); err != nil {
			return fmt.Errorf("decrement stock: %w", err)
		}
		return nil
	})
	if err != nil {
		s.reject(metrics.RejectReasonStorage)
		s.logger.WithError(err).WithFields(log.Fields{
			"order_id":    order.ID,
			"customer_id": customer.ID,
		}).Error("failed to place order")
		return domain.Order{}, err
	}

	if s.metrics != nil {
		s.metrics.RecordOrderPlaced()
		s.metrics.RecordUnitsDecremented(unitsTotal)
	}
	s.logger.WithFields(log.Fields{
		"order_id":     order.ID,
		"customer_id":  customer.ID,
		"lines":        len(order.Lines),
		"amount_minor": order.AmountMinor,
	}).Info("order placed")

	s.publishOrderPlaced(order)

	return order, nil
}

// Get возвращает заказ по идентификатору.
func (s *Service) Get(ctx context.Context, id string) (domain.Order, error) {
	return s.orders.Get(ctx, id)
}

// ListByCustomer возвращает заказы клиента.
func (s *Service) ListByCustomer(ctx context.Context, customerID string, limit int) ([]domain.Order, error) {
	return s.orders.ListByCustomer(ctx, customerID, limit)
}

func (s *Service) reject(reason string) {
	if s.metrics != nil {
		s.metrics.RecordOrderRejected(reason)
	}
}

// publishOrderPlaced публикует событие в Kafka (если producer настроен).
// Ошибка публикации логируется и не влияет на результат оформления.
func (s *Service) publishOrderPlaced(order domain.Order) {
	if s.producer == nil {
		return
	}

	lines := make([]kafka.OrderPlacedLine, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, kafka.OrderPlacedLine{
			ProductID:  line.ProductID,
			PriceMinor: line.PriceMinor,
			Qty:        line.Qty,
		})
	}

	event := kafka.NewOrderPlacedEvent(order.ID, order.CustomerID, order.AmountMinor, lines)
	if err := s.producer.PublishOrderPlaced(event); err != nil {
		s.logger.WithError(err).WithField("order_id", order.ID).Warn("failed to publish order placed event")
	}
}

func joinErrors(errs []error) string {
	parts := make([]string, 0, len(errs))
	for _, err := range errs {
		parts = append(parts, err.Error())
	}
	return strings.Join(parts, "; ")
}
