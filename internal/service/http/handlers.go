package httpsvc

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/service/order"
)

// Handlers реализует HTTP API поверх доменных репозиториев и процесса оформления.
type Handlers struct {
	customers domain.CustomerRepository
	products  domain.ProductRepository
	orders    *order.Service
	validate  *validator.Validate
	logger    *log.Entry
}

// NewHandlers конструирует обработчики с зависимостями.
func NewHandlers(
	customers domain.CustomerRepository,
	products domain.ProductRepository,
	orders *order.Service,
	logger *log.Entry,
) *Handlers {
	if logger == nil {
		logger = log.New().WithField("component", "http")
	}
	return &Handlers{
		customers: customers,
		products:  products,
		orders:    orders,
		validate:  validator.New(),
		logger:    logger,
	}
}

// CreateCustomer создаёт клиента.
// POST /customers
func (h *Handlers) CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}

	now := time.Now().UTC()
	customer := domain.Customer{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if errs := customer.Validate(); len(errs) > 0 {
		errorJSON(c, http.StatusBadRequest, errs[0].Error())
		return
	}

	if err := h.customers.Create(c.Request.Context(), customer); err != nil {
		h.respondError(c, err, "failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, toCustomerResponse(customer))
}

// CreateProduct создаёт товар каталога.
// POST /products
func (h *Handlers) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}

	now := time.Now().UTC()
	product := domain.Product{
		ID:         uuid.NewString(),
		Name:       req.Name,
		PriceMinor: req.PriceMinor,
		Quantity:   req.Quantity,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if errs := product.Validate(); len(errs) > 0 {
		errorJSON(c, http.StatusBadRequest, errs[0].Error())
		return
	}

	if err := h.products.Create(c.Request.Context(), product); err != nil {
		h.respondError(c, err, "failed to create product")
		return
	}

	c.JSON(http.StatusCreated, toProductResponse(product))
}

// CreateOrder оформляет заказ.
// POST /orders
func (h *Handlers) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}

	requested := make([]domain.RequestLine, 0, len(req.Products))
	for _, p := range req.Products {
		requested = append(requested, domain.RequestLine{ProductID: p.ID, Qty: p.Quantity})
	}

	placed, err := h.orders.PlaceOrder(c.Request.Context(), req.CustomerID, requested)
	if err != nil {
		h.respondError(c, err, "failed to place order")
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(placed))
}

// GetOrder возвращает заказ по идентификатору.
// GET /orders/:id
func (h *Handlers) GetOrder(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid order id")
		return
	}

	found, err := h.orders.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "failed to load order")
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(found))
}

// respondError переводит доменные ошибки в HTTP-статусы. Непредвиденные
// ошибки скрываются за generic 500.
func (h *Handlers) respondError(c *gin.Context, err error, logMsg string) {
	switch {
	case domain.IsNotFound(err):
		errorJSON(c, http.StatusNotFound, err.Error())
	case domain.IsInsufficientStock(err):
		errorJSON(c, http.StatusBadRequest, err.Error())
	case domain.IsConflict(err):
		errorJSON(c, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrRequestLinesRequired), errors.Is(err, domain.ErrRequestQtyInvalid):
		errorJSON(c, http.StatusBadRequest, err.Error())
	default:
		h.logger.WithError(err).Error(logMsg)
		errorJSON(c, http.StatusInternalServerError, "internal server error")
	}
}

// errorJSON отвечает в формате {"status":"error","message":...}.
func errorJSON(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{
		"status":  "error",
		"message": message,
	})
}
