package checkout

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	settingsapp "github.com/td051191/MinhPhat/application/settings"
	"github.com/td051191/MinhPhat/cmd/config"
	"github.com/td051191/MinhPhat/constant"
	"github.com/td051191/MinhPhat/model"
	orderrepo "github.com/td051191/MinhPhat/repository/order"
	productrepo "github.com/td051191/MinhPhat/repository/product"
	txrepo "github.com/td051191/MinhPhat/repository/tx"
	"github.com/td051191/MinhPhat/thirdparty/rabbitmq"
	"github.com/td051191/MinhPhat/utils/errors"
	"github.com/td051191/MinhPhat/utils/logger"
	"go.uber.org/zap"
)

// Field caps applied to customer input before validation.
const (
	maxNameLen    = 120
	maxEmailLen   = 254
	maxPhoneLen   = 40
	maxAddressLen = 300
)

type CheckoutApp interface {
	Checkout(ctx context.Context, req *model.CheckoutRequest) (*model.CheckoutResponse, error)
}

type checkoutAppImpl struct {
	config      *config.Config
	txRepo      txrepo.TxRepository
	orderRepo   orderrepo.OrderRepository
	productRepo productrepo.ProductRepository
	settingsApp settingsapp.SettingsApp
	publisher   *rabbitmq.Publisher
}

func NewCheckoutApp(config *config.Config, txRepo txrepo.TxRepository, orderRepo orderrepo.OrderRepository, productRepo productrepo.ProductRepository, settingsApp settingsapp.SettingsApp, publisher *rabbitmq.Publisher) CheckoutApp {
	return &checkoutAppImpl{
		config:      config,
		txRepo:      txRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		settingsApp: settingsApp,
		publisher:   publisher,
	}
}

// Checkout validates and re-prices a cart against stored product data, checks
// the requested payment method against store settings and persists the order.
// Validation runs entirely before the single order write, so a failed request
// never leaves partial state behind.
func (s *checkoutAppImpl) Checkout(ctx context.Context, req *model.CheckoutRequest) (*model.CheckoutResponse, error) {
	if len(req.Items) == 0 {
		return nil, errors.SetCustomError(constant.ErrEmptyCart)
	}

	customer, err := sanitizeCustomer(&req.Customer)
	if err != nil {
		return nil, err
	}

	quantities := make([]int, len(req.Items))
	for i := range req.Items {
		quantities[i] = req.Items[i].Quantity.Clamped()
	}

	// Settings are fetched once per request and threaded through as a value.
	settings, err := s.settingsApp.GetStore(ctx)
	if err != nil {
		logger.Error("[Checkout] get store settings", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !paymentMethodEnabled(settings.PaymentMethods, req.PaymentMethod) {
		return nil, errors.SetCustomError(constant.ErrUnsupportedPayment)
	}

	products, err := s.lookupProducts(ctx, req.Items)
	if err != nil {
		return nil, err
	}
	// The missing-product error names the first gap in submission order,
	// regardless of lookup completion order.
	for i, p := range products {
		if p == nil {
			return nil, errors.SetCustomErrorWithDetail(constant.ErrInvalidProduct, req.Items[i].ID)
		}
	}

	// Totals come from authoritative prices only; any client-supplied price
	// is ignored. A price edit racing this request is accepted as "price at
	// time of order".
	var total float64
	items := make([]model.OrderItemSnapshot, len(products))
	for i, p := range products {
		total += p.Price * float64(quantities[i])
		items[i] = model.OrderItemSnapshot{
			ProductID: p.ID,
			NameEn:    p.Name.En,
			NameVi:    p.Name.Vi,
			Price:     p.Price,
			Quantity:  quantities[i],
		}
	}

	order := &model.Order{
		ID:            uuid.NewString(),
		Status:        constant.OrderStatusPending,
		TotalAmount:   total,
		Currency:      constant.OrderCurrency,
		CustomerName:  customer.Name,
		Email:         customer.Email,
		Phone:         customer.Phone,
		Address:       customer.Address,
		PaymentMethod: req.PaymentMethod,
		CreatedAt:     time.Now().UTC(),
		Items:         items,
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Checkout] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := s.orderRepo.InsertOrderTx(ctx, tx, order); err != nil {
		logger.Error("[Checkout] insert order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.orderRepo.InsertOrderItemsTx(ctx, tx, order.ID, order.Items); err != nil {
		logger.Error("[Checkout] insert items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Checkout] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if s.publisher != nil {
		msg := rabbitmq.OrderCreatedMessage{
			OrderID:       order.ID,
			TotalAmount:   order.TotalAmount,
			Currency:      order.Currency,
			PaymentMethod: order.PaymentMethod,
			CreatedAt:     order.CreatedAt,
		}
		if err := s.publisher.PublishOrderCreated(msg); err != nil {
			logger.Error("[Checkout] publish order created", zap.String("error", err.Error()))
		}
	}

	return &model.CheckoutResponse{
		OrderID: order.ID,
		Status:  order.Status,
	}, nil
}

type sanitizedCustomer struct {
	Name    string
	Email   *string
	Phone   *string
	Address string
}

func sanitizeCustomer(c *model.CustomerRequest) (*sanitizedCustomer, error) {
	name := truncate(strings.TrimSpace(c.Name), maxNameLen)
	address := truncate(strings.TrimSpace(c.Address), maxAddressLen)
	if name == "" || address == "" {
		return nil, errors.SetCustomError(constant.ErrMissingCustomerInfo)
	}

	out := &sanitizedCustomer{Name: name, Address: address}
	if email := truncate(strings.TrimSpace(c.Email), maxEmailLen); email != "" {
		out.Email = &email
	}
	if phone := truncate(strings.TrimSpace(c.Phone), maxPhoneLen); phone != "" {
		out.Phone = &phone
	}
	return out, nil
}

// truncate caps s at max characters, not bytes; a byte cut would split
// multibyte Vietnamese input mid-rune.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max])
	}
	return s
}

// paymentMethodEnabled preserves the enablement asymmetry: cod defaults on,
// everything else requires an explicit enabled flag.
func paymentMethodEnabled(pm *model.PaymentMethodSettings, method string) bool {
	switch method {
	case constant.PaymentMethodCOD:
		return pm.CODEnabled()
	case constant.PaymentMethodBankTransfer:
		return pm.BankTransferEnabled()
	case constant.PaymentMethodMomo:
		return pm.MomoEnabled()
	default:
		return pm.CustomEnabled(method)
	}
}

// lookupProducts resolves every cart line concurrently. Results land in a
// slice addressed by submission index, so join order never changes which
// missing product gets reported.
func (s *checkoutAppImpl) lookupProducts(ctx context.Context, items []model.CartLineRequest) ([]*model.Product, error) {
	products := make([]*model.Product, len(items))
	lookupErrs := make([]error, len(items))

	var wg sync.WaitGroup
	for i := range items {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			products[i], lookupErrs[i] = s.productRepo.GetByID(ctx, items[i].ID)
		}(i)
	}
	wg.Wait()

	for i, err := range lookupErrs {
		if err != nil {
			logger.Error("[Checkout] product lookup", zap.String("product_id", items[i].ID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}
	return products, nil
}
