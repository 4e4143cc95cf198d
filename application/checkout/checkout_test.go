package checkout_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
	appcheckout "github.com/td051191/MinhPhat/application/checkout"
	"github.com/td051191/MinhPhat/cmd/config"
	"github.com/td051191/MinhPhat/constant"
	settingsmocks "github.com/td051191/MinhPhat/mocks/application/settings"
	ordermocks "github.com/td051191/MinhPhat/mocks/repository/order"
	productmocks "github.com/td051191/MinhPhat/mocks/repository/product"
	txmocks "github.com/td051191/MinhPhat/mocks/repository/tx"
	"github.com/td051191/MinhPhat/model"
	cerr "github.com/td051191/MinhPhat/utils/errors"
)

// Note: checkout.go checks if publisher is nil before publishing, so tests
// run with a nil publisher.

func boolPtr(b bool) *bool { return &b }

func storeSettings(pm *model.PaymentMethodSettings) *model.StoreSettings {
	return &model.StoreSettings{PaymentMethods: pm}
}

func validCustomer() model.CustomerRequest {
	return model.CustomerRequest{
		Name:    "Nguyen Van A",
		Address: "12 Hang Bac, Hanoi",
	}
}

func TestCheckoutApp_Checkout(t *testing.T) {
	type fields struct {
		config      *config.Config
		txRepo      *txmocks.TxRepository
		orderRepo   *ordermocks.OrderRepository
		productRepo *productmocks.ProductRepository
		settingsApp *settingsmocks.SettingsApp
	}
	type args struct {
		ctx context.Context
		req *model.CheckoutRequest
	}
	tests := []struct {
		name       string
		fields     fields
		args       args
		mockCall   func(f fields)
		wantStatus constant.OrderStatus
		wantErr    bool
		errCode    constant.ErrorType
		errDetail  string
	}{
		{
			name: "success: cod order totals from stored price",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				orderRepo:   ordermocks.NewOrderRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				settingsApp: settingsmocks.NewSettingsApp(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CheckoutRequest{
					Items: []model.CartLineRequest{
						{ID: "p-1", Quantity: 2},
					},
					PaymentMethod: constant.PaymentMethodCOD,
					Customer:      validCustomer(),
				},
			},
			mockCall: func(f fields) {
				// No payment methods stored at all: cod still passes.
				f.settingsApp.On("GetStore", mock.Anything).Return(storeSettings(nil), nil).Once()

				f.productRepo.On("GetByID", mock.Anything, "p-1").Return(&model.Product{
					ID:    "p-1",
					Name:  model.LocalizedText{En: "Dried Mango", Vi: "Xoai say"},
					Price: 3.50,
				}, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.orderRepo.On("InsertOrderTx", mock.Anything, tx, mock.MatchedBy(func(o *model.Order) bool {
					return o.ID != "" &&
						o.Status == constant.OrderStatusPending &&
						o.TotalAmount == 7.00 &&
						o.Currency == constant.OrderCurrency &&
						o.Email == nil && o.Phone == nil
				})).Return(nil).Once()

				f.orderRepo.On("InsertOrderItemsTx", mock.Anything, tx, mock.Anything, mock.MatchedBy(func(items []model.OrderItemSnapshot) bool {
					return len(items) == 1 &&
						items[0].NameEn == "Dried Mango" &&
						items[0].NameVi == "Xoai say" &&
						items[0].Price == 3.50 &&
						items[0].Quantity == 2
				})).Return(nil).Once()
			},
			wantStatus: constant.OrderStatusPending,
		},
		{
			name: "success: quantities outside range are clamped",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				orderRepo:   ordermocks.NewOrderRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				settingsApp: settingsmocks.NewSettingsApp(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CheckoutRequest{
					Items: []model.CartLineRequest{
						{ID: "p-1", Quantity: 0},
						{ID: "p-2", Quantity: 150},
						{ID: "p-3", Quantity: -5},
					},
					PaymentMethod: constant.PaymentMethodCOD,
					Customer:      validCustomer(),
				},
			},
			mockCall: func(f fields) {
				f.settingsApp.On("GetStore", mock.Anything).Return(storeSettings(nil), nil).Once()

				f.productRepo.On("GetByID", mock.Anything, "p-1").Return(&model.Product{ID: "p-1", Price: 1}, nil).Once()
				f.productRepo.On("GetByID", mock.Anything, "p-2").Return(&model.Product{ID: "p-2", Price: 1}, nil).Once()
				f.productRepo.On("GetByID", mock.Anything, "p-3").Return(&model.Product{ID: "p-3", Price: 1}, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				// 1 + 99 + 1 units of a 1.00 product.
				f.orderRepo.On("InsertOrderTx", mock.Anything, tx, mock.MatchedBy(func(o *model.Order) bool {
					return o.TotalAmount == 101.00
				})).Return(nil).Once()

				f.orderRepo.On("InsertOrderItemsTx", mock.Anything, tx, mock.Anything, mock.MatchedBy(func(items []model.OrderItemSnapshot) bool {
					return len(items) == 3 &&
						items[0].Quantity == 1 &&
						items[1].Quantity == 99 &&
						items[2].Quantity == 1
				})).Return(nil).Once()
			},
			wantStatus: constant.OrderStatusPending,
		},
		{
			name: "success: enabled custom payment method",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				orderRepo:   ordermocks.NewOrderRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				settingsApp: settingsmocks.NewSettingsApp(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CheckoutRequest{
					Items: []model.CartLineRequest{
						{ID: "p-1", Quantity: 1},
					},
					PaymentMethod: "zalopay",
					Customer:      validCustomer(),
				},
			},
			mockCall: func(f fields) {
				f.settingsApp.On("GetStore", mock.Anything).Return(storeSettings(&model.PaymentMethodSettings{
					Custom: []model.CustomPaymentMethod{
						{ID: "zalopay", Name: "ZaloPay", Enabled: boolPtr(true)},
					},
				}), nil).Once()

				f.productRepo.On("GetByID", mock.Anything, "p-1").Return(&model.Product{ID: "p-1", Price: 2.25}, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.orderRepo.On("InsertOrderTx", mock.Anything, tx, mock.MatchedBy(func(o *model.Order) bool {
					return o.PaymentMethod == "zalopay"
				})).Return(nil).Once()
				f.orderRepo.On("InsertOrderItemsTx", mock.Anything, tx, mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantStatus: constant.OrderStatusPending,
		},
		{
			name: "error: empty cart",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				orderRepo:   ordermocks.NewOrderRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				settingsApp: settingsmocks.NewSettingsApp(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CheckoutRequest{
					Items:         []model.CartLineRequest{},
					PaymentMethod: constant.PaymentMethodCOD,
					Customer:      validCustomer(),
				},
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrEmptyCart,
		},
		{
			name: "error: whitespace-only name rejected",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				orderRepo:   ordermocks.NewOrderRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				settingsApp: settingsmocks.NewSettingsApp(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CheckoutRequest{
					Items: []model.CartLineRequest{
						{ID: "p-1", Quantity: 1},
					},
					PaymentMethod: constant.PaymentMethodCOD,
					Customer: model.CustomerRequest{
						Name:    "   ",
						Address: "12 Hang Bac, Hanoi",
					},
				},
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrMissingCustomerInfo,
		},
		{
			name: "error: bank transfer without explicit enable",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				orderRepo:   ordermocks.NewOrderRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				settingsApp: settingsmocks.NewSettingsApp(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CheckoutRequest{
					Items: []model.CartLineRequest{
						{ID: "p-1", Quantity: 1},
					},
					PaymentMethod: constant.PaymentMethodBankTransfer,
					Customer:      validCustomer(),
				},
			},
			mockCall: func(f fields) {
				// Details present but no enabled flag: stays off.
				f.settingsApp.On("GetStore", mock.Anything).Return(storeSettings(&model.PaymentMethodSettings{
					BankTransfer: &model.BankTransferSettings{BankName: "VCB"},
				}), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrUnsupportedPayment,
		},
		{
			name: "error: cod explicitly disabled",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				orderRepo:   ordermocks.NewOrderRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				settingsApp: settingsmocks.NewSettingsApp(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CheckoutRequest{
					Items: []model.CartLineRequest{
						{ID: "p-1", Quantity: 1},
					},
					PaymentMethod: constant.PaymentMethodCOD,
					Customer:      validCustomer(),
				},
			},
			mockCall: func(f fields) {
				f.settingsApp.On("GetStore", mock.Anything).Return(storeSettings(&model.PaymentMethodSettings{
					COD: &model.CODSettings{Enabled: boolPtr(false)},
				}), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrUnsupportedPayment,
		},
		{
			name: "error: custom method listed but not enabled",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				orderRepo:   ordermocks.NewOrderRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				settingsApp: settingsmocks.NewSettingsApp(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CheckoutRequest{
					Items: []model.CartLineRequest{
						{ID: "p-1", Quantity: 1},
					},
					PaymentMethod: "zalopay",
					Customer:      validCustomer(),
				},
			},
			mockCall: func(f fields) {
				f.settingsApp.On("GetStore", mock.Anything).Return(storeSettings(&model.PaymentMethodSettings{
					Custom: []model.CustomPaymentMethod{
						{ID: "zalopay", Name: "ZaloPay"},
					},
				}), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrUnsupportedPayment,
		},
		{
			name: "error: first missing product reported in submission order",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				orderRepo:   ordermocks.NewOrderRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				settingsApp: settingsmocks.NewSettingsApp(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CheckoutRequest{
					Items: []model.CartLineRequest{
						{ID: "p-1", Quantity: 1},
						{ID: "p-gone", Quantity: 1},
						{ID: "p-also-gone", Quantity: 1},
					},
					PaymentMethod: constant.PaymentMethodCOD,
					Customer:      validCustomer(),
				},
			},
			mockCall: func(f fields) {
				f.settingsApp.On("GetStore", mock.Anything).Return(storeSettings(nil), nil).Once()

				f.productRepo.On("GetByID", mock.Anything, "p-1").Return(&model.Product{ID: "p-1", Price: 1}, nil).Once()
				f.productRepo.On("GetByID", mock.Anything, "p-gone").Return(nil, nil).Once()
				f.productRepo.On("GetByID", mock.Anything, "p-also-gone").Return(nil, nil).Once()
				// No tx expectations: a failed lookup must not touch the orders table.
			},
			wantErr:   true,
			errCode:   constant.ErrInvalidProduct,
			errDetail: "p-gone",
		},
		{
			name: "error: product lookup failure maps to internal",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				orderRepo:   ordermocks.NewOrderRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				settingsApp: settingsmocks.NewSettingsApp(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CheckoutRequest{
					Items: []model.CartLineRequest{
						{ID: "p-1", Quantity: 1},
					},
					PaymentMethod: constant.PaymentMethodCOD,
					Customer:      validCustomer(),
				},
			},
			mockCall: func(f fields) {
				f.settingsApp.On("GetStore", mock.Anything).Return(storeSettings(nil), nil).Once()
				f.productRepo.On("GetByID", mock.Anything, "p-1").Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: BeginTx returns error",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				orderRepo:   ordermocks.NewOrderRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				settingsApp: settingsmocks.NewSettingsApp(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CheckoutRequest{
					Items: []model.CartLineRequest{
						{ID: "p-1", Quantity: 1},
					},
					PaymentMethod: constant.PaymentMethodCOD,
					Customer:      validCustomer(),
				},
			},
			mockCall: func(f fields) {
				f.settingsApp.On("GetStore", mock.Anything).Return(storeSettings(nil), nil).Once()
				f.productRepo.On("GetByID", mock.Anything, "p-1").Return(&model.Product{ID: "p-1", Price: 1}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("tx error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: item insert failure rolls back",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				orderRepo:   ordermocks.NewOrderRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				settingsApp: settingsmocks.NewSettingsApp(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CheckoutRequest{
					Items: []model.CartLineRequest{
						{ID: "p-1", Quantity: 1},
					},
					PaymentMethod: constant.PaymentMethodCOD,
					Customer:      validCustomer(),
				},
			},
			mockCall: func(f fields) {
				f.settingsApp.On("GetStore", mock.Anything).Return(storeSettings(nil), nil).Once()
				f.productRepo.On("GetByID", mock.Anything, "p-1").Return(&model.Product{ID: "p-1", Price: 1}, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.orderRepo.On("InsertOrderTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.orderRepo.On("InsertOrderItemsTx", mock.Anything, tx, mock.Anything, mock.Anything).Return(errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: settings lookup failure maps to internal",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				orderRepo:   ordermocks.NewOrderRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				settingsApp: settingsmocks.NewSettingsApp(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CheckoutRequest{
					Items: []model.CartLineRequest{
						{ID: "p-1", Quantity: 1},
					},
					PaymentMethod: constant.PaymentMethodCOD,
					Customer:      validCustomer(),
				},
			},
			mockCall: func(f fields) {
				f.settingsApp.On("GetStore", mock.Anything).Return(nil, errors.New("redis down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appcheckout.NewCheckoutApp(tt.fields.config, tt.fields.txRepo, tt.fields.orderRepo, tt.fields.productRepo, tt.fields.settingsApp, nil)

			got, err := app.Checkout(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Checkout() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorType() != tt.errCode {
					t.Fatalf("error type = %v, want %v", ce.ErrorType(), tt.errCode)
				}
				if tt.errDetail != "" && !strings.Contains(ce.Error(), tt.errDetail) {
					t.Fatalf("error message = %q, want detail %q", ce.Error(), tt.errDetail)
				}
				return
			}

			if got.OrderID == "" {
				t.Fatal("Checkout() returned empty order id")
			}
			if got.Status != tt.wantStatus {
				t.Fatalf("Checkout() status = %s, want %s", got.Status, tt.wantStatus)
			}
		})
	}
}

func TestCheckoutApp_CustomerSanitization(t *testing.T) {
	longName := strings.Repeat("a", 200)
	longAddress := strings.Repeat("b", 400)

	txRepo := txmocks.NewTxRepository(t)
	orderRepo := ordermocks.NewOrderRepository(t)
	productRepo := productmocks.NewProductRepository(t)
	settingsApp := settingsmocks.NewSettingsApp(t)

	settingsApp.On("GetStore", mock.Anything).Return(storeSettings(nil), nil).Once()
	productRepo.On("GetByID", mock.Anything, "p-1").Return(&model.Product{ID: "p-1", Price: 1}, nil).Once()

	tx := &sqlx.Tx{}
	txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	txRepo.On("CommitTx", tx).Return(nil).Once()
	orderRepo.On("InsertOrderItemsTx", mock.Anything, tx, mock.Anything, mock.Anything).Return(nil).Once()
	orderRepo.On("InsertOrderTx", mock.Anything, tx, mock.MatchedBy(func(o *model.Order) bool {
		return len(o.CustomerName) == 120 &&
			len(o.Address) == 300 &&
			o.Email != nil && *o.Email == "a@b.co" &&
			o.Phone == nil
	})).Return(nil).Once()

	app := appcheckout.NewCheckoutApp(&config.Config{}, txRepo, orderRepo, productRepo, settingsApp, nil)

	_, err := app.Checkout(context.Background(), &model.CheckoutRequest{
		Items: []model.CartLineRequest{
			{ID: "p-1", Quantity: 1},
		},
		PaymentMethod: constant.PaymentMethodCOD,
		Customer: model.CustomerRequest{
			Name:    "  " + longName + "  ",
			Email:   " a@b.co ",
			Phone:   "   ",
			Address: longAddress,
		},
	})
	if err != nil {
		t.Fatalf("Checkout() error = %v", err)
	}
}

func TestCheckoutApp_CustomerSanitizationMultibyte(t *testing.T) {
	// 100 characters but 300 bytes: well inside the 120-character name cap.
	viName := strings.Repeat("ệ", 100)
	// 119 ASCII + one 3-byte rune straddles byte 120 at exactly 120 characters.
	edgeAddress := strings.Repeat("a", 119) + "ệ"
	longAddress := strings.Repeat("ộ", 400)

	tests := []struct {
		name        string
		customer    model.CustomerRequest
		wantName    string
		wantAddrLen int
	}{
		{
			name:        "multibyte name within cap is kept whole",
			customer:    model.CustomerRequest{Name: viName, Address: edgeAddress},
			wantName:    viName,
			wantAddrLen: 120,
		},
		{
			name:        "multibyte address over cap truncates on character boundary",
			customer:    model.CustomerRequest{Name: "Nguyen Van A", Address: longAddress},
			wantName:    "Nguyen Van A",
			wantAddrLen: 300,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			txRepo := txmocks.NewTxRepository(t)
			orderRepo := ordermocks.NewOrderRepository(t)
			productRepo := productmocks.NewProductRepository(t)
			settingsApp := settingsmocks.NewSettingsApp(t)

			settingsApp.On("GetStore", mock.Anything).Return(storeSettings(nil), nil).Once()
			productRepo.On("GetByID", mock.Anything, "p-1").Return(&model.Product{ID: "p-1", Price: 1}, nil).Once()

			tx := &sqlx.Tx{}
			txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
			txRepo.On("CommitTx", tx).Return(nil).Once()
			orderRepo.On("InsertOrderItemsTx", mock.Anything, tx, mock.Anything, mock.Anything).Return(nil).Once()
			orderRepo.On("InsertOrderTx", mock.Anything, tx, mock.MatchedBy(func(o *model.Order) bool {
				return o.CustomerName == tt.wantName &&
					utf8.RuneCountInString(o.Address) == tt.wantAddrLen &&
					utf8.ValidString(o.CustomerName) &&
					utf8.ValidString(o.Address)
			})).Return(nil).Once()

			app := appcheckout.NewCheckoutApp(&config.Config{}, txRepo, orderRepo, productRepo, settingsApp, nil)

			_, err := app.Checkout(context.Background(), &model.CheckoutRequest{
				Items: []model.CartLineRequest{
					{ID: "p-1", Quantity: 1},
				},
				PaymentMethod: constant.PaymentMethodCOD,
				Customer:      tt.customer,
			})
			if err != nil {
				t.Fatalf("Checkout() error = %v", err)
			}
		})
	}
}
