package settings_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	appsettings "github.com/td051191/MinhPhat/application/settings"
	"github.com/td051191/MinhPhat/cmd/config"
	"github.com/td051191/MinhPhat/constant"
	redismocks "github.com/td051191/MinhPhat/mocks/repository/redis"
	settingsmocks "github.com/td051191/MinhPhat/mocks/repository/settings"
	cerr "github.com/td051191/MinhPhat/utils/errors"
)

const cacheKey = "settings:store"

func testConfig() *config.Config {
	return &config.Config{
		Cache: config.CacheConfig{SettingsTTL: time.Minute},
	}
}

func TestSettingsApp_GetStore(t *testing.T) {
	type fields struct {
		settingsRepo *settingsmocks.SettingsRepository
		redisRepo    *redismocks.Repository
	}
	tests := []struct {
		name     string
		fields   fields
		mockCall func(f fields)
		wantCOD  bool
		wantBank bool
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "cache hit skips the database",
			fields: fields{
				settingsRepo: settingsmocks.NewSettingsRepository(t),
				redisRepo:    redismocks.NewRepository(t),
			},
			mockCall: func(f fields) {
				f.redisRepo.On("Get", mock.Anything, cacheKey).
					Return(`{"paymentMethods":{"bankTransfer":{"enabled":true}}}`, nil).Once()
			},
			wantCOD:  true,
			wantBank: true,
		},
		{
			name: "cache miss reads through and populates the cache",
			fields: fields{
				settingsRepo: settingsmocks.NewSettingsRepository(t),
				redisRepo:    redismocks.NewRepository(t),
			},
			mockCall: func(f fields) {
				f.redisRepo.On("Get", mock.Anything, cacheKey).Return("", errors.New("cache miss")).Once()
				blob := json.RawMessage(`{"paymentMethods":{"cod":{"enabled":false}}}`)
				f.settingsRepo.On("Get", mock.Anything, constant.SettingsScopeStore).Return(blob, nil).Once()
				f.redisRepo.On("SetWithTTL", mock.Anything, cacheKey, string(blob), time.Minute).Return(nil).Once()
			},
			wantCOD: false,
		},
		{
			name: "never written yields defaults",
			fields: fields{
				settingsRepo: settingsmocks.NewSettingsRepository(t),
				redisRepo:    redismocks.NewRepository(t),
			},
			mockCall: func(f fields) {
				f.redisRepo.On("Get", mock.Anything, cacheKey).Return("", errors.New("cache miss")).Once()
				f.settingsRepo.On("Get", mock.Anything, constant.SettingsScopeStore).Return(nil, nil).Once()
				f.redisRepo.On("SetWithTTL", mock.Anything, cacheKey, "{}", time.Minute).Return(nil).Once()
			},
			wantCOD: true,
		},
		{
			name: "cache write failure is tolerated",
			fields: fields{
				settingsRepo: settingsmocks.NewSettingsRepository(t),
				redisRepo:    redismocks.NewRepository(t),
			},
			mockCall: func(f fields) {
				f.redisRepo.On("Get", mock.Anything, cacheKey).Return("", errors.New("cache miss")).Once()
				f.settingsRepo.On("Get", mock.Anything, constant.SettingsScopeStore).Return(nil, nil).Once()
				f.redisRepo.On("SetWithTTL", mock.Anything, cacheKey, "{}", time.Minute).Return(errors.New("redis down")).Once()
			},
			wantCOD: true,
		},
		{
			name: "database failure maps to internal",
			fields: fields{
				settingsRepo: settingsmocks.NewSettingsRepository(t),
				redisRepo:    redismocks.NewRepository(t),
			},
			mockCall: func(f fields) {
				f.redisRepo.On("Get", mock.Anything, cacheKey).Return("", errors.New("cache miss")).Once()
				f.settingsRepo.On("Get", mock.Anything, constant.SettingsScopeStore).Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "malformed blob maps to internal",
			fields: fields{
				settingsRepo: settingsmocks.NewSettingsRepository(t),
				redisRepo:    redismocks.NewRepository(t),
			},
			mockCall: func(f fields) {
				f.redisRepo.On("Get", mock.Anything, cacheKey).Return(`{"paymentMethods":`, nil).Once()
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
			app := appsettings.NewSettingsApp(testConfig(), tt.fields.settingsRepo, tt.fields.redisRepo)

			got, err := app.GetStore(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetStore() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorType() != tt.errCode {
					t.Fatalf("error type = %v, want %v", ce.ErrorType(), tt.errCode)
				}
				return
			}

			if got.PaymentMethods.CODEnabled() != tt.wantCOD {
				t.Fatalf("CODEnabled() = %v, want %v", got.PaymentMethods.CODEnabled(), tt.wantCOD)
			}
			if got.PaymentMethods.BankTransferEnabled() != tt.wantBank {
				t.Fatalf("BankTransferEnabled() = %v, want %v", got.PaymentMethods.BankTransferEnabled(), tt.wantBank)
			}
		})
	}
}

func TestSettingsApp_Update(t *testing.T) {
	type fields struct {
		settingsRepo *settingsmocks.SettingsRepository
		redisRepo    *redismocks.Repository
	}
	tests := []struct {
		name     string
		fields   fields
		raw      json.RawMessage
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: object persisted and cache invalidated",
			fields: fields{
				settingsRepo: settingsmocks.NewSettingsRepository(t),
				redisRepo:    redismocks.NewRepository(t),
			},
			raw: json.RawMessage(`{"storeName":{"en":"Minh Phat"},"futureField":123}`),
			mockCall: func(f fields) {
				f.settingsRepo.On("Upsert", mock.Anything, constant.SettingsScopeStore,
					json.RawMessage(`{"storeName":{"en":"Minh Phat"},"futureField":123}`)).Return(nil).Once()
				f.redisRepo.On("Delete", mock.Anything, cacheKey).Return(nil).Once()
			},
		},
		{
			name: "error: array rejected",
			fields: fields{
				settingsRepo: settingsmocks.NewSettingsRepository(t),
				redisRepo:    redismocks.NewRepository(t),
			},
			raw:     json.RawMessage(`[1,2,3]`),
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: null rejected",
			fields: fields{
				settingsRepo: settingsmocks.NewSettingsRepository(t),
				redisRepo:    redismocks.NewRepository(t),
			},
			raw:     json.RawMessage(`null`),
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: upsert failure maps to internal",
			fields: fields{
				settingsRepo: settingsmocks.NewSettingsRepository(t),
				redisRepo:    redismocks.NewRepository(t),
			},
			raw: json.RawMessage(`{}`),
			mockCall: func(f fields) {
				f.settingsRepo.On("Upsert", mock.Anything, constant.SettingsScopeStore, json.RawMessage(`{}`)).
					Return(errors.New("db error")).Once()
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
			app := appsettings.NewSettingsApp(testConfig(), tt.fields.settingsRepo, tt.fields.redisRepo)

			_, err := app.Update(context.Background(), tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Update() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorType() != tt.errCode {
					t.Fatalf("error type = %v, want %v", ce.ErrorType(), tt.errCode)
				}
			}
		})
	}
}

func TestSettingsApp_Public(t *testing.T) {
	settingsRepo := settingsmocks.NewSettingsRepository(t)
	redisRepo := redismocks.NewRepository(t)

	blob := `{
		"storeName": {"en": "Minh Phat", "vi": "Minh Phát"},
		"enableVietnamese": true,
		"currencyCode": "USD",
		"paymentMethods": {
			"cod": {"enabled": false},
			"bankTransfer": {"enabled": true, "bankName": "VCB", "accountNumber": "007"},
			"momo": {"phone": "0900000000"},
			"custom": [
				{"id": "zalopay", "name": "ZaloPay", "enabled": true},
				{"id": "paypal", "name": "PayPal", "enabled": false},
				{"id": "crypto", "name": "Crypto"}
			]
		}
	}`
	redisRepo.On("Get", mock.Anything, cacheKey).Return(blob, nil).Once()

	app := appsettings.NewSettingsApp(testConfig(), settingsRepo, redisRepo)

	got, err := app.Public(context.Background())
	if err != nil {
		t.Fatalf("Public() error = %v", err)
	}

	if got.PaymentMethods.COD.Enabled {
		t.Fatal("cod should be disabled by the explicit flag")
	}
	if !got.PaymentMethods.BankTransfer.Enabled || got.PaymentMethods.BankTransfer.BankName != "VCB" {
		t.Fatalf("bank transfer = %+v, want enabled with details", got.PaymentMethods.BankTransfer)
	}
	// Momo has details but no explicit enable: details must not leak.
	if got.PaymentMethods.Momo.Enabled || got.PaymentMethods.Momo.Phone != "" {
		t.Fatalf("momo = %+v, want disabled with no details", got.PaymentMethods.Momo)
	}
	if len(got.PaymentMethods.Custom) != 1 || got.PaymentMethods.Custom[0].ID != "zalopay" {
		t.Fatalf("custom = %+v, want only the enabled entry", got.PaymentMethods.Custom)
	}
	if !got.EnableVietnamese {
		t.Fatal("enableVietnamese flag should resolve true")
	}
	if got.StoreName == nil || got.StoreName.En != "Minh Phat" {
		t.Fatalf("storeName = %+v", got.StoreName)
	}
}

func TestSettingsApp_PublicEmptyCustomIsNotNil(t *testing.T) {
	settingsRepo := settingsmocks.NewSettingsRepository(t)
	redisRepo := redismocks.NewRepository(t)

	redisRepo.On("Get", mock.Anything, cacheKey).Return("{}", nil).Once()

	app := appsettings.NewSettingsApp(testConfig(), settingsRepo, redisRepo)

	got, err := app.Public(context.Background())
	if err != nil {
		t.Fatalf("Public() error = %v", err)
	}
	if got.PaymentMethods.Custom == nil {
		t.Fatal("custom list must serialize as [] rather than null")
	}
	if !got.PaymentMethods.COD.Enabled {
		t.Fatal("cod defaults on when nothing is stored")
	}
}
