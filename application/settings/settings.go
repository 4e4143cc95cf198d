package settings

import (
	"context"
	"encoding/json"

	"github.com/td051191/MinhPhat/cmd/config"
	"github.com/td051191/MinhPhat/constant"
	"github.com/td051191/MinhPhat/model"
	redisrepo "github.com/td051191/MinhPhat/repository/redis"
	settingsrepo "github.com/td051191/MinhPhat/repository/settings"
	"github.com/td051191/MinhPhat/utils/errors"
	"github.com/td051191/MinhPhat/utils/logger"
	"go.uber.org/zap"
)

const cacheKey = "settings:" + constant.SettingsScopeStore

type SettingsApp interface {
	// Get returns the raw admin-facing settings blob, nil when never written.
	Get(ctx context.Context) (json.RawMessage, error)
	// Update replaces the blob and invalidates the cache.
	Update(ctx context.Context, raw json.RawMessage) (json.RawMessage, error)
	// GetStore returns the typed view consumed by checkout. A missing blob
	// yields empty settings, never an error.
	GetStore(ctx context.Context) (*model.StoreSettings, error)
	// Public derives the customer-facing subset, enablement resolved.
	Public(ctx context.Context) (*model.PublicSettings, error)
}

type settingsAppImpl struct {
	config       *config.Config
	settingsRepo settingsrepo.SettingsRepository
	redisRepo    redisrepo.Repository
}

func NewSettingsApp(config *config.Config, settingsRepo settingsrepo.SettingsRepository, redisRepo redisrepo.Repository) SettingsApp {
	return &settingsAppImpl{
		config:       config,
		settingsRepo: settingsRepo,
		redisRepo:    redisRepo,
	}
}

func (s *settingsAppImpl) Get(ctx context.Context) (json.RawMessage, error) {
	raw, err := s.settingsRepo.Get(ctx, constant.SettingsScopeStore)
	if err != nil {
		logger.Error("[Settings] get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return raw, nil
}

func (s *settingsAppImpl) Update(ctx context.Context, raw json.RawMessage) (json.RawMessage, error) {
	// Reject anything that is not a JSON object; the blob is stored as-is
	// otherwise, unknown fields included.
	var probe map[string]interface{}
	if err := json.Unmarshal(raw, &probe); err != nil || probe == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	if err := s.settingsRepo.Upsert(ctx, constant.SettingsScopeStore, raw); err != nil {
		logger.Error("[Settings] upsert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.Delete(ctx, cacheKey); err != nil {
		logger.Warn("[Settings] cache invalidate", zap.String("error", err.Error()))
	}
	return raw, nil
}

func (s *settingsAppImpl) GetStore(ctx context.Context) (*model.StoreSettings, error) {
	raw := s.cachedBlob(ctx)
	if raw == nil {
		var err error
		raw, err = s.settingsRepo.Get(ctx, constant.SettingsScopeStore)
		if err != nil {
			logger.Error("[Settings] get store", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if raw == nil {
			raw = json.RawMessage("{}")
		}
		if err := s.redisRepo.SetWithTTL(ctx, cacheKey, string(raw), s.config.Cache.SettingsTTL); err != nil {
			logger.Warn("[Settings] cache set", zap.String("error", err.Error()))
		}
	}

	var st model.StoreSettings
	if err := json.Unmarshal(raw, &st); err != nil {
		logger.Error("[Settings] malformed settings blob", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &st, nil
}

// cachedBlob returns the cached raw settings or nil on any miss or error;
// cache trouble degrades to a database read.
func (s *settingsAppImpl) cachedBlob(ctx context.Context) json.RawMessage {
	val, err := s.redisRepo.Get(ctx, cacheKey)
	if err != nil || val == "" {
		return nil
	}
	return json.RawMessage(val)
}

func (s *settingsAppImpl) Public(ctx context.Context) (*model.PublicSettings, error) {
	st, err := s.GetStore(ctx)
	if err != nil {
		return nil, err
	}

	pm := st.PaymentMethods
	pub := &model.PublicSettings{
		StoreName:       st.StoreName,
		DefaultLanguage: st.DefaultLanguage,
		CurrencySymbol:  st.CurrencySymbol,
		CurrencyCode:    st.CurrencyCode,
		PaymentMethods: model.PublicPaymentMethods{
			COD:    model.PublicCOD{Enabled: pm.CODEnabled()},
			Custom: []model.CustomPaymentMethod{},
		},
	}
	if st.EnableVietnamese != nil {
		pub.EnableVietnamese = *st.EnableVietnamese
	}

	// Display details are surfaced only for enabled methods; the resolved
	// booleans here must agree with what checkout enforces.
	if pm.BankTransferEnabled() {
		pub.PaymentMethods.BankTransfer = model.PublicBankTransfer{
			Enabled:       true,
			BankName:      pm.BankTransfer.BankName,
			AccountName:   pm.BankTransfer.AccountName,
			AccountNumber: pm.BankTransfer.AccountNumber,
			Instruction:   pm.BankTransfer.Instruction,
		}
	}
	if pm.MomoEnabled() {
		pub.PaymentMethods.Momo = model.PublicMomo{
			Enabled:     true,
			Phone:       pm.Momo.Phone,
			QRImageURL:  pm.Momo.QRImageURL,
			Instruction: pm.Momo.Instruction,
		}
	}
	if pm != nil {
		for _, c := range pm.Custom {
			if c.Enabled != nil && *c.Enabled {
				pub.PaymentMethods.Custom = append(pub.PaymentMethods.Custom, c)
			}
		}
	}
	return pub, nil
}
