package export

import (
	"context"
	"encoding/json"
	"time"

	settingsapp "github.com/td051191/MinhPhat/application/settings"
	"github.com/td051191/MinhPhat/constant"
	"github.com/td051191/MinhPhat/model"
	categoryrepo "github.com/td051191/MinhPhat/repository/category"
	orderrepo "github.com/td051191/MinhPhat/repository/order"
	productrepo "github.com/td051191/MinhPhat/repository/product"
	"github.com/td051191/MinhPhat/utils/errors"
	"github.com/td051191/MinhPhat/utils/logger"
	"go.uber.org/zap"
)

// Orders included in a dump; exports are backups, not pagination surfaces.
const exportOrderLimit = 1000

type ExportApp interface {
	Export(ctx context.Context) (*model.ExportResponse, error)
}

type exportAppImpl struct {
	productRepo  productrepo.ProductRepository
	categoryRepo categoryrepo.CategoryRepository
	orderRepo    orderrepo.OrderRepository
	settingsApp  settingsapp.SettingsApp
}

func NewExportApp(productRepo productrepo.ProductRepository, categoryRepo categoryrepo.CategoryRepository, orderRepo orderrepo.OrderRepository, settingsApp settingsapp.SettingsApp) ExportApp {
	return &exportAppImpl{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		orderRepo:    orderRepo,
		settingsApp:  settingsApp,
	}
}

func (s *exportAppImpl) Export(ctx context.Context) (*model.ExportResponse, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		logger.Error("[Export] list products", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		logger.Error("[Export] list categories", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	orders, err := s.orderRepo.List(ctx, exportOrderLimit)
	if err != nil {
		logger.Error("[Export] list orders", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	settings, err := s.settingsApp.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = json.RawMessage("null")
	}

	return &model.ExportResponse{
		Products:   products,
		Categories: categories,
		Orders:     orders,
		Settings:   settings,
		ExportedAt: time.Now().UTC(),
	}, nil
}
