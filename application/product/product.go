package product

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/td051191/MinhPhat/constant"
	"github.com/td051191/MinhPhat/model"
	productrepo "github.com/td051191/MinhPhat/repository/product"
	"github.com/td051191/MinhPhat/repository/sqlite"
	"github.com/td051191/MinhPhat/utils/errors"
	"github.com/td051191/MinhPhat/utils/logger"
	"go.uber.org/zap"
)

type ProductApp interface {
	List(ctx context.Context) (*model.ProductListResponse, error)
	ListByCategory(ctx context.Context, categoryID string) (*model.ProductListResponse, error)
	Get(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, req *model.ProductUpsertRequest) (*model.Product, error)
	Update(ctx context.Context, id string, req *model.ProductUpsertRequest) (*model.Product, error)
	Delete(ctx context.Context, id string) error
}

type productAppImpl struct {
	productRepo productrepo.ProductRepository
}

func NewProductApp(productRepo productrepo.ProductRepository) ProductApp {
	return &productAppImpl{productRepo: productRepo}
}

func (s *productAppImpl) List(ctx context.Context) (*model.ProductListResponse, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		logger.Error("[Product] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.ProductListResponse{Products: products}, nil
}

func (s *productAppImpl) ListByCategory(ctx context.Context, categoryID string) (*model.ProductListResponse, error) {
	products, err := s.productRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		logger.Error("[Product] list by category", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.ProductListResponse{Products: products}, nil
}

func (s *productAppImpl) Get(ctx context.Context, id string) (*model.Product, error) {
	p, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[Product] get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if p == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return p, nil
}

func (s *productAppImpl) Create(ctx context.Context, req *model.ProductUpsertRequest) (*model.Product, error) {
	p, err := fromUpsertRequest(req)
	if err != nil {
		return nil, err
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if err := s.productRepo.Create(ctx, p); err != nil {
		if sqlite.IsDuplicate(err) {
			return nil, errors.SetCustomError(constant.ErrDuplicateEntry)
		}
		logger.Error("[Product] create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return p, nil
}

func (s *productAppImpl) Update(ctx context.Context, id string, req *model.ProductUpsertRequest) (*model.Product, error) {
	p, err := fromUpsertRequest(req)
	if err != nil {
		return nil, err
	}
	p.ID = id
	updated, err := s.productRepo.Update(ctx, p)
	if err != nil {
		logger.Error("[Product] update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !updated {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return p, nil
}

func (s *productAppImpl) Delete(ctx context.Context, id string) error {
	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[Product] delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}

func fromUpsertRequest(req *model.ProductUpsertRequest) (*model.Product, error) {
	if strings.TrimSpace(req.Name.En) == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return &model.Product{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
		Featured:    req.Featured,
		InStock:     req.InStock,
	}, nil
}
