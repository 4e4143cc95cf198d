package category

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/td051191/MinhPhat/constant"
	"github.com/td051191/MinhPhat/model"
	categoryrepo "github.com/td051191/MinhPhat/repository/category"
	"github.com/td051191/MinhPhat/repository/sqlite"
	"github.com/td051191/MinhPhat/utils/errors"
	"github.com/td051191/MinhPhat/utils/logger"
	"go.uber.org/zap"
)

type CategoryApp interface {
	List(ctx context.Context) (*model.CategoryListResponse, error)
	Get(ctx context.Context, id string) (*model.Category, error)
	GetBySlug(ctx context.Context, slug string) (*model.Category, error)
	Create(ctx context.Context, req *model.CategoryUpsertRequest) (*model.Category, error)
	Update(ctx context.Context, id string, req *model.CategoryUpsertRequest) (*model.Category, error)
	Delete(ctx context.Context, id string) error
}

type categoryAppImpl struct {
	categoryRepo categoryrepo.CategoryRepository
}

func NewCategoryApp(categoryRepo categoryrepo.CategoryRepository) CategoryApp {
	return &categoryAppImpl{categoryRepo: categoryRepo}
}

func (s *categoryAppImpl) List(ctx context.Context) (*model.CategoryListResponse, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		logger.Error("[Category] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.CategoryListResponse{Categories: categories}, nil
}

func (s *categoryAppImpl) Get(ctx context.Context, id string) (*model.Category, error) {
	c, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[Category] get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if c == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return c, nil
}

func (s *categoryAppImpl) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	c, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		logger.Error("[Category] get by slug", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if c == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return c, nil
}

func (s *categoryAppImpl) Create(ctx context.Context, req *model.CategoryUpsertRequest) (*model.Category, error) {
	c, err := fromUpsertRequest(req)
	if err != nil {
		return nil, err
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if err := s.categoryRepo.Create(ctx, c); err != nil {
		if sqlite.IsDuplicate(err) {
			return nil, errors.SetCustomError(constant.ErrDuplicateEntry)
		}
		logger.Error("[Category] create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return c, nil
}

func (s *categoryAppImpl) Update(ctx context.Context, id string, req *model.CategoryUpsertRequest) (*model.Category, error) {
	c, err := fromUpsertRequest(req)
	if err != nil {
		return nil, err
	}
	c.ID = id
	updated, err := s.categoryRepo.Update(ctx, c)
	if err != nil {
		logger.Error("[Category] update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !updated {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return c, nil
}

func (s *categoryAppImpl) Delete(ctx context.Context, id string) error {
	deleted, err := s.categoryRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[Category] delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}

func fromUpsertRequest(req *model.CategoryUpsertRequest) (*model.Category, error) {
	if strings.TrimSpace(req.Slug) == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return &model.Category{
		ID:          req.ID,
		Slug:        req.Slug,
		Name:        req.Name,
		Description: req.Description,
	}, nil
}
