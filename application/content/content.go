package content

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/td051191/MinhPhat/constant"
	"github.com/td051191/MinhPhat/model"
	contentrepo "github.com/td051191/MinhPhat/repository/content"
	"github.com/td051191/MinhPhat/repository/sqlite"
	"github.com/td051191/MinhPhat/utils/errors"
	"github.com/td051191/MinhPhat/utils/logger"
	"go.uber.org/zap"
)

type ContentApp interface {
	List(ctx context.Context) (*model.ContentListResponse, error)
	ListBySection(ctx context.Context, section string) (*model.ContentListResponse, error)
	Get(ctx context.Context, id string) (*model.Content, error)
	GetByKey(ctx context.Context, key string) (*model.Content, error)
	Create(ctx context.Context, req *model.ContentUpsertRequest) (*model.Content, error)
	Update(ctx context.Context, id string, req *model.ContentUpsertRequest) (*model.Content, error)
	Delete(ctx context.Context, id string) error
	SubscribeNewsletter(ctx context.Context, email string) error
}

type contentAppImpl struct {
	contentRepo contentrepo.ContentRepository
}

func NewContentApp(contentRepo contentrepo.ContentRepository) ContentApp {
	return &contentAppImpl{contentRepo: contentRepo}
}

func (s *contentAppImpl) List(ctx context.Context) (*model.ContentListResponse, error) {
	entries, err := s.contentRepo.List(ctx)
	if err != nil {
		logger.Error("[Content] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.ContentListResponse{Content: entries}, nil
}

func (s *contentAppImpl) ListBySection(ctx context.Context, section string) (*model.ContentListResponse, error) {
	entries, err := s.contentRepo.ListBySection(ctx, section)
	if err != nil {
		logger.Error("[Content] list by section", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.ContentListResponse{Content: entries}, nil
}

func (s *contentAppImpl) Get(ctx context.Context, id string) (*model.Content, error) {
	c, err := s.contentRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[Content] get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if c == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return c, nil
}

func (s *contentAppImpl) GetByKey(ctx context.Context, key string) (*model.Content, error) {
	c, err := s.contentRepo.GetByKey(ctx, key)
	if err != nil {
		logger.Error("[Content] get by key", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if c == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return c, nil
}

func (s *contentAppImpl) Create(ctx context.Context, req *model.ContentUpsertRequest) (*model.Content, error) {
	c, err := fromUpsertRequest(req)
	if err != nil {
		return nil, err
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if err := s.contentRepo.Create(ctx, c); err != nil {
		if sqlite.IsDuplicate(err) {
			return nil, errors.SetCustomError(constant.ErrDuplicateEntry)
		}
		logger.Error("[Content] create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return c, nil
}

func (s *contentAppImpl) Update(ctx context.Context, id string, req *model.ContentUpsertRequest) (*model.Content, error) {
	c, err := fromUpsertRequest(req)
	if err != nil {
		return nil, err
	}
	c.ID = id
	updated, err := s.contentRepo.Update(ctx, c)
	if err != nil {
		logger.Error("[Content] update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !updated {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return c, nil
}

func (s *contentAppImpl) Delete(ctx context.Context, id string) error {
	deleted, err := s.contentRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[Content] delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}

func (s *contentAppImpl) SubscribeNewsletter(ctx context.Context, email string) error {
	if err := s.contentRepo.SubscribeNewsletter(ctx, email); err != nil {
		logger.Error("[Content] newsletter subscribe", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func fromUpsertRequest(req *model.ContentUpsertRequest) (*model.Content, error) {
	if strings.TrimSpace(req.Key) == "" || strings.TrimSpace(req.Section) == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return &model.Content{
		ID:      req.ID,
		Key:     req.Key,
		Section: req.Section,
		Value:   req.Value,
	}, nil
}
