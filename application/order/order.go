package order

import (
	"context"

	"github.com/td051191/MinhPhat/constant"
	"github.com/td051191/MinhPhat/model"
	orderrepo "github.com/td051191/MinhPhat/repository/order"
	"github.com/td051191/MinhPhat/utils/errors"
	"github.com/td051191/MinhPhat/utils/logger"
	"go.uber.org/zap"
)

const recentOrderLimit = 200

// OrderApp is the admin read side; orders are only ever written by checkout.
type OrderApp interface {
	List(ctx context.Context) (*model.OrderListResponse, error)
}

type orderAppImpl struct {
	orderRepo orderrepo.OrderRepository
}

func NewOrderApp(orderRepo orderrepo.OrderRepository) OrderApp {
	return &orderAppImpl{orderRepo: orderRepo}
}

func (s *orderAppImpl) List(ctx context.Context) (*model.OrderListResponse, error) {
	orders, err := s.orderRepo.List(ctx, recentOrderLimit)
	if err != nil {
		logger.Error("[Order] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.OrderListResponse{Orders: orders}, nil
}
