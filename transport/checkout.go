package transport

import (
	"encoding/json"
	"net/http"

	"github.com/td051191/MinhPhat/constant"
	"github.com/td051191/MinhPhat/model"
	"github.com/td051191/MinhPhat/utils/errors"
	validatorx "github.com/td051191/MinhPhat/utils/validator"
)

// Checkout handler
// @Summary Place an order
// @Description Validates the cart, re-prices it against stored products and creates a pending order
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body model.CheckoutRequest true "Checkout Request"
// @Success 200 {object} model.CheckoutResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/checkout [post]
func (s *RestHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.apps.Checkout.Checkout(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
