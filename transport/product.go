package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/td051191/MinhPhat/constant"
	"github.com/td051191/MinhPhat/model"
	"github.com/td051191/MinhPhat/utils/errors"
	validatorx "github.com/td051191/MinhPhat/utils/validator"
)

// ListProducts handler
// @Summary List products
// @Tags Products
// @Produce json
// @Param category query string false "Filter by category id"
// @Success 200 {object} model.ProductListResponse
// @Router /api/products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	if categoryID := r.URL.Query().Get("category"); categoryID != "" {
		res, err := s.apps.Product.ListByCategory(r.Context(), categoryID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, res)
		return
	}
	res, err := s.apps.Product.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) ListProductsByCategory(w http.ResponseWriter, r *http.Request) {
	res, err := s.apps.Product.ListByCategory(r.Context(), mux.Vars(r)["categoryId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	res, err := s.apps.Product.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateProduct handler
// @Summary Create product
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ProductUpsertRequest true "Product"
// @Success 200 {object} model.Product
// @Failure 400 {object} errorResponse
// @Router /api/products [post]
func (s *RestHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	req, err := decodeProduct(r)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.apps.Product.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	req, err := decodeProduct(r)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.apps.Product.Update(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := s.apps.Product.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"message": "Product deleted"})
}

func decodeProduct(r *http.Request) (*model.ProductUpsertRequest, error) {
	var req model.ProductUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return &req, nil
}
