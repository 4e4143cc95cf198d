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

// ListCategories handler
// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {object} model.CategoryListResponse
// @Router /api/categories [get]
func (s *RestHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	res, err := s.apps.Category.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	res, err := s.apps.Category.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) GetCategoryBySlug(w http.ResponseWriter, r *http.Request) {
	res, err := s.apps.Category.GetBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCategory(r)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.apps.Category.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCategory(r)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.apps.Category.Update(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := s.apps.Category.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"message": "Category deleted"})
}

func decodeCategory(r *http.Request) (*model.CategoryUpsertRequest, error) {
	var req model.CategoryUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return &req, nil
}
