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

func (s *RestHandler) ListContent(w http.ResponseWriter, r *http.Request) {
	res, err := s.apps.Content.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) ListContentBySection(w http.ResponseWriter, r *http.Request) {
	res, err := s.apps.Content.ListBySection(r.Context(), mux.Vars(r)["section"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	res, err := s.apps.Content.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) GetContentByKey(w http.ResponseWriter, r *http.Request) {
	res, err := s.apps.Content.GetByKey(r.Context(), mux.Vars(r)["key"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) CreateContent(w http.ResponseWriter, r *http.Request) {
	req, err := decodeContent(r)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.apps.Content.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	req, err := decodeContent(r)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.apps.Content.Update(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) DeleteContent(w http.ResponseWriter, r *http.Request) {
	if err := s.apps.Content.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"message": "Content deleted"})
}

// SubscribeNewsletter handler
// @Summary Subscribe an email to the newsletter
// @Tags Content
// @Accept json
// @Produce json
// @Param request body model.NewsletterSubscribeRequest true "Subscription"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errorResponse
// @Router /api/newsletter/subscribe [post]
func (s *RestHandler) SubscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	var req model.NewsletterSubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := s.apps.Content.SubscribeNewsletter(r.Context(), req.Email); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"message": "Subscribed"})
}

func decodeContent(r *http.Request) (*model.ContentUpsertRequest, error) {
	var req model.ContentUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return &req, nil
}
