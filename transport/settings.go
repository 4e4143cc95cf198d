package transport

import (
	"encoding/json"
	"net/http"

	"github.com/td051191/MinhPhat/constant"
	"github.com/td051191/MinhPhat/utils/errors"
)

type settingsEnvelope struct {
	Settings json.RawMessage `json:"settings"`
}

type settingsUpdateResponse struct {
	Message  string          `json:"message"`
	Settings json.RawMessage `json:"settings"`
}

// GetSettings handler
// @Summary Get store settings
// @Tags Settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} settingsEnvelope
// @Router /api/settings [get]
func (s *RestHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	raw, err := s.apps.Settings.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if raw == nil {
		raw = json.RawMessage("null")
	}
	writeSuccess(w, settingsEnvelope{Settings: raw})
}

// UpdateSettings handler
// @Summary Replace store settings
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body settingsEnvelope true "Settings"
// @Success 200 {object} settingsUpdateResponse
// @Failure 400 {object} errorResponse
// @Router /api/settings [put]
func (s *RestHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var body settingsEnvelope
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.Settings) == 0 {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	raw, err := s.apps.Settings.Update(r.Context(), body.Settings)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, settingsUpdateResponse{Message: "Settings updated", Settings: raw})
}

// GetPublicSettings handler
// @Summary Customer-facing settings subset
// @Description Payment method enablement plus display details, derived with the same rules checkout enforces
// @Tags Settings
// @Produce json
// @Success 200 {object} model.PublicSettingsResponse
// @Router /api/public-settings [get]
func (s *RestHandler) GetPublicSettings(w http.ResponseWriter, r *http.Request) {
	pub, err := s.apps.Settings.Public(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, struct {
		Settings interface{} `json:"settings"`
	}{Settings: pub})
}
