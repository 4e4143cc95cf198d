package transport

import "net/http"

// ListOrders handler
// @Summary Recent orders with item snapshots
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.OrderListResponse
// @Router /api/orders [get]
func (s *RestHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	res, err := s.apps.Order.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// Export handler
// @Summary Full data dump for backups
// @Tags Export
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.ExportResponse
// @Router /api/export [get]
func (s *RestHandler) Export(w http.ResponseWriter, r *http.Request) {
	res, err := s.apps.Export.Export(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
