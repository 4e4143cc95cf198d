package transport

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	categoryapp "github.com/td051191/MinhPhat/application/category"
	checkoutapp "github.com/td051191/MinhPhat/application/checkout"
	contentapp "github.com/td051191/MinhPhat/application/content"
	exportapp "github.com/td051191/MinhPhat/application/export"
	orderapp "github.com/td051191/MinhPhat/application/order"
	productapp "github.com/td051191/MinhPhat/application/product"
	settingsapp "github.com/td051191/MinhPhat/application/settings"
	userapp "github.com/td051191/MinhPhat/application/user"
	cerrors "github.com/td051191/MinhPhat/utils/errors"
)

// Apps bundles the application layer handed to the HTTP transport.
type Apps struct {
	Checkout checkoutapp.CheckoutApp
	Settings settingsapp.SettingsApp
	Product  productapp.ProductApp
	Category categoryapp.CategoryApp
	Content  contentapp.ContentApp
	User     userapp.UserApp
	Order    orderapp.OrderApp
	Export   exportapp.ExportApp
}

type RestHandler struct {
	apps *Apps
}

func NewTransport(apps *Apps) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{apps: apps}

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/ping", rh.Ping).Methods(http.MethodGet)

	// Products (specific routes before parameterized ones)
	api.HandleFunc("/products/category/{categoryId}", rh.ListProductsByCategory).Methods(http.MethodGet)
	api.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", rh.GetProduct).Methods(http.MethodGet)
	api.HandleFunc("/products", rh.CreateProduct).Methods(http.MethodPost)
	api.HandleFunc("/products/{id}", rh.UpdateProduct).Methods(http.MethodPut)
	api.HandleFunc("/products/{id}", rh.DeleteProduct).Methods(http.MethodDelete)

	// Categories
	api.HandleFunc("/categories/slug/{slug}", rh.GetCategoryBySlug).Methods(http.MethodGet)
	api.HandleFunc("/categories", rh.ListCategories).Methods(http.MethodGet)
	api.HandleFunc("/categories/{id}", rh.GetCategory).Methods(http.MethodGet)
	api.HandleFunc("/categories", rh.CreateCategory).Methods(http.MethodPost)
	api.HandleFunc("/categories/{id}", rh.UpdateCategory).Methods(http.MethodPut)
	api.HandleFunc("/categories/{id}", rh.DeleteCategory).Methods(http.MethodDelete)

	// Site content
	api.HandleFunc("/content/key/{key}", rh.GetContentByKey).Methods(http.MethodGet)
	api.HandleFunc("/content/section/{section}", rh.ListContentBySection).Methods(http.MethodGet)
	api.HandleFunc("/content", rh.ListContent).Methods(http.MethodGet)
	api.HandleFunc("/content/{id}", rh.GetContent).Methods(http.MethodGet)
	api.HandleFunc("/content", rh.CreateContent).Methods(http.MethodPost)
	api.HandleFunc("/content/{id}", rh.UpdateContent).Methods(http.MethodPut)
	api.HandleFunc("/content/{id}", rh.DeleteContent).Methods(http.MethodDelete)

	// Newsletter
	api.HandleFunc("/newsletter/subscribe", rh.SubscribeNewsletter).Methods(http.MethodPost)

	// Admin auth
	api.HandleFunc("/auth/login", rh.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", rh.Logout).Methods(http.MethodPost)
	api.HandleFunc("/auth/verify", rh.Verify).Methods(http.MethodGet)

	// Settings
	api.HandleFunc("/settings", rh.GetSettings).Methods(http.MethodGet)
	api.HandleFunc("/settings", rh.UpdateSettings).Methods(http.MethodPut)
	api.HandleFunc("/public-settings", rh.GetPublicSettings).Methods(http.MethodGet)

	// Orders + export (admin)
	api.HandleFunc("/orders", rh.ListOrders).Methods(http.MethodGet)
	api.HandleFunc("/export", rh.Export).Methods(http.MethodGet)

	// Checkout (public, rate limited)
	api.HandleFunc("/checkout", rh.Checkout).Methods(http.MethodPost)

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(RateLimitMiddleware())
	router.Use(AuthMiddleware(apps.User))

	return router
}

// Ping handler
// @Summary Liveness probe
// @Tags Misc
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/ping [get]
func (s *RestHandler) Ping(w http.ResponseWriter, r *http.Request) {
	msg := os.Getenv("PING_MESSAGE")
	if msg == "" {
		msg = "ping"
	}
	writeSuccess(w, map[string]string{"message": msg})
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(data)
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps CustomError to its HTTP status; anything else is reported
// as a generic 500 so internals never leak into the response body.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	msg := "internal server error"
	if ce, ok := err.(cerrors.CustomError); ok {
		status = ce.ErrorHTTPCode()
		msg = ce.Error()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: msg})
}
