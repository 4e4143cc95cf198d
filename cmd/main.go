package main

import (
	"net/http"

	categoryapp "github.com/td051191/MinhPhat/application/category"
	checkoutapp "github.com/td051191/MinhPhat/application/checkout"
	contentapp "github.com/td051191/MinhPhat/application/content"
	exportapp "github.com/td051191/MinhPhat/application/export"
	orderapp "github.com/td051191/MinhPhat/application/order"
	productapp "github.com/td051191/MinhPhat/application/product"
	settingsapp "github.com/td051191/MinhPhat/application/settings"
	userapp "github.com/td051191/MinhPhat/application/user"
	"github.com/td051191/MinhPhat/cmd/config"
	redisclient "github.com/td051191/MinhPhat/cmd/redis"
	_ "github.com/td051191/MinhPhat/docs"
	categoryRepo "github.com/td051191/MinhPhat/repository/category"
	contentRepo "github.com/td051191/MinhPhat/repository/content"
	orderRepo "github.com/td051191/MinhPhat/repository/order"
	productRepo "github.com/td051191/MinhPhat/repository/product"
	redisRepo "github.com/td051191/MinhPhat/repository/redis"
	settingsRepo "github.com/td051191/MinhPhat/repository/settings"
	"github.com/td051191/MinhPhat/repository/sqlite"
	txRepo "github.com/td051191/MinhPhat/repository/tx"
	userRepo "github.com/td051191/MinhPhat/repository/user"
	"github.com/td051191/MinhPhat/thirdparty/rabbitmq"
	"github.com/td051191/MinhPhat/transport"
	"github.com/td051191/MinhPhat/utils/logger"
	"go.uber.org/zap"
)

// @title Minh Phat Storefront API
// @version 1.0
// @description Catalog, checkout and admin API for the Minh Phat storefront
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	db, err := sqlite.Open(cfg)
	if err != nil {
		logger.Fatal("err open sqlite db", zap.Error(err))
	}
	defer db.Close()

	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// A broker outage must not take checkout down; order-created events are
	// best effort and the checkout app tolerates a nil publisher.
	publisher, err := rabbitmq.NewPublisher(cfg.AMQP.Host, cfg.AMQP.Port, cfg.AMQP.User, cfg.AMQP.Password)
	if err != nil {
		logger.Warn("rabbitmq unavailable, order events disabled", zap.Error(err))
		publisher = nil
	} else {
		defer publisher.Close()
	}

	// Initialize repositories
	ProductRepo := productRepo.NewProductRepository(db)
	CategoryRepo := categoryRepo.NewCategoryRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	SettingsRepo := settingsRepo.NewSettingsRepository(db)
	ContentRepo := contentRepo.NewContentRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	TxRepo := txRepo.NewTxRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	SettingsApp := settingsapp.NewSettingsApp(cfg, SettingsRepo, RedisRepo)
	apps := &transport.Apps{
		Checkout: checkoutapp.NewCheckoutApp(cfg, TxRepo, OrderRepo, ProductRepo, SettingsApp, publisher),
		Settings: SettingsApp,
		Product:  productapp.NewProductApp(ProductRepo),
		Category: categoryapp.NewCategoryApp(CategoryRepo),
		Content:  contentapp.NewContentApp(ContentRepo),
		User:     userapp.NewUserApp(cfg, UserRepo, RedisRepo),
		Order:    orderapp.NewOrderApp(OrderRepo),
		Export:   exportapp.NewExportApp(ProductRepo, CategoryRepo, OrderRepo, SettingsApp),
	}

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      transport.NewTransport(apps),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
