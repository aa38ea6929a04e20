package main

import (
	"log/slog"
	"os"

	"app/internal/config"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	//.envは無ければ無いでよい
	_ = godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		slog.Error("unable to connect to the database", "error", err)
		os.Exit(1)
	}
	slog.Info("connected to PostgreSQL")

	//スキーマ同期はリッスン開始前。失敗したら起動しない
	if err := db.Sync(gormDB); err != nil {
		slog.Error("schema sync failed", "error", err)
		os.Exit(1)
	}
	slog.Info("models synced with database")

	//Repository（GORM実装）生成
	customerRepo := infraRepo.NewCustomerGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase生成
	resolver := usecase.NewAutoProvisionCustomerResolver(customerRepo)
	cartUC := usecase.NewCartUsecase(txManager, resolver)
	orderUC := usecase.NewOrderUsecase(txManager)
	productUC := usecase.NewProductUsecase(productRepo)

	//Handler生成
	healthH := handler.NewHealthHandler()
	productH := handler.NewProductHandler(productUC)
	cartH := handler.NewCartHandler(cartUC)
	orderH := handler.NewOrderHandler(orderUC)

	//Server起動
	e := server.New()
	server.RegisterRoutes(e, healthH, productH, cartH, orderH)

	addr := cfg.Addr()
	slog.Info("server listening", "addr", addr)
	if err := e.Start(addr); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
