package main

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/hayderAbdulsahib/revest-assignment/internal/config"
	"github.com/hayderAbdulsahib/revest-assignment/internal/domain/model"
	"github.com/hayderAbdulsahib/revest-assignment/internal/handler"
	"github.com/hayderAbdulsahib/revest-assignment/internal/infra/db"
	infraRepo "github.com/hayderAbdulsahib/revest-assignment/internal/infra/repository"
	"github.com/hayderAbdulsahib/revest-assignment/internal/server"
	"github.com/hayderAbdulsahib/revest-assignment/internal/usecase"
)

func main() {
	// .envはあれば読む（コンテナでは環境変数だけで動かす）
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}
	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.Order{},
		&model.OrderProduct{},
	); err != nil {
		logger.Fatal("failed to migrate", zap.Error(err))
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	orderProductRepo := infraRepo.NewOrderProductGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo)
	orderUC := usecase.NewOrderUsecase(txManager, orderRepo, orderProductRepo)

	//Handler生成
	productH := handler.NewProductHandler(productUC)
	orderH := handler.NewOrderHandler(orderUC)

	//Server起動
	e := server.New(logger, productH, orderH)

	addr := ":" + cfg.Port
	logger.Info("starting api server", zap.String("addr", addr), zap.String("env", cfg.GoEnv))
	if err := server.Start(e, addr, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
