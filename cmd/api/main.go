package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"shortshop/internal/config"
	"shortshop/internal/domain/model"
	"shortshop/internal/handler"
	"shortshop/internal/infra/db"
	infraRepo "shortshop/internal/infra/repository"
	"shortshop/internal/server"
	"shortshop/internal/usecase"
	"shortshop/pkg/rabbitmq"
)

func main() {
	log := logrus.New()

	//ローカル開発用。無くても起動する。
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found")
	}

	cfg := config.Load()

	gormDB, err := db.Connect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.ProductVariant{},
		&model.ProductImage{},
		&model.ProductRecommendation{},
		&model.ProductReview{},
		&model.Cart{},
		&model.CartItem{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	productRepo := infraRepo.NewProductGormRepository(gormDB)
	variantRepo := infraRepo.NewVariantGormRepository(gormDB)
	imageRepo := infraRepo.NewImageGormRepository(gormDB)
	recRepo := infraRepo.NewRecommendationGormRepository(gormDB)
	reviewRepo := infraRepo.NewReviewGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	txm := infraRepo.NewTxManagerGorm(gormDB)

	//ブローカーは任意。繋がらなくてもAPIは動かす。
	var publisher usecase.EventPublisher
	if cfg.RabbitMQURL != "" {
		client, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL}, log)
		if err != nil {
			log.Warnf("rabbitmq unavailable, events disabled: %v", err)
		} else {
			defer client.Close()
			publisher = client
		}
	}

	productUsecase := usecase.NewProductUsecase(productRepo, txm, publisher)
	variantUsecase := usecase.NewVariantUsecase(productRepo, variantRepo, txm)
	imageUsecase := usecase.NewImageUsecase(productRepo, imageRepo)
	recUsecase := usecase.NewRecommendationUsecase(productRepo, recRepo)
	reviewUsecase := usecase.NewReviewUsecase(productRepo, reviewRepo)
	cartUsecase := usecase.NewCartUsecase(cartRepo, cartRepo, variantRepo, txm)

	e := server.New()
	server.RegisterRoutes(e, server.Handlers{
		Product:        handler.NewProductHandler(productUsecase),
		Variant:        handler.NewVariantHandler(variantUsecase),
		Image:          handler.NewImageHandler(imageUsecase),
		Recommendation: handler.NewRecommendationHandler(recUsecase),
		Review:         handler.NewReviewHandler(reviewUsecase),
		Cart:           handler.NewCartHandler(cartUsecase),
	})

	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}
	log.Fatal(e.Start(addr))
}
