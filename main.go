package main

import (
	"log"

	httpapi "foodmarket/internal/api/http"
	"foodmarket/internal/cache"
	"foodmarket/internal/config"
	"foodmarket/internal/service"
	"foodmarket/internal/storage"
)

func main() {
	cfg := config.Load()

	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	var store cache.Store
	if cfg.CacheBackend == "redis" {
		store = cache.NewRedis(config.MustInitRedis(), cfg.CacheTTL)
	} else {
		store = cache.NewMemory(cfg.CacheTTL, cfg.CacheSweep)
	}
	defer store.Close()

	uploader, err := storage.NewDiskUploader(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		log.Fatal("Failed to init upload dir:", err)
	}

	var publisher service.RatingPublisher
	if cfg.KafkaBroker != "" {
		writer := config.NewKafkaWriter(cfg.KafkaBroker, "ratings")
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	queries := service.NewItemQueryService(repo, repo, store)
	mutations := service.NewItemMutationService(repo, repo, uploader, publisher)
	shops := service.NewShopService(repo, uploader, service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL})

	handler := httpapi.NewHandler(queries, mutations, shops)
	router := httpapi.NewRouter(handler, cfg.UploadDir)

	httpapi.StartServer(":"+cfg.ServerPort, router)
}
