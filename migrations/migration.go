package main

import (
	"gotaskr/infra"
	"gotaskr/models"
	"log"
)

func main() {
	infra.Initialize()

	cfg, err := infra.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db := infra.SetupDB(cfg)

	if err := db.AutoMigrate(&models.User{}, &models.Task{}, &models.BlacklistedToken{}); err != nil {
		panic("Failed to migrate database")
	}
}
