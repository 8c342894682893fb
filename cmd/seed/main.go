package main

import (
	"log"

	"crebito/internal/config"
	"crebito/internal/models"
	"crebito/internal/repositories"
)

// Initial account set: ids are externally assigned, balances start at zero.
var accounts = []models.Account{
	{ID: 1, Limit: 100_000},
	{ID: 2, Limit: 80_000},
	{ID: 3, Limit: 1_000_000},
	{ID: 4, Limit: 10_000_000},
	{ID: 5, Limit: 500_000},
}

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer func() {
		if sqlDB, err := repositories.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				log.Printf("⚠️ Failed to close PostgreSQL connection: %v", err)
			}
		}
		if repositories.RedisClient != nil {
			if err := repositories.RedisClient.Close(); err != nil {
				log.Printf("⚠️ Failed to close Redis connection: %v", err)
			}
		}
	}()

	for _, account := range accounts {
		var existing models.Account
		if err := repositories.DB.First(&existing, account.ID).Error; err == nil {
			log.Printf("Account %d already exists", account.ID)
			continue
		}
		if err := repositories.DB.Create(&account).Error; err != nil {
			log.Fatal("Failed to create account:", err)
		}
		log.Printf("Created account %d with limit %d", account.ID, account.Limit)
	}

	log.Println("✅ Seed accounts in place!")
}
