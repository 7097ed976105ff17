package database

import (
	"fmt"

	"github.com/lshigami/trivia/config"
	"github.com/lshigami/trivia/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DefaultCategories is the category set a fresh database is seeded with.
var DefaultCategories = []model.Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
	{ID: 3, Type: "Geography"},
	{ID: 4, Type: "History"},
	{ID: 5, Type: "Entertainment"},
	{ID: 6, Type: "Sports"},
}

func AutoMigrate(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Category{},
		&model.Question{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

// SeedCategories inserts DefaultCategories when seeding is enabled and the
// categories table is empty. Categories are never created through the API.
func SeedCategories(db *gorm.DB, cfg *config.Config) error {
	if !cfg.Database.Seed {
		return nil
	}

	var count int64
	if err := db.Model(&model.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("counting categories: %w", err)
	}
	if count > 0 {
		log.Debug().Int64("count", count).Msg("Categories already present, skipping seed")
		return nil
	}

	categories := make([]model.Category, len(DefaultCategories))
	copy(categories, DefaultCategories)
	if err := db.Create(&categories).Error; err != nil {
		return fmt.Errorf("seeding categories: %w", err)
	}
	log.Info().Int("count", len(categories)).Msg("Seeded default categories")
	return nil
}
