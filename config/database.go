package config

import (
	"forum-api/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the postgres connection pool and migrates the schema.
// TranslateError is enabled so constraint violations surface as
// gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated.
func InitDB(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Topic{},
		&models.Article{},
		&models.Comment{},
		&models.ArticleLike{},
		&models.CommentLike{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
