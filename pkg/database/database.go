package database

import (
	"fmt"
	"log"

	"learnhub_backend/internal/config"
	"learnhub_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	// TranslateError turns driver unique-key violations into
	// gorm.ErrDuplicatedKey; the submission and quiz-creation paths
	// depend on it.
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	return db, nil
}

// Migrate creates or updates the schema for every stored entity,
// including the unique keys the engine's invariants rely on:
// submissions(quiz_id,user_id), lecture_completions(user_id,lecture_id),
// votes(user_id,type) and quizzes(lecture_id).
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Lecture{},
		&model.LectureCompletion{},
		&model.Attendance{},
		&model.Quiz{},
		&model.Question{},
		&model.Answer{},
		&model.Submission{},
		&model.Vote{},
		&model.Announcement{},
		&model.Notification{},
	)
}
