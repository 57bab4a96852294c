package store

import (
	"errors"

	"coursehub/backend/models"

	"gorm.io/gorm"
)

// CourseStore is the read-only course lookup used to resolve course
// references when enrolling. Course authoring lives elsewhere.
type CourseStore interface {
	FindByID(id uint) (*models.Course, error)
	List(page, limit int) ([]models.Course, int64, error)
}

type GormCourseStore struct {
	db *gorm.DB
}

func NewCourseStore(db *gorm.DB) *GormCourseStore {
	return &GormCourseStore{db: db}
}

func (s *GormCourseStore) FindByID(id uint) (*models.Course, error) {
	var course models.Course
	if err := s.db.Preload("Lessons").First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &course, nil
}

func (s *GormCourseStore) List(page, limit int) ([]models.Course, int64, error) {
	var courses []models.Course
	var total int64

	if err := s.db.Model(&models.Course{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := s.db.Preload("Lessons").Order("created_at desc").Offset(offset).Limit(limit).Find(&courses).Error; err != nil {
		return nil, 0, err
	}
	return courses, total, nil
}
