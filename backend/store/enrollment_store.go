package store

import (
	"errors"
	"math"
	"time"

	"coursehub/backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EnrollmentStore is the persistence boundary for the enrollment ledger.
type EnrollmentStore interface {
	Create(enrollment *models.Enrollment) error
	FindByID(id uint) (*models.Enrollment, error)
	ListByUser(userID uint, page, limit int) ([]models.Enrollment, int64, error)
	ListByCourse(courseID uint, page, limit int) ([]models.Enrollment, int64, error)
	SetLessonCompletion(id, requesterID uint, lessonID string, completed bool) (*models.Enrollment, error)
	Delete(id, requesterID uint) error
	Stats() (*EnrollmentStats, error)
}

type EnrollmentStats struct {
	TotalEnrollments     int64   `json:"totalEnrollments"`
	CompletedEnrollments int64   `json:"completedEnrollments"`
	CompletionRate       int     `json:"completionRate"`
	AverageProgress      float64 `json:"averageProgress"`
}

type GormEnrollmentStore struct {
	db *gorm.DB
}

func NewEnrollmentStore(db *gorm.DB) *GormEnrollmentStore {
	return &GormEnrollmentStore{db: db}
}

// Create inserts the enrollment. Duplicate (userId, courseId) pairs are
// rejected by the unique index, so two concurrent enrolls for the same pair
// can never both succeed.
func (s *GormEnrollmentStore) Create(enrollment *models.Enrollment) error {
	if err := s.db.Create(enrollment).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return err
	}
	return nil
}

func (s *GormEnrollmentStore) FindByID(id uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := s.db.First(&enrollment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &enrollment, nil
}

func (s *GormEnrollmentStore) ListByUser(userID uint, page, limit int) ([]models.Enrollment, int64, error) {
	return s.list("user_id = ?", userID, page, limit)
}

func (s *GormEnrollmentStore) ListByCourse(courseID uint, page, limit int) ([]models.Enrollment, int64, error) {
	return s.list("course_id = ?", courseID, page, limit)
}

func (s *GormEnrollmentStore) list(cond string, value uint, page, limit int) ([]models.Enrollment, int64, error) {
	var enrollments []models.Enrollment
	var total int64

	if err := s.db.Model(&models.Enrollment{}).Where(cond, value).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := s.db.Where(cond, value).Order("enrolled_at desc").Offset(offset).Limit(limit).Find(&enrollments).Error; err != nil {
		return nil, 0, err
	}
	return enrollments, total, nil
}

// SetLessonCompletion applies one lesson toggle and recomputes the derived
// progress inside a single transaction. On postgres the row is locked for
// the duration, so concurrent updates against the same enrollment serialize
// instead of losing writes. Lessons unknown to the map are inserted and
// counted; a course may have grown since enrollment.
func (s *GormEnrollmentStore) SetLessonCompletion(id, requesterID uint, lessonID string, completed bool) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		query := tx
		if tx.Dialector.Name() == "postgres" {
			query = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := query.First(&enrollment, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if enrollment.UserID != requesterID {
			return ErrNotOwner
		}

		progress := enrollment.Progress.Data()
		if progress == nil {
			progress = make(map[string]bool)
		}
		progress[lessonID] = completed
		enrollment.Progress = datatypes.NewJSONType(progress)

		percentage, complete := models.ComputeProgress(progress)
		enrollment.ProgressPercentage = percentage
		// CompletedAt is written once, the first time progress hits 100,
		// and kept even if a lesson is later un-marked.
		if complete && enrollment.CompletedAt == nil {
			now := time.Now()
			enrollment.CompletedAt = &now
		}

		return tx.Save(&enrollment).Error
	})
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// Delete removes the enrollment for good, owner only.
func (s *GormEnrollmentStore) Delete(id, requesterID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var enrollment models.Enrollment
		if err := tx.First(&enrollment, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if enrollment.UserID != requesterID {
			return ErrNotOwner
		}
		return tx.Unscoped().Delete(&enrollment).Error
	})
}

func (s *GormEnrollmentStore) Stats() (*EnrollmentStats, error) {
	stats := &EnrollmentStats{}

	if err := s.db.Model(&models.Enrollment{}).Count(&stats.TotalEnrollments).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Enrollment{}).Where("completed_at IS NOT NULL").Count(&stats.CompletedEnrollments).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Enrollment{}).
		Select("COALESCE(AVG(progress_percentage), 0)").
		Scan(&stats.AverageProgress).Error; err != nil {
		return nil, err
	}

	if stats.TotalEnrollments > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.CompletedEnrollments) * 100 / float64(stats.TotalEnrollments)))
	}
	return stats, nil
}
