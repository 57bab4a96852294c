package models

import (
	"math"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Enrollment records one user's registration and lesson progress in a course.
// The unique index over (user_id, course_id) guarantees at most one enrollment
// per pair, enforced by the database rather than a check-then-write.
type Enrollment struct {
	gorm.Model
	UserID             uint                                `json:"userId" gorm:"not null;uniqueIndex:idx_user_course"`
	CourseID           uint                                `json:"courseId" gorm:"not null;uniqueIndex:idx_user_course"`
	Progress           datatypes.JSONType[map[string]bool] `json:"progress"`
	ProgressPercentage int                                 `json:"progressPercentage"`
	EnrolledAt         time.Time                           `json:"enrolledAt"`
	CompletedAt        *time.Time                          `json:"completedAt,omitempty"`
}

// ComputeProgress derives the completion percentage for a lesson map.
// An empty map counts as zero progress, rounding is half-up.
func ComputeProgress(progress map[string]bool) (percentage int, complete bool) {
	if len(progress) == 0 {
		return 0, false
	}
	done := 0
	for _, completed := range progress {
		if completed {
			done++
		}
	}
	percentage = int(math.Round(float64(done) * 100 / float64(len(progress))))
	return percentage, percentage == 100
}
