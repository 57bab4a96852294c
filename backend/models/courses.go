package models

import "gorm.io/gorm"

type Course struct {
	gorm.Model
	Title       string   `json:"title"`
	ShortDesc   string   `json:"shortDesc"`
	Description string   `json:"description"`
	Difficulty  string   `json:"difficulty"` // beginner, intermediate, advanced
	Topic       string   `json:"topic"`
	Lessons     []Lesson `json:"lessons"`
}

type Lesson struct {
	gorm.Model
	CourseID      uint   `json:"courseId"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	SequenceOrder int    `json:"sequenceOrder"`
}
