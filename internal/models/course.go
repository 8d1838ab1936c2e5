// internal/models/course.go
package models

import "github.com/google/uuid"

// Learning content tree: Course -> Chapter -> Lesson, each ordered and
// individually activatable.
type Course struct {
	BaseModel
	Name        string `json:"name" gorm:"size:255;not null"`
	Description string `json:"description" gorm:"type:text"`
	Active      bool   `json:"active" gorm:"default:true"`
	Order       int    `json:"order" gorm:"column:sort_order;default:0"`

	Chapters []Chapter `json:"chapters,omitempty" gorm:"foreignKey:CourseID"`
}

type Chapter struct {
	BaseModel
	CourseID uuid.UUID `json:"courseId" gorm:"type:uuid;index;not null"`
	Name     string    `json:"name" gorm:"size:255;not null"`
	Active   bool      `json:"active" gorm:"default:true"`
	Order    int       `json:"order" gorm:"column:sort_order;default:0"`

	Lessons []Lesson `json:"lessons,omitempty" gorm:"foreignKey:ChapterID"`
}

type Lesson struct {
	BaseModel
	ChapterID uuid.UUID `json:"chapterId" gorm:"type:uuid;index;not null"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Link      string    `json:"link" gorm:"size:512"` // external video URL
	Duration  int       `json:"duration"`             // seconds
	Active    bool      `json:"active" gorm:"default:true"`
	Order     int       `json:"order" gorm:"column:sort_order;default:0"`
}
