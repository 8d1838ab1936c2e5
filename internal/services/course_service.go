// internal/services/course_service.go
package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/i18n"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/models"
)

type CourseService struct {
	db *gorm.DB
}

func NewCourseService(db *gorm.DB) *CourseService {
	return &CourseService{db: db}
}

type CourseRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Active      *bool  `json:"active"`
	Order       *int   `json:"order"`
}

type ChapterRequest struct {
	CourseID uuid.UUID `json:"courseId" binding:"required"`
	Name     string    `json:"name" binding:"required"`
	Active   *bool     `json:"active"`
	Order    *int      `json:"order"`
}

type LessonRequest struct {
	ChapterID uuid.UUID `json:"chapterId" binding:"required"`
	Name      string    `json:"name" binding:"required"`
	Link      string    `json:"link" binding:"omitempty,url"`
	Duration  int       `json:"duration" binding:"omitempty,min=0"`
	Active    *bool     `json:"active"`
	Order     *int      `json:"order"`
}

// List returns the full ordered content tree. Partner sessions see active
// nodes only; an inactive chapter hides its lessons with it.
func (s *CourseService) List(activeOnly bool) ([]models.Course, error) {
	query := s.db.Model(&models.Course{}).Order("sort_order ASC, name ASC")

	chapterScope := func(db *gorm.DB) *gorm.DB {
		db = db.Order("sort_order ASC")
		if activeOnly {
			db = db.Where("active = ?", true)
		}
		return db
	}
	lessonScope := func(db *gorm.DB) *gorm.DB {
		db = db.Order("sort_order ASC")
		if activeOnly {
			db = db.Where("active = ?", true)
		}
		return db
	}

	query = query.Preload("Chapters", chapterScope).Preload("Chapters.Lessons", lessonScope)
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var courses []models.Course
	if err := query.Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *CourseService) GetByID(id uuid.UUID, activeOnly bool) (*models.Course, error) {
	courses, err := s.listByID(id, activeOnly)
	if err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return nil, NewNotFoundError(i18n.KeyCourseNotFound)
	}
	return &courses[0], nil
}

func (s *CourseService) listByID(id uuid.UUID, activeOnly bool) ([]models.Course, error) {
	query := s.db.Model(&models.Course{}).Where("id = ?", id)
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	scope := func(db *gorm.DB) *gorm.DB {
		db = db.Order("sort_order ASC")
		if activeOnly {
			db = db.Where("active = ?", true)
		}
		return db
	}

	var courses []models.Course
	err := query.Preload("Chapters", scope).Preload("Chapters.Lessons", scope).Find(&courses).Error
	return courses, err
}

func (s *CourseService) CreateCourse(req *CourseRequest, actor string) (*models.Course, error) {
	course := &models.Course{
		Name:        req.Name,
		Description: req.Description,
		Active:      true,
	}
	if req.Active != nil {
		course.Active = *req.Active
	}
	if req.Order != nil {
		course.Order = *req.Order
	}
	course.CreatedBy = actor

	if err := s.db.Create(course).Error; err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) UpdateCourse(id uuid.UUID, req *CourseRequest, actor string) (*models.Course, error) {
	var course models.Course
	if err := s.db.First(&course, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, NewNotFoundError(i18n.KeyCourseNotFound)
		}
		return nil, err
	}

	course.Name = req.Name
	course.Description = req.Description
	if req.Active != nil {
		course.Active = *req.Active
	}
	if req.Order != nil {
		course.Order = *req.Order
	}
	course.UpdatedBy = actor

	if err := s.db.Save(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *CourseService) CreateChapter(req *ChapterRequest, actor string) (*models.Chapter, error) {
	var count int64
	if err := s.db.Model(&models.Course{}).Where("id = ?", req.CourseID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, NewNotFoundError(i18n.KeyCourseNotFound)
	}

	chapter := &models.Chapter{
		CourseID: req.CourseID,
		Name:     req.Name,
		Active:   true,
	}
	if req.Active != nil {
		chapter.Active = *req.Active
	}
	if req.Order != nil {
		chapter.Order = *req.Order
	}
	chapter.CreatedBy = actor

	if err := s.db.Create(chapter).Error; err != nil {
		return nil, err
	}
	return chapter, nil
}

func (s *CourseService) UpdateChapter(id uuid.UUID, req *ChapterRequest, actor string) (*models.Chapter, error) {
	var chapter models.Chapter
	if err := s.db.First(&chapter, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, NewNotFoundError(i18n.KeyCourseNotFound)
		}
		return nil, err
	}

	chapter.Name = req.Name
	if req.Active != nil {
		chapter.Active = *req.Active
	}
	if req.Order != nil {
		chapter.Order = *req.Order
	}
	chapter.UpdatedBy = actor

	if err := s.db.Save(&chapter).Error; err != nil {
		return nil, err
	}
	return &chapter, nil
}

func (s *CourseService) CreateLesson(req *LessonRequest, actor string) (*models.Lesson, error) {
	var count int64
	if err := s.db.Model(&models.Chapter{}).Where("id = ?", req.ChapterID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, NewNotFoundError(i18n.KeyCourseNotFound)
	}

	lesson := &models.Lesson{
		ChapterID: req.ChapterID,
		Name:      req.Name,
		Link:      req.Link,
		Duration:  req.Duration,
		Active:    true,
	}
	if req.Active != nil {
		lesson.Active = *req.Active
	}
	if req.Order != nil {
		lesson.Order = *req.Order
	}
	lesson.CreatedBy = actor

	if err := s.db.Create(lesson).Error; err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *CourseService) UpdateLesson(id uuid.UUID, req *LessonRequest, actor string) (*models.Lesson, error) {
	var lesson models.Lesson
	if err := s.db.First(&lesson, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, NewNotFoundError(i18n.KeyCourseNotFound)
		}
		return nil, err
	}

	lesson.Name = req.Name
	lesson.Link = req.Link
	lesson.Duration = req.Duration
	if req.Active != nil {
		lesson.Active = *req.Active
	}
	if req.Order != nil {
		lesson.Order = *req.Order
	}
	lesson.UpdatedBy = actor

	if err := s.db.Save(&lesson).Error; err != nil {
		return nil, err
	}
	return &lesson, nil
}
