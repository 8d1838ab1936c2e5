// internal/handlers/course.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/i18n"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/models"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/services"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/utils"
)

type CourseHandler struct {
	courseService *services.CourseService
}

func NewCourseHandler(courseService *services.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

func isAdmin(c *gin.Context) bool {
	role, _ := utils.GetRoleFromContext(c)
	return role == string(models.UserRoleAdmin)
}

// GET /api/course
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courseService.List(!isAdmin(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, courses)
}

// GET /api/course/:id
func (h *CourseHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ValidationErrorResponse(c, "id")
		return
	}

	course, err := h.courseService.GetByID(id, !isAdmin(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, course)
}

// POST /api/course
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req services.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "input")
		return
	}

	if _, err := h.courseService.CreateCourse(&req, actor(c)); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, i18n.KeyCourseCreated)
}

// PUT /api/course/:id
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ValidationErrorResponse(c, "id")
		return
	}

	var req services.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "input")
		return
	}

	if _, err := h.courseService.UpdateCourse(id, &req, actor(c)); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.MessageResponse(c, i18n.KeyCourseUpdated)
}

// POST /api/course/chapter
func (h *CourseHandler) CreateChapter(c *gin.Context) {
	var req services.ChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "input")
		return
	}

	if _, err := h.courseService.CreateChapter(&req, actor(c)); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, i18n.KeyCourseCreated)
}

// PUT /api/course/chapter/:id
func (h *CourseHandler) UpdateChapter(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ValidationErrorResponse(c, "id")
		return
	}

	var req services.ChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "input")
		return
	}

	if _, err := h.courseService.UpdateChapter(id, &req, actor(c)); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.MessageResponse(c, i18n.KeyCourseUpdated)
}

// POST /api/course/lesson
func (h *CourseHandler) CreateLesson(c *gin.Context) {
	var req services.LessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "input")
		return
	}

	if _, err := h.courseService.CreateLesson(&req, actor(c)); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, i18n.KeyCourseCreated)
}

// PUT /api/course/lesson/:id
func (h *CourseHandler) UpdateLesson(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ValidationErrorResponse(c, "id")
		return
	}

	var req services.LessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "input")
		return
	}

	if _, err := h.courseService.UpdateLesson(id, &req, actor(c)); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.MessageResponse(c, i18n.KeyCourseUpdated)
}
