package controller

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService  *service.CourseService
	StorageService *service.StorageService
}

func NewCourseController(courseService *service.CourseService, storageService *service.StorageService) *CourseController {
	return &CourseController{
		CourseService:  courseService,
		StorageService: storageService,
	}
}

// CreateCourse godoc
// @Summary Create a course
// @Tags courses
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.CourseInput true "course payload"
// @Success 201 {object} util.Response{data=model.Course}
// @Failure 400 {object} util.Response
// @Router /api/admin/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var input service.CourseInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	course, err := c.CourseService.CreateCourse(input, claims.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Created(ctx, course)
}

// ListCourses godoc
// @Summary List courses
// @Tags courses
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.CourseService.ListCourses()
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// UpdateCourse godoc
// @Summary Update a course
// @Tags courses
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "course id"
// @Param   body body service.CourseInput true "course payload"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response
// @Router /api/admin/courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	courseID, err := parseUintParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	var input service.CourseInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.UpdateCourse(courseID, input)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// DeleteCourse godoc
// @Summary Delete a course and everything under it
// @Tags courses
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "course id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	courseID, err := parseUintParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	if err := c.CourseService.DeleteCourse(courseID); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": courseID})
}

// CreateLecture godoc
// @Summary Add a lecture to a course
// @Tags lectures
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "course id"
// @Param   body body service.LectureInput true "lecture payload"
// @Success 201 {object} util.Response{data=model.Lecture}
// @Failure 404 {object} util.Response
// @Router /api/admin/courses/{id}/lectures [post]
func (c *CourseController) CreateLecture(ctx *gin.Context) {
	courseID, err := parseUintParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	var input service.LectureInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lecture, err := c.CourseService.CreateLecture(courseID, input)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, lecture)
}

// ListLectures godoc
// @Summary List a course's lectures in position order
// @Tags lectures
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "course id"
// @Success 200 {object} util.Response{data=[]model.Lecture}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/lectures [get]
func (c *CourseController) ListLectures(ctx *gin.Context) {
	courseID, err := parseUintParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	lectures, err := c.CourseService.ListLectures(courseID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, lectures)
}

// UploadLectureMedia godoc
// @Summary Upload a lecture recording
// @Description Stores the file and records its probed duration on the lecture
// @Tags lectures
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "lecture id"
// @Param   file formData file true "audio file"
// @Success 200 {object} util.Response{data=model.Lecture}
// @Failure 404 {object} util.Response
// @Router /api/admin/lectures/{id}/media [post]
func (c *CourseController) UploadLectureMedia(ctx *gin.Context) {
	lectureID, err := parseUintParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid lecture id")
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	tmpPath := filepath.Join("/tmp", fmt.Sprintf("lecture_%d_%d%s", lectureID, time.Now().UnixNano(), filepath.Ext(file.Filename)))
	if err := ctx.SaveUploadedFile(file, tmpPath); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	info, err := util.ProbeMedia(tmpPath)
	if err != nil {
		util.BadRequest(ctx, "unreadable media file")
		return
	}

	objectName := fmt.Sprintf("lectures/%d/%d%s", lectureID, time.Now().Unix(), filepath.Ext(file.Filename))
	url, err := c.StorageService.Provider.UploadFile(ctx.Request.Context(), objectName, tmpPath, file.Header.Get("Content-Type"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	lecture, err := c.CourseService.AttachLectureMedia(lectureID, url, info.Duration)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, lecture)
}

func parseUintParam(ctx *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}
