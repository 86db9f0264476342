package controller

import (
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// GetQuiz godoc
// @Summary Fetch a quiz with its questions
// @Description Questions are only revealed once the owning lecture is completed
// @Tags quizzes
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "quiz id"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Failure 403 {object} util.Response "lecture not completed"
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	quizID, err := parseUintParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid quiz id")
		return
	}

	claims := util.GetUserFromContext(ctx)
	quiz, err := c.QuizService.GetQuizForUser(claims.UserID, quizID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

// GetLectureQuiz godoc
// @Summary Fetch the quiz attached to a lecture
// @Tags quizzes
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "lecture id"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Failure 403 {object} util.Response "lecture not completed"
// @Failure 404 {object} util.Response
// @Router /api/lectures/{id}/quiz [get]
func (c *QuizController) GetLectureQuiz(ctx *gin.Context) {
	lectureID, err := parseUintParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid lecture id")
		return
	}

	claims := util.GetUserFromContext(ctx)
	quiz, err := c.QuizService.GetQuizByLectureForUser(claims.UserID, lectureID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

// ListCourseQuizzes godoc
// @Summary List a course's quizzes with question counts
// @Tags quizzes
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "course id"
// @Success 200 {object} util.Response{data=[]model.Quiz}
// @Router /api/courses/{id}/quizzes [get]
func (c *QuizController) ListCourseQuizzes(ctx *gin.Context) {
	courseID, err := parseUintParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	quizzes, err := c.QuizService.ListCourseQuizzes(courseID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

// CreateQuiz godoc
// @Summary Create a quiz on a lecture
// @Description One quiz per lecture; a second attempt is a conflict
// @Tags quizzes
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "course id"
// @Param   body body service.QuizInput true "quiz payload"
// @Success 201 {object} util.Response{data=model.Quiz}
// @Failure 409 {object} util.Response "lecture already has a quiz"
// @Failure 422 {object} util.Response
// @Router /api/admin/courses/{id}/quizzes [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	courseID, err := parseUintParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	var input service.QuizInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.QuizService.CreateQuiz(courseID, input)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, quiz)
}

// AddQuestion godoc
// @Summary Add a multiple-choice question to a quiz
// @Tags quizzes
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "quiz id"
// @Param   body body service.QuestionInput true "question payload"
// @Success 201 {object} util.Response{data=model.Question}
// @Failure 422 {object} util.Response
// @Router /api/admin/quizzes/{id}/questions [post]
func (c *QuizController) AddQuestion(ctx *gin.Context) {
	quizID, err := parseUintParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid quiz id")
		return
	}

	var input service.QuestionInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.QuizService.AddQuestion(quizID, input)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, question)
}
