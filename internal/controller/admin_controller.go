package controller

import (
	"net/http"

	"cs_chatbot_backend/internal/model"
	"cs_chatbot_backend/internal/service"
	"cs_chatbot_backend/internal/util"
	"cs_chatbot_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdminController struct {
	Auth          *service.AuthService
	PastQuestions *service.PastQuestionService
}

func NewAdminController(auth *service.AuthService, pastQuestions *service.PastQuestionService) *AdminController {
	return &AdminController{Auth: auth, PastQuestions: pastQuestions}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type QuestionPayload struct {
	ID     string `json:"id"`
	Number string `json:"number" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

type UpsertPastQuestionRequest struct {
	Course      string            `json:"course" binding:"required"`
	Semester    string            `json:"semester"`
	Year        int               `json:"year" binding:"required"`
	ExamSession string            `json:"examSession"`
	Questions   []QuestionPayload `json:"questions" binding:"required,min=1,dive"`
}

// Login godoc
// @Summary Admin login
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   request body LoginRequest true "Credentials"
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /api/admin/login [post]
func (ctrl *AdminController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	token, err := ctrl.Auth.Login(req.Username, req.Password)
	if err != nil {
		util.Error(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	util.Success(c, gin.H{"token": token})
}

// UpsertPastQuestion godoc
// @Summary Upsert an exam paper
// @Description Replaces the paper keyed by course/year/session, inserting if absent
// @Tags admin
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   request body UpsertPastQuestionRequest true "Exam paper"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /api/admin/past-questions [post]
func (ctrl *AdminController) UpsertPastQuestion(c *gin.Context) {
	var req UpsertPastQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	paper := &model.PastQuestion{
		Course:      req.Course,
		Semester:    req.Semester,
		Year:        req.Year,
		ExamSession: req.ExamSession,
		Questions:   make([]model.Question, 0, len(req.Questions)),
	}
	for _, q := range req.Questions {
		paper.Questions = append(paper.Questions, model.Question{
			ID:     q.ID,
			Number: q.Number,
			Text:   q.Text,
		})
	}

	if err := ctrl.PastQuestions.Upsert(c.Request.Context(), paper); err != nil {
		util.LogInternalError(c, err)
		return
	}

	if admin := util.GetAdminFromContext(c); admin != nil {
		logger.Log.Info("past questions upserted",
			zap.String("admin", admin.Username),
			zap.String("course", paper.Course),
			zap.Int("year", paper.Year))
	}

	util.Success(c, gin.H{"course": paper.Course, "year": paper.Year})
}
