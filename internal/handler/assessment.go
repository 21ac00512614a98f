package handler

import (
	"encoding/json"

	"grammologue/internal/domain"
	"grammologue/internal/dto"
	"grammologue/internal/logger"
	"grammologue/internal/middleware"
	"grammologue/internal/service"
	"grammologue/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AssessmentHandler handles assessment-related HTTP requests
type AssessmentHandler struct {
	service   service.AssessmentService
	validator *validation.Validator
}

// NewAssessmentHandler creates a new AssessmentHandler instance
func NewAssessmentHandler(service service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// RegisterRoutes mounts the assessment routes on router
func (h *AssessmentHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/get-ideal-answer", h.GetIdealAnswer)
	router.Post("/process-audio", h.ProcessAudio)
	router.Post("/analyze-text", h.AnalyzeText)
	router.Post("/check-answer", h.CheckAnswer)
	router.Post("/generate-questions", h.GenerateQuestions)
	router.Post("/evaluate", h.Evaluate)
}

// GetIdealAnswer godoc
// @Summary Get the ideal answer for a question
// @Description Returns a corrected answer plus strengths and improvement areas of the user's answer
// @Tags assessment
// @Accept json
// @Produce json
// @Param request body dto.QuestionAnswerRequest true "Question and answer"
// @Success 200 {object} domain.Envelope
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /get-ideal-answer [post]
func (h *AssessmentHandler) GetIdealAnswer(c *fiber.Ctx) error {
	var req dto.QuestionAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateQuestionAnswer(req.Question, req.Answer); len(errs) > 0 {
		return errs
	}

	env, err := h.service.GetIdealAnswer(c.UserContext(), req.Question, req.Answer)
	if err != nil {
		return err
	}

	body, err := env.Body()
	if err != nil {
		return domain.NewInternalError("Failed to encode ideal answer", err)
	}
	return sendRaw(c, body)
}

// ProcessAudio godoc
// @Summary Process a recorded answer
// @Description Uploads the recording to the inference service for transcription and fluency analysis
// @Tags assessment
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio recording"
// @Param language formData string false "Spoken language"
// @Success 200 {object} object
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /process-audio [post]
func (h *AssessmentHandler) ProcessAudio(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	present := err == nil
	var size int64
	if present {
		size = fileHeader.Size
	}
	if errs := h.validator.ValidateAudioUpload(present, size); len(errs) > 0 {
		return errs
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domain.NewInternalError("Failed to read uploaded file", err)
	}
	defer file.Close()

	body, err := h.service.ProcessAudio(c.UserContext(), domain.AudioFile{
		Filename: fileHeader.Filename,
		Content:  file,
		Language: c.FormValue("language"),
	})
	if err != nil {
		return err
	}
	return sendRaw(c, body)
}

// AnalyzeText godoc
// @Summary Analyze a transcript
// @Description Returns grammar, pronunciation, fluency and correctness feedback
// @Tags assessment
// @Accept json
// @Produce json
// @Param request body dto.TextAnalysisRequest true "Transcript"
// @Success 200 {object} object
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /analyze-text [post]
func (h *AssessmentHandler) AnalyzeText(c *fiber.Ctx) error {
	var req dto.TextAnalysisRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateTextAnalysis(req.Text); len(errs) > 0 {
		return errs
	}

	body, err := h.service.AnalyzeText(c.UserContext(), req.Text, req.Question)
	if err != nil {
		return err
	}
	return sendRaw(c, body)
}

// CheckAnswer godoc
// @Summary Check an answer
// @Description Scores the relevance and quality of an answer
// @Tags assessment
// @Accept json
// @Produce json
// @Param request body dto.QuestionAnswerRequest true "Question and answer"
// @Success 200 {object} domain.CorrectnessResult
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /check-answer [post]
func (h *AssessmentHandler) CheckAnswer(c *fiber.Ctx) error {
	var req dto.QuestionAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateQuestionAnswer(req.Question, req.Answer); len(errs) > 0 {
		return errs
	}

	body, err := h.service.CheckAnswer(c.UserContext(), req.Question, req.Answer)
	if err != nil {
		return err
	}
	return sendRaw(c, body)
}

// GenerateQuestions godoc
// @Summary Generate assessment questions
// @Description Forwards the assessment setup to the inference service
// @Tags assessment
// @Accept json
// @Produce json
// @Param setup body object true "Assessment setup"
// @Success 200 {object} domain.QuestionSet
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /generate-questions [post]
func (h *AssessmentHandler) GenerateQuestions(c *fiber.Ctx) error {
	setup, errs := h.validator.ValidateSetup(c.Body())
	if len(errs) > 0 {
		return errs
	}

	body, err := h.service.GenerateQuestions(c.UserContext(), setup)
	if err != nil {
		return err
	}
	return sendRaw(c, body)
}

// Evaluate godoc
// @Summary Evaluate a transcribed answer
// @Description Runs text analysis, answer checking and the ideal answer lookup in one call
// @Tags assessment
// @Accept json
// @Produce json
// @Param request body dto.QuestionAnswerRequest true "Question and transcribed answer"
// @Success 200 {object} domain.Evaluation
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /evaluate [post]
func (h *AssessmentHandler) Evaluate(c *fiber.Ctx) error {
	var req dto.QuestionAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateQuestionAnswer(req.Question, req.Answer); len(errs) > 0 {
		return errs
	}

	eval, err := h.service.EvaluateResponse(c.UserContext(), req.Question, req.Answer)
	if err != nil {
		return err
	}

	logger.Get().Debug("Evaluation completed", zap.String("request_id", middleware.RequestID(c)))
	return c.JSON(eval)
}

// sendRaw writes an inference body back verbatim
func sendRaw(c *fiber.Ctx, body json.RawMessage) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}
