package http

import (
	"errors"

	"talentscout/internal/domain"
	"talentscout/internal/ports/input"
	"talentscout/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// HealthChecker interface - anything the health endpoint can ping
type HealthChecker interface {
	Ping() error
}

// HTTPHandler struct - Primary/Driving adapter for HTTP
type HTTPHandler struct {
	srv       input.InterviewService
	health    HealthChecker
	validator validator.Validator
}

// New func - Creates new HTTP handler
func New(srv input.InterviewService, health HealthChecker) *HTTPHandler {
	return &HTTPHandler{
		srv:       srv,
		health:    health,
		validator: validator.New(),
	}
}

// HealthCheck func
// HealthCheck godoc
// @Summary Health check
// @Description Reports whether the candidate record store is usable
// @Tags HEALTH
// @Success 200 {object} ResponseBody
// @Failure 500 {object} ResponseBody
// @Router /health	[get]
// @Produce json
func (hdl *HTTPHandler) HealthCheck(c *fiber.Ctx) error {
	if err := hdl.health.Ping(); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}

// ListTechnologies godoc
// @Summary List technologies
// @Description Technologies a candidate can pick for the interview
// @Tags INTERVIEW
// @Success 200 {object} ResponseBody
// @Router /v1/api/technologies	[get]
// @Produce json
func (hdl *HTTPHandler) ListTechnologies(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: hdl.srv.Technologies()})
}

// StartSession godoc
// @Summary Start interview session
// @Description Opens a new session at the personal details form
// @Tags INTERVIEW
// @Success 201 {object} ResponseBody
// @Failure 500 {object} ResponseBody
// @Router /v1/api/sessions	[post]
// @Produce json
func (hdl *HTTPHandler) StartSession(c *fiber.Ctx) error {
	view, err := hdl.srv.StartSession()
	if err != nil {
		return hdl.replyError(c, view, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ResponseBody{Status: Created, Data: view})
}

// GetSession godoc
// @Summary Get interview session
// @Description Current stage, question and transcript of a session
// @Tags INTERVIEW
// @Success 200 {object} ResponseBody
// @Failure 404 {object} ResponseBody
// @Router /v1/api/sessions/{id}	[get]
// @Produce json
// @param id path string true "session id"
func (hdl *HTTPHandler) GetSession(c *fiber.Ctx) error {
	view, err := hdl.srv.GetSession(c.Params("id"))
	if err != nil {
		return hdl.replyError(c, view, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: view})
}

// EndSession godoc
// @Summary End interview session
// @Description Drops a session in any stage
// @Tags INTERVIEW
// @Success 200 {object} ResponseBody
// @Failure 500 {object} ResponseBody
// @Router /v1/api/sessions/{id}	[delete]
// @Produce json
// @param id path string true "session id"
func (hdl *HTTPHandler) EndSession(c *fiber.Ctx) error {
	if err := hdl.srv.EndSession(c.Params("id")); err != nil {
		return hdl.replyError(c, nil, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success})
}

// SubmitDetails godoc
// @Summary Submit personal details
// @Description Validates and stores the candidate profile, then moves to the tech stack form
// @Tags INTERVIEW
// @Accept application/json
// @Success 200 {object} ResponseBody
// @Failure 400 {object} ResponseBody
// @Failure 404 {object} ResponseBody
// @Failure 409 {object} ResponseBody
// @Failure 500 {object} ResponseBody
// @Router /v1/api/sessions/{id}/details	[post]
// @Produce json
// @param id path string true "session id"
// @param SubmitDetails body DetailsRequest true "SubmitDetails"
func (hdl *HTTPHandler) SubmitDetails(c *fiber.Ctx) error {
	var request DetailsRequest
	if status := hdl.parse(c, &request); status != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: *status})
	}
	view, err := hdl.srv.SubmitDetails(request.toDomain(c.Params("id")))
	if err != nil {
		return hdl.replyError(c, view, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success.withMessage(domain.MsgDetailsSaved), Data: view})
}

// SubmitTechStack godoc
// @Summary Submit tech stack
// @Description Draws the interview questions and asks the first one
// @Tags INTERVIEW
// @Accept application/json
// @Success 200 {object} ResponseBody
// @Failure 400 {object} ResponseBody
// @Failure 404 {object} ResponseBody
// @Failure 409 {object} ResponseBody
// @Router /v1/api/sessions/{id}/tech-stack	[post]
// @Produce json
// @param id path string true "session id"
// @param SubmitTechStack body TechStackRequest true "SubmitTechStack"
func (hdl *HTTPHandler) SubmitTechStack(c *fiber.Ctx) error {
	var request TechStackRequest
	if status := hdl.parse(c, &request); status != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: *status})
	}
	view, err := hdl.srv.SubmitTechStack(request.toDomain(c.Params("id")))
	if err != nil {
		return hdl.replyError(c, view, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: view})
}

// SubmitAnswer godoc
// @Summary Answer the current question
// @Description Records an answer; exit, quit, end or stop finish the interview early
// @Tags INTERVIEW
// @Accept application/json
// @Success 200 {object} ResponseBody
// @Failure 400 {object} ResponseBody
// @Failure 404 {object} ResponseBody
// @Failure 409 {object} ResponseBody
// @Router /v1/api/sessions/{id}/answers	[post]
// @Produce json
// @param id path string true "session id"
// @param SubmitAnswer body AnswerRequest true "SubmitAnswer"
func (hdl *HTTPHandler) SubmitAnswer(c *fiber.Ctx) error {
	var request AnswerRequest
	if status := hdl.parse(c, &request); status != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: *status})
	}
	view, err := hdl.srv.SubmitAnswer(domain.AnswerRequest{SessionID: c.Params("id"), Answer: request.Answer})
	if err != nil {
		return hdl.replyError(c, view, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: view})
}

// Reset godoc
// @Summary Start over
// @Description Clears a completed session and returns to the personal details form
// @Tags INTERVIEW
// @Success 200 {object} ResponseBody
// @Failure 404 {object} ResponseBody
// @Failure 409 {object} ResponseBody
// @Router /v1/api/sessions/{id}/reset	[post]
// @Produce json
// @param id path string true "session id"
func (hdl *HTTPHandler) Reset(c *fiber.Ctx) error {
	view, err := hdl.srv.Reset(c.Params("id"))
	if err != nil {
		return hdl.replyError(c, view, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: view})
}

// parse decodes and validates the body into out; a non-nil status is the 400 to reply with
func (hdl *HTTPHandler) parse(c *fiber.Ctx, out interface{}) *Status {
	if err := c.BodyParser(out); err != nil {
		logrus.Errorln(err)
		return &BadRequest
	}
	if err := hdl.validator.ValidateStruct(out); err != nil {
		status := BadRequest.withMessage(validator.Messages(err)...)
		return &status
	}
	return nil
}

// replyError maps a use case error onto the response status
func (hdl *HTTPHandler) replyError(c *fiber.Ctx, view *domain.SessionView, err error) error {
	var (
		verr   *domain.ValidationError
		status Status
	)
	switch {
	case errors.As(err, &verr),
		errors.Is(err, domain.ErrEmptyTechStack),
		errors.Is(err, domain.ErrBlankAnswer):
		status = BadRequest.withMessage(err.Error())
	case errors.Is(err, domain.ErrSessionNotFound):
		status = NotFound
	case errors.Is(err, domain.ErrInvalidTransition):
		status = ConFlict.withMessage(err.Error())
	default:
		logrus.Errorln(err)
		status = InternalServerError.withMessage(err.Error())
	}

	body := ResponseBody{Status: status}
	if view != nil {
		body.Data = view
	}
	return c.Status(status.Code).JSON(body)
}
