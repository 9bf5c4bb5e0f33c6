package student

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/taktix-app/tryout-engine/internal/auth"
	"github.com/taktix-app/tryout-engine/internal/dto"
	"github.com/taktix-app/tryout-engine/internal/service"
)

type SessionController struct {
	sessionService service.SessionService
}

func NewSessionController(sessionService service.SessionService) *SessionController {
	return &SessionController{sessionService: sessionService}
}

// StartSession godoc
// @Summary (Student) Start a timed exam session
// @Description Start a new attempt on a tryout. The session runs the seven UTBK subtests in order, each on its own countdown.
// @Tags Student - Sessions
// @Produce json
// @Param tryout_id path int true "Tryout ID"
// @Success 201 {object} dto.SessionStateDTO "Session started, first subtest running"
// @Failure 400 {object} dto.ErrorResponse "Invalid tryout ID format"
// @Failure 404 {object} dto.ErrorResponse "Tryout not found or has no questions"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tryouts/{tryout_id}/sessions [post]
func (c *SessionController) StartSession(ctx *gin.Context) {
	tryoutID, ok := pathID(ctx, "tryout_id")
	if !ok {
		return
	}

	state, err := c.sessionService.StartSession(auth.UserID(ctx), tryoutID)
	if err != nil {
		respondServiceError(ctx, err, "Failed to start exam session")
		return
	}
	ctx.JSON(http.StatusCreated, state)
}

// GetState godoc
// @Summary (Student) Poll the session state
// @Description Get the running session's current subtest, countdown, answers and question in view.
// @Tags Student - Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found or already closed"
// @Security BearerAuth
// @Router /sessions/{session_id} [get]
func (c *SessionController) GetState(ctx *gin.Context) {
	state, err := c.sessionService.GetState(auth.UserID(ctx), ctx.Param("session_id"))
	if err != nil {
		respondServiceError(ctx, err, "Failed to read session state")
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// SelectAnswer godoc
// @Summary (Student) Select or deselect an answer
// @Description Record an answer for a question in the active subtest. Sending the already-selected option deselects it.
// @Tags Student - Sessions
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param answer body dto.AnswerSelectDTO true "Question and option"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid option or question outside the active subtest"
// @Failure 404 {object} dto.ErrorResponse "Session not found or already closed"
// @Security BearerAuth
// @Router /sessions/{session_id}/answer [post]
func (c *SessionController) SelectAnswer(ctx *gin.Context) {
	var req dto.AnswerSelectDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	state, err := c.sessionService.SelectAnswer(auth.UserID(ctx), ctx.Param("session_id"), req)
	if err != nil {
		respondServiceError(ctx, err, "Failed to record answer")
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// Navigate godoc
// @Summary (Student) Move between questions
// @Description Move next, back, or jump to an index inside the active subtest. Out-of-range moves are ignored.
// @Tags Student - Sessions
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param navigation body dto.NavigateDTO true "Navigation action"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 400 {object} dto.ErrorResponse "Unknown action"
// @Failure 404 {object} dto.ErrorResponse "Session not found or already closed"
// @Security BearerAuth
// @Router /sessions/{session_id}/navigate [post]
func (c *SessionController) Navigate(ctx *gin.Context) {
	var req dto.NavigateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	state, err := c.sessionService.Navigate(auth.UserID(ctx), ctx.Param("session_id"), req)
	if err != nil {
		respondServiceError(ctx, err, "Failed to navigate")
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// AdvanceSubtest godoc
// @Summary (Student) Advance to the next subtest
// @Description Leave the active subtest early. Advancing past the last subtest submits the whole attempt.
// @Tags Student - Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found or already closed"
// @Security BearerAuth
// @Router /sessions/{session_id}/advance [post]
func (c *SessionController) AdvanceSubtest(ctx *gin.Context) {
	state, err := c.sessionService.AdvanceSubtest(auth.UserID(ctx), ctx.Param("session_id"))
	if err != nil {
		respondServiceError(ctx, err, "Failed to advance subtest")
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// Submit godoc
// @Summary (Student) Submit the attempt
// @Description Submit the whole attempt for scoring and persistence. Also retries a submission that previously failed on storage.
// @Tags Student - Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionStateDTO "Finished state with attempt number and scores"
// @Failure 404 {object} dto.ErrorResponse "Session not found or already closed"
// @Security BearerAuth
// @Router /sessions/{session_id}/submit [post]
func (c *SessionController) Submit(ctx *gin.Context) {
	state, err := c.sessionService.Submit(auth.UserID(ctx), ctx.Param("session_id"))
	if err != nil {
		respondServiceError(ctx, err, "Failed to submit attempt")
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// Exit godoc
// @Summary (Student) Abandon the session
// @Description Exit a running session. Nothing is scored or persisted.
// @Tags Student - Sessions
// @Param session_id path string true "Session ID"
// @Success 204 "Session discarded"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Security BearerAuth
// @Router /sessions/{session_id} [delete]
func (c *SessionController) Exit(ctx *gin.Context) {
	sessionID := ctx.Param("session_id")
	if err := c.sessionService.Exit(auth.UserID(ctx), sessionID); err != nil {
		respondServiceError(ctx, err, "Failed to exit session")
		return
	}
	log.Info().Str("session_id", sessionID).Msg("Session exited by student")
	ctx.Status(http.StatusNoContent)
}
