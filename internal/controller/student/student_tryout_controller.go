package student

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/taktix-app/tryout-engine/internal/apperr"
	"github.com/taktix-app/tryout-engine/internal/auth"
	"github.com/taktix-app/tryout-engine/internal/dto"
	"github.com/taktix-app/tryout-engine/internal/service"
)

type StudentTryoutController struct {
	tryoutService  service.TryoutService
	historyService service.HistoryService
}

func NewStudentTryoutController(ts service.TryoutService, hs service.HistoryService) *StudentTryoutController {
	return &StudentTryoutController{tryoutService: ts, historyService: hs}
}

// GetAllTryouts godoc
// @Summary (Student) List all available tryouts
// @Description Get the catalog of tryouts with their question counts and total durations.
// @Tags Student - Tryouts
// @Produce json
// @Success 200 {array} dto.TryoutSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tryouts [get]
func (c *StudentTryoutController) GetAllTryouts(ctx *gin.Context) {
	tryouts, err := c.tryoutService.GetAllTryouts()
	if err != nil {
		log.Error().Err(err).Msg("Student GetAllTryouts: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve tryouts"})
		return
	}
	ctx.JSON(http.StatusOK, tryouts)
}

// GetTryoutDetails godoc
// @Summary (Student) Get a tryout by ID
// @Description Retrieve one tryout's metadata. Questions are only served inside an exam session, never here.
// @Tags Student - Tryouts
// @Produce json
// @Param tryout_id path int true "Tryout ID"
// @Success 200 {object} dto.TryoutResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid tryout ID format"
// @Failure 404 {object} dto.ErrorResponse "Tryout not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tryouts/{tryout_id} [get]
func (c *StudentTryoutController) GetTryoutDetails(ctx *gin.Context) {
	tryoutID, ok := pathID(ctx, "tryout_id")
	if !ok {
		return
	}

	resp, err := c.tryoutService.GetTryoutDetails(tryoutID)
	if err != nil {
		respondServiceError(ctx, err, "Failed to retrieve tryout")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetAttemptHistory godoc
// @Summary (Student) List past attempts on a tryout
// @Description Get the authenticated user's attempt summaries for one tryout, newest first.
// @Tags Student - History
// @Produce json
// @Param tryout_id path int true "Tryout ID"
// @Success 200 {array} dto.AttemptSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid tryout ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tryouts/{tryout_id}/attempts [get]
func (c *StudentTryoutController) GetAttemptHistory(ctx *gin.Context) {
	tryoutID, ok := pathID(ctx, "tryout_id")
	if !ok {
		return
	}

	summaries, err := c.historyService.GetAttemptHistory(auth.UserID(ctx), tryoutID)
	if err != nil {
		respondServiceError(ctx, err, "Failed to retrieve attempt history")
		return
	}
	ctx.JSON(http.StatusOK, summaries)
}

// GetAttemptScore godoc
// @Summary (Student) Get the scored result of one attempt
// @Description Get the stored IRT scores of one attempt plus the per-question review.
// @Tags Student - History
// @Produce json
// @Param tryout_id path int true "Tryout ID"
// @Param attempt_number path int true "Attempt number (1-based)"
// @Success 200 {object} dto.AttemptScoreDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "No score stored for that attempt"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tryouts/{tryout_id}/scores/{attempt_number} [get]
func (c *StudentTryoutController) GetAttemptScore(ctx *gin.Context) {
	tryoutID, ok := pathID(ctx, "tryout_id")
	if !ok {
		return
	}
	attemptNumber, err := strconv.Atoi(ctx.Param("attempt_number"))
	if err != nil || attemptNumber < 1 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid attempt number"})
		return
	}

	resp, err := c.historyService.GetAttemptScore(auth.UserID(ctx), tryoutID, attemptNumber)
	if err != nil {
		respondServiceError(ctx, err, "Failed to retrieve attempt score")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetAnswerKey godoc
// @Summary (Student) Get a tryout's answer key
// @Description Get the correct answer per question, for post-exam review pages.
// @Tags Student - Tryouts
// @Produce json
// @Param tryout_id path int true "Tryout ID"
// @Success 200 {array} dto.AnswerKeyItemDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid tryout ID format"
// @Failure 404 {object} dto.ErrorResponse "Tryout not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tryouts/{tryout_id}/answer-key [get]
func (c *StudentTryoutController) GetAnswerKey(ctx *gin.Context) {
	tryoutID, ok := pathID(ctx, "tryout_id")
	if !ok {
		return
	}

	key, err := c.tryoutService.GetAnswerKey(tryoutID)
	if err != nil {
		respondServiceError(ctx, err, "Failed to retrieve answer key")
		return
	}
	ctx.JSON(http.StatusOK, key)
}

// pathID parses a uint path parameter, writing the 400 response itself on
// bad input.
func pathID(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}

func respondServiceError(ctx *gin.Context, err error, fallback string) {
	switch {
	case apperr.IsKind(err, apperr.KindNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case apperr.IsKind(err, apperr.KindValidation):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	default:
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Unhandled service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: fallback})
	}
}
