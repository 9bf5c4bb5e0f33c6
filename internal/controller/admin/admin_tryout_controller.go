package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/taktix-app/tryout-engine/internal/apperr"
	"github.com/taktix-app/tryout-engine/internal/dto"
	"github.com/taktix-app/tryout-engine/internal/service"
)

type AdminTryoutController struct {
	adminTryoutService service.AdminTryoutService
}

func NewAdminTryoutController(adminTryoutService service.AdminTryoutService) *AdminTryoutController {
	return &AdminTryoutController{adminTryoutService: adminTryoutService}
}

// CreateTryout godoc
// @Summary (Admin) Create a new tryout
// @Description Admin creates a tryout together with its full question bank. Every question must carry one of the seven UTBK subtest categories.
// @Tags Admin - Tryouts
// @Accept json
// @Produce json
// @Param tryout_data body dto.TryoutCreateDTO true "Tryout metadata and questions"
// @Success 201 {object} dto.TryoutResponseDTO "Tryout created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input data (e.g., unknown subtest category, missing fields)"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/tryouts [post]
func (c *AdminTryoutController) CreateTryout(ctx *gin.Context) {
	var req dto.TryoutCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateTryout: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := c.adminTryoutService.CreateTryout(req)
	if err != nil {
		if apperr.IsKind(err, apperr.KindValidation) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		log.Error().Err(err).Str("tryoutName", req.Name).Msg("Admin CreateTryout: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create tryout"})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}
