package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/trainpulse/internal/domain/dto"
	"github.com/guttosm/trainpulse/internal/middleware"
	"github.com/guttosm/trainpulse/internal/service"
)

// GetTargets godoc
// @Summary      Stored targets
// @Description  Returns the monthly hours target and the score target (defaults when never saved)
// @Tags         targets
// @Produce      json
// @Success      200  {object}  models.Targets
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/targets [get]
func (h *Handler) GetTargets(c *gin.Context) {
	targets, err := h.targets.Get(c.Request.Context())
	if err != nil {
		writeError(c, "failed to load targets", err)
		return
	}
	c.JSON(http.StatusOK, targets)
}

// SaveTargets godoc
// @Summary      Save targets
// @Description  Stores the given targets. With competitor_id it also creates an hours goal and a score goal.
// @Tags         targets
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SaveTargetsRequest  true  "Targets"
// @Success      200   {object}  dto.SaveTargetsResponse
// @Failure      400   {object}  dto.ErrorResponse  "Bad Request"
// @Failure      500   {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/targets [put]
func (h *Handler) SaveTargets(c *gin.Context) {
	var req dto.SaveTargetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if !checkUUID(c, "competitor_id", req.CompetitorID) || !checkUUID(c, "modality_id", req.ModalityID) {
		return
	}
	due, err := dto.ParseDueDate(req.DueDate)
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	targets, goals, err := h.targets.Save(c.Request.Context(), service.SaveTargetsInput{
		MonthlyHours: req.MonthlyHours,
		Score:        req.Score,
		CompetitorID: req.CompetitorID,
		ModalityID:   req.ModalityID,
		DueDate:      due,
	})
	if err != nil {
		writeError(c, "failed to save targets", err)
		return
	}
	c.JSON(http.StatusOK, dto.SaveTargetsResponse{Targets: targets, Goals: goals})
}
