package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/trainpulse/internal/domain/dto"
	"github.com/guttosm/trainpulse/internal/middleware"
)

// ListGoals godoc
// @Summary      Goals of a competitor
// @Description  Lists goals newest first with the number of overdue ones
// @Tags         goals
// @Produce      json
// @Param        competitor_id  query     string  true   "Competitor UUID"
// @Param        modality_id    query     string  false  "Modality UUID"
// @Success      200            {object}  models.GoalList
// @Failure      400            {object}  dto.ErrorResponse  "Bad Request"
// @Failure      500            {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/goals [get]
func (h *Handler) ListGoals(c *gin.Context) {
	competitorID, ok := optionalUUID(c, "competitor_id")
	if !ok {
		return
	}
	modalityID, ok := optionalUUID(c, "modality_id")
	if !ok {
		return
	}
	list, err := h.goals.List(c.Request.Context(), competitorID, modalityID)
	if err != nil {
		writeError(c, "failed to list goals", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// CreateGoal godoc
// @Summary      Create goal
// @Tags         goals
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateGoalRequest  true  "Goal"
// @Success      201   {object}  models.Goal
// @Failure      400   {object}  dto.ErrorResponse  "Bad Request"
// @Failure      500   {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/goals [post]
func (h *Handler) CreateGoal(c *gin.Context) {
	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	goal, err := req.ToGoal()
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	created, err := h.goals.Create(c.Request.Context(), goal)
	if err != nil {
		writeError(c, "failed to create goal", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateGoalProgress godoc
// @Summary      Update goal progress
// @Description  Sets the current value; the goal is completed once it reaches the target
// @Tags         goals
// @Accept       json
// @Produce      json
// @Param        id    path      string                     true  "Goal UUID"
// @Param        body  body      dto.UpdateProgressRequest  true  "Progress"
// @Success      200   {object}  models.Goal
// @Failure      400   {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404   {object}  dto.ErrorResponse  "Not Found"
// @Failure      500   {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/goals/{id}/progress [patch]
func (h *Handler) UpdateGoalProgress(c *gin.Context) {
	var req dto.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	goal, err := h.goals.UpdateProgress(c.Request.Context(), c.Param("id"), req.CurrentValue)
	if err != nil {
		writeError(c, "failed to update goal", err)
		return
	}
	c.JSON(http.StatusOK, goal)
}
