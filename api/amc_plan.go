package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	db "github.com/katatrina/fixfly-BE/internal/db/sqlc"
	"github.com/katatrina/fixfly-BE/internal/validator"
	"github.com/rs/zerolog/log"
)

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("invalid %s: %w", name, err)))
		return uuid.Nil, false
	}

	return id, true
}

func (server *Server) invalidatePlanCache(c *gin.Context) {
	if err := server.planCache.InvalidateActivePlans(c); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate plan cache")
	}
}

//	@Summary		List active AMC plans
//	@Description	Public catalog, sorted by sort_order. Served from Redis when cached.
//	@Tags			amc
//	@Produce		json
//	@Success		200	{array}	db.AmcPlan
//	@Router			/amc/plans [get]
func (server *Server) listActiveAMCPlans(c *gin.Context) {
	plans, found, err := server.planCache.GetActivePlans(c)
	if err != nil {
		log.Warn().Err(err).Msg("plan cache unavailable")
	}
	if found {
		c.JSON(http.StatusOK, successResponse(plans))
		return
	}

	plans, err = server.dbStore.ListAMCPlans(c, db.NullAmcPlanStatus{
		AmcPlanStatus: db.AmcPlanStatusActive,
		Valid:         true,
	})
	if err != nil {
		handleError(c, err, "plan")
		return
	}

	if err = server.planCache.SetActivePlans(c, plans); err != nil {
		log.Warn().Err(err).Msg("failed to cache plans")
	}

	c.JSON(http.StatusOK, successResponse(plans))
}

//	@Summary		Get an active AMC plan
//	@Tags			amc
//	@Produce		json
//	@Param			id	path		string	true	"Plan ID"
//	@Success		200	{object}	db.AmcPlan
//	@Failure		404	{object}	Response
//	@Router			/amc/plans/{id} [get]
func (server *Server) getAMCPlan(c *gin.Context) {
	planID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	plan, err := server.dbStore.GetAMCPlanByID(c, planID)
	if err != nil {
		handleError(c, err, "plan")
		return
	}

	if plan.Status != db.AmcPlanStatusActive {
		c.JSON(http.StatusNotFound, errorResponse(fmt.Errorf("plan not found")))
		return
	}

	c.JSON(http.StatusOK, successResponse(plan))
}

//	@Summary		Get any AMC plan
//	@Tags			admin
//	@Produce		json
//	@Security		accessToken
//	@Param			id	path		string	true	"Plan ID"
//	@Success		200	{object}	db.AmcPlan
//	@Router			/admin/amc/plans/{id} [get]
func (server *Server) getAdminAMCPlan(c *gin.Context) {
	planID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	plan, err := server.dbStore.GetAMCPlanByID(c, planID)
	if err != nil {
		handleError(c, err, "plan")
		return
	}

	c.JSON(http.StatusOK, successResponse(plan))
}

type listAMCPlansQuery struct {
	Status *string `form:"status" binding:"omitempty,oneof=active inactive"`
}

//	@Summary		List all AMC plans
//	@Tags			admin
//	@Produce		json
//	@Security		accessToken
//	@Param			status	query	string	false	"active or inactive"
//	@Success		200		{array}	db.AmcPlan
//	@Router			/admin/amc/plans [get]
func (server *Server) listAMCPlans(c *gin.Context) {
	var query listAMCPlansQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var status db.NullAmcPlanStatus
	if query.Status != nil {
		status = db.NullAmcPlanStatus{AmcPlanStatus: db.AmcPlanStatus(*query.Status), Valid: true}
	}

	plans, err := server.dbStore.ListAMCPlans(c, status)
	if err != nil {
		handleError(c, err, "plan")
		return
	}

	c.JSON(http.StatusOK, successResponse(plans))
}

type createAMCPlanRequest struct {
	Name          string           `json:"name" binding:"required"`
	Description   string           `json:"description"`
	Price         int64            `json:"price" binding:"required,gt=0"`
	Period        string           `json:"period" binding:"required"`
	PeriodDays    int64            `json:"period_days" binding:"required,gt=0"`
	Features      []db.PlanFeature `json:"features"`
	Benefits      db.PlanBenefits  `json:"benefits"`
	Status        *string          `json:"status" binding:"omitempty,oneof=active inactive"`
	IsPopular     bool             `json:"is_popular"`
	IsRecommended bool             `json:"is_recommended"`
	SortOrder     int64            `json:"sort_order"`
}

//	@Summary		Create an AMC plan
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			request	body		createAMCPlanRequest	true	"Plan"
//	@Success		201		{object}	db.AmcPlan
//	@Failure		409		{object}	Response
//	@Router			/admin/amc/plans [post]
func (server *Server) createAMCPlan(c *gin.Context) {
	var req createAMCPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if err := validator.ValidatePlanBenefits(req.Benefits); err != nil {
		c.JSON(http.StatusBadRequest, failedValidationError([]*FieldViolation{fieldViolation("benefits", err)}))
		return
	}

	features := req.Features
	if features == nil {
		features = []db.PlanFeature{}
	}

	status := db.AmcPlanStatusActive
	if req.Status != nil {
		status = db.AmcPlanStatus(*req.Status)
	}

	plan, err := server.dbStore.CreateAMCPlan(c, db.CreateAMCPlanParams{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Period:        req.Period,
		PeriodDays:    req.PeriodDays,
		Features:      features,
		Benefits:      req.Benefits,
		Status:        status,
		IsPopular:     req.IsPopular,
		IsRecommended: req.IsRecommended,
		SortOrder:     req.SortOrder,
	})
	if err != nil {
		errCode, constraintName := db.ErrorDescription(err)
		if errCode == db.UniqueViolationCode && constraintName == db.UniquePlanNameConstraint {
			c.JSON(http.StatusConflict, errorResponse(fmt.Errorf("plan %s already exists", req.Name)))
			return
		}

		handleError(c, err, "plan")
		return
	}

	server.invalidatePlanCache(c)
	c.JSON(http.StatusCreated, successResponse(plan))
}

type updateAMCPlanRequest struct {
	Name          *string           `json:"name"`
	Description   *string           `json:"description"`
	Price         *int64            `json:"price" binding:"omitempty,gt=0"`
	Period        *string           `json:"period"`
	PeriodDays    *int64            `json:"period_days" binding:"omitempty,gt=0"`
	Features      *[]db.PlanFeature `json:"features"`
	Benefits      *db.PlanBenefits  `json:"benefits"`
	Status        *string           `json:"status" binding:"omitempty,oneof=active inactive"`
	IsPopular     *bool             `json:"is_popular"`
	IsRecommended *bool             `json:"is_recommended"`
	SortOrder     *int64            `json:"sort_order"`
}

//	@Summary		Update an AMC plan
//	@Description	Existing subscriptions keep the plan snapshot taken at checkout.
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			id		path		string					true	"Plan ID"
//	@Param			request	body		updateAMCPlanRequest	true	"Fields to update"
//	@Success		200		{object}	db.AmcPlan
//	@Router			/admin/amc/plans/{id} [put]
func (server *Server) updateAMCPlan(c *gin.Context) {
	planID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req updateAMCPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if req.Benefits != nil {
		if err := validator.ValidatePlanBenefits(*req.Benefits); err != nil {
			c.JSON(http.StatusBadRequest, failedValidationError([]*FieldViolation{fieldViolation("benefits", err)}))
			return
		}
	}

	arg := db.UpdateAMCPlanParams{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Period:        req.Period,
		PeriodDays:    req.PeriodDays,
		Features:      req.Features,
		Benefits:      req.Benefits,
		IsPopular:     req.IsPopular,
		IsRecommended: req.IsRecommended,
		SortOrder:     req.SortOrder,
		ID:            planID,
	}
	if req.Status != nil {
		arg.Status = db.NullAmcPlanStatus{AmcPlanStatus: db.AmcPlanStatus(*req.Status), Valid: true}
	}

	plan, err := server.dbStore.UpdateAMCPlan(c, arg)
	if err != nil {
		errCode, constraintName := db.ErrorDescription(err)
		if errCode == db.UniqueViolationCode && constraintName == db.UniquePlanNameConstraint {
			c.JSON(http.StatusConflict, errorResponse(fmt.Errorf("plan %s already exists", *req.Name)))
			return
		}

		handleError(c, err, "plan")
		return
	}

	server.invalidatePlanCache(c)
	c.JSON(http.StatusOK, successResponse(plan))
}

//	@Summary		Delete an AMC plan
//	@Description	Refused while any active subscription references the plan.
//	@Tags			admin
//	@Produce		json
//	@Security		accessToken
//	@Param			id	path		string	true	"Plan ID"
//	@Success		200	{object}	Response
//	@Failure		400	{object}	Response
//	@Router			/admin/amc/plans/{id} [delete]
func (server *Server) deleteAMCPlan(c *gin.Context) {
	planID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := server.dbStore.GetAMCPlanByID(c, planID); err != nil {
		handleError(c, err, "plan")
		return
	}

	activeCount, err := server.dbStore.CountActiveSubscriptionsByPlanID(c, planID)
	if err != nil {
		handleError(c, err, "plan")
		return
	}

	if activeCount > 0 {
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("Cannot delete plan with %d active subscriptions.", activeCount)))
		return
	}

	if err = server.dbStore.DeleteAMCPlan(c, planID); err != nil {
		handleError(c, err, "plan")
		return
	}

	server.invalidatePlanCache(c)
	c.JSON(http.StatusOK, messageResponse("Plan deleted successfully", nil))
}
