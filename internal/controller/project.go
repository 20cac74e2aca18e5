package controller

import (
	"net/http"
	"time"

	"marketplace-api/internal/entity"
	"marketplace-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo"
)

const deadlineLayout = "2006-01-02"

type projectRoutesHandler struct {
	projectService service.Project
	validate       *validator.Validate
}

func newProjectRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate, auth echo.MiddlewareFunc) *projectRoutesHandler {
	h := &projectRoutesHandler{projectService: services.Project, validate: v}

	outer.POST("/projects", h.CreateProject, auth)
	outer.GET("/projects", h.GetAllProjects, auth)
	// historical double prefix, kept for client compatibility
	outer.GET("/projects/projects/my", h.GetMyProjects, auth)
	outer.GET("/projects/seller", h.GetSellerProjects, auth)
	outer.GET("/projects/:id", h.GetSingleProject, auth)
	outer.PUT("/projects/:id/select-seller", h.SelectSeller, auth)
	outer.PUT("/projects/:id/mark-complete", h.MarkComplete, auth)
	outer.POST("/projects/accept-bid", h.AcceptBid, auth)

	return h
}

type createProjectInput struct {
	Title       string  `json:"title" validate:"required,max=100"`
	Description string  `json:"description" validate:"required,max=2000"`
	BudgetMin   float64 `json:"budgetMin" validate:"required,gt=0"`
	BudgetMax   float64 `json:"budgetMax" validate:"required,gtefield=BudgetMin"`
	Deadline    string  `json:"deadline" validate:"required,datetime=2006-01-02"`
}

// /projects
func (h *projectRoutesHandler) CreateProject(c echo.Context) error {
	var input createProjectInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)})
	}

	deadline, err := time.Parse(deadlineLayout, input.Deadline)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{"Deadline is not a valid date"})
	}

	model := &entity.CreateProjectInput{
		Title:       input.Title,
		Description: input.Description,
		BudgetMin:   input.BudgetMin,
		BudgetMax:   input.BudgetMax,
		Deadline:    deadline,
		BuyerId:     callerUserId(c),
	}

	project, err := h.projectService.CreateProject(c.Request().Context(), model)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{"Could not create project"})
	}

	return c.JSON(http.StatusCreated, project)
}

// /projects
func (h *projectRoutesHandler) GetAllProjects(c echo.Context) error {
	projects, err := h.projectService.GetAllProjects(c.Request().Context(), callerUserId(c), callerRole(c))
	if err == nil {
		return c.JSON(http.StatusOK, projects)
	}

	switch err {
	case service.ErrInvalidRole:
		return c.JSON(http.StatusForbidden, errorResponse{"Invalid user role"})
	default:
		return c.JSON(http.StatusInternalServerError, errorResponse{"Failed to fetch projects"})
	}
}

// /projects/projects/my
func (h *projectRoutesHandler) GetMyProjects(c echo.Context) error {
	projects, err := h.projectService.GetMyProjects(c.Request().Context(), callerUserId(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{"Failed to fetch your projects"})
	}

	return c.JSON(http.StatusOK, projects)
}

// /projects/seller
func (h *projectRoutesHandler) GetSellerProjects(c echo.Context) error {
	projects, err := h.projectService.GetSellerProjects(c.Request().Context(), callerUserId(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{"Failed to fetch projects"})
	}

	return c.JSON(http.StatusOK, projects)
}

// /projects/:id
func (h *projectRoutesHandler) GetSingleProject(c echo.Context) error {
	projectId := c.Param("id")
	if _, err := uuid.Parse(projectId); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{"Invalid project ID"})
	}

	project, err := h.projectService.GetSingleProject(c.Request().Context(), projectId)
	if err == nil {
		return c.JSON(http.StatusOK, project)
	}

	switch err {
	case service.ErrProjectNotFound:
		return c.JSON(http.StatusNotFound, errorResponse{"Project not found"})
	default:
		return c.JSON(http.StatusInternalServerError, errorResponse{"Failed to fetch project"})
	}
}

type selectSellerInput struct {
	SellerId string `json:"sellerId" validate:"required,uuid"`
}

// /projects/:id/select-seller
func (h *projectRoutesHandler) SelectSeller(c echo.Context) error {
	projectId := c.Param("id")
	if _, err := uuid.Parse(projectId); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{"Invalid project ID"})
	}

	var input selectSellerInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)})
	}

	project, err := h.projectService.SelectSeller(c.Request().Context(), projectId, callerUserId(c), input.SellerId)
	if err == nil {
		return c.JSON(http.StatusOK, project)
	}

	return h.selectionError(c, err)
}

type acceptBidInput struct {
	ProjectId string `json:"projectId" validate:"required,uuid"`
	SellerId  string `json:"sellerId" validate:"required,uuid"`
}

// /projects/accept-bid
func (h *projectRoutesHandler) AcceptBid(c echo.Context) error {
	var input acceptBidInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)})
	}

	project, err := h.projectService.SelectSeller(c.Request().Context(), input.ProjectId, callerUserId(c), input.SellerId)
	if err == nil {
		return c.JSON(http.StatusOK, echo.Map{"message": "Seller selected and notified", "project": project})
	}

	return h.selectionError(c, err)
}

// /projects/:id/mark-complete
func (h *projectRoutesHandler) MarkComplete(c echo.Context) error {
	projectId := c.Param("id")
	if _, err := uuid.Parse(projectId); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{"Invalid project ID"})
	}

	project, err := h.projectService.MarkComplete(c.Request().Context(), projectId, callerUserId(c))
	if err == nil {
		return c.JSON(http.StatusOK, echo.Map{"message": "Project marked as completed", "project": project})
	}

	switch err {
	case service.ErrProjectNotFound:
		return c.JSON(http.StatusNotFound, errorResponse{"Project not found"})
	case service.ErrNotProjectOwner:
		return c.JSON(http.StatusForbidden, errorResponse{"You are not authorized to complete this project"})
	case service.ErrProjectNotInProgress:
		return c.JSON(http.StatusConflict, errorResponse{"Project must be in progress to complete it"})
	default:
		return c.JSON(http.StatusInternalServerError, errorResponse{"Could not complete project"})
	}
}

func (h *projectRoutesHandler) selectionError(c echo.Context, err error) error {
	switch err {
	case service.ErrProjectNotFound:
		return c.JSON(http.StatusNotFound, errorResponse{"Project not found"})
	case service.ErrSellerNotFound:
		return c.JSON(http.StatusNotFound, errorResponse{"Seller not found"})
	case service.ErrNotProjectOwner:
		return c.JSON(http.StatusForbidden, errorResponse{"You are not authorized to select a seller for this project"})
	case service.ErrProjectNotBiddable:
		return c.JSON(http.StatusConflict, errorResponse{"Project is no longer open to sellers"})
	case service.ErrSellerNotNotified:
		return c.JSON(http.StatusInternalServerError, errorResponse{"Could not notify selected seller"})
	default:
		return c.JSON(http.StatusInternalServerError, errorResponse{"Could not select seller"})
	}
}
