package controller

import (
	"net/http"

	"marketplace-api/internal/entity"
	"marketplace-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo"
)

type bidRoutesHandler struct {
	bidService     service.Bid
	projectService service.Project
	validate       *validator.Validate
}

func newBidRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate, auth echo.MiddlewareFunc) *bidRoutesHandler {
	h := &bidRoutesHandler{bidService: services.Bid, projectService: services.Project, validate: v}

	outer.POST("/bids", h.PlaceBid, auth)
	outer.GET("/bids/project/:id", h.GetBidsByProject, auth)
	outer.PATCH("/bids/:bidId/accept", h.AcceptBid, auth)

	return h
}

type placeBidInput struct {
	ProjectId string  `json:"projectId" validate:"required,uuid"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	EtaDays   int     `json:"etaDays" validate:"required,gt=0"`
	Message   string  `json:"message" validate:"required,max=2000"`
}

// /bids
func (h *bidRoutesHandler) PlaceBid(c echo.Context) error {
	var input placeBidInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)})
	}

	model := &entity.CreateBidInput{
		ProjectId: input.ProjectId,
		SellerId:  callerUserId(c),
		Amount:    input.Amount,
		EtaDays:   input.EtaDays,
		Message:   input.Message,
	}

	bid, err := h.bidService.PlaceBid(c.Request().Context(), model, callerRole(c))
	if err == nil {
		return c.JSON(http.StatusCreated, bid)
	}

	switch err {
	case service.ErrInvalidRole:
		return c.JSON(http.StatusForbidden, errorResponse{"Only sellers can place bids"})
	case service.ErrProjectNotFound:
		return c.JSON(http.StatusNotFound, errorResponse{"Project not found"})
	case service.ErrProjectNotBiddable:
		return c.JSON(http.StatusConflict, errorResponse{"Project is no longer open to sellers"})
	default:
		return c.JSON(http.StatusInternalServerError, errorResponse{"Could not place bid"})
	}
}

// /bids/project/:id
func (h *bidRoutesHandler) GetBidsByProject(c echo.Context) error {
	projectId := c.Param("id")
	if _, err := uuid.Parse(projectId); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{"Invalid project ID"})
	}

	bids, err := h.bidService.GetBidsByProject(c.Request().Context(), projectId)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{"Failed to fetch bids for project"})
	}

	return c.JSON(http.StatusOK, bids)
}

// /bids/:bidId/accept
func (h *bidRoutesHandler) AcceptBid(c echo.Context) error {
	bidId := c.Param("bidId")
	if _, err := uuid.Parse(bidId); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{"Invalid bid ID"})
	}

	project, err := h.projectService.AcceptBid(c.Request().Context(), bidId, callerUserId(c))
	if err == nil {
		return c.JSON(http.StatusOK, echo.Map{"message": "Seller selected and notified", "project": project})
	}

	switch err {
	case service.ErrBidNotFound:
		return c.JSON(http.StatusNotFound, errorResponse{"Bid not found"})
	case service.ErrProjectNotFound:
		return c.JSON(http.StatusNotFound, errorResponse{"Project not found"})
	case service.ErrSellerNotFound:
		return c.JSON(http.StatusNotFound, errorResponse{"Seller not found"})
	case service.ErrNotProjectOwner:
		return c.JSON(http.StatusForbidden, errorResponse{"You are not authorized to accept bids on this project"})
	case service.ErrProjectNotBiddable:
		return c.JSON(http.StatusConflict, errorResponse{"Project is no longer open to sellers"})
	case service.ErrSellerNotNotified:
		return c.JSON(http.StatusInternalServerError, errorResponse{"Could not notify selected seller"})
	default:
		return c.JSON(http.StatusInternalServerError, errorResponse{"Failed to accept bid"})
	}
}
