package controller

import (
	"net/http"

	"marketplace-api/internal/entity"
	"marketplace-api/internal/service"
	"marketplace-api/pkg/filestore"

	"github.com/google/uuid"
	"github.com/labstack/echo"
)

type deliverableRoutesHandler struct {
	deliverableService service.Deliverable
	files              *filestore.Store
}

func newDeliverableRoutesHandler(outer *echo.Group, services *service.Services, files *filestore.Store, auth echo.MiddlewareFunc) *deliverableRoutesHandler {
	h := &deliverableRoutesHandler{deliverableService: services.Deliverable, files: files}

	outer.POST("/deliverables", h.Upload, auth)
	outer.POST("/deliverables/upload", h.Upload, auth)
	outer.GET("/deliverables/project/:projectId", h.GetProjectDeliverables, auth)

	return h
}

// /deliverables, /deliverables/upload
func (h *deliverableRoutesHandler) Upload(c echo.Context) error {
	projectId := c.FormValue("projectId")
	if _, err := uuid.Parse(projectId); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{"Invalid project ID"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{"File is required"})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{"Upload failed"})
	}
	defer src.Close()

	stored, err := h.files.Save(fileHeader.Filename, src)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{"Upload failed"})
	}

	model := &entity.CreateDeliverableInput{
		ProjectId: projectId,
		FileUrl:   stored.PublicPath,
	}

	deliverable, err := h.deliverableService.SaveDeliverable(c.Request().Context(), model)
	if err == nil {
		return c.JSON(http.StatusCreated, echo.Map{"message": "Deliverable uploaded", "deliverable": deliverable})
	}

	// the file already landed on disk, don't leave it orphaned
	if removeErr := h.files.Remove(stored.Name); removeErr != nil {
		c.Logger().Errorf("could not remove orphaned upload %s: %v", stored.Name, removeErr)
	}

	switch err {
	case service.ErrProjectNotFound:
		return c.JSON(http.StatusNotFound, errorResponse{"Project not found"})
	default:
		return c.JSON(http.StatusInternalServerError, errorResponse{"Database error while saving deliverable"})
	}
}

// /deliverables/project/:projectId
func (h *deliverableRoutesHandler) GetProjectDeliverables(c echo.Context) error {
	projectId := c.Param("projectId")
	if _, err := uuid.Parse(projectId); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{"Invalid project ID"})
	}

	deliverables, err := h.deliverableService.GetProjectDeliverables(c.Request().Context(), projectId)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{"Failed to fetch deliverables"})
	}

	return c.JSON(http.StatusOK, deliverables)
}
