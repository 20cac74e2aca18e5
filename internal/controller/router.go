package controller

import (
	"marketplace-api/internal/service"
	"marketplace-api/pkg/filestore"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
)

func SetupRoutesHandlers(handler *echo.Echo, services *service.Services, tokens *service.TokenManager, files *filestore.Store) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	handler.Use(middleware.Logger())
	handler.Use(middleware.Recover())
	handler.Use(middleware.CORS())

	handler.Static("/uploads", files.Dir())

	auth := JWTAuth(tokens)

	api := handler.Group("/api")
	newDiagnosticRoutesHandler(api, services)
	newAuthRoutesHandler(api, services, validate)
	newProjectRoutesHandler(api, services, validate, auth)
	newBidRoutesHandler(api, services, validate, auth)
	newDeliverableRoutesHandler(api, services, files, auth)
}
