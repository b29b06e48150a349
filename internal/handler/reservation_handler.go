package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/luis-duque-azumo/reservation-api/internal/catalog"
	"github.com/luis-duque-azumo/reservation-api/internal/dto"
	"github.com/luis-duque-azumo/reservation-api/internal/service"
)

type ReservationHandler struct {
	svc     service.ReservationService
	catalog *catalog.Store
}

func NewReservationHandler(svc service.ReservationService, cat *catalog.Store) *ReservationHandler {
	return &ReservationHandler{svc: svc, catalog: cat}
}

func (h *ReservationHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/reservations", h.CreateReservation)
	g.GET("/reservations", h.ListReservations)
	g.GET("/reservations/:code", h.GetReservation)
	g.PUT("/reservations/:code/confirm", h.ConfirmReservation)

	g.GET("/restaurants", h.ListRestaurants)
}

func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	var req dto.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	res, err := h.svc.CreateReservation(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrCodeConflict):
			return echo.NewHTTPError(http.StatusInternalServerError, "could not allocate a reservation code, please retry")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, res)
}

func (h *ReservationHandler) ConfirmReservation(c echo.Context) error {
	code := c.Param("code")

	res, err := h.svc.ConfirmReservation(c.Request().Context(), code)
	if err != nil {
		if errors.Is(err, service.ErrReservationNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "reservation with code "+code+" not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, res)
}

func (h *ReservationHandler) GetReservation(c echo.Context) error {
	code := c.Param("code")

	res, err := h.svc.GetReservation(c.Request().Context(), code)
	if err != nil {
		if errors.Is(err, service.ErrReservationNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "reservation with code "+code+" not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, res)
}

func (h *ReservationHandler) ListReservations(c echo.Context) error {
	reservations, err := h.svc.ListReservations(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if reservations == nil {
		reservations = []dto.ReservationResponse{}
	}

	return c.JSON(http.StatusOK, reservations)
}

func (h *ReservationHandler) ListRestaurants(c echo.Context) error {
	restaurants := h.catalog.List()

	resp := make([]dto.RestaurantResponse, len(restaurants))
	for i := range restaurants {
		resp[i] = *dto.ToRestaurantResponse(&restaurants[i])
	}

	return c.JSON(http.StatusOK, resp)
}
