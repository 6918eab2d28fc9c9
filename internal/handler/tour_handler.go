package handler

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/Romaissazr/travel-agency/internal/dto"
	"github.com/Romaissazr/travel-agency/internal/models"
	"github.com/Romaissazr/travel-agency/internal/service"
	"github.com/labstack/echo/v4"
)

type TourHandler struct {
	svc service.TourService
}

func NewTourHandler(svc service.TourService) *TourHandler {
	return &TourHandler{svc: svc}
}

func (h *TourHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/tours")
	g.POST("", h.CreateTour)
	g.GET("", h.ListTours)
	g.GET("/page", h.ListToursPage)
	g.GET("/city/:city", h.ListToursByCity)
	g.GET("/:id", h.GetTour)
	g.PUT("/:id", h.UpdateTour)
	g.DELETE("/:id", h.DeleteTour)
	g.GET("/:id/available-dates", h.GetAvailableDates)
}

func (h *TourHandler) CreateTour(c echo.Context) error {
	var req dto.CreateTourRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tour, err := h.svc.CreateTour(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDate), errors.Is(err, service.ErrDuplicateDate):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.ToTourResponse(tour))
}

func (h *TourHandler) UpdateTour(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid tour id")
	}

	var req dto.UpdateTourRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tour, err := h.svc.UpdateTour(c.Request().Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTourNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidDate), errors.Is(err, service.ErrDuplicateDate):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.ToTourResponse(tour))
}

func (h *TourHandler) DeleteTour(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid tour id")
	}

	if err := h.svc.DeleteTour(c.Request().Context(), id); err != nil {
		if errors.Is(err, service.ErrTourNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "tour and associated bookings deleted successfully"})
}

func (h *TourHandler) GetTour(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid tour id")
	}

	tour, err := h.svc.GetTour(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "tour not found")
	}

	return c.JSON(http.StatusOK, dto.ToTourResponse(tour))
}

func (h *TourHandler) ListTours(c echo.Context) error {
	tours, err := h.svc.ListTours(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, toTourResponses(tours))
}

func (h *TourHandler) ListToursByCity(c echo.Context) error {
	tours, err := h.svc.ListToursByCity(c.Request().Context(), c.Param("city"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if len(tours) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "no tours found for this city")
	}
	return c.JSON(http.StatusOK, toTourResponses(tours))
}

func (h *TourHandler) ListToursPage(c echo.Context) error {
	page, limit := 1, 6
	if p := c.QueryParam("page"); p != "" {
		v, err := strconv.Atoi(p)
		if err != nil || v < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid page or limit parameters")
		}
		page = v
	}
	if l := c.QueryParam("limit"); l != "" {
		v, err := strconv.Atoi(l)
		if err != nil || v < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid page or limit parameters")
		}
		limit = v
	}

	tours, total, err := h.svc.ListToursPage(c.Request().Context(), page, limit, c.QueryParam("sort"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.PagedToursResponse{
		TotalTours:  total,
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
		CurrentPage: page,
		Data:        toTourResponses(tours),
	})
}

func (h *TourHandler) GetAvailableDates(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid tour id")
	}

	dates, err := h.svc.GetAvailableDates(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "tour not found")
	}

	resp := make([]dto.TourDateResponse, len(dates))
	for i := range dates {
		resp[i] = dto.ToTourDateResponse(&dates[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func toTourResponses(tours []models.Tour) []dto.TourResponse {
	resp := make([]dto.TourResponse, len(tours))
	for i := range tours {
		resp[i] = dto.ToTourResponse(&tours[i])
	}
	return resp
}
