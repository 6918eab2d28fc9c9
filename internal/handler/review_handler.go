package handler

import (
	"errors"
	"net/http"

	"github.com/Romaissazr/travel-agency/internal/dto"
	"github.com/Romaissazr/travel-agency/internal/service"
	"github.com/labstack/echo/v4"
)

type ReviewHandler struct {
	svc service.ReviewService
}

func NewReviewHandler(svc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

func (h *ReviewHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/reviews")
	g.POST("", h.AddReview)
	g.GET("/:tourId", h.ListTourReviews)
}

func (h *ReviewHandler) AddReview(c echo.Context) error {
	var req dto.AddReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.svc.AddOrUpdateReview(c.Request().Context(), req.UserID, req.TourID, *req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrTourNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrRatingOutOfRange):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "review added/updated successfully"})
}

func (h *ReviewHandler) ListTourReviews(c echo.Context) error {
	tourID, err := parseID(c, "tourId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid tour id")
	}

	reviews, err := h.svc.ListTourReviews(c.Request().Context(), tourID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.ReviewResponse, len(reviews))
	for i := range reviews {
		resp[i] = dto.ToReviewResponse(&reviews[i])
	}
	return c.JSON(http.StatusOK, resp)
}
