package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Romaissazr/travel-agency/internal/dto"
	"github.com/Romaissazr/travel-agency/internal/models"
	"github.com/Romaissazr/travel-agency/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/bookings")
	g.POST("", h.CreateBooking)
	g.GET("", h.ListBookings)
	g.GET("/user/:userId", h.ListUserBookings)
	g.GET("/tour/:tourId", h.ListTourBookings)
	g.GET("/:id", h.GetBooking)
	g.PATCH("/:id", h.UpdateBooking)
	g.PATCH("/:id/cancel", h.CancelBooking)
	g.PATCH("/:id/payment-status", h.UpdatePaymentStatus)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	selectedDate, err := dto.ParseDate(req.SelectedDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid selected_date")
	}

	booking, err := h.svc.CreateBooking(c.Request().Context(), req.UserID, req.TourID, req.GroupSize, selectedDate)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrTourNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrDateNotAvailable), errors.Is(err, service.ErrCapacityExceeded):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) UpdateBooking(c echo.Context) error {
	bookingID, err := parseID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	var req dto.UpdateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	var selectedDate *time.Time
	if req.SelectedDate != nil {
		d, err := dto.ParseDate(*req.SelectedDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid selected_date")
		}
		selectedDate = &d
	}

	booking, err := h.svc.UpdateBooking(c.Request().Context(), bookingID, selectedDate, req.GroupSize)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingNotFound), errors.Is(err, service.ErrTourNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrDateNotAvailable),
			errors.Is(err, service.ErrCapacityExceeded),
			errors.Is(err, service.ErrBookingAlreadyCancelled):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) CancelBooking(c echo.Context) error {
	bookingID, err := parseID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	booking, err := h.svc.CancelBooking(c.Request().Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingNotFound), errors.Is(err, service.ErrTourNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrBookingAlreadyCancelled):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) UpdatePaymentStatus(c echo.Context) error {
	bookingID, err := parseID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	var req dto.UpdatePaymentStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	booking, err := h.svc.UpdatePaymentStatus(c.Request().Context(), bookingID, models.PaymentStatus(req.PaymentStatus))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidPaymentStatus):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	booking, err := h.svc.GetBooking(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "booking not found")
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	bookings, err := h.svc.ListBookings(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func (h *BookingHandler) ListUserBookings(c echo.Context) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	bookings, err := h.svc.ListUserBookings(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func (h *BookingHandler) ListTourBookings(c echo.Context) error {
	tourID, err := parseID(c, "tourId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid tour id")
	}

	bookings, err := h.svc.ListTourBookings(c.Request().Context(), tourID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func toBookingResponses(bookings []models.Booking) []dto.BookingResponse {
	resp := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		resp[i] = dto.ToBookingResponse(&bookings[i])
	}
	return resp
}

func parseID(c echo.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
