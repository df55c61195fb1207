package api

import (
	"errors"
	"net/http"
	"strconv"

	"hotel-nova/internal/domain/reservation"
	reqdto "hotel-nova/internal/handler/dto/request"
	resdto "hotel-nova/internal/handler/dto/response"
	"hotel-nova/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservationUseCase usecase.ReservationUseCase
}

func NewReservationHandler(reservationUseCase usecase.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{
		reservationUseCase: reservationUseCase,
	}
}

// @Summary Create reservation
// @Description Book a room for a registered guest
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	view, err := h.reservationUseCase.Create(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrGuestNotRegistered):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Guest is not registered",
			})
		case errors.Is(err, usecase.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, usecase.ErrRoomNotAvailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Room is not available",
			})
		case errors.Is(err, reservation.ErrInvalidDateRange):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Check-out must be after check-in",
			})
		case errors.Is(err, reservation.ErrInvalidGuestCount):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Guest count must be positive",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary Get reservation
// @Description Get reservation by ID
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, ok := h.reservationID(c)
	if !ok {
		return
	}

	view, err := h.reservationUseCase.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Get reservation by code
// @Description Get reservation by its confirmation code
// @Tags reservations
// @Produce json
// @Param code path string true "Confirmation code"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} map[string]string
// @Router /reservations/code/{code} [get]
func (h *ReservationHandler) GetReservationByCode(c *gin.Context) {
	code := c.Param("code")

	view, err := h.reservationUseCase.GetByCode(c.Request.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List reservations
// @Description List every reservation with its guest and room
// @Tags reservations
// @Produce json
// @Success 200 {array} resdto.ReservationResponse
// @Router /reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	views, err := h.reservationUseCase.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Cancel reservation
// @Description Cancel a confirmed reservation and release its room
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	id, ok := h.reservationID(c)
	if !ok {
		return
	}

	view, err := h.reservationUseCase.Cancel(c.Request.Context(), id)
	if err != nil {
		h.abortLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Check in
// @Description Check a confirmed reservation in and occupy its room
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/check-in [post]
func (h *ReservationHandler) CheckIn(c *gin.Context) {
	id, ok := h.reservationID(c)
	if !ok {
		return
	}

	view, err := h.reservationUseCase.CheckIn(c.Request.Context(), id)
	if err != nil {
		h.abortLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Check out
// @Description Check the stay out, move the room to cleaning and return the invoice
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/check-out [post]
func (h *ReservationHandler) CheckOut(c *gin.Context) {
	id, ok := h.reservationID(c)
	if !ok {
		return
	}

	invoice, err := h.reservationUseCase.CheckOut(c.Request.Context(), id)
	if err != nil {
		h.abortLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromInvoice(invoice))
}

func (h *ReservationHandler) reservationID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return 0, false
	}
	return id, true
}

// lifecycle steps share one error surface
func (h *ReservationHandler) abortLifecycleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation not found",
		})
	case errors.Is(err, reservation.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Reservation state does not allow this step",
		})
	case errors.Is(err, usecase.ErrRoomNotAvailable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Room is not available",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
