package api

import (
	"errors"
	"net/http"

	"hotel-nova/internal/domain/guest"
	reqdto "hotel-nova/internal/handler/dto/request"
	resdto "hotel-nova/internal/handler/dto/response"
	"hotel-nova/internal/usecase"

	"github.com/gin-gonic/gin"
)

type GuestHandler struct {
	guestUseCase usecase.GuestUseCase
}

func NewGuestHandler(guestUseCase usecase.GuestUseCase) *GuestHandler {
	return &GuestHandler{
		guestUseCase: guestUseCase,
	}
}

// @Summary Register guest
// @Description Register a guest; registering a known document returns the stored record
// @Tags guests
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterGuestRequest true "Guest to register"
// @Success 200 {object} resdto.GuestResponse
// @Success 201 {object} resdto.GuestResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /guests [post]
func (h *GuestHandler) RegisterGuest(c *gin.Context) {
	var req reqdto.RegisterGuestRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	entity, created, err := h.guestUseCase.RegisterGuest(c.Request.Context(), usecase.RegisterGuestParams{
		Document:  req.GetDocument(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, guest.ErrEmptyDocument), errors.Is(err, guest.ErrEmptyName):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Guest document and name are required",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, resdto.FromGuest(entity))
}

// @Summary Get guest
// @Description Get a guest by national document
// @Tags guests
// @Produce json
// @Param document path string true "National document"
// @Success 200 {object} resdto.GuestResponse
// @Failure 404 {object} map[string]string
// @Router /guests/{document} [get]
func (h *GuestHandler) GetGuest(c *gin.Context) {
	document := c.Param("document")

	entity, err := h.guestUseCase.FindGuestByDocument(c.Request.Context(), document)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrGuestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Guest not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromGuest(entity))
}

// @Summary Update guest contact
// @Description Replace the guest's email and phone
// @Tags guests
// @Accept json
// @Produce json
// @Param document path string true "National document"
// @Param request body reqdto.UpdateGuestContactRequest true "New contact details"
// @Success 200 {object} resdto.GuestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /guests/{document}/contact [patch]
func (h *GuestHandler) UpdateGuestContact(c *gin.Context) {
	document := c.Param("document")

	var req reqdto.UpdateGuestContactRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	entity, err := h.guestUseCase.UpdateGuestContact(c.Request.Context(), document, req.Email, req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrGuestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Guest not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromGuest(entity))
}

// @Summary List guests
// @Description List every registered guest
// @Tags guests
// @Produce json
// @Success 200 {array} resdto.GuestResponse
// @Router /guests [get]
func (h *GuestHandler) ListGuests(c *gin.Context) {
	guests, err := h.guestUseCase.ListGuests(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromGuests(guests))
}
