package api

import (
	"errors"
	"net/http"
	"strconv"

	"hotel-nova/internal/domain/room"
	reqdto "hotel-nova/internal/handler/dto/request"
	resdto "hotel-nova/internal/handler/dto/response"
	"hotel-nova/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomUseCase usecase.RoomUseCase
}

func NewRoomHandler(roomUseCase usecase.RoomUseCase) *RoomHandler {
	return &RoomHandler{
		roomUseCase: roomUseCase,
	}
}

// @Summary Add room
// @Description Register a new room in the hotel inventory
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRoomRequest true "Room to add"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rooms [post]
func (h *RoomHandler) AddRoom(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	entity, err := h.roomUseCase.AddRoom(c.Request.Context(), usecase.AddRoomParams{
		Number:    req.Number,
		Category:  req.Category,
		RateCents: *req.RateCents,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDuplicateRoom):
			c.JSON(http.StatusConflict, gin.H{
				"error": "A room with this number already exists",
			})
		case errors.Is(err, room.ErrInvalidCategory):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Unknown room category",
			})
		case errors.Is(err, room.ErrNegativeRate), errors.Is(err, room.ErrInvalidNumber):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid room attributes",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRoom(entity))
}

// @Summary Get room
// @Description Get a room by its number
// @Tags rooms
// @Produce json
// @Param number path int true "Room number"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{number} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	number, ok := h.roomNumber(c)
	if !ok {
		return
	}

	entity, err := h.roomUseCase.FindRoomByNumber(c.Request.Context(), number)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoom(entity))
}

// @Summary List rooms
// @Description List every room ordered by number
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.roomUseCase.ListRooms(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRooms(rooms))
}

// @Summary Update room status
// @Description Move a room to another housekeeping status
// @Tags rooms
// @Accept json
// @Produce json
// @Param number path int true "Room number"
// @Param request body reqdto.UpdateRoomStatusRequest true "Target status"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{number}/status [patch]
func (h *RoomHandler) UpdateRoomStatus(c *gin.Context) {
	number, ok := h.roomNumber(c)
	if !ok {
		return
	}

	var req reqdto.UpdateRoomStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	entity, err := h.roomUseCase.UpdateRoomStatus(c.Request.Context(), number, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, usecase.ErrInvalidRoomStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unrecognized room status",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoom(entity))
}

// @Summary Remove room
// @Description Delete a room from the inventory
// @Tags rooms
// @Param number path int true "Room number"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{number} [delete]
func (h *RoomHandler) RemoveRoom(c *gin.Context) {
	number, ok := h.roomNumber(c)
	if !ok {
		return
	}

	if err := h.roomUseCase.RemoveRoom(c.Request.Context(), number); err != nil {
		switch {
		case errors.Is(err, usecase.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RoomHandler) roomNumber(c *gin.Context) (int, bool) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room number format",
		})
		return 0, false
	}
	return number, true
}
