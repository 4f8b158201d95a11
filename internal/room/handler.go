package room

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/idon003/hotel-book/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// ListRooms godoc
// @Summary      List rooms
// @Description  Returns rooms, optionally filtered by nightly price range and minimum capacity.
// @Tags         rooms
// @Produce      json
// @Param        min_price  query     string  false  "Minimum price per night, e.g. 50.00"
// @Param        max_price  query     string  false  "Maximum price per night, e.g. 150.00"
// @Param        capacity   query     int     false  "Minimum room capacity"
// @Success      200        {array}   RoomResponse
// @Failure      400        {object}  api.ErrorResponse
// @Failure      500        {object}  api.ErrorResponse
// @Router       /rooms [get]
func (h *Handler) ListRooms(c *gin.Context) {
	rooms, err := h.service.ListRooms(
		c.Request.Context(),
		c.Query("min_price"),
		c.Query("max_price"),
		c.Query("capacity"),
	)
	if err != nil {
		if errors.Is(err, ErrInvalidFilter) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid filter value"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch rooms"})
		return
	}

	c.JSON(http.StatusOK, NewRoomResponses(rooms))
}

// CreateRoom godoc
// @Summary      Create room
// @Description  Creates a new room. Admin only.
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateRoomRequest  true  "Room data"
// @Success      201      {object}  RoomResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /admin/rooms [post]
func (h *Handler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	room, err := h.service.CreateRoom(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidRoom) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid room data"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create room"})
		return
	}

	c.JSON(http.StatusCreated, NewRoomResponse(*room))
}

// UpdateRoom godoc
// @Summary      Update room
// @Description  Updates an existing room. Admin only.
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        roomID   path      int                true  "Room ID"
// @Param        request  body      CreateRoomRequest  true  "Room data"
// @Success      200      {object}  RoomResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /admin/rooms/{roomID} [put]
func (h *Handler) UpdateRoom(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("roomID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid room ID"})
		return
	}

	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	room, err := h.service.UpdateRoom(c.Request.Context(), roomID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRoom):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid room data"})
		case errors.Is(err, ErrRoomNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Room not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update room"})
		}
		return
	}

	c.JSON(http.StatusOK, NewRoomResponse(*room))
}
