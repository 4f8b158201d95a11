package booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/idon003/hotel-book/internal/api"
	"github.com/idon003/hotel-book/internal/auth"
	"github.com/idon003/hotel-book/internal/room"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
	engine  *AvailabilityEngine
}

func NewHandler(service Service, engine *AvailabilityEngine) *Handler {
	return &Handler{
		service: service,
		engine:  engine,
	}
}

// CreateBooking godoc
// @Summary      Create booking
// @Description  Reserves a room for the given date range. The range is half-open: check-out day is not occupied.
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateBookingRequest  true  "Booking data"
// @Success      201      {object}  BookingResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /bookings [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	guestID, exists := auth.GetGuestID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Guest not authenticated"})
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	checkIn, err := time.Parse(DateLayout, req.CheckIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid check_in date, use YYYY-MM-DD"})
		return
	}

	checkOut, err := time.Parse(DateLayout, req.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid check_out date, use YYYY-MM-DD"})
		return
	}

	booking, totalCents, err := h.service.CreateBooking(c.Request.Context(), guestID, req.RoomID, checkIn, checkOut)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Check-out must be after check-in"})
		case errors.Is(err, room.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Room not found"})
		case errors.Is(err, ErrDatesConflict):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Room already booked for these dates"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create booking"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(booking, totalCents))
}

// CancelBooking godoc
// @Summary      Cancel booking
// @Description  Deletes a booking of the current guest. Unknown and foreign bookings both return 404.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path      int  true  "Booking ID"
// @Success      200        {object}  api.MessageResponse
// @Failure      400        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Failure      500        {object}  api.ErrorResponse
// @Router       /bookings/{bookingID}/cancel [post]
func (h *Handler) CancelBooking(c *gin.Context) {
	guestID, exists := auth.GetGuestID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Guest not authenticated"})
		return
	}

	bookingID, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid booking ID"})
		return
	}

	if err := h.service.CancelBooking(c.Request.Context(), guestID, bookingID); err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to cancel booking"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Booking cancelled successfully"})
}

// ListMyBookings godoc
// @Summary      List my bookings
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Booking
// @Failure      500  {object}  api.ErrorResponse
// @Router       /bookings [get]
func (h *Handler) ListMyBookings(c *gin.Context) {
	guestID, exists := auth.GetGuestID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Guest not authenticated"})
		return
	}

	bookings, err := h.service.GetGuestBookings(c.Request.Context(), guestID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// ListAvailableRooms godoc
// @Summary      List available rooms
// @Description  Returns rooms free for every night in [check_in, check_out).
// @Tags         rooms
// @Security     BearerAuth
// @Produce      json
// @Param        check_in   query     string  true  "Check-in date (YYYY-MM-DD)"
// @Param        check_out  query     string  true  "Check-out date (YYYY-MM-DD)"
// @Success      200        {array}   room.RoomResponse
// @Failure      400        {object}  api.ErrorResponse
// @Failure      500        {object}  api.ErrorResponse
// @Router       /rooms/available [get]
func (h *Handler) ListAvailableRooms(c *gin.Context) {
	checkInStr := c.Query("check_in")
	checkOutStr := c.Query("check_out")

	if checkInStr == "" || checkOutStr == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "check_in and check_out query params are required"})
		return
	}

	checkIn, err := time.Parse(DateLayout, checkInStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid check_in date, use YYYY-MM-DD"})
		return
	}

	checkOut, err := time.Parse(DateLayout, checkOutStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid check_out date, use YYYY-MM-DD"})
		return
	}

	rooms, err := h.engine.ListAvailableRooms(c.Request.Context(), checkIn, checkOut)
	if err != nil {
		if errors.Is(err, ErrInvalidDateRange) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Check-out must be after check-in"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch available rooms"})
		return
	}

	c.JSON(http.StatusOK, room.NewRoomResponses(rooms))
}

// ListBookingsByRoom godoc
// @Summary      List bookings by room
// @Description  Returns all bookings for a room with guest details. Admin only.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        roomID  path      int  true  "Room ID"
// @Success      200     {array}   BookingWithDetails
// @Failure      400     {object}  api.ErrorResponse
// @Failure      500     {object}  api.ErrorResponse
// @Router       /admin/rooms/{roomID}/bookings [get]
func (h *Handler) ListBookingsByRoom(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("roomID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid room ID"})
		return
	}

	bookings, err := h.service.ListBookingsByRoom(c.Request.Context(), roomID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}
