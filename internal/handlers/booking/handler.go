package booking

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"shareit/infras/otel"
	"shareit/internal/domains/booking/model"
	"shareit/internal/domains/booking/model/dto"
	"shareit/internal/domains/booking/service"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	"shareit/shared/failure"
	"shareit/shared/validator"
	"shareit/transport/http/response"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.AddBooking)
		routerGroup.Get("/", handler.GetBookingsByBooker)
		routerGroup.Get("/owner", handler.GetBookingsByOwner)
		routerGroup.Get("/{bookingId}", handler.GetBookingByID)
		routerGroup.Patch("/{bookingId}", handler.SetApproval)
	})
}

// AddBooking creates a booking request for an item.
// @Summary Create a booking request
// @Description Book an item for a time range; the booking starts in WAITING status.
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Requesting user ID"
// @Param booking body dto.AddBookingRequest true "Booking details"
// @Success 201 {object} response.Data[dto.BookingResponse] "Created booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) AddBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddBooking")
	defer scope.End()

	bookerID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var req dto.AddBookingRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Add(ctx, req, bookerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created successfully")

	response.WithJSON(w, http.StatusCreated, booking)
}

// SetApproval approves or rejects a waiting booking.
// @Summary Review a booking request
// @Description Approve or reject a WAITING booking; only the item's owner may review it.
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Owner user ID"
// @Param bookingId path string true "Booking ID"
// @Param approved query boolean true "Approve (true) or reject (false)"
// @Success 200 {object} response.Data[dto.BookingResponse] "Updated booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{bookingId} [patch]
func (handler *Handler) SetApproval(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetApproval")
	defer scope.End()

	ownerID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	bookingID := chi.URLParam(r, constant.RequestParamBookingID)

	approved, err := strconv.ParseBool(r.URL.Query().Get(constant.RequestParamApproved))
	if err != nil {
		err = failure.Validation(constant.RequestParamApproved)
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.SetApproval(ctx, bookingID, ownerID, approved)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to review booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking reviewed successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// GetBookingByID retrieves a booking visible to the caller.
// @Summary Get a booking by ID
// @Description Retrieve a booking; only the booker or the item's owner can see it.
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Requesting user ID"
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{bookingId} [get]
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	requesterID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	bookingID := chi.URLParam(r, constant.RequestParamBookingID)

	booking, err := handler.service.GetByID(ctx, bookingID, requesterID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// GetBookingsByBooker lists the caller's own bookings filtered by state.
// @Summary List bookings made by the caller
// @Description Retrieve bookings created by the caller, filtered by state and paginated.
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Booker user ID"
// @Param state query string false "State filter (ALL/CURRENT/PAST/FUTURE/WAITING/REJECTED)"
// @Param from query integer false "Index to page from"
// @Param size query integer false "Page size"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetBookingsByBooker(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingsByBooker")
	defer scope.End()

	bookerID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	state, page, err := listParams(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	bookings, err := handler.service.GetAllByBooker(ctx, bookerID, state, page)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings by booker")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingsByOwner lists bookings for the caller's items filtered by state.
// @Summary List bookings for the caller's items
// @Description Retrieve bookings made against items the caller owns, filtered by state and paginated.
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Owner user ID"
// @Param state query string false "State filter (ALL/CURRENT/PAST/FUTURE/WAITING/REJECTED)"
// @Param from query integer false "Index to page from"
// @Param size query integer false "Page size"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/owner [get]
func (handler *Handler) GetBookingsByOwner(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingsByOwner")
	defer scope.End()

	ownerID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	state, page, err := listParams(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	bookings, err := handler.service.GetAllByOwner(ctx, ownerID, state, page)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings by owner")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

func listParams(r *http.Request) (model.State, gDto.PageRequest, error) {
	raw := r.URL.Query().Get(constant.RequestParamState)
	if raw == "" {
		raw = constant.DefaultValueState
	}

	state, err := model.ParseState(raw)
	if err != nil {
		return "", gDto.PageRequest{}, err // nolint:wrapcheck
	}

	page := gDto.PageRequest{}
	page.FromRequest(r)

	return state, page, nil
}
