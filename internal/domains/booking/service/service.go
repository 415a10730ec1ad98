package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"shareit/config"
	"shareit/infras/otel"
	"shareit/internal/domains/booking/model"
	"shareit/internal/domains/booking/model/dto"
	"shareit/internal/domains/booking/repository"
	itemModel "shareit/internal/domains/item/model"
	itemRepository "shareit/internal/domains/item/repository"
	userModel "shareit/internal/domains/user/model"
	userRepository "shareit/internal/domains/user/repository"
	"shareit/shared"
	"shareit/shared/cache"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	"shareit/shared/failure"
	"shareit/shared/timezone"
)

const (
	cacheGetBooking = "booking:get"
)

type Booking interface {
	Add(ctx context.Context, req dto.AddBookingRequest, bookerID string) (dto.BookingResponse, error)
	SetApproval(ctx context.Context, bookingID, ownerID string, approved bool) (dto.BookingResponse, error)
	GetByID(ctx context.Context, bookingID, requesterID string) (dto.BookingResponse, error)
	GetAllByBooker(ctx context.Context, bookerID string, state model.State, page gDto.PageRequest) (dto.GetBookingsResponse, error)
	GetAllByOwner(ctx context.Context, ownerID string, state model.State, page gDto.PageRequest) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	itemRepo itemRepository.Item
	userRepo userRepository.User
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(
	repo repository.Booking,
	itemRepo itemRepository.Item,
	userRepo userRepository.User,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:     repo,
		itemRepo: itemRepo,
		userRepo: userRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// Add creates a booking in WAITING status. The checks run in a fixed order and
// the first failing one wins; callers depend on which parameter comes back.
func (s *serviceImpl) Add(ctx context.Context, req dto.AddBookingRequest, bookerID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Add")
	defer scope.End()
	defer scope.TraceIfError(err)

	booker, err := s.userRepo.Get(ctx, shared.FilterByID(bookerID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booker")

		return res, fmt.Errorf("failed to get booker: %w", err)
	}

	if booker.ID == constant.Empty {
		return res, failure.NotFound(userModel.EntityName) // nolint:wrapcheck
	}

	item, err := s.itemRepo.Get(ctx, shared.FilterByID(req.ItemID, itemModel.FieldID, itemModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get item")

		return res, fmt.Errorf("failed to get item: %w", err)
	}

	if item.ID == constant.Empty {
		return res, failure.NotFound(itemModel.EntityName) // nolint:wrapcheck
	}

	if item.OwnerID == bookerID {
		// Owners never book their own items. Surfaced as not-found so the
		// response does not leak which check tripped.
		return res, failure.NotFound("owner") // nolint:wrapcheck
	}

	if !item.Available {
		return res, failure.AlreadyBusy(model.EntityName) // nolint:wrapcheck
	}

	if err := validateTimeRange(req.Start, req.End); err != nil {
		return res, err
	}

	booking := req.ToModel(bookerID)
	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	booking.ItemName = item.Name
	booking.OwnerID = item.OwnerID
	booking.BookerName = booker.Name

	res.FromModel(booking)

	return res, nil
}

// SetApproval moves a WAITING booking to APPROVED or REJECTED. The lookup is
// restricted to the caller's own items, so a non-owner cannot even learn that
// the booking exists.
func (s *serviceImpl) SetApproval(ctx context.Context, bookingID, ownerID string, approved bool) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.SetApproval")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.userRepo.Exist(ctx, shared.FilterByID(ownerID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if owner exists")

		return res, fmt.Errorf("failed to check if owner exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound(userModel.EntityName) // nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Table: model.TableName, Operator: gDto.FilterOperatorEq, Value: bookingID},
			gDto.Filter{Field: model.FieldOwnerID, Table: itemModel.TableName, Operator: gDto.FilterOperatorEq, Value: ownerID},
		},
	}

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	if booking.Status != model.StatusWaiting {
		return res, failure.Validation("approved") // nolint:wrapcheck
	}

	booking.Status = model.StatusRejected
	if approved {
		booking.Status = model.StatusApproved
	}

	update := map[string]any{
		model.FieldStatus:        booking.Status,
		constant.FieldModifiedAt: timezone.Now(),
	}

	if err = s.repo.Update(ctx, update, shared.FilterByID(bookingID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetBooking, bookingID))
	}()

	return res, nil
}

// GetByID returns a booking to its booker or the item's owner; anyone else
// gets the same not-found as a nonexistent id.
func (s *serviceImpl) GetByID(ctx context.Context, bookingID, requesterID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetByID")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.userRepo.Exist(ctx, shared.FilterByID(requesterID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if requester exists")

		return res, fmt.Errorf("failed to check if requester exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound(userModel.EntityName) // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetBooking, bookingID, requesterID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Table: model.TableName, Operator: gDto.FilterOperatorEq, Value: bookingID},
			gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorOr,
				Filters: []any{
					gDto.Filter{Field: model.FieldBookerID, Table: model.TableName, Operator: gDto.FilterOperatorEq, Value: requesterID},
					gDto.Filter{Field: model.FieldOwnerID, Table: itemModel.TableName, Operator: gDto.FilterOperatorEq, Value: requesterID, ArgName: "visible_owner_id"},
				},
			},
		},
	}

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAllByBooker(ctx context.Context, bookerID string, state model.State, page gDto.PageRequest) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAllByBooker")
	defer scope.End()
	defer scope.TraceIfError(err)

	side := gDto.Filter{Field: model.FieldBookerID, Table: model.TableName, Operator: gDto.FilterOperatorEq, Value: bookerID}

	return s.getAllFor(ctx, bookerID, side, state, page)
}

func (s *serviceImpl) GetAllByOwner(ctx context.Context, ownerID string, state model.State, page gDto.PageRequest) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAllByOwner")
	defer scope.End()
	defer scope.TraceIfError(err)

	side := gDto.Filter{Field: model.FieldOwnerID, Table: itemModel.TableName, Operator: gDto.FilterOperatorEq, Value: ownerID}

	return s.getAllFor(ctx, ownerID, side, state, page)
}

// getAllFor runs the shared listing pipeline: caller existence, page bounds,
// state dispatch, then a single store query sorted by start descending.
func (s *serviceImpl) getAllFor(ctx context.Context, userID string, side gDto.Filter, state model.State, page gDto.PageRequest) (res dto.GetBookingsResponse, err error) {
	exist, err := s.userRepo.Exist(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound(userModel.EntityName) // nolint:wrapcheck
	}

	if err := page.Validate(); err != nil {
		return res, err // nolint:wrapcheck
	}

	stateFilters, err := filtersForState(state)
	if err != nil {
		return res, err
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  append([]any{side}, stateFilters...),
	}

	params := page.ToQueryParams(model.FieldStartTime, gDto.SortDirDesc)

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings)

	return res, nil
}

// filtersForState translates a state token into store filters. CURRENT, PAST
// and FUTURE compare strictly against now; ALL adds nothing.
func filtersForState(state model.State) ([]any, error) {
	now := timezone.Now()

	switch state {
	case model.StateAll:
		return nil, nil
	case model.StateCurrent:
		return []any{
			gDto.Filter{Field: model.FieldStartTime, Table: model.TableName, Operator: gDto.FilterOperatorLess, Value: now},
			gDto.Filter{Field: model.FieldEndTime, Table: model.TableName, Operator: gDto.FilterOperatorGreater, Value: now},
		}, nil
	case model.StatePast:
		return []any{
			gDto.Filter{Field: model.FieldEndTime, Table: model.TableName, Operator: gDto.FilterOperatorLess, Value: now},
		}, nil
	case model.StateFuture:
		return []any{
			gDto.Filter{Field: model.FieldStartTime, Table: model.TableName, Operator: gDto.FilterOperatorGreater, Value: now},
		}, nil
	case model.StateWaiting:
		return []any{
			gDto.Filter{Field: model.FieldStatus, Table: model.TableName, Operator: gDto.FilterOperatorEq, Value: model.StatusWaiting},
		}, nil
	case model.StateRejected:
		return []any{
			gDto.Filter{Field: model.FieldStatus, Table: model.TableName, Operator: gDto.FilterOperatorEq, Value: model.StatusRejected},
		}, nil
	default:
		return nil, failure.UnsupportedState(string(state)) // nolint:wrapcheck
	}
}

// validateTimeRange requires a strictly ordered range that has not started in
// the past. start equal to now is allowed, an empty range is not.
func validateTimeRange(start, end time.Time) error {
	now := timezone.Now()

	if start.IsZero() || end.IsZero() {
		return failure.Validation("time") // nolint:wrapcheck
	}

	if end.Before(start) || end.Before(now) || start.Equal(end) || start.Before(now) {
		return failure.Validation("time") // nolint:wrapcheck
	}

	return nil
}
