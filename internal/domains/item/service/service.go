package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"shareit/config"
	"shareit/infras/otel"
	bookingModel "shareit/internal/domains/booking/model"
	bookingRepository "shareit/internal/domains/booking/repository"
	commentModel "shareit/internal/domains/comment/model"
	commentRepository "shareit/internal/domains/comment/repository"
	"shareit/internal/domains/item/model"
	"shareit/internal/domains/item/model/dto"
	"shareit/internal/domains/item/repository"
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
	cacheGetComments = "item:comments"
)

type Item interface {
	Add(ctx context.Context, req dto.CreateItemRequest, ownerID string) (dto.ItemResponse, error)
	Update(ctx context.Context, req dto.UpdateItemRequest, itemID, callerID string) (dto.ItemResponse, error)
	GetByID(ctx context.Context, itemID, requesterID string) (dto.ItemResponse, error)
	GetAllByOwner(ctx context.Context, ownerID string, page gDto.PageRequest) (dto.GetItemsResponse, error)
	Delete(ctx context.Context, itemID, callerID string) error
	AddComment(ctx context.Context, req dto.CreateCommentRequest, itemID, authorID string) (dto.CommentResponse, error)
}

type serviceImpl struct {
	repo        repository.Item
	userRepo    userRepository.User
	bookingRepo bookingRepository.Booking
	commentRepo commentRepository.Comment
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Item,
	userRepo userRepository.User,
	bookingRepo bookingRepository.Booking,
	commentRepo commentRepository.Comment,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Item {
	return &serviceImpl{
		repo:        repo,
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		commentRepo: commentRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Add(ctx context.Context, req dto.CreateItemRequest, ownerID string) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.Add")
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

	item := req.ToModel(ownerID)
	if err = s.repo.Insert(ctx, item); err != nil {
		log.Error().Err(err).Msg("failed to create item")

		return res, fmt.Errorf("failed to create item: %w", err)
	}

	res.FromModel(item)

	return res, nil
}

// Update applies a partial edit. Only the owner may edit, and a non-owner is
// told the item does not exist rather than that they lack access.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateItemRequest, itemID, callerID string) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	filter := shared.FilterByID(itemID, model.FieldID, model.TableName)

	item, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get item")

		return res, fmt.Errorf("failed to get item: %w", err)
	}

	if item.ID == constant.Empty || item.OwnerID != callerID {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	if req.Name != nil {
		item.Name = *req.Name
	}

	if req.Description != nil {
		item.Description = *req.Description
	}

	if req.Available != nil {
		item.Available = *req.Available
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req), filter); err != nil {
		log.Error().Err(err).Msg("failed to update item")

		return res, fmt.Errorf("failed to update item: %w", err)
	}

	res.FromModel(item)

	return res, nil
}

// GetByID returns the item with its comments; the booking summaries are only
// attached when the requester owns the item.
func (s *serviceImpl) GetByID(ctx context.Context, itemID, requesterID string) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.GetByID")
	defer scope.End()
	defer scope.TraceIfError(err)

	item, err := s.repo.Get(ctx, shared.FilterByID(itemID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get item")

		return res, fmt.Errorf("failed to get item: %w", err)
	}

	if item.ID == constant.Empty {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	res.FromModel(item)

	if err = s.attachComments(ctx, &res); err != nil {
		return res, err
	}

	if item.OwnerID == requesterID {
		if err = s.attachBookings(ctx, &res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func (s *serviceImpl) GetAllByOwner(ctx context.Context, ownerID string, page gDto.PageRequest) (res dto.GetItemsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.GetAllByOwner")
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

	if err := page.Validate(); err != nil {
		return res, err // nolint:wrapcheck
	}

	filter := shared.FilterByID(ownerID, model.FieldOwnerID, model.TableName)
	params := page.ToQueryParams(constant.FieldCreatedAt, gDto.SortDirAsc)

	items, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get items")

		return res, fmt.Errorf("failed to get items: %w", err)
	}

	res.FromModels(items)

	for i := range res.Items {
		if err = s.attachComments(ctx, &res.Items[i]); err != nil {
			return res, err
		}

		if err = s.attachBookings(ctx, &res.Items[i]); err != nil {
			return res, err
		}
	}

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, itemID, callerID string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.Delete")
	defer scope.End()

	filter := shared.FilterByID(itemID, model.FieldID, model.TableName)

	item, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get item")

		return fmt.Errorf("failed to get item: %w", err)
	}

	if item.ID == constant.Empty || item.OwnerID != callerID {
		return failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	// Bookings and comments for the item go with it (ON DELETE CASCADE).
	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete item")

		return fmt.Errorf("failed to delete item: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetComments, itemID))
	}()

	return nil
}

// AddComment lets a past renter review the item. The author must have at
// least one APPROVED booking for it that has already ended.
func (s *serviceImpl) AddComment(ctx context.Context, req dto.CreateCommentRequest, itemID, authorID string) (res dto.CommentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.AddComment")
	defer scope.End()
	defer scope.TraceIfError(err)

	author, err := s.userRepo.Get(ctx, shared.FilterByID(authorID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get author")

		return res, fmt.Errorf("failed to get author: %w", err)
	}

	if author.ID == constant.Empty {
		return res, failure.NotFound(userModel.EntityName) // nolint:wrapcheck
	}

	exist, err := s.repo.Exist(ctx, shared.FilterByID(itemID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if item exists")

		return res, fmt.Errorf("failed to check if item exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	finished, err := s.bookingRepo.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: bookingModel.FieldItemID, Table: bookingModel.TableName, Operator: gDto.FilterOperatorEq, Value: itemID},
			gDto.Filter{Field: bookingModel.FieldBookerID, Table: bookingModel.TableName, Operator: gDto.FilterOperatorEq, Value: authorID},
			gDto.Filter{Field: bookingModel.FieldStatus, Table: bookingModel.TableName, Operator: gDto.FilterOperatorEq, Value: bookingModel.StatusApproved},
			gDto.Filter{Field: bookingModel.FieldEndTime, Table: bookingModel.TableName, Operator: gDto.FilterOperatorLess, Value: timezone.Now()},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check finished bookings")

		return res, fmt.Errorf("failed to check finished bookings: %w", err)
	}

	if !finished {
		return res, failure.Validation("comment") // nolint:wrapcheck
	}

	comment := commentModel.Comment{
		ID:         uuid.NewString(),
		Text:       req.Text,
		ItemID:     itemID,
		AuthorID:   authorID,
		AuthorName: author.Name,
		CreatedAt:  timezone.Now(),
	}

	if err = s.commentRepo.Insert(ctx, comment); err != nil {
		log.Error().Err(err).Msg("failed to create comment")

		return res, fmt.Errorf("failed to create comment: %w", err)
	}

	res = commentResponse(comment)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetComments, itemID))
	}()

	return res, nil
}

func (s *serviceImpl) attachComments(ctx context.Context, res *dto.ItemResponse) error {
	cacheKey := shared.BuildCacheKey(cacheGetComments, res.ID)

	var comments []dto.CommentResponse

	if err := s.cache.Get(ctx, cacheKey, &comments); err == nil {
		res.Comments = comments

		return nil
	}

	params := gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}
	filter := shared.FilterByID(res.ID, commentModel.FieldItemID, commentModel.TableName)

	models, err := s.commentRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get comments")

		return fmt.Errorf("failed to get comments: %w", err)
	}

	comments = make([]dto.CommentResponse, len(models))
	for i, mod := range models {
		comments[i] = commentResponse(mod)
	}

	res.Comments = comments

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, comments, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save comments to cache")
		}
	}()

	return nil
}

// attachBookings fills the owner-only booking summaries: the nearest booking
// already started and the nearest one yet to start, rejected ones excluded.
func (s *serviceImpl) attachBookings(ctx context.Context, res *dto.ItemResponse) error {
	now := timezone.Now()

	last, err := s.nearestBooking(ctx, res.ID, gDto.Filter{
		Field: bookingModel.FieldStartTime, Table: bookingModel.TableName, Operator: gDto.FilterOperatorLessEq, Value: now,
	}, gDto.SortDirDesc)
	if err != nil {
		return err
	}

	next, err := s.nearestBooking(ctx, res.ID, gDto.Filter{
		Field: bookingModel.FieldStartTime, Table: bookingModel.TableName, Operator: gDto.FilterOperatorGreater, Value: now,
	}, gDto.SortDirAsc)
	if err != nil {
		return err
	}

	res.LastBooking = last
	res.NextBooking = next

	return nil
}

func (s *serviceImpl) nearestBooking(ctx context.Context, itemID string, timeFilter gDto.Filter, sortDir string) (*dto.ShortBooking, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: bookingModel.FieldItemID, Table: bookingModel.TableName, Operator: gDto.FilterOperatorEq, Value: itemID},
			gDto.Filter{Field: bookingModel.FieldStatus, Table: bookingModel.TableName, Operator: gDto.FilterOperatorNotEq, Value: bookingModel.StatusRejected},
			timeFilter,
		},
	}

	params := gDto.QueryParams{Page: 1, Limit: 1, SortBy: bookingModel.FieldStartTime, SortDir: sortDir}

	bookings, err := s.bookingRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get nearest booking")

		return nil, fmt.Errorf("failed to get nearest booking: %w", err)
	}

	if len(bookings) == 0 {
		return nil, nil
	}

	return &dto.ShortBooking{ID: bookings[0].ID, BookerID: bookings[0].BookerID}, nil
}

func commentResponse(mod commentModel.Comment) dto.CommentResponse {
	return dto.CommentResponse{
		ID:         mod.ID,
		Text:       mod.Text,
		AuthorName: mod.AuthorName,
		Created:    timezone.Format(mod.CreatedAt, time.RFC3339),
	}
}
