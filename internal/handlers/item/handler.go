package item

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"shareit/infras/otel"
	"shareit/internal/domains/item/model/dto"
	"shareit/internal/domains/item/service"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	"shareit/shared/validator"
	"shareit/transport/http/response"
)

type Handler struct {
	service service.Item
	otel    otel.Otel
}

func New(service service.Item, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/items", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateItem)
		routerGroup.Get("/", handler.GetItemsByOwner)
		routerGroup.Get("/{itemId}", handler.GetItemByID)
		routerGroup.Patch("/{itemId}", handler.UpdateItem)
		routerGroup.Delete("/{itemId}", handler.DeleteItem)
		routerGroup.Post("/{itemId}/comment", handler.AddComment)
	})
}

// CreateItem registers a new item for the calling owner.
// @Summary Create a new item
// @Description Register an item owned by the caller.
// @Tags Item
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Owner user ID"
// @Param item body dto.CreateItemRequest true "Item details"
// @Success 201 {object} response.Data[dto.ItemResponse] "Created item"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/items [post]
func (handler *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateItem")
	defer scope.End()

	ownerID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var req dto.CreateItemRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	item, err := handler.service.Add(ctx, req, ownerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Item created successfully")

	response.WithJSON(w, http.StatusCreated, item)
}

// GetItemsByOwner lists the caller's items with booking summaries and comments.
// @Summary List the caller's items
// @Description Retrieve items owned by the caller, each with last/next booking summaries and comments.
// @Tags Item
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Owner user ID"
// @Param from query integer false "Index to page from"
// @Param size query integer false "Page size"
// @Success 200 {object} response.Data[dto.GetItemsResponse] "List of items"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/items [get]
func (handler *Handler) GetItemsByOwner(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItemsByOwner")
	defer scope.End()

	ownerID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	page := gDto.PageRequest{}
	page.FromRequest(r)

	items, err := handler.service.GetAllByOwner(ctx, ownerID, page)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get items by owner")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Items retrieved successfully")

	response.WithJSON(w, http.StatusOK, items)
}

// GetItemByID retrieves an item; owners also get booking summaries.
// @Summary Get an item by ID
// @Description Retrieve an item with its comments; the owner additionally sees last/next booking summaries.
// @Tags Item
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Requesting user ID"
// @Param itemId path string true "Item ID"
// @Success 200 {object} response.Data[dto.ItemResponse] "Item details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/items/{itemId} [get]
func (handler *Handler) GetItemByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItemByID")
	defer scope.End()

	requesterID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	itemID := chi.URLParam(r, constant.RequestParamItemID)

	item, err := handler.service.GetByID(ctx, itemID, requesterID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get item by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Item retrieved successfully")

	response.WithJSON(w, http.StatusOK, item)
}

// UpdateItem applies a partial update to an item owned by the caller.
// @Summary Update an item by ID
// @Description Update the details of an item; only its owner may do so.
// @Tags Item
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Owner user ID"
// @Param itemId path string true "Item ID"
// @Param item body dto.UpdateItemRequest true "Fields to update"
// @Success 200 {object} response.Data[dto.ItemResponse] "Updated item"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/items/{itemId} [patch]
func (handler *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateItem")
	defer scope.End()

	callerID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	itemID := chi.URLParam(r, constant.RequestParamItemID)

	var req dto.UpdateItemRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	item, err := handler.service.Update(ctx, req, itemID, callerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Item updated successfully")

	response.WithJSON(w, http.StatusOK, item)
}

// DeleteItem removes an item owned by the caller.
// @Summary Delete an item by ID
// @Description Delete an item; only its owner may do so.
// @Tags Item
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Owner user ID"
// @Param itemId path string true "Item ID"
// @Success 200 {object} response.Message "Item deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/items/{itemId} [delete]
func (handler *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteItem")
	defer scope.End()

	callerID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	itemID := chi.URLParam(r, constant.RequestParamItemID)

	if err := handler.service.Delete(ctx, itemID, callerID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Item deleted successfully")

	response.WithMessage(w, http.StatusOK, "Item deleted successfully")
}

// AddComment posts a review on an item the caller has rented before.
// @Summary Comment on an item
// @Description Add a comment; the caller must have a finished APPROVED booking for the item.
// @Tags Item
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Author user ID"
// @Param itemId path string true "Item ID"
// @Param comment body dto.CreateCommentRequest true "Comment text"
// @Success 201 {object} response.Data[dto.CommentResponse] "Created comment"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/items/{itemId}/comment [post]
func (handler *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddComment")
	defer scope.End()

	authorID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	itemID := chi.URLParam(r, constant.RequestParamItemID)

	var req dto.CreateCommentRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	comment, err := handler.service.AddComment(ctx, req, itemID, authorID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add comment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Comment added successfully")

	response.WithJSON(w, http.StatusCreated, comment)
}
