package dto

import (
	"github.com/google/uuid"

	"shareit/internal/domains/item/model"
	gModel "shareit/shared/model"
	"shareit/shared/timezone"
)

type CreateItemRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=500"`
	Available   *bool  `json:"available"   validate:"required"`
}

func (c *CreateItemRequest) ToModel(ownerID string) model.Item {
	return model.Item{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		Available:   *c.Available,
		OwnerID:     ownerID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

// UpdateItemRequest carries a partial update; absent fields keep their stored values.
type UpdateItemRequest struct {
	Name        *string `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description *string `db:"description" json:"description" validate:"omitempty,max=500"`
	Available   *bool   `db:"available"   json:"available"`
}

func (u *UpdateItemRequest) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Available == nil
}

// ShortBooking is the booking summary embedded in an owner's item view.
type ShortBooking struct {
	ID       string `json:"id"`
	BookerID string `json:"bookerId"`
}

type CommentResponse struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	AuthorName string `json:"authorName"`
	Created    string `json:"created"`
}

type ItemResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Available   bool              `json:"available"`
	OwnerID     string            `json:"ownerId"`
	LastBooking *ShortBooking     `json:"lastBooking"`
	NextBooking *ShortBooking     `json:"nextBooking"`
	Comments    []CommentResponse `json:"comments"`
}

func (r *ItemResponse) FromModel(model model.Item) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Available = model.Available
	r.OwnerID = model.OwnerID
	r.Comments = []CommentResponse{}
}

type GetItemsResponse struct {
	Items []ItemResponse `json:"items"`
}

func (r *GetItemsResponse) FromModels(models []model.Item) {
	r.Items = make([]ItemResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}
}

type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,max=1000"`
}
