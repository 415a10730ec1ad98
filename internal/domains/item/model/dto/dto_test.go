package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shareit/internal/domains/item/model"
	"shareit/internal/domains/item/model/dto"
)

func TestCreateItemRequest_ToModel(t *testing.T) {
	available := true
	req := dto.CreateItemRequest{
		Name:        "Test Item",
		Description: "Test Description",
		Available:   &available,
	}

	ownerID := "test-owner-id"
	item := req.ToModel(ownerID)

	assert.NotEmpty(t, item.ID, "expected ID to be generated")
	assert.Equal(t, req.Name, item.Name)
	assert.Equal(t, req.Description, item.Description)
	assert.True(t, item.Available)
	assert.Equal(t, ownerID, item.OwnerID)
	assert.False(t, item.CreatedAt.IsZero(), "expected CreatedAt to be set")
	assert.False(t, item.ModifiedAt.IsZero(), "expected ModifiedAt to be set")
}

func TestUpdateItemRequest_IsEmpty(t *testing.T) {
	assert.True(t, (&dto.UpdateItemRequest{}).IsEmpty())

	name := "Test Item"
	assert.False(t, (&dto.UpdateItemRequest{Name: &name}).IsEmpty())

	available := false
	assert.False(t, (&dto.UpdateItemRequest{Available: &available}).IsEmpty())
}

func TestItemResponse_FromModel(t *testing.T) {
	itemModel := model.Item{
		ID:          "test-id",
		Name:        "Test Item",
		Description: "Test Description",
		Available:   true,
		OwnerID:     "test-owner-id",
	}

	var response dto.ItemResponse
	response.FromModel(itemModel)

	assert.Equal(t, itemModel.ID, response.ID)
	assert.Equal(t, itemModel.Name, response.Name)
	assert.Equal(t, itemModel.Description, response.Description)
	assert.Equal(t, itemModel.Available, response.Available)
	assert.Equal(t, itemModel.OwnerID, response.OwnerID)
	assert.Nil(t, response.LastBooking)
	assert.Nil(t, response.NextBooking)
	assert.NotNil(t, response.Comments, "empty comment list serializes as [], not null")
}

func TestGetItemsResponse_FromModels(t *testing.T) {
	items := []model.Item{
		{ID: "test-id-1", Name: "Test Item 1"},
		{ID: "test-id-2", Name: "Test Item 2"},
	}

	var response dto.GetItemsResponse
	response.FromModels(items)

	assert.Len(t, response.Items, 2)
	assert.Equal(t, "test-id-1", response.Items[0].ID)
	assert.Equal(t, "Test Item 2", response.Items[1].Name)
}
