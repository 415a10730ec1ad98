package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shareit/internal/domains/user/model"
	"shareit/internal/domains/user/model/dto"
)

func TestCreateUserRequest_ToModel(t *testing.T) {
	req := dto.CreateUserRequest{
		Name:  "Test User",
		Email: "test@example.com",
	}

	user := req.ToModel()

	assert.NotEmpty(t, user.ID, "expected ID to be generated")
	assert.Equal(t, req.Name, user.Name)
	assert.Equal(t, req.Email, user.Email)
	assert.False(t, user.CreatedAt.IsZero(), "expected CreatedAt to be set")
	assert.False(t, user.ModifiedAt.IsZero(), "expected ModifiedAt to be set")
}

func TestUserResponse_FromModel(t *testing.T) {
	userModel := model.User{
		ID:    "test-id",
		Name:  "Test User",
		Email: "test@example.com",
	}

	var response dto.UserResponse
	response.FromModel(userModel)

	assert.Equal(t, userModel.ID, response.ID)
	assert.Equal(t, userModel.Name, response.Name)
	assert.Equal(t, userModel.Email, response.Email)
}

func TestGetUsersResponse_FromModels(t *testing.T) {
	users := []model.User{
		{ID: "test-id-1", Name: "Test User 1", Email: "one@example.com"},
		{ID: "test-id-2", Name: "Test User 2", Email: "two@example.com"},
	}

	var response dto.GetUsersResponse
	response.FromModels(users)

	assert.Len(t, response.Users, 2)
	assert.Equal(t, "test-id-1", response.Users[0].ID)
	assert.Equal(t, "two@example.com", response.Users[1].Email)
}
