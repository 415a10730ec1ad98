package dto

import (
	"github.com/google/uuid"

	"shareit/internal/domains/user/model"
	gModel "shareit/shared/model"
	"shareit/shared/timezone"
)

type CreateUserRequest struct {
	Name  string `json:"name"  validate:"required,max=100"`
	Email string `json:"email" validate:"required,email,max=100"`
}

func (c *CreateUserRequest) ToModel() model.User {
	return model.User{
		ID:    uuid.NewString(),
		Name:  c.Name,
		Email: c.Email,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

// UpdateUserRequest carries a partial update; absent fields keep their stored values.
type UpdateUserRequest struct {
	Name  *string `db:"name"  json:"name"  validate:"omitempty,max=100"`
	Email *string `db:"email" json:"email" validate:"omitempty,email,max=100"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
}

type GetUsersResponse struct {
	Users []UserResponse `json:"users"`
}

func (r *GetUsersResponse) FromModels(models []model.User) {
	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
