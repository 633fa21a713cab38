// Package dto holds the request and response shapes exchanged with API clients
// and their mapping to the user entity.
package dto

import (
	"user-service/domain/core/entities"
	"user-service/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// InvalidUpdateMessage is reported when an update request carries no field.
const InvalidUpdateMessage = "Invalid update user request"

const validUpdateUserTag = "validupdateuser"

func init() {
	utils.RegisterStructRule(validUpdateUserTag, InvalidUpdateMessage, validateUpdateUser, UpdateUserDTO{})
}

// CreateUserDTO is the body of a user creation request. Every field is mandatory.
type CreateUserDTO struct {
	Username    string `json:"username" validate:"notblank"`
	Email       string `json:"email" validate:"notblank"`
	CPF         string `json:"cpf" validate:"notblank"`
	PhoneNumber string `json:"phoneNumber" validate:"notblank"`
}

// UpdateUserDTO is the body of a partial update. Absent (null) fields are kept;
// at least one field must be present.
type UpdateUserDTO struct {
	Username    *string `json:"username"`
	Email       *string `json:"email"`
	CPF         *string `json:"cpf"`
	PhoneNumber *string `json:"phoneNumber"`
}

// UserDTO is the user view returned to API clients.
type UserDTO struct {
	UUID        uuid.UUID `json:"uuid"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	CPF         string    `json:"cpf"`
	PhoneNumber string    `json:"phoneNumber"`
}

func validateUpdateUser(sl validator.StructLevel) {
	req := sl.Current().Interface().(UpdateUserDTO)
	if req.Patch().IsEmpty() {
		sl.ReportError(req.Username, "updateUserDto", "UpdateUserDTO", validUpdateUserTag, "")
	}
}

// ToEntity builds a user record from the creation request and the given ID.
func (d CreateUserDTO) ToEntity(id uuid.UUID) *entities.User {
	return &entities.User{
		ID:          id,
		Username:    d.Username,
		Email:       d.Email,
		CPF:         d.CPF,
		PhoneNumber: d.PhoneNumber,
	}
}

// Patch extracts the fields present in the request.
func (d UpdateUserDTO) Patch() entities.UserPatch {
	return entities.UserPatch{
		Username:    d.Username,
		Email:       d.Email,
		CPF:         d.CPF,
		PhoneNumber: d.PhoneNumber,
	}
}

// FromEntity maps a user record to its API view.
func FromEntity(u *entities.User) *UserDTO {
	return &UserDTO{
		UUID:        u.ID,
		Username:    u.Username,
		Email:       u.Email,
		CPF:         u.CPF,
		PhoneNumber: u.PhoneNumber,
	}
}
