package entities

import (
	"github.com/google/uuid"
)

// User is the record stored for every registered user.
// ID is the partition key and never changes after creation.
type User struct {
	ID          uuid.UUID
	Username    string
	Email       string
	CPF         string
	PhoneNumber string
}

// UserPatch carries the fields of a partial update. A nil field is left untouched.
type UserPatch struct {
	Username    *string
	Email       *string
	CPF         *string
	PhoneNumber *string
}

// NewUser builds a user with a freshly generated ID.
func NewUser(username, email, cpf, phoneNumber string) *User {
	return &User{
		ID:          uuid.New(),
		Username:    username,
		Email:       email,
		CPF:         cpf,
		PhoneNumber: phoneNumber,
	}
}

// IsEmpty reports whether the patch sets no field at all.
func (p UserPatch) IsEmpty() bool {
	return p.Username == nil && p.Email == nil && p.CPF == nil && p.PhoneNumber == nil
}

// ApplyPatch overwrites exactly the fields present in the patch.
func (u *User) ApplyPatch(p UserPatch) {
	if p.CPF != nil {
		u.CPF = *p.CPF
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.PhoneNumber != nil {
		u.PhoneNumber = *p.PhoneNumber
	}
	if p.Username != nil {
		u.Username = *p.Username
	}
}
