package entities

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestNewUser_GeneratesID(t *testing.T) {
	first := NewUser("joao.silva", "joao@silva.com", "123456789", "119878674768")
	second := NewUser("joao.silva", "joao@silva.com", "123456789", "119878674768")

	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "joao.silva", first.Username)
	assert.Equal(t, "joao@silva.com", first.Email)
	assert.Equal(t, "123456789", first.CPF)
	assert.Equal(t, "119878674768", first.PhoneNumber)
}

func TestUser_ApplyPatch(t *testing.T) {
	tests := []struct {
		name     string
		patch    UserPatch
		expected User
	}{
		{
			name:  "only username",
			patch: UserPatch{Username: strPtr("maria")},
			expected: User{
				Username: "maria", Email: "joao@silva.com", CPF: "123456789", PhoneNumber: "119878674768",
			},
		},
		{
			name:  "email and phone",
			patch: UserPatch{Email: strPtr("maria@silva.com"), PhoneNumber: strPtr("11999999999")},
			expected: User{
				Username: "joao.silva", Email: "maria@silva.com", CPF: "123456789", PhoneNumber: "11999999999",
			},
		},
		{
			name:  "empty string is still a value",
			patch: UserPatch{CPF: strPtr("")},
			expected: User{
				Username: "joao.silva", Email: "joao@silva.com", CPF: "", PhoneNumber: "119878674768",
			},
		},
		{
			name:  "nothing set",
			patch: UserPatch{},
			expected: User{
				Username: "joao.silva", Email: "joao@silva.com", CPF: "123456789", PhoneNumber: "119878674768",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := uuid.New()
			user := &User{ID: id, Username: "joao.silva", Email: "joao@silva.com", CPF: "123456789", PhoneNumber: "119878674768"}

			user.ApplyPatch(tt.patch)

			tt.expected.ID = id
			assert.Equal(t, tt.expected, *user)
		})
	}
}

func TestUserPatch_IsEmpty(t *testing.T) {
	assert.True(t, UserPatch{}.IsEmpty())
	assert.False(t, UserPatch{Email: strPtr("a@b.c")}.IsEmpty())
	assert.False(t, UserPatch{PhoneNumber: strPtr("")}.IsEmpty())
}
