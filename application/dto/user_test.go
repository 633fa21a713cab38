package dto

import (
	"encoding/json"
	"testing"

	"user-service/domain/core/entities"
	pkgerrors "user-service/pkg/errors"
	"user-service/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateUserDTO_Validation(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req := CreateUserDTO{Username: "joao.silva", Email: "joao@silva.com", CPF: "123456789", PhoneNumber: "119878674768"}
		assert.NoError(t, utils.ValidateStruct(req))
	})

	t.Run("missing username only", func(t *testing.T) {
		req := CreateUserDTO{Email: "joao@silva.com", CPF: "123456789", PhoneNumber: "119878674768"}

		err := utils.ValidateStruct(req)

		appErr := pkgerrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, []string{"'username' should not be null"}, appErr.Errors)
	})

	t.Run("every field blank", func(t *testing.T) {
		req := CreateUserDTO{Username: " ", Email: "\t"}

		err := utils.ValidateStruct(req)

		appErr := pkgerrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, []string{
			"'username' should not be null",
			"'email' should not be null",
			"'cpf' should not be null",
			"'phoneNumber' should not be null",
		}, appErr.Errors)
	})
}

func TestUpdateUserDTO_Validation(t *testing.T) {
	t.Run("all null", func(t *testing.T) {
		err := utils.ValidateStruct(UpdateUserDTO{})

		appErr := pkgerrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, []string{InvalidUpdateMessage}, appErr.Errors)
	})

	t.Run("single field present", func(t *testing.T) {
		assert.NoError(t, utils.ValidateStruct(UpdateUserDTO{PhoneNumber: strPtr("11999999999")}))
	})

	t.Run("empty string counts as present", func(t *testing.T) {
		assert.NoError(t, utils.ValidateStruct(UpdateUserDTO{Email: strPtr("")}))
	})
}

func TestUpdateUserDTO_NullVersusAbsent(t *testing.T) {
	var req UpdateUserDTO
	require.NoError(t, json.Unmarshal([]byte(`{"username":"maria","email":null}`), &req))

	patch := req.Patch()

	require.NotNil(t, patch.Username)
	assert.Equal(t, "maria", *patch.Username)
	assert.Nil(t, patch.Email)
	assert.Nil(t, patch.CPF)
	assert.Nil(t, patch.PhoneNumber)
}

func TestMapping(t *testing.T) {
	id := uuid.New()
	req := CreateUserDTO{Username: "joao.silva", Email: "joao@silva.com", CPF: "123456789", PhoneNumber: "119878674768"}

	user := req.ToEntity(id)
	view := FromEntity(user)

	assert.Equal(t, &entities.User{ID: id, Username: "joao.silva", Email: "joao@silva.com", CPF: "123456789", PhoneNumber: "119878674768"}, user)
	assert.Equal(t, id, view.UUID)

	raw, err := json.Marshal(view)
	require.NoError(t, err)
	assert.JSONEq(t, `{"uuid":"`+id.String()+`","username":"joao.silva","email":"joao@silva.com","cpf":"123456789","phoneNumber":"119878674768"}`, string(raw))
}
