package handler

import (
	"net/http"
	"testing"
	"time"

	"cleanrecord/internal/delivery/api/dto"
	"cleanrecord/internal/domain/entity"
	domainerrors "cleanrecord/internal/domain/errors"
	mockUsecase "cleanrecord/internal/mocks/usecase"
	"cleanrecord/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAddressHandler(t *testing.T) (*AddressHandler, *mockUsecase.MockAddressUsecase) {
	addressUC := mockUsecase.NewMockAddressUsecase(t)

	return NewAddressHandler(AddressHandlerParams{AddressUC: addressUC, Logger: testLogger()}), addressUC
}

func TestAddressHandler_ListAddresses(t *testing.T) {
	h, addressUC := createTestAddressHandler(t)
	addressUC.EXPECT().ListAddresses(mock.Anything, testUserID).Return([]*entity.Address{
		{ID: uuid.New(), UserID: testUserID, Name: "Dom", Street: "Długa 1", PostalCode: "00-001", City: "Warszawa", CreatedAt: time.Now()},
	}, nil)

	c, rec := newContext(http.MethodGet, "/api/addresses", "", testUserID)
	require.NoError(t, h.ListAddresses(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	addresses := decodeData[[]dto.AddressResponse](t, rec)
	require.Len(t, addresses, 1)
	assert.Equal(t, "Dom", addresses[0].Name)
}

func TestAddressHandler_Unauthenticated(t *testing.T) {
	h, _ := createTestAddressHandler(t)

	c, rec := newContext(http.MethodGet, "/api/addresses", "", "")
	require.NoError(t, h.ListAddresses(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAddressHandler_CreateAddress_IgnoresBodyOwner(t *testing.T) {
	h, addressUC := createTestAddressHandler(t)
	addressUC.EXPECT().CreateAddress(mock.Anything, testUserID, &usecase.AddressInput{
		Name: "Biuro", Street: "Prosta 5", PostalCode: "00-850", City: "Warszawa",
	}).Return(&entity.Address{ID: uuid.New(), UserID: testUserID, Name: "Biuro"}, nil)

	body := `{"userId":"google-oauth2|bob","name":"Biuro","street":"Prosta 5","postalCode":"00-850","city":"Warszawa"}`
	c, rec := newContext(http.MethodPost, "/api/addresses", body, testUserID)
	require.NoError(t, h.CreateAddress(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAddressHandler_CreateAddress_NameTooLong(t *testing.T) {
	h, addressUC := createTestAddressHandler(t)
	addressUC.EXPECT().CreateAddress(mock.Anything, testUserID, mock.Anything).Return(nil, domainerrors.ErrAddressNameTooLong)

	c, rec := newContext(http.MethodPost, "/api/addresses", `{"name":"Mieszkanie rodziców","street":"a","postalCode":"b","city":"c"}`, testUserID)
	require.NoError(t, h.CreateAddress(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ADDRESS_NAME_TOO_LONG", decodeEnvelope(t, rec).Error.Code)
}

func TestAddressHandler_UpdateAddress(t *testing.T) {
	id := uuid.New()

	t.Run("id from body", func(t *testing.T) {
		h, addressUC := createTestAddressHandler(t)
		addressUC.EXPECT().UpdateAddress(mock.Anything, testUserID, id, mock.Anything).
			Return(&entity.Address{ID: id, UserID: testUserID, Name: "Dom"}, nil)

		c, rec := newContext(http.MethodPut, "/api/addresses", `{"id":"`+id.String()+`","name":"Dom","street":"a","postalCode":"b","city":"c"}`, testUserID)
		require.NoError(t, h.UpdateAddress(c))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing id", func(t *testing.T) {
		h, _ := createTestAddressHandler(t)

		c, rec := newContext(http.MethodPut, "/api/addresses", `{"name":"Dom"}`, testUserID)
		require.NoError(t, h.UpdateAddress(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "ADDRESS_ID_MISSING", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("foreign address", func(t *testing.T) {
		h, addressUC := createTestAddressHandler(t)
		addressUC.EXPECT().UpdateAddress(mock.Anything, testUserID, id, mock.Anything).Return(nil, domainerrors.ErrAddressNotFound)

		c, rec := newContext(http.MethodPut, "/api/addresses/"+id.String(), `{"name":"Dom"}`, testUserID)
		require.NoError(t, h.UpdateAddress(withID(c, id.String())))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAddressHandler_DeleteAddress(t *testing.T) {
	id := uuid.New()

	tests := map[string]struct {
		target string
		body   string
		param  string
	}{
		"query id": {target: "/api/addresses?id=" + id.String()},
		"path id":  {target: "/api/addresses/" + id.String(), param: id.String()},
		"body id":  {target: "/api/addresses", body: `{"id":"` + id.String() + `"}`},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h, addressUC := createTestAddressHandler(t)
			addressUC.EXPECT().DeleteAddress(mock.Anything, testUserID, id).Return(nil)

			c, rec := newContext(http.MethodDelete, tt.target, tt.body, testUserID)
			if tt.param != "" {
				c = withID(c, tt.param)
			}
			require.NoError(t, h.DeleteAddress(c))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, dto.MessageAddressDeleted, decodeData[dto.MessageResponse](t, rec).Message)
		})
	}

	t.Run("unparsable id is not found", func(t *testing.T) {
		h, _ := createTestAddressHandler(t)

		c, rec := newContext(http.MethodDelete, "/api/addresses?id=not-a-uuid", "", testUserID)
		require.NoError(t, h.DeleteAddress(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
