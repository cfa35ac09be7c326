package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cropsync/kiosk/internal/pkg/models"
	"github.com/cropsync/kiosk/services/auth"
	"github.com/cropsync/kiosk/services/auth/mocks"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoginContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func strPtr(s string) *string {
	return &s
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newLoginContext(http.MethodPost, "/api/auth/login", `{"user_id": "KSK1001"}`)

	token := "signed.session.token"
	mockAuthUC.EXPECT().
		LoginByUserID(gomock.Any(), "KSK1001").
		Return(&models.LoginResponse{
			Success: true,
			Message: "Login successful",
			User:    &models.User{UserID: "KSK1001", Name: "Ramesh Kumar"},
			Token:   &token,
		}, nil)

	err := authHandler.Login(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Login successful", response["message"])
	assert.Equal(t, "signed.session.token", response["token"])

	user, ok := response["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "KSK1001", user["user_id"])
}

func TestLogin_UnknownUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newLoginContext(http.MethodPost, "/api/auth/login", `{"user_id": "UNKNOWN"}`)

	mockAuthUC.EXPECT().
		LoginByUserID(gomock.Any(), "UNKNOWN").
		Return(&models.LoginResponse{
			Success: false,
			Message: "Invalid User ID. Please try again.",
		}, nil)

	err := authHandler.Login(c)

	require.NoError(t, err)
	// A failed login is still HTTP 200 with a structured outcome
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Invalid User ID. Please try again.", response["message"])
	assert.Nil(t, response["user"])
	assert.Nil(t, response["token"])
}

func TestLogin_EmptyUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newLoginContext(http.MethodPost, "/api/auth/login", `{"user_id": "   "}`)

	mockAuthUC.EXPECT().
		LoginByUserID(gomock.Any(), "   ").
		Return(nil, auth.ErrEmptyUserID)

	err := authHandler.Login(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "User ID is required", response["error"])
	assert.Equal(t, float64(http.StatusBadRequest), response["code"])
}

func TestLogin_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newLoginContext(http.MethodPost, "/api/auth/login", `{invalid_json}`)

	err := authHandler.Login(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newLoginContext(http.MethodPost, "/api/auth/login", `{"user_id": "KSK1001"}`)

	mockAuthUC.EXPECT().
		LoginByUserID(gomock.Any(), "KSK1001").
		Return(nil, errors.New("dial tcp: connection refused"))

	err := authHandler.Login(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Database error occurred", response["error"])
}

func TestLoginByCard_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newLoginContext(http.MethodPost, "/api/auth/login-by-card", `{"card_uid": "04A2B6C1"}`)

	token := "signed.session.token"
	mockAuthUC.EXPECT().
		LoginByCard(gomock.Any(), "04A2B6C1").
		Return(&models.LoginResponse{
			Success: true,
			Message: "Login successful",
			User:    &models.User{UserID: "KSK1001", Name: "Ramesh Kumar", CardUID: strPtr("04A2B6C1")},
			Token:   &token,
		}, nil)

	err := authHandler.LoginByCard(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
}

func TestLoginByCard_NotRegistered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newLoginContext(http.MethodPost, "/api/auth/login-by-card", `{"card_uid": "FFFFFFFF"}`)

	mockAuthUC.EXPECT().
		LoginByCard(gomock.Any(), "FFFFFFFF").
		Return(&models.LoginResponse{
			Success: false,
			Message: "Card not registered. Please contact administrator.",
		}, nil)

	err := authHandler.LoginByCard(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Card not registered. Please contact administrator.", response["message"])
}

func TestLoginByCard_EmptyCardUID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newLoginContext(http.MethodPost, "/api/auth/login-by-card", `{"card_uid": ""}`)

	mockAuthUC.EXPECT().
		LoginByCard(gomock.Any(), "").
		Return(nil, auth.ErrEmptyCardUID)

	err := authHandler.LoginByCard(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Card UID is required", response["error"])
}

func TestVerifyToken_Valid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newLoginContext(http.MethodPost, "/api/auth/verify-token", `{"token": "some.jwt.token"}`)

	mockAuthUC.EXPECT().
		VerifyToken("some.jwt.token").
		Return(&models.TokenVerifyResponse{Valid: true, UserID: strPtr("KSK1001")})

	err := authHandler.VerifyToken(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["valid"])
	assert.Equal(t, "KSK1001", response["user_id"])
}

func TestVerifyToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newLoginContext(http.MethodPost, "/api/auth/verify-token", `{"token": "tampered.jwt.token"}`)

	mockAuthUC.EXPECT().
		VerifyToken("tampered.jwt.token").
		Return(&models.TokenVerifyResponse{Valid: false})

	err := authHandler.VerifyToken(c)

	require.NoError(t, err)
	// Invalid tokens still answer 200 with a structured result
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, false, response["valid"])
	assert.Nil(t, response["user_id"])
}

func TestVerifyToken_EmptyToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newLoginContext(http.MethodPost, "/api/auth/verify-token", `{"token": ""}`)

	mockAuthUC.EXPECT().
		VerifyToken("").
		Return(&models.TokenVerifyResponse{Valid: false})

	err := authHandler.VerifyToken(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, false, response["valid"])
}
