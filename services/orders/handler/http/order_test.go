package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftload/swiftload/internal/pkg/apperrors"
	"github.com/swiftload/swiftload/internal/pkg/middleware"
	"github.com/swiftload/swiftload/internal/pkg/models"
	"github.com/swiftload/swiftload/services/orders/mocks"
)

func newOrderTestHandler(t *testing.T) (*OrderHandler, *mocks.MockOrderUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockOrderUC(ctrl)
	return NewOrderHandler(mockUC), mockUC
}

func requestAs(method, target, body string, userID uuid.UUID, role string) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, userID)
	c.Set(middleware.ContextKeyRole, role)
	return rec, c
}

func TestCreateOrder_Success(t *testing.T) {
	handler, mockUC := newOrderTestHandler(t)
	userID := uuid.New()

	mockUC.EXPECT().
		CreateOrder(gomock.Any(), userID, gomock.Any()).
		Return(&models.Order{
			ID:            "ORD11111111",
			PickupAddress: "12 Quay Lane",
			Status:        models.OrderStatusAssigned,
		}, nil)

	rec, c := requestAs(http.MethodPost, "/orders",
		`{"pickup_address":"12 Quay Lane"}`, userID, models.RoleCustomer)

	require.NoError(t, handler.CreateOrder(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "ORD11111111", data["id"])
	assert.Equal(t, "assigned", data["order_status"])
}

func TestCreateOrder_MissingIdentity(t *testing.T) {
	handler, _ := newOrderTestHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"pickup_address":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.CreateOrder(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAssignOrder_DriverUnavailableMapsTo404(t *testing.T) {
	handler, mockUC := newOrderTestHandler(t)

	mockUC.EXPECT().
		AssignOrder(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.New(apperrors.KindDriverUnavailable, "driver is not available"))

	rec, c := requestAs(http.MethodPut, "/orders/assign",
		`{"order_id":"ORD11111111","driver_email":"drv@b.test"}`, uuid.New(), models.RoleAdmin)

	require.NoError(t, handler.AssignOrder(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCancelOrder_RequiresOrderID(t *testing.T) {
	handler, _ := newOrderTestHandler(t)

	rec, c := requestAs(http.MethodPut, "/orders/cancel",
		`{"cancel_reason":"changed plans"}`, uuid.New(), models.RoleCustomer)

	require.NoError(t, handler.CancelOrder(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreatePackages_InvalidStateMapsTo409(t *testing.T) {
	handler, mockUC := newOrderTestHandler(t)
	userID := uuid.New()

	mockUC.EXPECT().
		CreatePackages(gomock.Any(), userID, gomock.Any()).
		Return(nil, apperrors.New(apperrors.KindInvalidState, "order is closed"))

	rec, c := requestAs(http.MethodPost, "/orders/packages",
		`{"order_id":"ORD11111111","packages":[{"receiver_name":"N","receiver_phone":"P","description":"box"}]}`,
		userID, models.RoleCustomer)

	require.NoError(t, handler.CreatePackages(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}
