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
	"github.com/swiftload/swiftload/services/deliveries/mocks"
)

func newDeliveryTestHandler(t *testing.T) (*DeliveryHandler, *mocks.MockDeliveryUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockDeliveryUC(ctrl)
	return NewDeliveryHandler(mockUC), mockUC
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

func TestUpdateDelivery_Success(t *testing.T) {
	handler, mockUC := newDeliveryTestHandler(t)
	userID := uuid.New()

	mockUC.EXPECT().
		UpdateDelivery(gomock.Any(), userID, gomock.Any()).
		Return(&models.Delivery{
			ID:        "DEL11111111",
			PackageID: "PKG11111111",
			Status:    models.DeliveryStatusPickedUp,
		}, nil)

	rec, c := requestAs(http.MethodPut, "/deliveries/update",
		`{"package_id":"PKG11111111","delivery_status":"picked_up"}`, userID, models.RoleDriver)

	require.NoError(t, handler.UpdateDelivery(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "picked_up", data["delivery_status"])
}

func TestUpdateDelivery_RequiresStatus(t *testing.T) {
	handler, _ := newDeliveryTestHandler(t)

	rec, c := requestAs(http.MethodPut, "/deliveries/update",
		`{"package_id":"PKG11111111"}`, uuid.New(), models.RoleDriver)

	require.NoError(t, handler.UpdateDelivery(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAssignRider_InProgressMapsTo409(t *testing.T) {
	handler, mockUC := newDeliveryTestHandler(t)

	mockUC.EXPECT().
		AssignRider(gomock.Any(), "DEL11111111").
		Return(nil, apperrors.New(apperrors.KindInvalidState, "delivery is already in progress"))

	rec, c := requestAs(http.MethodPut, "/deliveries/DEL11111111/assign", "", uuid.New(), models.RoleAdmin)
	c.SetParamNames("delivery_id")
	c.SetParamValues("DEL11111111")

	require.NoError(t, handler.AssignRider(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetPayment_PassesCallerRole(t *testing.T) {
	handler, mockUC := newDeliveryTestHandler(t)
	userID := uuid.New()

	mockUC.EXPECT().
		GetPayment(gomock.Any(), userID, models.RoleCustomer, "PKG11111111").
		Return(&models.Payment{
			ID:        "TXN11111111",
			PackageID: "PKG11111111",
			Status:    models.PaymentStatusPending,
		}, nil)

	rec, c := requestAs(http.MethodGet, "/payments/PKG11111111", "", userID, models.RoleCustomer)
	c.SetParamNames("package_id")
	c.SetParamValues("PKG11111111")

	require.NoError(t, handler.GetPayment(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "TXN11111111", data["id"])
}
