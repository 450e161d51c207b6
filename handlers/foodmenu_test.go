// File: handlers/foodmenu_test.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hostelhub/models"
	"hostelhub/services/foodmenu"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeMenuService records calls and returns canned results.
type fakeMenuService struct {
	calls int

	menu    *models.ResolvedFoodMenu
	dayMenu *models.ResolvedDayMenu
	message string
	err     error
}

func (f *fakeMenuService) GetFoodMenu(context.Context, string, string) (*models.ResolvedFoodMenu, error) {
	f.calls++
	return f.menu, f.err
}

func (f *fakeMenuService) GetProviderMenus(context.Context, string) ([]models.ResolvedFoodMenu, error) {
	f.calls++
	if f.menu == nil {
		return nil, f.err
	}
	return []models.ResolvedFoodMenu{*f.menu}, f.err
}

func (f *fakeMenuService) GetDayMenu(context.Context, string, models.Day) (*models.ResolvedDayMenu, error) {
	f.calls++
	return f.dayMenu, f.err
}

func (f *fakeMenuService) UpdateFoodMenu(context.Context, string, map[string]interface{}) (*models.ResolvedFoodMenu, error) {
	f.calls++
	return f.menu, f.err
}

func (f *fakeMenuService) DeleteFoodMenu(context.Context, string, string, models.Day, models.MealType) (*models.ResolvedFoodMenu, error) {
	f.calls++
	return f.menu, f.err
}

func (f *fakeMenuService) AddSingleDayMenu(context.Context, string, foodmenu.AddSingleDayMenuInput) (*models.ResolvedFoodMenu, error) {
	f.calls++
	return f.menu, f.err
}

func (f *fakeMenuService) CancelMeal(context.Context, string, foodmenu.CancelMealInput) (*models.ResolvedFoodMenu, string, error) {
	f.calls++
	return f.menu, f.message, f.err
}

// fakeResolver signs keys deterministically.
type fakeResolver struct{}

func (fakeResolver) GetSecureDownloadURL(_ context.Context, publicID string, _ time.Duration) (string, error) {
	return "https://signed.example/" + publicID, nil
}

func newTestContext(t *testing.T, method, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func strPtr(s string) *string { return &s }

func TestGetFoodMenuMissingFacilityID(t *testing.T) {
	svc := &fakeMenuService{}
	h := NewFoodMenuHandler(svc, fakeResolver{})

	c, w := newTestContext(t, http.MethodGet, "")
	c.Params = gin.Params{{Key: "facilityId", Value: ""}, {Key: "hostelId", Value: "hos-1"}}
	h.GetFoodMenuHandler(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.calls, "service must not be invoked without a facility id")
}

func TestGetFoodMenuNotFound(t *testing.T) {
	svc := &fakeMenuService{err: foodmenu.NewNotFound("Food menu not found")}
	h := NewFoodMenuHandler(svc, fakeResolver{})

	c, w := newTestContext(t, http.MethodGet, "")
	c.Params = gin.Params{{Key: "facilityId", Value: "fac-1"}, {Key: "hostelId", Value: "hos-1"}}
	h.GetFoodMenuHandler(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "error", env["status"])
	assert.Equal(t, "Food menu not found", env["message"])
}

func TestGetFoodMenuResolvesImages(t *testing.T) {
	svc := &fakeMenuService{
		menu: &models.ResolvedFoodMenu{
			ID: "m1",
			Menu: []models.ResolvedDayMenu{{
				Day: models.Monday,
				Meals: models.ResolvedDayMeals{
					Morning: models.ResolvedMealSlot{
						Items: []models.MenuItemSummary{
							{ID: "item-1", Name: "Idli", Image: strPtr("k1")},
							{ID: "item-2", Name: "Upma"},
						},
						IsAvailable: true,
					},
				},
			}},
		},
	}
	h := NewFoodMenuHandler(svc, fakeResolver{})

	c, w := newTestContext(t, http.MethodGet, "")
	c.Params = gin.Params{{Key: "facilityId", Value: "fac-1"}, {Key: "hostelId", Value: "hos-1"}}
	h.GetFoodMenuHandler(c)

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "success", env["status"])

	data := env["data"].(map[string]interface{})
	menu := data["menu"].([]interface{})
	morning := menu[0].(map[string]interface{})["meals"].(map[string]interface{})["morning"].(map[string]interface{})
	items := morning["items"].([]interface{})
	require.Len(t, items, 2)

	first := items[0].(map[string]interface{})
	assert.Equal(t, "item-1", first["_id"])
	assert.Equal(t, "Idli", first["name"])
	assert.Equal(t, "https://signed.example/k1", first["image"])

	second := items[1].(map[string]interface{})
	assert.Equal(t, "item-2", second["_id"])
	assert.Equal(t, "Upma", second["name"])
	assert.Nil(t, second["image"])
}

func TestGetProviderMenusEmptyListKeepsDataField(t *testing.T) {
	svc := &fakeMenuService{}
	h := NewFoodMenuHandler(svc, fakeResolver{})

	c, w := newTestContext(t, http.MethodGet, "")
	c.Set("providerID", "prov-1")
	h.GetProviderMenusHandler(c)

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	require.Contains(t, env, "data")
	data, ok := env["data"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, data)
}

func TestCancelMealMissingAvailability(t *testing.T) {
	svc := &fakeMenuService{}
	h := NewFoodMenuHandler(svc, fakeResolver{})

	c, w := newTestContext(t, http.MethodPut, `{"day":"Monday","mealType":"morning"}`)
	c.Params = gin.Params{{Key: "id", Value: "m1"}}
	h.CancelMealHandler(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.calls)
}

func TestCancelMealExplicitFalseIsAccepted(t *testing.T) {
	svc := &fakeMenuService{menu: &models.ResolvedFoodMenu{ID: "m1"}, message: "Meal cancelled successfully"}
	h := NewFoodMenuHandler(svc, fakeResolver{})

	c, w := newTestContext(t, http.MethodPut, `{"day":"Monday","mealType":"morning","isAvailable":false}`)
	c.Params = gin.Params{{Key: "id", Value: "m1"}}
	h.CancelMealHandler(c)

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Meal cancelled successfully", env["message"])
	assert.Equal(t, 1, svc.calls)
}

func TestCancelMealInvalidMealType(t *testing.T) {
	svc := &fakeMenuService{}
	h := NewFoodMenuHandler(svc, fakeResolver{})

	c, w := newTestContext(t, http.MethodPut, `{"day":"Monday","mealType":"brunch","isAvailable":false}`)
	c.Params = gin.Params{{Key: "id", Value: "m1"}}
	h.CancelMealHandler(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.calls)
}

func TestCancelMealInvalidDay(t *testing.T) {
	svc := &fakeMenuService{}
	h := NewFoodMenuHandler(svc, fakeResolver{})

	c, w := newTestContext(t, http.MethodPut, `{"day":"Noday","mealType":"noon","isAvailable":true}`)
	c.Params = gin.Params{{Key: "id", Value: "m1"}}
	h.CancelMealHandler(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.calls)
}

func TestAddSingleDayMenuInvalidDay(t *testing.T) {
	svc := &fakeMenuService{}
	h := NewFoodMenuHandler(svc, fakeResolver{})

	c, w := newTestContext(t, http.MethodPost, `{"facilityId":"fac-1","hostelId":"hos-1","day":"Noday","meals":{"morning":["item-1"]}}`)
	c.Set("providerID", "prov-1")
	h.AddSingleDayMenuHandler(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.calls)
}

func TestAddSingleDayMenuEmptyMeals(t *testing.T) {
	svc := &fakeMenuService{}
	h := NewFoodMenuHandler(svc, fakeResolver{})

	c, w := newTestContext(t, http.MethodPost, `{"facilityId":"fac-1","hostelId":"hos-1","day":"Tuesday","meals":{}}`)
	c.Set("providerID", "prov-1")
	h.AddSingleDayMenuHandler(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.calls)
}

func TestAddSingleDayMenuMissingProvider(t *testing.T) {
	svc := &fakeMenuService{}
	h := NewFoodMenuHandler(svc, fakeResolver{})

	c, w := newTestContext(t, http.MethodPost, `{"facilityId":"fac-1","day":"Tuesday","meals":{"noon":["item-1"]}}`)
	h.AddSingleDayMenuHandler(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.calls)
}

func TestAddSingleDayMenuSuccess(t *testing.T) {
	svc := &fakeMenuService{menu: &models.ResolvedFoodMenu{ID: "m1"}}
	h := NewFoodMenuHandler(svc, fakeResolver{})

	c, w := newTestContext(t, http.MethodPost, `{"facilityId":"fac-1","hostelId":"hos-1","day":"Tuesday","meals":{"noon":["item-1"]}}`)
	c.Set("providerID", "prov-1")
	h.AddSingleDayMenuHandler(c)

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "success", env["status"])
	assert.Equal(t, 1, svc.calls)
}

func TestDeleteFoodMenuMissingFields(t *testing.T) {
	svc := &fakeMenuService{}
	h := NewFoodMenuHandler(svc, fakeResolver{})

	c, w := newTestContext(t, http.MethodDelete, `{"foodMenuId":"m1","day":"Monday"}`)
	c.Params = gin.Params{{Key: "id", Value: "item-1"}}
	h.DeleteFoodMenuHandler(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.calls)
}

func TestUpdateFoodMenuNotFoundMapsTo404(t *testing.T) {
	svc := &fakeMenuService{err: foodmenu.NewNotFound("Food menu not found")}
	h := NewFoodMenuHandler(svc, fakeResolver{})

	c, w := newTestContext(t, http.MethodPut, `{"menu":[]}`)
	c.Params = gin.Params{{Key: "id", Value: "m1"}}
	h.UpdateFoodMenuHandler(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 1, svc.calls)
}
