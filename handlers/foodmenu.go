// File: handlers/foodmenu.go
package handlers

import (
	"net/http"

	"hostelhub/models"
	"hostelhub/services/foodmenu"
	"hostelhub/services/storage"

	"github.com/gin-gonic/gin"
)

// FoodMenuHandler is the HTTP boundary for the weekly menu: parameter
// validation, delegation to the service, and image URL resolution on reads.
type FoodMenuHandler struct {
	Service foodmenu.FoodMenuService
	Storage storage.StorageService
}

func NewFoodMenuHandler(svc foodmenu.FoodMenuService, storageSvc storage.StorageService) *FoodMenuHandler {
	return &FoodMenuHandler{Service: svc, Storage: storageSvc}
}

// GetFoodMenuHandler fetches the resolved menu for a facility+hostel pair and
// swaps every item image key for a signed display URL.
func (h *FoodMenuHandler) GetFoodMenuHandler(c *gin.Context) {
	facilityID := c.Param("facilityId")
	if facilityID == "" {
		respondError(c, http.StatusBadRequest, "Facility ID is required")
		return
	}
	hostelID := c.Param("hostelId")

	menu, err := h.Service.GetFoodMenu(c.Request.Context(), facilityID, hostelID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if err := h.resolveMenuImages(c, menu); err != nil {
		respondServiceError(c, err)
		return
	}
	respondSuccess(c, "Food menu retrieved successfully", menu)
}

// GetProviderMenusHandler returns every menu owned by the authenticated provider.
func (h *FoodMenuHandler) GetProviderMenusHandler(c *gin.Context) {
	providerID := c.GetString("providerID")
	if providerID == "" {
		respondError(c, http.StatusBadRequest, "Provider ID is required")
		return
	}

	menus, err := h.Service.GetProviderMenus(c.Request.Context(), providerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	for i := range menus {
		if err := h.resolveMenuImages(c, &menus[i]); err != nil {
			respondServiceError(c, err)
			return
		}
	}
	if menus == nil {
		// Keep the envelope uniform: a provider with no menus gets data: [].
		menus = []models.ResolvedFoodMenu{}
	}
	respondSuccess(c, "Food menus retrieved successfully", menus)
}

// GetDayMenuHandler returns a single day's slice of a menu.
func (h *FoodMenuHandler) GetDayMenuHandler(c *gin.Context) {
	menuID := c.Param("id")
	if menuID == "" {
		respondError(c, http.StatusBadRequest, "Food menu ID is required")
		return
	}
	day, ok := models.ParseDay(c.Param("day"))
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid day provided")
		return
	}

	dayMenu, err := h.Service.GetDayMenu(c.Request.Context(), menuID, day)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if err := h.resolveDayImages(c, dayMenu); err != nil {
		respondServiceError(c, err)
		return
	}
	respondSuccess(c, "Day menu retrieved successfully", dayMenu)
}

// UpdateFoodMenuHandler replaces only the supplied menu subfields.
func (h *FoodMenuHandler) UpdateFoodMenuHandler(c *gin.Context) {
	menuID := c.Param("id")
	if menuID == "" {
		respondError(c, http.StatusBadRequest, "Food menu ID is required")
		return
	}

	var partial map[string]interface{}
	if err := c.ShouldBindJSON(&partial); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	menu, err := h.Service.UpdateFoodMenu(c.Request.Context(), menuID, partial)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondSuccess(c, "Food menu updated successfully", menu)
}

// DeleteFoodMenuHandler removes one item reference from one day's meal slot.
// The path id addresses the menu item; the body addresses the slot.
func (h *FoodMenuHandler) DeleteFoodMenuHandler(c *gin.Context) {
	itemID := c.Param("id")

	var body struct {
		FoodMenuID string `json:"foodMenuId"`
		Day        string `json:"day"`
		MealType   string `json:"mealType"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if itemID == "" || body.FoodMenuID == "" || body.Day == "" || body.MealType == "" {
		respondError(c, http.StatusBadRequest, "Menu item ID, food menu ID, day and meal type are required")
		return
	}

	menu, err := h.Service.DeleteFoodMenu(c.Request.Context(), itemID, body.FoodMenuID,
		models.Day(body.Day), models.MealType(body.MealType))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondSuccess(c, "Menu item removed successfully", menu)
}

// AddSingleDayMenuHandler bootstraps the weekly menu on first use and
// populates the requested day's meals for the authenticated provider.
func (h *FoodMenuHandler) AddSingleDayMenuHandler(c *gin.Context) {
	providerID := c.GetString("providerID")
	if providerID == "" {
		respondError(c, http.StatusBadRequest, "Provider ID is required")
		return
	}

	var body struct {
		FacilityID string               `json:"facilityId"`
		HostelID   string               `json:"hostelId"`
		Day        string               `json:"day"`
		Meals      models.DayMealsInput `json:"meals"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if body.FacilityID == "" {
		respondError(c, http.StatusBadRequest, "Facility ID is required")
		return
	}
	day, ok := models.ParseDay(body.Day)
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid day provided")
		return
	}
	if body.Meals.IsEmpty() {
		respondError(c, http.StatusBadRequest, "Meals data is required")
		return
	}

	menu, err := h.Service.AddSingleDayMenu(c.Request.Context(), providerID, foodmenu.AddSingleDayMenuInput{
		FacilityID: body.FacilityID,
		HostelID:   body.HostelID,
		Day:        day,
		Meals:      body.Meals,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondSuccess(c, "Day menu updated successfully", menu)
}

// CancelMealHandler sets a slot's availability. IsAvailable is a pointer so an
// explicit false survives the presence check.
func (h *FoodMenuHandler) CancelMealHandler(c *gin.Context) {
	menuID := c.Param("id")
	if menuID == "" {
		respondError(c, http.StatusBadRequest, "Food menu ID is required")
		return
	}

	var body struct {
		Day         *string `json:"day"`
		MealType    *string `json:"mealType"`
		IsAvailable *bool   `json:"isAvailable"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if body.Day == nil || body.MealType == nil || body.IsAvailable == nil {
		respondError(c, http.StatusBadRequest, "Day, meal type and availability are required")
		return
	}
	meal, ok := models.ParseMealType(*body.MealType)
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid meal type provided")
		return
	}
	day, ok := models.ParseDay(*body.Day)
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid day provided")
		return
	}

	menu, message, err := h.Service.CancelMeal(c.Request.Context(), menuID, foodmenu.CancelMealInput{
		Day:         day,
		MealType:    meal,
		IsAvailable: *body.IsAvailable,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondSuccess(c, message, menu)
}
