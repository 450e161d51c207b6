// File: services/foodmenu/service.go
package foodmenu

import (
	"context"
	"net/http"

	"hostelhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (s *DefaultFoodMenuService) GetFoodMenu(ctx context.Context, facilityID, hostelID string) (*models.ResolvedFoodMenu, error) {
	menu, err := s.Repo.GetByFacility(ctx, facilityID, hostelID)
	if err != nil {
		return nil, NewInternal(err)
	}
	if menu == nil {
		return nil, NewNotFound("Food menu not found")
	}
	return menu, nil
}

func (s *DefaultFoodMenuService) GetProviderMenus(ctx context.Context, providerID string) ([]models.ResolvedFoodMenu, error) {
	menus, err := s.Repo.GetByProvider(ctx, providerID)
	if err != nil {
		return nil, NewInternal(err)
	}
	return menus, nil
}

func (s *DefaultFoodMenuService) GetDayMenu(ctx context.Context, menuID string, day models.Day) (*models.ResolvedDayMenu, error) {
	dayMenu, err := s.Repo.GetDaySlice(ctx, menuID, day)
	if err != nil {
		return nil, NewInternal(err)
	}
	if dayMenu == nil {
		return nil, NewNotFound("Food menu not found")
	}
	return dayMenu, nil
}

// immutableMenuFields are identity and bookkeeping fields that the
// partial-update surface must never touch.
var immutableMenuFields = []string{"id", "_id", "providerId", "facilityId", "hostelId", "createdAt", "updatedAt"}

func (s *DefaultFoodMenuService) UpdateFoodMenu(ctx context.Context, menuID string, partial map[string]interface{}) (*models.ResolvedFoodMenu, error) {
	for _, field := range immutableMenuFields {
		if _, ok := partial[field]; ok {
			return nil, NewBadRequest("Field \"" + field + "\" cannot be updated")
		}
	}
	menu, err := s.Repo.UpdateWholeMenu(ctx, menuID, bson.M(partial))
	if err != nil {
		return nil, &Error{Code: http.StatusBadRequest, Message: "Failed to update food menu", Err: err}
	}
	if menu == nil {
		return nil, NewNotFound("Food menu not found")
	}
	return menu, nil
}

func (s *DefaultFoodMenuService) DeleteFoodMenu(ctx context.Context, itemID, menuID string, day models.Day, meal models.MealType) (*models.ResolvedFoodMenu, error) {
	menu, err := s.Repo.RemoveItemFromDayMeal(ctx, itemID, menuID, day, meal)
	if err != nil {
		return nil, NewInternal(err)
	}
	if menu == nil {
		return nil, NewNotFound("No matching food menu found")
	}
	return menu, nil
}

func (s *DefaultFoodMenuService) AddSingleDayMenu(ctx context.Context, providerID string, in AddSingleDayMenuInput) (*models.ResolvedFoodMenu, error) {
	menu, err := s.Repo.AddSingleDayMenu(ctx, providerID, in.FacilityID, in.HostelID, in.Day, in.Meals)
	if err != nil {
		return nil, NewInternal(err)
	}
	if menu == nil {
		return nil, NewNotFound("Food menu not found")
	}
	return menu, nil
}

// CancelMeal sets a slot's availability. The current calendar day is locked:
// meals for today can be neither cancelled nor restored.
func (s *DefaultFoodMenuService) CancelMeal(ctx context.Context, menuID string, in CancelMealInput) (*models.ResolvedFoodMenu, string, error) {
	today := models.Day(s.now().Weekday().String())
	if in.Day == today {
		return nil, "", NewBadRequest("Cannot cancel or restore meals for the current day")
	}

	menu, err := s.Repo.SetMealAvailability(ctx, menuID, in.Day, in.MealType, in.IsAvailable)
	if err != nil {
		return nil, "", NewInternal(err)
	}
	if menu == nil {
		return nil, "", NewNotFound("Food menu not found")
	}

	message := "Meal cancelled successfully"
	if in.IsAvailable {
		message = "Meal restored successfully"
	}
	return menu, message, nil
}
