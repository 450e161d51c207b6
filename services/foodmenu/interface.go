// File: services/foodmenu/interface.go
package foodmenu

import (
	"context"
	"time"

	foodmenuRepo "hostelhub/database/repository/foodmenu"
	"hostelhub/models"
)

// AddSingleDayMenuInput is the provider's payload for populating one day.
type AddSingleDayMenuInput struct {
	FacilityID string               `json:"facilityId"`
	HostelID   string               `json:"hostelId"`
	Day        models.Day           `json:"day"`
	Meals      models.DayMealsInput `json:"meals"`
}

// CancelMealInput selects one slot and the availability it should take.
type CancelMealInput struct {
	Day         models.Day      `json:"day"`
	MealType    models.MealType `json:"mealType"`
	IsAvailable bool            `json:"isAvailable"`
}

// FoodMenuService enforces the domain rules over the repository primitives.
type FoodMenuService interface {
	GetFoodMenu(ctx context.Context, facilityID, hostelID string) (*models.ResolvedFoodMenu, error)
	GetProviderMenus(ctx context.Context, providerID string) ([]models.ResolvedFoodMenu, error)
	GetDayMenu(ctx context.Context, menuID string, day models.Day) (*models.ResolvedDayMenu, error)
	UpdateFoodMenu(ctx context.Context, menuID string, partial map[string]interface{}) (*models.ResolvedFoodMenu, error)
	DeleteFoodMenu(ctx context.Context, itemID, menuID string, day models.Day, meal models.MealType) (*models.ResolvedFoodMenu, error)
	AddSingleDayMenu(ctx context.Context, providerID string, in AddSingleDayMenuInput) (*models.ResolvedFoodMenu, error)
	CancelMeal(ctx context.Context, menuID string, in CancelMealInput) (*models.ResolvedFoodMenu, string, error)
}

// DefaultFoodMenuService is the production implementation. Now is injectable
// so the same-day lock can be tested against a fixed calendar day.
type DefaultFoodMenuService struct {
	Repo foodmenuRepo.FoodMenuRepository
	Now  func() time.Time
}

func (s *DefaultFoodMenuService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
