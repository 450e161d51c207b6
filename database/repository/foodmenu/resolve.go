// File: database/repository/foodmenu/resolve.go
package foodmenuRepo

import (
	"context"

	"hostelhub/models"
)

// resolve expands every item reference in the aggregate into its summary with
// a single batch lookup against the item store. References to items that no
// longer exist are dropped from the view.
func (r *mongoFoodMenuRepo) resolve(ctx context.Context, fm *models.FoodMenu) (*models.ResolvedFoodMenu, error) {
	ids := make([]string, 0)
	seen := make(map[string]struct{})
	for di := range fm.Menu {
		for _, meal := range models.MealTypes {
			for _, id := range fm.Menu[di].Meals.Slot(meal).Items {
				if _, ok := seen[id]; !ok {
					seen[id] = struct{}{}
					ids = append(ids, id)
				}
			}
		}
	}

	byID, err := r.lookupItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := models.ResolvedFoodMenu{
		ID:         fm.ID,
		ProviderID: fm.ProviderID,
		FacilityID: fm.FacilityID,
		HostelID:   fm.HostelID,
		Menu:       make([]models.ResolvedDayMenu, 0, len(fm.Menu)),
		CreatedAt:  fm.CreatedAt,
		UpdatedAt:  fm.UpdatedAt,
	}
	for di := range fm.Menu {
		out.Menu = append(out.Menu, resolveDayWith(fm.Menu[di], byID))
	}
	return &out, nil
}

// resolveDay expands a single day sub-document.
func (r *mongoFoodMenuRepo) resolveDay(ctx context.Context, dm models.DayMenu) (*models.ResolvedDayMenu, error) {
	ids := make([]string, 0)
	for _, meal := range models.MealTypes {
		ids = append(ids, dm.Meals.Slot(meal).Items...)
	}
	byID, err := r.lookupItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	resolved := resolveDayWith(dm, byID)
	return &resolved, nil
}

func (r *mongoFoodMenuRepo) lookupItems(ctx context.Context, ids []string) (map[string]models.MenuItemSummary, error) {
	items, err := r.items.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.MenuItemSummary, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	return byID, nil
}

func resolveDayWith(dm models.DayMenu, byID map[string]models.MenuItemSummary) models.ResolvedDayMenu {
	out := models.ResolvedDayMenu{Day: dm.Day}
	targets := out.Meals.SlotsInOrder()
	for i, meal := range models.MealTypes {
		slot := dm.Meals.Slot(meal)
		resolved := models.ResolvedMealSlot{
			Items:       make([]models.MenuItemSummary, 0, len(slot.Items)),
			IsAvailable: slot.IsAvailable,
		}
		for _, id := range slot.Items {
			if item, ok := byID[id]; ok {
				resolved.Items = append(resolved.Items, item)
			}
		}
		*targets[i] = resolved
	}
	return out
}
