// File: database/repository/foodmenu/updates.go
package foodmenuRepo

import (
	"context"
	"fmt"
	"time"

	"hostelhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// slotPath builds the positional update path for a day/meal coordinate. Day
// selection happens in the filter ("menu.day"); the positional operator then
// addresses the matched element. Both arguments come from closed enum sets.
func slotPath(meal models.MealType, field string) string {
	return "menu.$.meals." + string(meal) + "." + field
}

// setSlotField applies an addressed $set on one slot field. Returns false when
// no document matched the menu id + day pair.
func (r *mongoFoodMenuRepo) setSlotField(ctx context.Context, menuID string, day models.Day, meal models.MealType, field string, value interface{}) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": menuID, "menu.day": string(day)}
	update := bson.M{"$set": bson.M{
		slotPath(meal, field): value,
		"updatedAt":           time.Now(),
	}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to update food menu %s: %w", menuID, err)
	}
	return res.MatchedCount > 0, nil
}

func (r *mongoFoodMenuRepo) UpdateDayMeal(ctx context.Context, menuID string, day models.Day, meal models.MealType, itemIDs []string) (*models.ResolvedFoodMenu, error) {
	matched, err := r.setSlotField(ctx, menuID, day, meal, "items", itemIDs)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, nil
	}
	return r.GetByID(ctx, menuID)
}

func (r *mongoFoodMenuRepo) SetMealAvailability(ctx context.Context, menuID string, day models.Day, meal models.MealType, available bool) (*models.ResolvedFoodMenu, error) {
	matched, err := r.setSlotField(ctx, menuID, day, meal, "isAvailable", available)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, nil
	}
	return r.GetByID(ctx, menuID)
}

// RemoveItemFromDayMeal pulls every occurrence of the item out of the one
// addressed slot. Other days and slots referencing the same item are left
// untouched.
func (r *mongoFoodMenuRepo) RemoveItemFromDayMeal(ctx context.Context, itemID, menuID string, day models.Day, meal models.MealType) (*models.ResolvedFoodMenu, error) {
	uctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": menuID, "menu.day": string(day)}
	update := bson.M{
		"$pull": bson.M{slotPath(meal, "items"): itemID},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	res, err := r.coll.UpdateOne(uctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("failed to remove item from food menu %s: %w", menuID, err)
	}
	if res.MatchedCount == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, menuID)
}

// UpdateWholeMenu replaces only the supplied subfields on the aggregate.
func (r *mongoFoodMenuRepo) UpdateWholeMenu(ctx context.Context, menuID string, partial bson.M) (*models.ResolvedFoodMenu, error) {
	uctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	for k, v := range partial {
		set[k] = v
	}

	res, err := r.coll.UpdateOne(uctx, bson.M{"id": menuID}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("failed to update food menu %s: %w", menuID, err)
	}
	if res.MatchedCount == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, menuID)
}
