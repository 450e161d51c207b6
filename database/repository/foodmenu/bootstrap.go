// File: database/repository/foodmenu/bootstrap.go
package foodmenuRepo

import (
	"context"
	"fmt"
	"time"

	"hostelhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/sync/errgroup"
)

// AddSingleDayMenu lazily creates the weekly aggregate on first write and
// populates the requested day's slots. The skeleton insert must succeed before
// any population runs; the per-meal updates target disjoint fields and are
// issued concurrently.
func (r *mongoFoodMenuRepo) AddSingleDayMenu(ctx context.Context, providerID, facilityID, hostelID string, day models.Day, meals models.DayMealsInput) (*models.ResolvedFoodMenu, error) {
	existing, err := r.findOneRaw(ctx, bson.M{"facilityId": facilityID, "hostelId": hostelID})
	if err != nil {
		return nil, err
	}

	var menuID string
	if existing != nil {
		menuID = existing.ID
	} else {
		fm := models.NewFoodMenu(providerID, facilityID, hostelID)
		ictx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if _, err := r.coll.InsertOne(ictx, fm); err != nil {
			return nil, fmt.Errorf("failed to create food menu skeleton: %w", err)
		}
		menuID = fm.ID
	}

	g, gctx := errgroup.WithContext(ctx)
	for meal, itemIDs := range meals.Slots() {
		meal, itemIDs := meal, itemIDs
		g.Go(func() error {
			matched, err := r.setSlotField(gctx, menuID, day, meal, "items", itemIDs)
			if err != nil {
				return err
			}
			if !matched {
				return fmt.Errorf("day %s not found in food menu %s", day, menuID)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, menuID)
}
