// File: database/repository/foodmenu/crud.go
package foodmenuRepo

import (
	"context"
	"fmt"
	"time"

	"hostelhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// findOneRaw fetches a single aggregate matching the filter. A missing
// document is a nil result, not an error.
func (r *mongoFoodMenuRepo) findOneRaw(ctx context.Context, filter bson.M) (*models.FoodMenu, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var fm models.FoodMenu
	err := r.coll.FindOne(ctx, filter).Decode(&fm)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch food menu: %w", err)
	}
	return &fm, nil
}

func (r *mongoFoodMenuRepo) GetByFacility(ctx context.Context, facilityID, hostelID string) (*models.ResolvedFoodMenu, error) {
	fm, err := r.findOneRaw(ctx, bson.M{"facilityId": facilityID, "hostelId": hostelID})
	if err != nil || fm == nil {
		return nil, err
	}
	return r.resolve(ctx, fm)
}

func (r *mongoFoodMenuRepo) GetByID(ctx context.Context, menuID string) (*models.ResolvedFoodMenu, error) {
	fm, err := r.findOneRaw(ctx, bson.M{"id": menuID})
	if err != nil || fm == nil {
		return nil, err
	}
	return r.resolve(ctx, fm)
}

func (r *mongoFoodMenuRepo) GetByProvider(ctx context.Context, providerID string) ([]models.ResolvedFoodMenu, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"providerId": providerID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch provider food menus: %w", err)
	}
	defer cursor.Close(ctx)

	var menus []models.FoodMenu
	if err := cursor.All(ctx, &menus); err != nil {
		return nil, fmt.Errorf("error decoding food menus: %w", err)
	}

	resolved := make([]models.ResolvedFoodMenu, 0, len(menus))
	for i := range menus {
		rm, err := r.resolve(ctx, &menus[i])
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, *rm)
	}
	return resolved, nil
}

// GetDaySlice returns only the matching day's sub-document via a positional
// projection, or nil when the menu or day does not exist.
func (r *mongoFoodMenuRepo) GetDaySlice(ctx context.Context, menuID string, day models.Day) (*models.ResolvedDayMenu, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": menuID, "menu.day": string(day)}
	proj := options.FindOne().SetProjection(bson.M{"menu.$": 1})

	var slice struct {
		Menu []models.DayMenu `bson:"menu"`
	}
	err := r.coll.FindOne(ctx, filter, proj).Decode(&slice)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch day menu: %w", err)
	}
	if len(slice.Menu) == 0 {
		return nil, nil
	}
	return r.resolveDay(ctx, slice.Menu[0])
}
