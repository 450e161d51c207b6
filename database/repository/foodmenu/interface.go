// File: database/repository/foodmenu/interface.go
package foodmenuRepo

import (
	"context"

	"hostelhub/database"
	menuitemRepo "hostelhub/database/repository/menuitem"
	"hostelhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FoodMenuRepository owns persistence of the weekly menu aggregate. Every
// write targets a single day/meal coordinate through an addressed update, so
// concurrent writers can never clobber unrelated slots. A nil result with a
// nil error means "not found"; classification is left to the service.
type FoodMenuRepository interface {
	GetByFacility(ctx context.Context, facilityID, hostelID string) (*models.ResolvedFoodMenu, error)
	GetByID(ctx context.Context, menuID string) (*models.ResolvedFoodMenu, error)
	GetByProvider(ctx context.Context, providerID string) ([]models.ResolvedFoodMenu, error)
	GetDaySlice(ctx context.Context, menuID string, day models.Day) (*models.ResolvedDayMenu, error)
	UpdateWholeMenu(ctx context.Context, menuID string, partial bson.M) (*models.ResolvedFoodMenu, error)
	UpdateDayMeal(ctx context.Context, menuID string, day models.Day, meal models.MealType, itemIDs []string) (*models.ResolvedFoodMenu, error)
	SetMealAvailability(ctx context.Context, menuID string, day models.Day, meal models.MealType, available bool) (*models.ResolvedFoodMenu, error)
	RemoveItemFromDayMeal(ctx context.Context, itemID, menuID string, day models.Day, meal models.MealType) (*models.ResolvedFoodMenu, error)
	AddSingleDayMenu(ctx context.Context, providerID, facilityID, hostelID string, day models.Day, meals models.DayMealsInput) (*models.ResolvedFoodMenu, error)
	EnsureIndexes(ctx context.Context) error
}

// menuCollection is the subset of *mongo.Collection operations the repository
// uses, so the update and bootstrap paths can be exercised without a server.
type menuCollection interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	Indexes() mongo.IndexView
}

type mongoFoodMenuRepo struct {
	coll  menuCollection
	items menuitemRepo.MenuItemRepository
}

// NewMongoFoodMenuRepo constructs a MongoDB FoodMenuRepository. The item
// repository is used to expand item references on every read path.
func NewMongoFoodMenuRepo(items menuitemRepo.MenuItemRepository) FoodMenuRepository {
	return &mongoFoodMenuRepo{
		coll:  database.GetDatabase().Collection("foodmenus"),
		items: items,
	}
}
