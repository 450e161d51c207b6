// File: database/repository/menuitem/interface.go
package menuitemRepo

import (
	"context"

	"hostelhub/database"
	"hostelhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// MenuItemRepository is the read-only boundary to the externally-owned menu
// item store. The food-menu core only ever looks items up; it never mutates
// them.
type MenuItemRepository interface {
	GetByIDs(ctx context.Context, ids []string) ([]models.MenuItemSummary, error)
}

type mongoMenuItemRepo struct {
	coll *mongo.Collection
}

// NewMongoMenuItemRepo constructs a MenuItemRepository over the shared
// menu-items collection.
func NewMongoMenuItemRepo() MenuItemRepository {
	return &mongoMenuItemRepo{
		coll: database.GetDatabase().Collection("menuitems"),
	}
}
