// File: database/repository/menuitem/crud.go
package menuitemRepo

import (
	"context"
	"fmt"
	"time"

	"hostelhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByIDs batch-fetches item summaries for the given ids. Ids that resolve to
// nothing are simply absent from the result; the projection is deliberately
// narrow (id, name, image key).
func (r *mongoMenuItemRepo) GetByIDs(ctx context.Context, ids []string) ([]models.MenuItemSummary, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": bson.M{"$in": ids}}
	proj := bson.M{"id": 1, "name": 1, "image": 1}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetProjection(proj))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch menu items: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.MenuItemSummary
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("error decoding menu items: %w", err)
	}
	return items, nil
}
