// File: database/repository/foodmenu/indexes.go
package foodmenuRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the foodmenus collection.
// The unique facility+hostel index backs the at-most-one-menu invariant the
// lazy bootstrap relies on.
func (r *mongoFoodMenuRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "facilityId", Value: 1}, {Key: "hostelId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_facility_hostel"),
		},
		{
			Keys:    bson.D{{Key: "providerId", Value: 1}},
			Options: options.Index().SetName("provider_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create food menu indexes: %w", err)
	}
	return nil
}
