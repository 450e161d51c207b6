// File: models/menuitem.go
package models

import "time"

// MenuItemSummary is the narrow projection of an externally-owned menu item:
// id, name and the raw image storage key. On read paths the image key is
// swapped for a signed URL; items without a key serialize a null image.
type MenuItemSummary struct {
	ID    string  `bson:"id" json:"_id"`
	Name  string  `bson:"name" json:"name"`
	Image *string `bson:"image,omitempty" json:"image"`
}

// ResolvedMealSlot mirrors MealSlot with item references expanded into
// summaries.
type ResolvedMealSlot struct {
	Items       []MenuItemSummary `bson:"items" json:"items"`
	IsAvailable bool              `bson:"isAvailable" json:"isAvailable"`
}

// ResolvedDayMeals keys the three resolved slots of a day.
type ResolvedDayMeals struct {
	Morning ResolvedMealSlot `bson:"morning" json:"morning"`
	Noon    ResolvedMealSlot `bson:"noon" json:"noon"`
	Night   ResolvedMealSlot `bson:"night" json:"night"`
}

// SlotsInOrder returns the three slots in serving order for in-place walks.
func (dm *ResolvedDayMeals) SlotsInOrder() [3]*ResolvedMealSlot {
	return [3]*ResolvedMealSlot{&dm.Morning, &dm.Noon, &dm.Night}
}

// ResolvedDayMenu is one weekday's entry with items expanded.
type ResolvedDayMenu struct {
	Day   Day              `bson:"day" json:"day"`
	Meals ResolvedDayMeals `bson:"meals" json:"meals"`
}

// ResolvedFoodMenu is the read model handed to callers: the aggregate with
// every item reference resolved into its summary.
type ResolvedFoodMenu struct {
	ID         string            `json:"_id"`
	ProviderID string            `json:"providerId"`
	FacilityID string            `json:"facilityId"`
	HostelID   string            `json:"hostelId"`
	Menu       []ResolvedDayMenu `json:"menu"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}
