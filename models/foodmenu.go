// File: models/foodmenu.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Day is one of the seven weekday name literals, in canonical week order
// starting Monday.
type Day string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
	Saturday  Day = "Saturday"
	Sunday    Day = "Sunday"
)

// WeekDays lists the days in canonical order.
var WeekDays = [7]Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseDay validates a raw day string against the fixed 7-name set.
func ParseDay(s string) (Day, bool) {
	for _, d := range WeekDays {
		if string(d) == s {
			return d, true
		}
	}
	return "", false
}

// MealType addresses one of the three slots within a day.
type MealType string

const (
	Morning MealType = "morning"
	Noon    MealType = "noon"
	Night   MealType = "night"
)

// MealTypes lists the slots in serving order.
var MealTypes = [3]MealType{Morning, Noon, Night}

// ParseMealType validates a raw meal-type string.
func ParseMealType(s string) (MealType, bool) {
	for _, m := range MealTypes {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}

// MealSlot holds the item references served in one slot of one day. Items may
// repeat; IsAvailable is the single cancel/restore flag for the slot.
type MealSlot struct {
	Items       []string `bson:"items" json:"items"`
	IsAvailable bool     `bson:"isAvailable" json:"isAvailable"`
}

// DayMeals keys the three slots of a day.
type DayMeals struct {
	Morning MealSlot `bson:"morning" json:"morning"`
	Noon    MealSlot `bson:"noon" json:"noon"`
	Night   MealSlot `bson:"night" json:"night"`
}

// Slot returns the addressed slot; MealType is a closed set so a miss cannot
// happen for parsed values.
func (dm *DayMeals) Slot(meal MealType) *MealSlot {
	switch meal {
	case Morning:
		return &dm.Morning
	case Noon:
		return &dm.Noon
	default:
		return &dm.Night
	}
}

// DayMenu is one weekday's entry in the aggregate.
type DayMenu struct {
	Day   Day      `bson:"day" json:"day"`
	Meals DayMeals `bson:"meals" json:"meals"`
}

// FoodMenu is the weekly menu aggregate. A given facility at a given hostel
// has at most one FoodMenu; the menu array always carries exactly the seven
// days in canonical order.
type FoodMenu struct {
	ID         string    `bson:"id" json:"_id"`
	ProviderID string    `bson:"providerId" json:"providerId"`
	FacilityID string    `bson:"facilityId" json:"facilityId"`
	HostelID   string    `bson:"hostelId" json:"hostelId"`
	Menu       []DayMenu `bson:"menu" json:"menu"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// NewFoodMenu builds the full week skeleton: seven days, three empty slots
// each, everything available.
func NewFoodMenu(providerID, facilityID, hostelID string) FoodMenu {
	now := time.Now()
	menu := make([]DayMenu, 0, len(WeekDays))
	for _, day := range WeekDays {
		menu = append(menu, DayMenu{
			Day: day,
			Meals: DayMeals{
				Morning: MealSlot{Items: []string{}, IsAvailable: true},
				Noon:    MealSlot{Items: []string{}, IsAvailable: true},
				Night:   MealSlot{Items: []string{}, IsAvailable: true},
			},
		})
	}
	return FoodMenu{
		ID:         uuid.New().String(),
		ProviderID: providerID,
		FacilityID: facilityID,
		HostelID:   hostelID,
		Menu:       menu,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// DayMealsInput carries the item-id lists a provider submits for one day.
// Absent or empty slots are skipped.
type DayMealsInput struct {
	Morning []string `json:"morning"`
	Noon    []string `json:"noon"`
	Night   []string `json:"night"`
}

// Slots returns the non-empty slots keyed by meal type.
func (in DayMealsInput) Slots() map[MealType][]string {
	out := make(map[MealType][]string, 3)
	if len(in.Morning) > 0 {
		out[Morning] = in.Morning
	}
	if len(in.Noon) > 0 {
		out[Noon] = in.Noon
	}
	if len(in.Night) > 0 {
		out[Night] = in.Night
	}
	return out
}

// IsEmpty reports whether no slot carries any item.
func (in DayMealsInput) IsEmpty() bool {
	return len(in.Morning) == 0 && len(in.Noon) == 0 && len(in.Night) == 0
}
