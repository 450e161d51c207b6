// File: models/foodmenu_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFoodMenuBuildsFullWeekSkeleton(t *testing.T) {
	fm := NewFoodMenu("prov-1", "fac-1", "hos-1")

	assert.NotEmpty(t, fm.ID)
	assert.Equal(t, "prov-1", fm.ProviderID)
	assert.Equal(t, "fac-1", fm.FacilityID)
	assert.Equal(t, "hos-1", fm.HostelID)

	require.Len(t, fm.Menu, 7)
	for i, dm := range fm.Menu {
		assert.Equal(t, WeekDays[i], dm.Day)
		for _, meal := range MealTypes {
			slot := dm.Meals.Slot(meal)
			assert.True(t, slot.IsAvailable, "day %s meal %s should start available", dm.Day, meal)
			assert.NotNil(t, slot.Items)
			assert.Empty(t, slot.Items)
		}
	}
}

func TestNewFoodMenuAssignsUniqueIDs(t *testing.T) {
	a := NewFoodMenu("p", "f", "h")
	b := NewFoodMenu("p", "f", "h")
	assert.NotEqual(t, a.ID, b.ID)
}

func TestParseDay(t *testing.T) {
	tests := []struct {
		in    string
		want  Day
		valid bool
	}{
		{"Monday", Monday, true},
		{"Sunday", Sunday, true},
		{"monday", "", false},
		{"Noday", "", false},
		{"", "", false},
	}
	for _, tc := range tests {
		got, ok := ParseDay(tc.in)
		assert.Equal(t, tc.valid, ok, "ParseDay(%q)", tc.in)
		assert.Equal(t, tc.want, got, "ParseDay(%q)", tc.in)
	}
}

func TestParseMealType(t *testing.T) {
	tests := []struct {
		in    string
		want  MealType
		valid bool
	}{
		{"morning", Morning, true},
		{"noon", Noon, true},
		{"night", Night, true},
		{"brunch", "", false},
		{"Morning", "", false},
	}
	for _, tc := range tests {
		got, ok := ParseMealType(tc.in)
		assert.Equal(t, tc.valid, ok, "ParseMealType(%q)", tc.in)
		assert.Equal(t, tc.want, got, "ParseMealType(%q)", tc.in)
	}
}

func TestDayMealsSlotAddressing(t *testing.T) {
	dm := DayMeals{
		Morning: MealSlot{Items: []string{"a"}},
		Noon:    MealSlot{Items: []string{"b"}},
		Night:   MealSlot{Items: []string{"c"}},
	}
	assert.Equal(t, []string{"a"}, dm.Slot(Morning).Items)
	assert.Equal(t, []string{"b"}, dm.Slot(Noon).Items)
	assert.Equal(t, []string{"c"}, dm.Slot(Night).Items)
}

func TestDayMealsInputSlots(t *testing.T) {
	in := DayMealsInput{Morning: []string{"a", "b"}, Night: []string{"c"}}
	slots := in.Slots()

	assert.Len(t, slots, 2)
	assert.Equal(t, []string{"a", "b"}, slots[Morning])
	assert.Equal(t, []string{"c"}, slots[Night])
	_, hasNoon := slots[Noon]
	assert.False(t, hasNoon)
	assert.False(t, in.IsEmpty())
	assert.True(t, DayMealsInput{}.IsEmpty())
}
