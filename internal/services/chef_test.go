package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChefRecommend(t *testing.T) {
	chef := NewChefService()

	tests := []struct {
		name     string
		craving  string
		wantDish string
	}{
		{
			name:     "spicy and crispy",
			craving:  "I want something spicy and crispy",
			wantDish: "Crispy Fish Burger",
		},
		{
			name:     "matching is case-insensitive",
			craving:  "SOMETHING SPICY AND CRISPY",
			wantDish: "Crispy Fish Burger",
		},
		{
			name:     "hungry for a big sandwich",
			craving:  "I'm super hungry, give me a big sandwich",
			wantDish: "Po Boy Sandwich",
		},
		{
			name:     "vegetarian",
			craving:  "something vegetarian please",
			wantDish: "Eggplant Burger",
		},
		{
			name:     "tie breaks on first-defined entry",
			craving:  "something unique", // Msemmen Fish Tacos and Octopus Burger both match
			wantDish: "Msemmen Fish Tacos",
		},
		{
			name:     "no match falls back to the default",
			craving:  "quiero pizza",
			wantDish: "Crispy Fish Burger",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := chef.Recommend(tt.craving)
			assert.Equal(t, tt.wantDish, rec.Dish)
			assert.NotEmpty(t, rec.Description)
			assert.NotEmpty(t, rec.Price)
		})
	}
}

func TestChefRecommendDefaultDescription(t *testing.T) {
	chef := NewChefService()

	rec := chef.Recommend("nothing that matches")
	assert.Equal(t, defaultRecommendation, rec)

	matched := chef.Recommend("crispy")
	assert.NotEqual(t, defaultRecommendation.Description, matched.Description)
}
