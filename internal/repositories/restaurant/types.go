package restaurant

import "github.com/KirkDiggler/eatwhat/internal/models"

type AddRestaurantInput struct {
	Restaurant *models.Restaurant
}

type GetRestaurantInput struct {
	SessionCode  string
	RestaurantID string
}

type GetRestaurantsInput struct {
	SessionCode string
}

type RemoveRestaurantInput struct {
	SessionCode  string
	RestaurantID string
}

type CountRestaurantsInput struct {
	SessionCode string
}
