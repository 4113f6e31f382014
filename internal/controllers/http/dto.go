package http

import "fishburger-backend/internal/domain"

type CreateOrderRequest struct {
	Items    []domain.OrderItem `json:"items"`
	Total    float64            `json:"total"`
	Customer string             `json:"customer"`
	Location string             `json:"location"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
	Actor  string `json:"actor"`
}

type RecommendRequest struct {
	Craving string `json:"craving"`
}
