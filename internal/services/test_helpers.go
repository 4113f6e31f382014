package services

import (
	"time"

	"fishburger-backend/internal/domain"
)

func makeOrder(id string, status domain.OrderStatus, location string, total float64, ts time.Time, items ...domain.OrderItem) domain.Order {
	return domain.Order{
		ID:        id,
		Items:     items,
		Total:     total,
		Customer:  "Test Customer",
		Location:  location,
		Status:    status,
		Timestamp: ts,
	}
}

func item(name string, price float64) domain.OrderItem {
	return domain.OrderItem{Name: name, Price: price}
}
