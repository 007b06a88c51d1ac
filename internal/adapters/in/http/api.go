package http

import (
	"time"

	"logistics/internal/core/application/usecases/queries"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

type RegisterUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

type AddAddressRequest struct {
	Street    string `json:"street"`
	City      string `json:"city"`
	Country   string `json:"country"`
	IsDefault bool   `json:"is_default"`
}

// CreateOrderRequest is shared by the customer and admin paths. CustomerID
// and WorkerID are read on the admin path only.
type CreateOrderRequest struct {
	CustomerID   *openapi_types.UUID `json:"customer_id,omitempty"`
	WorkerID     *openapi_types.UUID `json:"worker_id,omitempty"`
	AddressID    openapi_types.UUID  `json:"address_id"`
	PickupTime   string              `json:"pickup_time"`
	DeliveryTime string              `json:"delivery_time"`
	Price        float64             `json:"price"`
}

type CreateWorkerOrderRequest struct {
	CustomerID   openapi_types.UUID `json:"customer_id"`
	PickupTime   string             `json:"pickup_time"`
	DeliveryTime string             `json:"delivery_time"`
	Price        float64            `json:"price"`
}

type StatusRequest struct {
	Status string `json:"status"`
}

type AssignCustomerRequest struct {
	CustomerID openapi_types.UUID `json:"customer_id"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type MessageResponse struct {
	Message string `json:"message"`
	OrderID string `json:"order_id,omitempty"`
}

type OrderStatusResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

type WorkerStatusResponse struct {
	WorkerID string `json:"worker_id"`
	Status   string `json:"status"`
}

type CancelOrderResponse struct {
	Message         string  `json:"message"`
	OrderID         string  `json:"order_id"`
	CancellationFee float64 `json:"cancellation_fee"`
}

type OrderResponse struct {
	ID              string    `json:"id"`
	CustomerID      string    `json:"customer_id"`
	WorkerID        *string   `json:"worker_id"`
	AddressID       string    `json:"address_id"`
	PickupTime      time.Time `json:"pickup_time"`
	DeliveryTime    time.Time `json:"delivery_time"`
	Status          string    `json:"status"`
	Price           float64   `json:"price"`
	CancellationFee float64   `json:"cancellation_fee"`
	CreatedBy       string    `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type HistoryEntryResponse struct {
	Status    string    `json:"status"`
	ChangedBy string    `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
}

func toOrderResponses(views []queries.OrderView) []OrderResponse {
	out := make([]OrderResponse, len(views))
	for i, v := range views {
		var workerID *string
		if v.WorkerID != nil {
			s := v.WorkerID.String()
			workerID = &s
		}
		out[i] = OrderResponse{
			ID:              v.ID.String(),
			CustomerID:      v.CustomerID.String(),
			WorkerID:        workerID,
			AddressID:       v.AddressID.String(),
			PickupTime:      v.PickupTime,
			DeliveryTime:    v.DeliveryTime,
			Status:          v.Status,
			Price:           v.Price,
			CancellationFee: v.CancellationFee,
			CreatedBy:       v.CreatedBy.String(),
			CreatedAt:       v.CreatedAt,
			UpdatedAt:       v.UpdatedAt,
		}
	}
	return out
}

func toHistoryResponses(entries []queries.StatusHistoryEntry) []HistoryEntryResponse {
	out := make([]HistoryEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = HistoryEntryResponse{
			Status:    e.Status,
			ChangedBy: e.ChangedBy.String(),
			ChangedAt: e.ChangedAt,
		}
	}
	return out
}
