package domain

import (
	"strings"
	"time"
)

type ProductStatus string

const (
	StatusInStock    ProductStatus = "IN_STOCK"
	StatusOutOfStock ProductStatus = "OUT_OF_STOCK"
)

const (
	GenderMen   = "MEN"
	GenderWomen = "WOMEN"
)

type CategoryRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Product struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Price       float64       `json:"price"`
	Status      ProductStatus `json:"status"`
	Category    CategoryRef   `json:"category"`
	Color       string        `json:"color"`
	Size        string        `json:"size"`
	Gender      string        `json:"gender"`
	ImageURL    string        `json:"imageUrl"`
	Description string        `json:"description"`
}

// InStock compares the status case-insensitively; the backend is not
// consistent about casing.
func (p Product) InStock() bool {
	return strings.EqualFold(string(p.Status), string(StatusInStock))
}

type Category struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// CartItem carries the full product snapshot as returned by the backend.
// Quantity is always >= 1; a quantity below 1 means removal, never a
// zero or negative entry.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

func (i CartItem) Subtotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

func IsValidOrderStatus(status OrderStatus) bool {
	switch status {
	case OrderPending, OrderCompleted, OrderCancelled:
		return true
	default:
		return false
	}
}

type OrderUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type Order struct {
	ID          int         `json:"id"`
	User        *OrderUser  `json:"user,omitempty"`
	TotalAmount float64     `json:"totalAmount"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	Carts       []CartItem  `json:"carts"`
}

// PaymentOrder is the gateway order handed to the external checkout
// widget. The payment endpoints exchange raw JSON, not the usual
// {data,message,success} envelope.
type PaymentOrder struct {
	ID       string  `json:"id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// PaymentVerification carries the checkout widget's callback fields back
// to the backend for signature verification.
type PaymentVerification struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
	UserID    string `json:"userId"`
}
