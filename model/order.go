package model

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/td051191/MinhPhat/constant"
)

// Quantity decodes leniently: JSON numbers and numeric strings are accepted,
// anything else (null, booleans, junk text) decodes to zero and is later
// clamped to the minimum order quantity. Floats truncate.
type Quantity int

func (q *Quantity) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*q = 0
			return nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			*q = 0
			return nil
		}
		*q = Quantity(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		*q = 0
		return nil
	}
	*q = Quantity(f)
	return nil
}

// Clamped returns the quantity forced into the allowed order range.
func (q Quantity) Clamped() int {
	n := int(q)
	if n < constant.MinOrderQuantity {
		return constant.MinOrderQuantity
	}
	if n > constant.MaxOrderQuantity {
		return constant.MaxOrderQuantity
	}
	return n
}

// CartLineRequest is a single product id + quantity pair submitted at checkout.
type CartLineRequest struct {
	ID       string   `json:"id" validate:"required"`
	Quantity Quantity `json:"quantity"`
}

type CustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type CheckoutRequest struct {
	Items         []CartLineRequest `json:"items"`
	PaymentMethod string            `json:"paymentMethod"`
	Customer      CustomerRequest   `json:"customer"`
}

type CheckoutResponse struct {
	OrderID string               `json:"orderId"`
	Status  constant.OrderStatus `json:"status"`
}

// OrderItemSnapshot freezes the product name and unit price at order time,
// decoupled from later product edits.
type OrderItemSnapshot struct {
	ProductID string  `json:"productId"`
	NameEn    string  `json:"name_en"`
	NameVi    string  `json:"name_vi"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// OrderDraft is everything the checkout flow decides before persistence
// assigns identity.
type OrderDraft struct {
	Status        constant.OrderStatus
	TotalAmount   float64
	Currency      string
	CustomerName  string
	Email         *string
	Phone         *string
	Address       string
	PaymentMethod string
	Items         []OrderItemSnapshot
}

type Order struct {
	ID            string               `json:"id"`
	Status        constant.OrderStatus `json:"status"`
	TotalAmount   float64              `json:"totalAmount"`
	Currency      string               `json:"currency"`
	CustomerName  string               `json:"customerName"`
	Email         *string              `json:"email"`
	Phone         *string              `json:"phone"`
	Address       string               `json:"address"`
	PaymentMethod string               `json:"paymentMethod"`
	CreatedAt     time.Time            `json:"createdAt"`
	Items         []OrderItemSnapshot  `json:"items"`
}

type OrderListResponse struct {
	Orders []Order `json:"orders"`
}
