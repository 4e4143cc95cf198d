package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrInvalidCredentials
	ErrEmptyCart
	ErrMissingCustomerInfo
	ErrUnsupportedPayment
	ErrInvalidProduct
	ErrDuplicateEntry
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:             "success",
	ErrInternal:            "internal server error",
	ErrNotFound:            "data not found",
	ErrInvalidRequest:      "invalid request",
	ErrUnauthorize:         "unauthorize request",
	ErrInvalidCredentials:  "invalid email or password",
	ErrEmptyCart:           "no items in cart",
	ErrMissingCustomerInfo: "missing customer info",
	ErrUnsupportedPayment:  "unsupported payment method",
	ErrInvalidProduct:      "invalid product",
	ErrDuplicateEntry:      "entry already exists",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:             http.StatusOK,
	ErrInternal:            http.StatusInternalServerError,
	ErrNotFound:            http.StatusNotFound,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrUnauthorize:         http.StatusUnauthorized,
	ErrInvalidCredentials:  http.StatusUnauthorized,
	ErrEmptyCart:           http.StatusBadRequest,
	ErrMissingCustomerInfo: http.StatusBadRequest,
	ErrUnsupportedPayment:  http.StatusBadRequest,
	ErrInvalidProduct:      http.StatusBadRequest,
	ErrDuplicateEntry:      http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:             "0000",
	ErrInternal:            "0001",
	ErrNotFound:            "0002",
	ErrInvalidRequest:      "0003",
	ErrUnauthorize:         "0004",
	ErrInvalidCredentials:  "0005",
	ErrEmptyCart:           "0006",
	ErrMissingCustomerInfo: "0007",
	ErrUnsupportedPayment:  "0008",
	ErrInvalidProduct:      "0009",
	ErrDuplicateEntry:      "0010",
}
