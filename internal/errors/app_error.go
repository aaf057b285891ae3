package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code       string
	Message    string
	Detail     string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

const (
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"
	ErrCodeProductUnavailable = "PRODUCT_UNAVAILABLE"
	ErrCodeStockExceeded      = "STOCK_EXCEEDED"
	ErrCodeCartLimitExceeded  = "CART_LIMIT_EXCEEDED"
	ErrCodeEmptyCart          = "EMPTY_CART"
	ErrCodePersistence        = "PERSISTENCE_ERROR"
	ErrCodeOrderSubmission    = "ORDER_SUBMISSION_FAILED"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

func ValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, http.StatusBadRequest)
}

func BadRequestError(message string) *AppError {
	return NewAppError(ErrCodeBadRequest, message, http.StatusBadRequest)
}

func NotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, http.StatusNotFound)
}

func ProductNotFoundError(productID int64) *AppError {
	return NewAppError(ErrCodeProductNotFound, fmt.Sprintf("Product %d not found", productID), http.StatusNotFound)
}

func ProductUnavailableError(name string) *AppError {
	return NewAppError(ErrCodeProductUnavailable, fmt.Sprintf("%s is currently unavailable", name), http.StatusConflict)
}

// StockExceededError reports a rejected over-stock addition. maxAddable is the
// largest delta that would have been accepted.
func StockExceededError(name string, maxAddable int) *AppError {
	return NewAppError(ErrCodeStockExceeded, fmt.Sprintf("Not enough stock for %s", name), http.StatusConflict).
		WithDetail(fmt.Sprintf("You can add at most %d more", maxAddable))
}

func CartLimitExceededError(limit int) *AppError {
	return NewAppError(ErrCodeCartLimitExceeded, fmt.Sprintf("Cart cannot hold more than %d items", limit), http.StatusConflict)
}

func EmptyCartError() *AppError {
	return NewAppError(ErrCodeEmptyCart, "Cart is empty", http.StatusBadRequest)
}

func PersistenceError(message string) *AppError {
	return NewAppError(ErrCodePersistence, message, http.StatusInternalServerError)
}

func OrderSubmissionError(message string) *AppError {
	return NewAppError(ErrCodeOrderSubmission, message, http.StatusBadGateway)
}

func InternalError(message string) *AppError {
	return NewAppError(ErrCodeInternal, message, http.StatusInternalServerError)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}
