package services

import "errors"

var (
	// ErrProductNotFound is returned when a product id or name does not
	// match any catalog row.
	ErrProductNotFound = errors.New("product not found")

	// ErrInsufficientStock is returned when an order demands more stock
	// than the product has remaining.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrDuplicateProduct is returned when a product name is already taken.
	ErrDuplicateProduct = errors.New("product name already exists")

	// ErrInvalidCredentials is returned on a failed admin login.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrAdminNotConfigured is returned when ADMIN_USERNAME or
	// ADMIN_PASSWORD_HASH is missing from the configuration.
	ErrAdminNotConfigured = errors.New("admin credentials not configured")

	// ErrOrderNotFound is returned when an order id does not exist.
	ErrOrderNotFound = errors.New("order not found")
)
