package http

import (
	"time"

	"github.com/shopspring/decimal"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/product"
	"backoffice/internal/core/domain/model/supplier"
	"backoffice/internal/core/domain/model/user"
)

// ErrorResponse is the JSON error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// AuthResponse carries a freshly issued token pair.
type AuthResponse struct {
	AccessToken           string       `json:"accessToken"`
	AccessTokenExpiresAt  time.Time    `json:"accessTokenExpiresAt"`
	RefreshToken          string       `json:"refreshToken"`
	RefreshTokenExpiresAt time.Time    `json:"refreshTokenExpiresAt"`
	User                  UserResponse `json:"user"`
}

func toAuthResponse(result commands.AuthResult) AuthResponse {
	return AuthResponse{
		AccessToken:           result.AccessToken,
		AccessTokenExpiresAt:  result.AccessTokenExpiresAt,
		RefreshToken:          result.RefreshToken,
		RefreshTokenExpiresAt: result.RefreshTokenExpiresAt,
		User:                  toUserResponse(result.User),
	}
}

type createOrderRequest struct {
	CustomerID      string `json:"customerId"`
	DeliveryAddress string `json:"deliveryAddress"`
	Notes           string `json:"notes"`
}

type updateOrderTotalsRequest struct {
	AmountExcludingTax decimal.Decimal `json:"amountExcludingTax"`
	AmountIncludingTax decimal.Decimal `json:"amountIncludingTax"`
}

type updateDeliveryAddressRequest struct {
	DeliveryAddress string `json:"deliveryAddress"`
}

// OrderResponse is the order JSON shape.
type OrderResponse struct {
	ID                 string          `json:"id"`
	OrderNumber        string          `json:"orderNumber"`
	OrderDate          time.Time       `json:"orderDate"`
	CustomerID         string          `json:"customerId"`
	AmountExcludingTax decimal.Decimal `json:"amountExcludingTax"`
	AmountIncludingTax decimal.Decimal `json:"amountIncludingTax"`
	Status             string          `json:"status"`
	DeliveryAddress    string          `json:"deliveryAddress"`
	Notes              string          `json:"notes"`
}

func toOrderResponse(aggregate *order.Order) OrderResponse {
	return OrderResponse{
		ID:                 aggregate.ID().String(),
		OrderNumber:        aggregate.OrderNumber(),
		OrderDate:          aggregate.OrderDate(),
		CustomerID:         aggregate.CustomerID().String(),
		AmountExcludingTax: aggregate.TotalAmountExcludingTax(),
		AmountIncludingTax: aggregate.TotalAmountIncludingTax(),
		Status:             aggregate.Status().String(),
		DeliveryAddress:    aggregate.DeliveryAddress(),
		Notes:              aggregate.Notes(),
	}
}

func fromOrderReadModel(model queries.OrderResponse) OrderResponse {
	return OrderResponse{
		ID:                 model.ID.String(),
		OrderNumber:        model.OrderNumber,
		OrderDate:          model.OrderDate,
		CustomerID:         model.CustomerID.String(),
		AmountExcludingTax: model.AmountExcludingTax,
		AmountIncludingTax: model.AmountIncludingTax,
		Status:             model.Status,
		DeliveryAddress:    model.DeliveryAddress,
		Notes:              model.Notes,
	}
}

type createProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	VATRate     decimal.Decimal `json:"vatRate"`
	SupplierID  *string         `json:"supplierId"`
}

type changePriceRequest struct {
	Price decimal.Decimal `json:"price"`
}

type applyDiscountRequest struct {
	Percentage decimal.Decimal `json:"percentage"`
}

type toggleStatusRequest struct {
	IsActive bool `json:"isActive"`
}

// ProductResponse is the product JSON shape.
type ProductResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Price             decimal.Decimal `json:"price"`
	VATRate           decimal.Decimal `json:"vatRate"`
	PriceIncludingTax decimal.Decimal `json:"priceIncludingTax"`
	IsActive          bool            `json:"isActive"`
	SupplierID        *string         `json:"supplierId,omitempty"`
}

func toProductResponse(aggregate *product.Product) ProductResponse {
	response := ProductResponse{
		ID:          aggregate.ID().String(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price(),
		VATRate:     aggregate.VATRate(),
		IsActive:    aggregate.IsActive(),
	}

	if breakdown, err := aggregate.PriceBreakdown(); err == nil {
		response.PriceIncludingTax = breakdown.AmountIncludingTax()
	} else {
		response.PriceIncludingTax = aggregate.Price()
	}

	if supplierID := aggregate.SupplierID(); supplierID != nil {
		s := supplierID.String()
		response.SupplierID = &s
	}

	return response
}

func fromProductReadModel(model queries.ProductResponse) ProductResponse {
	response := ProductResponse{
		ID:                model.ID.String(),
		Name:              model.Name,
		Description:       model.Description,
		Price:             model.Price,
		VATRate:           model.VATRate,
		PriceIncludingTax: model.PriceIncludingTax,
		IsActive:          model.IsActive,
	}

	if model.SupplierID != nil {
		s := model.SupplierID.String()
		response.SupplierID = &s
	}

	return response
}

type supplierRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

// SupplierResponse is the supplier JSON shape.
type SupplierResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	IsActive    bool   `json:"isActive"`
}

func toSupplierResponse(aggregate *supplier.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:          aggregate.ID().String(),
		Name:        aggregate.Name(),
		Email:       aggregate.Email(),
		PhoneNumber: aggregate.PhoneNumber(),
		Address:     aggregate.Address(),
		IsActive:    aggregate.IsActive(),
	}
}

func fromSupplierReadModel(model queries.SupplierResponse) SupplierResponse {
	return SupplierResponse{
		ID:          model.ID.String(),
		Name:        model.Name,
		Email:       model.Email,
		PhoneNumber: model.PhoneNumber,
		Address:     model.Address,
		IsActive:    model.IsActive,
	}
}

type createUserRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	Password  string `json:"password"`
}

type updateUserRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type changeRoleRequest struct {
	Role string `json:"role"`
}

// UserResponse is the account JSON shape. The password hash is never
// serialized.
type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	FullName  string `json:"fullName"`
	Role      string `json:"role"`
	IsActive  bool   `json:"isActive"`
}

func toUserResponse(aggregate *user.User) UserResponse {
	return UserResponse{
		ID:        aggregate.ID().String(),
		Username:  aggregate.Username(),
		Email:     aggregate.Email(),
		FirstName: aggregate.FirstName(),
		LastName:  aggregate.LastName(),
		FullName:  aggregate.FullName(),
		Role:      aggregate.Role(),
		IsActive:  aggregate.IsActive(),
	}
}

func fromUserReadModel(model queries.UserResponse) UserResponse {
	return UserResponse{
		ID:        model.ID.String(),
		Username:  model.Username,
		Email:     model.Email,
		FirstName: model.FirstName,
		LastName:  model.LastName,
		FullName:  model.FullName,
		Role:      model.Role,
		IsActive:  model.IsActive,
	}
}
