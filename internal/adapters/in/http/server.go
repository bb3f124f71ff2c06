// Package http is the inbound REST adapter. It binds JSON contracts,
// builds commands and queries, and maps application errors to status
// codes. Routing, auth middleware and swagger live here; business rules
// do not.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/jwtauth"
)

// Handlers bundles every command and query handler the server exposes.
type Handlers struct {
	Login              commands.LoginCommandHandler
	RefreshAccessToken commands.RefreshAccessTokenCommandHandler

	CreateOrder           commands.CreateOrderCommandHandler
	UpdateOrderTotals     commands.UpdateOrderTotalsCommandHandler
	ConfirmOrder          commands.ConfirmOrderCommandHandler
	ShipOrder             commands.ShipOrderCommandHandler
	DeliverOrder          commands.DeliverOrderCommandHandler
	CancelOrder           commands.CancelOrderCommandHandler
	UpdateDeliveryAddress commands.UpdateDeliveryAddressCommandHandler

	CreateProduct        commands.CreateProductCommandHandler
	ChangeProductPrice   commands.ChangeProductPriceCommandHandler
	ApplyProductDiscount commands.ApplyProductDiscountCommandHandler
	ToggleProductStatus  commands.ToggleProductStatusCommandHandler
	DeleteProduct        commands.DeleteProductCommandHandler

	CreateSupplier commands.CreateSupplierCommandHandler
	UpdateSupplier commands.UpdateSupplierCommandHandler
	DeleteSupplier commands.DeleteSupplierCommandHandler

	CreateUser     commands.CreateUserCommandHandler
	UpdateUser     commands.UpdateUserCommandHandler
	ChangeUserRole commands.ChangeUserRoleCommandHandler
	DeleteUser     commands.DeleteUserCommandHandler

	GetAllOrders        queries.GetAllOrdersQueryHandler
	GetOrderByID        queries.GetOrderByIDQueryHandler
	GetOrdersByCustomer queries.GetOrdersByCustomerQueryHandler
	GetAllProducts      queries.GetAllProductsQueryHandler
	GetProductByID      queries.GetProductByIDQueryHandler
	GetAllSuppliers     queries.GetAllSuppliersQueryHandler
	GetSupplierByID     queries.GetSupplierByIDQueryHandler
	GetAllUsers         queries.GetAllUsersQueryHandler
	GetUserByID         queries.GetUserByIDQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	issuer   *jwtauth.TokenIssuer
}

// NewServer creates the HTTP server facade.
func NewServer(handlers Handlers, issuer *jwtauth.TokenIssuer) *Server {
	return &Server{
		handlers: handlers,
		issuer:   issuer,
	}
}

// RegisterRoutes mounts all routes on the echo instance. Login, refresh,
// health and swagger are public; everything else sits behind the JWT
// middleware.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")
	api.POST("/auth/login", s.Login)
	api.POST("/auth/refresh", s.RefreshAccessToken)

	protected := api.Group("", JWTMiddleware(s.issuer))

	protected.GET("/orders", s.GetAllOrders)
	protected.POST("/orders", s.CreateOrder)
	protected.GET("/orders/:id", s.GetOrderByID)
	protected.GET("/customers/:id/orders", s.GetOrdersByCustomer)
	protected.PUT("/orders/:id/totals", s.UpdateOrderTotals)
	protected.PUT("/orders/:id/address", s.UpdateDeliveryAddress)
	protected.POST("/orders/:id/confirm", s.ConfirmOrder)
	protected.POST("/orders/:id/ship", s.ShipOrder)
	protected.POST("/orders/:id/deliver", s.DeliverOrder)
	protected.POST("/orders/:id/cancel", s.CancelOrder)

	protected.GET("/products", s.GetAllProducts)
	protected.POST("/products", s.CreateProduct)
	protected.GET("/products/:id", s.GetProductByID)
	protected.PUT("/products/:id/price", s.ChangeProductPrice)
	protected.POST("/products/:id/discount", s.ApplyProductDiscount)
	protected.PUT("/products/:id/status", s.ToggleProductStatus)
	protected.DELETE("/products/:id", s.DeleteProduct)

	protected.GET("/suppliers", s.GetAllSuppliers)
	protected.POST("/suppliers", s.CreateSupplier)
	protected.GET("/suppliers/:id", s.GetSupplierByID)
	protected.PUT("/suppliers/:id", s.UpdateSupplier)
	protected.DELETE("/suppliers/:id", s.DeleteSupplier)

	protected.GET("/users", s.GetAllUsers)
	protected.POST("/users", s.CreateUser)
	protected.GET("/users/:id", s.GetUserByID)
	protected.PUT("/users/:id", s.UpdateUser)
	protected.PUT("/users/:id/role", s.ChangeUserRole)
	protected.DELETE("/users/:id", s.DeleteUser)
}

// pathID parses the :id path parameter into a kernel.UUID. Malformed ids
// map to 400 through the errs family.
func pathID(ctx echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}

	return id, nil
}
