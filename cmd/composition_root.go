package cmd

import (
	"context"
	"fmt"
	"time"

	httpadapter "backoffice/internal/adapters/in/http"
	"backoffice/internal/adapters/out/inmem/orderrepo"
	"backoffice/internal/adapters/out/inmem/productrepo"
	"backoffice/internal/adapters/out/inmem/supplierrepo"
	"backoffice/internal/adapters/out/inmem/tokenrepo"
	"backoffice/internal/adapters/out/inmem/userrepo"
	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/user"
	"backoffice/internal/pkg/jwtauth"
)

type CompositionRoot struct {
	config Config

	orders    *orderrepo.InMemoryOrderRepository
	products  *productrepo.InMemoryProductRepository
	suppliers *supplierrepo.InMemorySupplierRepository
	users     *userrepo.InMemoryUserRepository
	tokens    *tokenrepo.InMemoryRefreshTokenRepository

	issuer *jwtauth.TokenIssuer
}

func NewCompositionRoot(config Config) (*CompositionRoot, error) {
	issuer, err := jwtauth.NewTokenIssuer(
		config.JWTSecret,
		config.JWTIssuer,
		config.JWTAudience,
		time.Duration(config.AccessTokenTTLMinutes)*time.Minute,
	)
	if err != nil {
		return nil, fmt.Errorf("create token issuer: %w", err)
	}

	return &CompositionRoot{
		config:    config,
		orders:    orderrepo.NewInMemoryOrderRepository(),
		products:  productrepo.NewInMemoryProductRepository(),
		suppliers: supplierrepo.NewInMemorySupplierRepository(),
		users:     userrepo.NewInMemoryUserRepository(),
		tokens:    tokenrepo.NewInMemoryRefreshTokenRepository(),
		issuer:    issuer,
	}, nil
}

func (c *CompositionRoot) TokenIssuer() *jwtauth.TokenIssuer {
	return c.issuer
}

func (c *CompositionRoot) CreatePurgeExpiredTokensCommandHandler() commands.PurgeExpiredTokensCommandHandler {
	return commands.NewPurgeExpiredTokensCommandHandler(c.tokens)
}

// CreateHTTPHandlers wires every command and query handler the REST
// adapter exposes.
func (c *CompositionRoot) CreateHTTPHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		Login: commands.NewLoginCommandHandler(
			c.users, c.tokens, c.issuer, c.config.RefreshTokenTTLDays),
		RefreshAccessToken: commands.NewRefreshAccessTokenCommandHandler(
			c.users, c.tokens, c.issuer, c.config.RefreshTokenTTLDays),

		CreateOrder:           commands.NewCreateOrderCommandHandler(c.orders),
		UpdateOrderTotals:     commands.NewUpdateOrderTotalsCommandHandler(c.orders),
		ConfirmOrder:          commands.NewConfirmOrderCommandHandler(c.orders),
		ShipOrder:             commands.NewShipOrderCommandHandler(c.orders),
		DeliverOrder:          commands.NewDeliverOrderCommandHandler(c.orders),
		CancelOrder:           commands.NewCancelOrderCommandHandler(c.orders),
		UpdateDeliveryAddress: commands.NewUpdateDeliveryAddressCommandHandler(c.orders),

		CreateProduct:        commands.NewCreateProductCommandHandler(c.products, c.suppliers),
		ChangeProductPrice:   commands.NewChangeProductPriceCommandHandler(c.products),
		ApplyProductDiscount: commands.NewApplyProductDiscountCommandHandler(c.products),
		ToggleProductStatus:  commands.NewToggleProductStatusCommandHandler(c.products),
		DeleteProduct:        commands.NewDeleteProductCommandHandler(c.products),

		CreateSupplier: commands.NewCreateSupplierCommandHandler(c.suppliers),
		UpdateSupplier: commands.NewUpdateSupplierCommandHandler(c.suppliers),
		DeleteSupplier: commands.NewDeleteSupplierCommandHandler(c.suppliers),

		CreateUser:     commands.NewCreateUserCommandHandler(c.users),
		UpdateUser:     commands.NewUpdateUserCommandHandler(c.users),
		ChangeUserRole: commands.NewChangeUserRoleCommandHandler(c.users),
		DeleteUser:     commands.NewDeleteUserCommandHandler(c.users, c.tokens),

		GetAllOrders:        queries.NewGetAllOrdersQueryHandler(c.orders),
		GetOrderByID:        queries.NewGetOrderByIDQueryHandler(c.orders),
		GetOrdersByCustomer: queries.NewGetOrdersByCustomerQueryHandler(c.orders),
		GetAllProducts:      queries.NewGetAllProductsQueryHandler(c.products),
		GetProductByID:      queries.NewGetProductByIDQueryHandler(c.products),
		GetAllSuppliers:     queries.NewGetAllSuppliersQueryHandler(c.suppliers),
		GetSupplierByID:     queries.NewGetSupplierByIDQueryHandler(c.suppliers),
		GetAllUsers:         queries.NewGetAllUsersQueryHandler(c.users),
		GetUserByID:         queries.NewGetUserByIDQueryHandler(c.users),
	}
}

// SeedUsers provisions the initial accounts so a fresh instance is usable.
// The store is in memory, so this runs on every start. Every seeded account
// gets the configured seed password.
func (c *CompositionRoot) SeedUsers(ctx context.Context) error {
	seeds := []struct {
		username, email, firstName, lastName, role string
	}{
		{"admin", "admin@backoffice.local", "System", "Administrator", "Admin"},
		{"manager", "manager@backoffice.local", "Morgan", "Manager", "Manager"},
		{"demo", "demo@backoffice.local", "Demo", "User", "User"},
	}

	hash, err := jwtauth.HashPassword(c.config.SeedAdminPassword)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	for _, seed := range seeds {
		if _, err := c.users.GetByUsername(ctx, seed.username); err == nil {
			continue
		}

		account, err := user.NewUser(seed.username, seed.email, seed.firstName, seed.lastName, seed.role)
		if err != nil {
			return fmt.Errorf("create %s account: %w", seed.username, err)
		}

		if err := account.SetPasswordHash(hash); err != nil {
			return fmt.Errorf("set %s password: %w", seed.username, err)
		}

		if err := c.users.Save(ctx, account); err != nil {
			return fmt.Errorf("save %s account: %w", seed.username, err)
		}
	}

	return nil
}
