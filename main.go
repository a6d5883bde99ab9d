package main

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/thinglist-app/backend/catalog"
	"github.com/thinglist-app/backend/config"
	"github.com/thinglist-app/backend/handler"
	"github.com/thinglist-app/backend/store"
)

func main() {
	e := echo.New()

	cfg, err := config.Load()
	if err != nil {
		e.Logger.Fatal(err)
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	itemRepo := store.NewContributionRepository()
	vaultRepo := store.NewContributionRepository()
	userRepo := store.NewUserRepository()

	h := &handler.Handler{
		JWTSecret: cfg.JWTSecret,
		UserRepo:  userRepo,
		ItemRepo:  itemRepo,
		VaultRepo: vaultRepo,
		Inventory: catalog.NewBuilder(catalog.SeedInventory, itemRepo),
		Vault:     catalog.NewBuilder(catalog.SeedVault, vaultRepo),
		Money:     handler.NewMoneyFormatter(cfg.Locale),
	}

	e.POST("/signup", h.Signup)
	e.POST("/login", h.Login)

	e.GET("/items", h.GetInventoryItems)
	e.POST("/items", h.AddItem)
	e.POST("/items/reset", h.ResetItems)
	e.GET("/items/categories", h.GetCategories)
	e.GET("/items/:itemID", h.GetItem)

	// The vault and profile sit behind the token gate.
	unlocked := echojwt.WithConfig(echojwt.Config{
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(handler.JwtCustomClaims)
		},
		SigningKey: []byte(cfg.JWTSecret),
	})

	vault := e.Group("/vault", unlocked)
	vault.GET("/items", h.GetVaultItems)
	vault.POST("/items", h.AddVaultItem)
	vault.GET("/categories", h.GetVaultCategories)

	profile := e.Group("/profile", unlocked)
	profile.GET("", h.GetProfile)

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", cfg.Port)))
}
