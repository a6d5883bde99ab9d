package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/thinglist-app/backend/catalog"
	"github.com/thinglist-app/backend/domain"
	"github.com/thinglist-app/backend/store"
	"github.com/thinglist-app/backend/view"
)

type JwtCustomClaims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

type Handler struct {
	JWTSecret string
	UserRepo  store.UserRepository
	ItemRepo  store.ContributionRepository
	VaultRepo store.ContributionRepository
	Inventory *catalog.Builder
	Vault     *catalog.Builder
	Money     *MoneyFormatter
}

type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignUpResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Token string `json:"token"`
}

type AddItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	ImagePath   string `json:"image_path"`
}

type GetProfileResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type TotalsResponse struct {
	ItemCount           int     `json:"item_count"`
	TotalQuantity       int     `json:"total_quantity"`
	TotalValue          float64 `json:"total_value"`
	TotalValueFormatted string  `json:"total_value_formatted"`
}

// ViewResponse carries the filtered list with its totals plus header
// totals over the whole catalog. The header ignores the filter so the
// screens can show both at once.
type ViewResponse struct {
	Items  []domain.ItemResponse `json:"items"`
	Totals TotalsResponse        `json:"totals"`
	Header TotalsResponse        `json:"header"`
}

func (h *Handler) Signup(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(SignUpRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name, email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	id, err := h.UserRepo.AddUser(ctx, domain.User{Name: req.Name, Email: req.Email, Password: string(hash)})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return echo.NewHTTPError(http.StatusConflict, "email already registered")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, SignUpResponse{ID: id, Name: req.Name})
}

func (h *Handler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(LoginRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}

	user, err := h.UserRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid email or password")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	}

	claims := &JwtCustomClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.JWTSecret))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, LoginResponse{ID: user.ID, Name: user.Name, Token: signed})
}

func (h *Handler) GetProfile(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := getUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err)
	}

	user, err := h.UserRepo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return echo.NewHTTPError(http.StatusPreconditionFailed, "user not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, GetProfileResponse{ID: user.ID, Name: user.Name, Email: user.Email})
}

// AddItem appends a raw contribution to the item store. Only the name
// is validated here; everything else defaults during the next catalog
// rebuild. There is no update endpoint: re-submitting an edited item
// appends a duplicate.
func (h *Handler) AddItem(c echo.Context) error {
	return h.addContribution(c, h.ItemRepo)
}

func (h *Handler) AddVaultItem(c echo.Context) error {
	return h.addContribution(c, h.VaultRepo)
}

func (h *Handler) addContribution(c echo.Context, repo store.ContributionRepository) error {
	ctx := c.Request().Context()

	req := new(AddItemRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}
	if strings.TrimSpace(req.Name) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	contribution := domain.Contribution{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Location:    req.Location,
		Status:      req.Category,
		ImagePath:   req.ImagePath,
	}
	if err := repo.Add(ctx, contribution); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	// Echo the canonical form back so clients see the applied defaults.
	return c.JSON(http.StatusOK, h.itemResponse(catalog.Normalize(contribution)))
}

func (h *Handler) GetInventoryItems(c echo.Context) error {
	return h.getItems(c, h.Inventory, domain.CountUnits)
}

func (h *Handler) GetVaultItems(c echo.Context) error {
	return h.getItems(c, h.Vault, domain.CountEntries)
}

func (h *Handler) getItems(c echo.Context, builder *catalog.Builder, policy domain.CountPolicy) error {
	ctx := c.Request().Context()

	items, err := builder.Build(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}

	category := c.QueryParam("category")
	if category == "" {
		category = view.FilterAll
	}
	v := view.Build(items, domain.ParseSortKey(c.QueryParam("sort")), category, policy)
	header := view.Totals(items, policy)

	return c.JSON(http.StatusOK, ViewResponse{
		Items:  h.itemResponses(v.Items),
		Totals: h.totalsResponse(v.Aggregates),
		Header: h.totalsResponse(header),
	})
}

// GetItem returns a single catalog entry by its 1-based position, the
// row-tap detail view.
func (h *Handler) GetItem(c echo.Context) error {
	ctx := c.Request().Context()

	itemID, err := strconv.Atoi(c.Param("itemID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}

	items, err := h.Inventory.Build(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}
	if itemID < 1 || itemID > len(items) {
		return echo.NewHTTPError(http.StatusPreconditionFailed, "item not found")
	}

	return c.JSON(http.StatusOK, h.itemResponse(items[itemID-1]))
}

func (h *Handler) GetCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.InventoryCategories)
}

func (h *Handler) GetVaultCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.VaultCategories)
}

// ResetItems empties the contributed block of the inventory, the
// process-restart semantics made reachable. Seed items are untouched.
func (h *Handler) ResetItems(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.ItemRepo.Clear(ctx); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, "reset")
}

func (h *Handler) itemResponses(items []domain.Item) []domain.ItemResponse {
	res := domain.ConvertToItemResponses(items)
	for i := range res {
		res[i].UnitPriceFormatted = h.Money.Format(res[i].UnitPrice)
	}
	return res
}

func (h *Handler) itemResponse(item domain.Item) domain.ItemResponse {
	return h.itemResponses([]domain.Item{item})[0]
}

func (h *Handler) totalsResponse(agg view.Aggregates) TotalsResponse {
	return TotalsResponse{
		ItemCount:           agg.ItemCount,
		TotalQuantity:       agg.TotalQuantity,
		TotalValue:          agg.TotalValue,
		TotalValueFormatted: h.Money.Format(agg.TotalValue),
	}
}

func getUserID(c echo.Context) (int64, error) {
	user, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return -1, errors.New("invalid token")
	}
	claims, ok := user.Claims.(*JwtCustomClaims)
	if !ok {
		return -1, errors.New("invalid claims")
	}
	if claims.UserID <= 0 {
		return -1, errors.New("invalid user id")
	}
	return claims.UserID, nil
}
