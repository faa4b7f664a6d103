package services_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ibomiri431-oss/metra-feer/app/models"
	"github.com/ibomiri431-oss/metra-feer/app/repositories"
	"github.com/ibomiri431-oss/metra-feer/app/services"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.Favorite{},
		&models.Saved{},
	))
	return db
}

func newAuth(t *testing.T) *services.AuthService {
	t.Helper()
	return services.NewAuthService(repositories.NewUserRepository(testDB(t)))
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuth(t)

	created, err := svc.Register("ayse", "gizli123")
	require.NoError(t, err)
	require.Regexp(t, `^[0-9a-f]{8}$`, created.ID)
	require.Equal(t, "user", created.Role)
	require.NotEqual(t, "gizli123", created.Password)

	user, err := svc.Login("ayse", "gizli123")
	require.NoError(t, err)
	require.Equal(t, created.ID, user.ID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuth(t)
	_, err := svc.Register("ayse", "gizli123")
	require.NoError(t, err)

	_, err = svc.Login("ayse", "yanlış")
	require.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, err = svc.Login("yok", "gizli123")
	require.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newAuth(t)

	_, err := svc.Register("ayse", "one")
	require.NoError(t, err)

	_, err = svc.Register("ayse", "two")
	require.ErrorIs(t, err, repositories.ErrDuplicateUsername)
}

func TestPlaceOrder(t *testing.T) {
	db := testDB(t)
	svc := services.NewOrderService(repositories.NewOrderRepository(db))

	items := models.CartItems(`[{"id":1,"name":"iPhone 14 Pro","price":45000,"quantity":2}]`)
	order, err := svc.Place("u1", "ayse", items, 90000)
	require.NoError(t, err)
	require.Regexp(t, `^ORD-[A-F0-9]{6}$`, order.ID)
	require.Equal(t, "PENDING", order.Status)

	mine, err := svc.ListForUser("u1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, order.ID, mine[0].ID)

	// The item blob round-trips unchanged through persistence.
	var decoded []models.CartItem
	require.NoError(t, json.Unmarshal(mine[0].Items, &decoded))
	require.Len(t, decoded, 1)
	require.Equal(t, 2, decoded[0].Quantity)
}

func TestOrderIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := services.NewOrderID()
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestToggleFavoriteSentinelIsReadOnly(t *testing.T) {
	db := testDB(t)
	svc := services.NewInteractionService(
		repositories.NewToggleRepository(db, "favorites"),
		repositories.NewToggleRepository(db, "saved"),
	)

	ids, err := svc.ToggleFavorite("u1", 5)
	require.NoError(t, err)
	require.Equal(t, []int{5}, ids)

	// -1 reads the set without flipping anything, repeatedly.
	for i := 0; i < 3; i++ {
		ids, err = svc.ToggleFavorite("u1", -1)
		require.NoError(t, err)
		require.Equal(t, []int{5}, ids)
	}
}

func TestToggleSavedTwiceRestores(t *testing.T) {
	db := testDB(t)
	svc := services.NewInteractionService(
		repositories.NewToggleRepository(db, "favorites"),
		repositories.NewToggleRepository(db, "saved"),
	)

	_, err := svc.ToggleSaved("u1", 9)
	require.NoError(t, err)
	ids, err := svc.ToggleSaved("u1", 9)
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestCatalogListEmptyIsSlice(t *testing.T) {
	db := testDB(t)
	svc := services.NewCatalogService(repositories.NewProductRepository(db))

	products, err := svc.List("", "")
	require.NoError(t, err)
	require.NotNil(t, products)
	require.Empty(t, products)

	// Empty result must serialize as [] rather than null.
	raw, err := json.Marshal(products)
	require.NoError(t, err)
	require.Equal(t, "[]", string(raw))
}

func TestCatalogCRUDRoundTrip(t *testing.T) {
	db := testDB(t)
	svc := services.NewCatalogService(repositories.NewProductRepository(db))

	p := &models.Product{Name: "AirPods Pro", Price: 6000, Category: "Elektronik"}
	require.NoError(t, svc.Create(p))
	require.NotZero(t, p.ID)

	p.Price = 5500
	require.NoError(t, svc.Update(p))

	listed, err := svc.List("", "")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, 5500.0, listed[0].Price)

	require.NoError(t, svc.Delete(p.ID))
	listed, err = svc.List("", "")
	require.NoError(t, err)
	require.Empty(t, listed)
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"photo.jpg":          "photo.jpg",
		"../../etc/passwd":   "....etcpasswd",
		"ürün resmi (1).png": "ürünresmi1.png",
		"a b\tc.txt":         "abc.txt",
		"":                   "file",
		"///":                "file",
	}
	for input, want := range cases {
		require.Equal(t, want, services.SanitizeFilename(input), "input %q", input)
	}
}
