package repositories_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ibomiri431-oss/metra-feer/app/models"
	"github.com/ibomiri431-oss/metra-feer/app/repositories"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_case_sensitive_like=1"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Keep one connection so the in-memory database sticks around.
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

func seedProducts(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&[]models.Product{
		{Name: "iPhone 14 Pro", Price: 45000, Category: "Elektronik"},
		{Name: "MacBook Air M2", Price: 35000, Category: "Elektronik"},
		{Name: "Kot Pantolon", Price: 500, Category: "Giyim"},
	}).Error)
}

func TestProductSearchIsCaseSensitive(t *testing.T) {
	db := testDB(t)
	repo := repositories.NewProductRepository(db)
	seedProducts(t, db)

	hits, err := repo.List("Mac", "")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	require.Equal(t, "MacBook Air M2", hits[0].Name)

	misses, err := repo.List("mac", "")
	require.NoError(t, err)
	require.Empty(t, misses)
}

// Case sensitivity rides on the DSN, so it must hold on every pooled
// connection, not just whichever one happened to run a pragma.
func TestProductSearchCaseSensitiveAcrossConnections(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "catalog.db") + "?_case_sensitive_like=1"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(4)
	// No idle reuse, so every query runs on a freshly opened connection.
	sqlDB.SetMaxIdleConns(0)

	require.NoError(t, db.AutoMigrate(&models.Product{}))
	require.NoError(t, db.Create(&models.Product{
		Name: "MacBook Air M2", Price: 35000, Category: "Elektronik",
	}).Error)

	repo := repositories.NewProductRepository(db)
	for i := 0; i < 5; i++ {
		misses, err := repo.List("mac", "")
		require.NoError(t, err)
		require.Empty(t, misses)

		hits, err := repo.List("Mac", "")
		require.NoError(t, err)
		require.Len(t, hits, 1)
		require.Equal(t, "MacBook Air M2", hits[0].Name)
	}
}

func TestProductCategoryFilterWithSentinel(t *testing.T) {
	db := testDB(t)
	repo := repositories.NewProductRepository(db)
	seedProducts(t, db)

	all, err := repo.List("", repositories.CategoryAll)
	require.NoError(t, err)
	require.Len(t, all, 3)

	clothing, err := repo.List("", "Giyim")
	require.NoError(t, err)
	require.Len(t, clothing, 1)
	require.Equal(t, "Kot Pantolon", clothing[0].Name)
}

func TestProductDeleteDoesNotCascadeToFavorites(t *testing.T) {
	db := testDB(t)
	products := repositories.NewProductRepository(db)
	favorites := repositories.NewToggleRepository(db, "favorites")
	seedProducts(t, db)

	_, err := favorites.Toggle("u1", 2)
	require.NoError(t, err)

	require.NoError(t, products.Delete(2))

	listed, err := products.List("", "")
	require.NoError(t, err)
	require.Len(t, listed, 2)

	ids, err := favorites.Members("u1")
	require.NoError(t, err)
	require.Equal(t, []int{2}, ids)
}

func TestProductUpdateUnknownID(t *testing.T) {
	db := testDB(t)
	repo := repositories.NewProductRepository(db)

	err := repo.Update(&models.Product{ID: 99, Name: "Ghost", Price: 1})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestToggleTwiceRestoresSet(t *testing.T) {
	db := testDB(t)
	repo := repositories.NewToggleRepository(db, "saved")

	before, err := repo.Members("u1")
	require.NoError(t, err)
	require.Empty(t, before)

	after, err := repo.Toggle("u1", 7)
	require.NoError(t, err)
	require.Equal(t, []int{7}, after)

	restored, err := repo.Toggle("u1", 7)
	require.NoError(t, err)
	require.Empty(t, restored)
}

func TestToggleSetsAreIndependentPerTable(t *testing.T) {
	db := testDB(t)
	favorites := repositories.NewToggleRepository(db, "favorites")
	saved := repositories.NewToggleRepository(db, "saved")

	_, err := favorites.Toggle("u1", 3)
	require.NoError(t, err)

	ids, err := saved.Members("u1")
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestDuplicateUsername(t *testing.T) {
	db := testDB(t)
	repo := repositories.NewUserRepository(db)

	require.NoError(t, repo.Create(&models.User{ID: "a1", Username: "ayse", Password: "x", Role: "user"}))

	err := repo.Create(&models.User{ID: "a2", Username: "ayse", Password: "y", Role: "user"})
	require.ErrorIs(t, err, repositories.ErrDuplicateUsername)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestOrderListNewestFirst(t *testing.T) {
	db := testDB(t)
	repo := repositories.NewOrderRepository(db)

	require.NoError(t, repo.Create(&models.Order{
		ID: "ORD-AAAAAA", UserID: "u1", Items: models.CartItems(`[]`),
		Status: "PENDING", CreatedAt: "2026-01-01T10:00:00Z",
	}))
	require.NoError(t, repo.Create(&models.Order{
		ID: "ORD-BBBBBB", UserID: "u1", Items: models.CartItems(`[]`),
		Status: "PENDING", CreatedAt: "2026-02-01T10:00:00Z",
	}))

	orders, err := repo.ListByUser("u1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	require.Equal(t, "ORD-BBBBBB", orders[0].ID)
}

func TestOrderStatusOverwrite(t *testing.T) {
	db := testDB(t)
	repo := repositories.NewOrderRepository(db)

	require.NoError(t, repo.Create(&models.Order{
		ID: "ORD-CCCCCC", UserID: "u1", Items: models.CartItems(`[]`), Status: "PENDING",
	}))

	require.NoError(t, repo.UpdateStatus("ORD-CCCCCC", "SHIPPED"))
	// Any allowed status can replace any other; no transition graph.
	require.NoError(t, repo.UpdateStatus("ORD-CCCCCC", "PENDING"))

	require.ErrorIs(t, repo.UpdateStatus("ORD-404404", "SHIPPED"), gorm.ErrRecordNotFound)
}
