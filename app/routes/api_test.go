package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ibomiri431-oss/metra-feer/app/models"
	"github.com/ibomiri431-oss/metra-feer/app/routes"
	"github.com/ibomiri431-oss/metra-feer/pkg/router"
	"github.com/ibomiri431-oss/metra-feer/pkg/storage"
)

// memDisk is an in-memory storage.Disk so upload tests never touch the
// real filesystem.
type memDisk struct {
	mu    sync.Mutex
	files map[string][]byte
}

func newMemDisk() *memDisk { return &memDisk{files: map[string][]byte{}} }

func (d *memDisk) Put(path string, content []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.files[path] = append([]byte(nil), content...)
	return nil
}

func (d *memDisk) PutStream(path string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return d.Put(path, data)
}

func (d *memDisk) Get(path string) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	data, ok := d.files[path]
	if !ok {
		return nil, fmt.Errorf("memdisk: %s not found", path)
	}
	return data, nil
}

func (d *memDisk) GetStream(path string) (io.ReadCloser, error) {
	data, err := d.Get(path)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (d *memDisk) Exists(path string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.files[path]
	return ok
}

func (d *memDisk) Size(path string) (int64, error) {
	data, err := d.Get(path)
	if err != nil {
		return 0, err
	}
	return int64(len(data)), nil
}

func (d *memDisk) Delete(path string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.files, path)
	return nil
}

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_case_sensitive_like=1"), &gorm.Config{
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

	storage.RegisterDisk("mem", newMemDisk())

	r := router.New()
	routes.Register(r, routes.New(db))
	return r.Handler()
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest))
}

func TestRegisterLoginFlow(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/register",
		map[string]string{"username": "ayse", "password": "gizli123"})
	require.Equal(t, http.StatusOK, rec.Code)

	var user map[string]any
	decode(t, rec, &user)
	require.Equal(t, "ayse", user["username"])
	require.Equal(t, "user", user["role"])
	require.NotContains(t, user, "password")

	rec = doJSON(t, h, http.MethodPost, "/api/register",
		map[string]string{"username": "ayse", "password": "other"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Kullanıcı adı zaten kullanımda")

	rec = doJSON(t, h, http.MethodPost, "/api/login",
		map[string]string{"username": "ayse", "password": "gizli123"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/login",
		map[string]string{"username": "ayse", "password": "yanlış"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "Hatalı kullanıcı adı veya şifre")
}

func TestProductCRUDAndSearch(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/products", map[string]any{
		"name": "MacBook Air M2", "price": 42000, "category": "Bilgisayar",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"success":true`)

	rec = doJSON(t, h, http.MethodPost, "/api/products", map[string]any{
		"name": "iPhone 14 Pro", "price": 74999, "category": "Elektronik",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/products?search=Mac", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var hits []models.Product
	decode(t, rec, &hits)
	require.Len(t, hits, 1)
	require.Equal(t, "MacBook Air M2", hits[0].Name)
	mac := hits[0].ID

	rec = doJSON(t, h, http.MethodPut, fmt.Sprintf("/api/products/%d", mac), map[string]any{
		"name": "MacBook Air M2", "price": 39000, "category": "Bilgisayar",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"success":true`)

	rec = doJSON(t, h, http.MethodDelete, fmt.Sprintf("/api/products/%d", mac), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"success":true`)

	rec = doJSON(t, h, http.MethodGet, "/api/products", nil)
	var remaining []models.Product
	decode(t, rec, &remaining)
	require.Len(t, remaining, 1)
	require.Equal(t, "iPhone 14 Pro", remaining[0].Name)
}

func TestFavoritesToggleEndpoint(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/favorites",
		map[string]any{"userId": "u1", "productId": 3})
	require.Equal(t, http.StatusOK, rec.Code)
	var ids []int
	decode(t, rec, &ids)
	require.Equal(t, []int{3}, ids)

	// Sentinel -1 reads without mutating.
	rec = doJSON(t, h, http.MethodPost, "/api/favorites",
		map[string]any{"userId": "u1", "productId": -1})
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &ids)
	require.Equal(t, []int{3}, ids)

	rec = doJSON(t, h, http.MethodGet, "/api/favorites/u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &ids)
	require.Equal(t, []int{3}, ids)

	// Second toggle removes; response must be [] not null.
	rec = doJSON(t, h, http.MethodPost, "/api/favorites",
		map[string]any{"userId": "u1", "productId": 3})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestOrderEndpoints(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/orders", map[string]any{
		"userId":   "u1",
		"username": "ayse",
		"items": []map[string]any{
			{"id": 1, "name": "iPhone 14 Pro", "price": 45000, "quantity": 2},
		},
		"totalPrice": 90000,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var placed map[string]string
	decode(t, rec, &placed)
	require.Regexp(t, `^ORD-[A-F0-9]{6}$`, placed["id"])

	rec = doJSON(t, h, http.MethodGet, "/api/orders?userId=u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var orders []models.Order
	decode(t, rec, &orders)
	require.Len(t, orders, 1)
	require.Equal(t, placed["id"], orders[0].ID)
	require.Equal(t, "PENDING", orders[0].Status)

	rec = doJSON(t, h, http.MethodPost, "/api/orders/"+placed["id"]+"/status",
		map[string]string{"status": "APPROVED"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"success":true`)

	rec = doJSON(t, h, http.MethodPost, "/api/orders/"+placed["id"]+"/status",
		map[string]string{"status": "LOST_IN_SPACE"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadAndServeImage(t *testing.T) {
	h := newTestHandler(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("files", "ürün resmi.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var out map[string][]string
	decode(t, rec, &out)
	require.Len(t, out["paths"], 1)
	require.Regexp(t, `^/product_images/\d+_ürünresmi\.jpg$`, out["paths"][0])

	getReq := httptest.NewRequest(http.MethodGet, out["paths"][0], nil)
	getRec := httptest.NewRecorder()
	h.ServeHTTP(getRec, getReq)
	require.Equal(t, http.StatusOK, getRec.Code)
	require.Equal(t, "jpeg-bytes", getRec.Body.String())
}

func TestUploadWithoutFilesIs400(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/upload", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=none")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Dosya bulunamadı")
}
