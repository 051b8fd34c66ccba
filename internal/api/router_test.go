package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cerahati/backend/internal/app"
	"github.com/cerahati/backend/internal/cache"
	"github.com/cerahati/backend/internal/database/testutil"
	"github.com/cerahati/backend/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	store := cache.NewDatabaseStore(db)

	cfg := &app.Config{
		Server: app.ServerConfig{Port: 0},
		Auth: app.AuthConfig{
			LoginMaxAttempts: 5,
			LoginWindow:      15 * time.Minute,
		},
		Monitoring: app.MonitoringConfig{
			Prometheus: app.PrometheusConfig{Enabled: true, Endpoint: "/metrics"},
			Health:     app.HealthConfig{Enabled: true},
		},
	}

	r, err := NewRouter(db, store, cfg)
	require.NoError(t, err)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return payload
}

func TestOrphanageCRUDWireFormat(t *testing.T) {
	r, _ := newTestRouter(t)

	created := doJSON(t, r, http.MethodPost, "/rumah_yatim", gin.H{
		"nama_panti":  "Panti Kasih",
		"nama_kota":   "Bandung",
		"jumlah_anak": 20,
		"kapasitas":   30,
	})
	require.Equal(t, http.StatusCreated, created.Code)

	body := decodeBody(t, created)
	require.Equal(t, "Orphanage created successfully", body["message"])
	id := int(body["id"].(float64))
	require.NotZero(t, id)

	list := doJSON(t, r, http.MethodGet, "/rumah_yatim", nil)
	require.Equal(t, http.StatusOK, list.Code)
	var rows []models.Orphanage
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &rows))
	require.Len(t, rows, 1)

	updated := doJSON(t, r, http.MethodPut, fmt.Sprintf("/rumah_yatim/%d", id), gin.H{
		"nama_panti": "Panti Kasih Baru",
		"nama_kota":  "Bandung",
	})
	require.Equal(t, http.StatusOK, updated.Code)
	require.Equal(t, "Orphanage updated successfully", decodeBody(t, updated)["message"])

	missing := doJSON(t, r, http.MethodGet, "/rumah_yatim/9999", nil)
	require.Equal(t, http.StatusNotFound, missing.Code)
	require.Equal(t, "Orphanage not found", decodeBody(t, missing)["error"])

	deleted := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/rumah_yatim/%d", id), nil)
	require.Equal(t, http.StatusOK, deleted.Code)
	require.Equal(t, "Orphanage deleted successfully", decodeBody(t, deleted)["message"])
}

func TestCachedReadReportsSource(t *testing.T) {
	r, db := newTestRouter(t)

	require.NoError(t, db.Create(&models.Prayer{Nama: "Doa Pagi", Isi: "..."}).Error)

	first := doJSON(t, r, http.MethodGet, "/cache/doa", nil)
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, "database", decodeBody(t, first)["source"])

	second := doJSON(t, r, http.MethodGet, "/cache/doa", nil)
	require.Equal(t, http.StatusOK, second.Code)

	body := decodeBody(t, second)
	require.Equal(t, "cache", body["source"])
	require.Len(t, body["data"], 1)
}

func TestCachedItemNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/cache/rumah-yatim/42", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Orphanage not found", decodeBody(t, w)["error"])
}

func TestLeaderboardEndpoints(t *testing.T) {
	r, db := newTestRouter(t)

	empty := doJSON(t, r, http.MethodGet, "/cache/leaderboard", nil)
	require.Equal(t, http.StatusNotFound, empty.Code)
	require.Equal(t, "No leaderboard data found", decodeBody(t, empty)["error"])

	user := models.User{Username: "siti", Name: "Siti", Email: "siti@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	home := models.Orphanage{NamaPanti: "Panti Kasih", NamaKota: "Bandung"}
	require.NoError(t, db.Create(&home).Error)
	require.NoError(t, db.Create(&models.Donation{UserID: user.ID, RumahYatimID: home.ID, Amount: 75000, Status: models.DonationStatusCompleted, TransactionID: "tx-1"}).Error)

	first := doJSON(t, r, http.MethodGet, "/cache/leaderboard", nil)
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, "database", decodeBody(t, first)["source"])

	second := doJSON(t, r, http.MethodGet, "/cache/leaderboard", nil)
	require.Equal(t, http.StatusOK, second.Code)
	require.Equal(t, "cache", decodeBody(t, second)["source"])

	refreshed := doJSON(t, r, http.MethodPost, "/cache/leaderboard/refresh", nil)
	require.Equal(t, http.StatusOK, refreshed.Code)
	require.Equal(t, "database", decodeBody(t, refreshed)["source"])

	overwrite := doJSON(t, r, http.MethodPost, "/cache/leaderboard", gin.H{
		"data": []gin.H{
			{"user_id": 9, "username": "manual", "donation_count": 1, "total_donations": 100},
		},
	})
	require.Equal(t, http.StatusOK, overwrite.Code)

	cached := doJSON(t, r, http.MethodGet, "/cache/leaderboard", nil)
	require.Equal(t, http.StatusOK, cached.Code)
	body := decodeBody(t, cached)
	require.Equal(t, "cache", body["source"])
	require.Len(t, body["data"], 1)
}

func TestRegisterAndLoginFlow(t *testing.T) {
	r, _ := newTestRouter(t)

	registered := doJSON(t, r, http.MethodPost, "/register", gin.H{
		"username": "budi",
		"name":     "Budi",
		"email":    "budi@example.com",
		"password": "rahasia123",
	})
	require.Equal(t, http.StatusCreated, registered.Code)
	require.Equal(t, "User registered successfully", decodeBody(t, registered)["message"])

	ok := doJSON(t, r, http.MethodPost, "/login", gin.H{"username": "budi", "password": "rahasia123"})
	require.Equal(t, http.StatusOK, ok.Code)
	require.Equal(t, "budi", decodeBody(t, ok)["username"])

	bad := doJSON(t, r, http.MethodPost, "/login", gin.H{"username": "budi", "password": "salah"})
	require.Equal(t, http.StatusUnauthorized, bad.Code)
}

func TestLoginRateLimited(t *testing.T) {
	r, _ := newTestRouter(t)

	for i := 0; i < 5; i++ {
		w := doJSON(t, r, http.MethodPost, "/login", gin.H{"username": "ghost", "password": "nope"})
		require.Equal(t, http.StatusUnauthorized, w.Code)
	}

	w := doJSON(t, r, http.MethodPost, "/login", gin.H{"username": "ghost", "password": "nope"})
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.Equal(t, "Too many login attempts. Please try again in 15 minutes.", decodeBody(t, w)["error"])
}

func TestHealthEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "ok", decodeBody(t, w)["status"])
}

func TestValidationErrors(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/users", gin.H{"username": "x"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/users/not-a-number", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()

	var payload []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return payload
}

func TestBookmarkRoutes(t *testing.T) {
	r, db := newTestRouter(t)

	user := models.User{Username: "budi", Name: "Budi", Email: "budi@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	first := models.Orphanage{NamaPanti: "Kasih Ibu", NamaKota: "Bandung", Alamat: "Jl. Merdeka 1"}
	require.NoError(t, db.Create(&first).Error)
	second := models.Orphanage{NamaPanti: "Harapan Bunda", NamaKota: "Jakarta"}
	require.NoError(t, db.Create(&second).Error)

	created := doJSON(t, r, http.MethodPost, "/bookmark", gin.H{
		"user_id":        user.ID,
		"rumah_yatim_id": first.ID,
	})
	require.Equal(t, http.StatusCreated, created.Code)
	id := decodeBody(t, created)["id"]

	updated := doJSON(t, r, http.MethodPut, fmt.Sprintf("/bookmark/%v", id), gin.H{
		"user_id":        user.ID,
		"rumah_yatim_id": second.ID,
	})
	require.Equal(t, http.StatusOK, updated.Code)
	require.Equal(t, "Bookmark updated successfully", decodeBody(t, updated)["message"])

	byUser := doJSON(t, r, http.MethodGet, fmt.Sprintf("/bookmark/user/%d", user.ID), nil)
	require.Equal(t, http.StatusOK, byUser.Code)
	rows := decodeList(t, byUser)
	require.Len(t, rows, 1)
	require.Equal(t, "Harapan Bunda", rows[0]["nama_panti"])

	byHome := doJSON(t, r, http.MethodGet, fmt.Sprintf("/bookmark/orphanage/%d", second.ID), nil)
	require.Equal(t, http.StatusOK, byHome.Code)
	require.Len(t, decodeList(t, byHome), 1)

	missing := doJSON(t, r, http.MethodGet, "/bookmark/user/9999", nil)
	require.Equal(t, http.StatusNotFound, missing.Code)
	require.Equal(t, "No bookmarks found for user", decodeBody(t, missing)["error"])

	emptied := doJSON(t, r, http.MethodGet, fmt.Sprintf("/bookmark/orphanage/%d", first.ID), nil)
	require.Equal(t, http.StatusNotFound, emptied.Code)
	require.Equal(t, "No bookmarks found for orphanage", decodeBody(t, emptied)["error"])
}

func TestPrayerUpdateRoute(t *testing.T) {
	r, _ := newTestRouter(t)

	created := doJSON(t, r, http.MethodPost, "/doa", gin.H{"nama": "Doa Makan", "isi": "Allahumma bariklana"})
	require.Equal(t, http.StatusCreated, created.Code)
	id := decodeBody(t, created)["id"]

	updated := doJSON(t, r, http.MethodPut, fmt.Sprintf("/doa/%v", id), gin.H{
		"nama": "Doa Sebelum Makan",
		"isi":  "Allahumma bariklana fima razaqtana",
	})
	require.Equal(t, http.StatusOK, updated.Code)
	require.Equal(t, "Prayer updated successfully", decodeBody(t, updated)["message"])

	got := doJSON(t, r, http.MethodGet, fmt.Sprintf("/doa/%v", id), nil)
	require.Equal(t, http.StatusOK, got.Code)
	require.Equal(t, "Doa Sebelum Makan", decodeBody(t, got)["nama"])

	missing := doJSON(t, r, http.MethodPut, "/doa/9999", gin.H{"nama": "x", "isi": "y"})
	require.Equal(t, http.StatusNotFound, missing.Code)
}

func TestDonationInsightRoutes(t *testing.T) {
	r, db := newTestRouter(t)

	user := models.User{Username: "budi", Name: "Budi", Email: "budi@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	home := models.Orphanage{NamaPanti: "Kasih Ibu", NamaKota: "Bandung", JumlahAnak: 10}
	require.NoError(t, db.Create(&home).Error)
	require.NoError(t, db.Create(&models.Donation{UserID: user.ID, RumahYatimID: home.ID, Amount: 50000, PaymentMethod: "transfer", Status: models.DonationStatusCompleted, TransactionID: "tx-i1"}).Error)

	trends := doJSON(t, r, http.MethodGet, "/donation/payment-trends", nil)
	require.Equal(t, http.StatusOK, trends.Code)
	rows := decodeList(t, trends)
	require.Len(t, rows, 1)
	require.Equal(t, "transfer", rows[0]["payment_method"])

	impact := doJSON(t, r, http.MethodGet, fmt.Sprintf("/donation/impact-analysis/%d", home.ID), nil)
	require.Equal(t, http.StatusOK, impact.Code)
	body := decodeBody(t, impact)
	require.Equal(t, "Kasih Ibu", body["nama_panti"])
	require.EqualValues(t, 1, body["total_donations"])

	timeline := doJSON(t, r, http.MethodGet, fmt.Sprintf("/donation/timeline/%d", home.ID), nil)
	require.Equal(t, http.StatusOK, timeline.Code)
	require.Len(t, decodeList(t, timeline), 1)

	missing := doJSON(t, r, http.MethodGet, "/donation/impact-analysis/9999", nil)
	require.Equal(t, http.StatusNotFound, missing.Code)
	require.Equal(t, "Orphanage not found", decodeBody(t, missing)["error"])
}

func TestUserInsightRoutes(t *testing.T) {
	r, db := newTestRouter(t)

	user := models.User{Username: "budi", Name: "Budi", Email: "budi@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.Donation{UserID: user.ID, RumahYatimID: 1, Amount: 50000, Status: models.DonationStatusCompleted, TransactionID: "tx-u1"}).Error)

	monthly := doJSON(t, r, http.MethodGet, fmt.Sprintf("/users/monthly-donations/%d", user.ID), nil)
	require.Equal(t, http.StatusOK, monthly.Code)
	require.Len(t, decodeList(t, monthly), 1)

	engagement := doJSON(t, r, http.MethodGet, fmt.Sprintf("/users/engagement/%d", user.ID), nil)
	require.Equal(t, http.StatusOK, engagement.Code)
	body := decodeBody(t, engagement)
	require.Equal(t, "Budi", body["name"])
	require.EqualValues(t, 1, body["donation_count"])

	missing := doJSON(t, r, http.MethodGet, "/users/engagement/9999", nil)
	require.Equal(t, http.StatusNotFound, missing.Code)
}
