package handlers_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"

	"event-checkout-api/internal/config"
	"event-checkout-api/internal/handlers"
	"event-checkout-api/internal/repositories"
	"event-checkout-api/internal/server"
)

const testSchema = `
	CREATE TABLE event (
		event_id INTEGER PRIMARY KEY AUTOINCREMENT,
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		status VARCHAR(50) NOT NULL,
		start_date_time TIMESTAMP NOT NULL,
		end_date_time TIMESTAMP NOT NULL,
		banner_image TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE event_session (
		event_session_id INTEGER PRIMARY KEY AUTOINCREMENT,
		event_id INTEGER NOT NULL,
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		type VARCHAR(50) NOT NULL,
		price DECIMAL(10,2) NOT NULL,
		sale BOOLEAN NOT NULL DEFAULT FALSE,
		sale_end_date_time TIMESTAMP NOT NULL,
		total_quantity INTEGER NOT NULL,
		quantity_remaining INTEGER NOT NULL
	);

	CREATE TABLE cart (
		cart_id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id VARCHAR(255) NOT NULL
	);

	CREATE TABLE cart_item (
		cart_item_id INTEGER PRIMARY KEY AUTOINCREMENT,
		cart_id INTEGER NOT NULL,
		event_session_id INTEGER NOT NULL,
		quantity INTEGER NOT NULL,
		UNIQUE (cart_id, event_session_id)
	);

	CREATE TABLE tickets_sold (
		tickets_sold_id INTEGER PRIMARY KEY AUTOINCREMENT,
		event_session_id INTEGER NOT NULL,
		quantity INTEGER NOT NULL,
		first_name VARCHAR(255) NOT NULL,
		last_name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(50) NOT NULL DEFAULT '',
		company VARCHAR(255) NOT NULL DEFAULT ''
	);
`

func setupRouter(t *testing.T) (*gin.Engine, *sql.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	_, err = db.Exec(testSchema)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.CORS.AllowedOrigins = []string{"*"}

	router := server.NewRouter(cfg, log, server.Handlers{
		Events:   handlers.NewEventHandler(repositories.NewEventRepository(db)),
		Sessions: handlers.NewSessionHandler(repositories.NewSessionRepository(db)),
		Cart:     handlers.NewCartHandler(repositories.NewCartRepository(db)),
		Sales:    handlers.NewSaleHandler(repositories.NewSaleRepository(db)),
	})
	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func seedCatalog(t *testing.T, router *gin.Engine) (eventID, sessionID int) {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/events/v1/add/event", map[string]interface{}{
		"title":           "Conference",
		"description":     "annual",
		"status":          "published",
		"start_date_time": "2026-10-01T19:00:00Z",
		"end_date_time":   "2026-10-01T22:00:00Z",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var created map[string]int
	decode(t, rec, &created)
	eventID = created["event_id"]

	rec = doJSON(t, router, http.MethodPost, "/api/event-sessions/v1/add/event/session", map[string]interface{}{
		"event_id":           eventID,
		"title":              "General",
		"description":        "standard entry",
		"type":               "general",
		"price":              25.0,
		"sale":               false,
		"sale_end_date_time": "2026-09-30T00:00:00Z",
		"total_quantity":     100,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var session map[string]int
	decode(t, rec, &session)
	sessionID = session["event_session_id"]
	return eventID, sessionID
}

func TestCartLookup(t *testing.T) {
	router, _ := setupRouter(t)

	t.Run("missing session id", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/cart/v1", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no cart yet", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/cart/v1?sessionId=S1", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var result map[string]interface{}
		decode(t, rec, &result)
		assert.EqualValues(t, 0, result["cart_id"])
	})

	t.Run("existing cart", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/cart/v1/add/cart", map[string]string{"session_id": "S1"})
		require.Equal(t, http.StatusOK, rec.Code)
		var created map[string]int
		decode(t, rec, &created)

		rec = doJSON(t, router, http.MethodGet, "/api/cart/v1?sessionId=S1", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var result map[string]interface{}
		decode(t, rec, &result)
		assert.EqualValues(t, created["cart_id"], result["cart_id"])
	})

	t.Run("duplicate carts reported as ambiguous", func(t *testing.T) {
		doJSON(t, router, http.MethodPost, "/api/cart/v1/add/cart", map[string]string{"session_id": "S2"})
		doJSON(t, router, http.MethodPost, "/api/cart/v1/add/cart", map[string]string{"session_id": "S2"})

		rec := doJSON(t, router, http.MethodGet, "/api/cart/v1?sessionId=S2", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var result map[string]interface{}
		decode(t, rec, &result)
		assert.Equal(t, true, result["ambiguous"])
	})
}

// The full checkout walk over HTTP: create a cart, add an item, read it
// back, check the subtotal, remove the item with quantity zero.
func TestCartScenario(t *testing.T) {
	router, _ := setupRouter(t)
	_, sessionID := seedCatalog(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/cart/v1/add/cart", map[string]string{"session_id": "S1"})
	require.Equal(t, http.StatusOK, rec.Code)
	var created map[string]int
	decode(t, rec, &created)
	cartID := created["cart_id"]
	require.NotZero(t, cartID)

	rec = doJSON(t, router, http.MethodPost, "/api/cart/v1/add/cart/item", map[string]int{
		"cart_id": cartID, "event_session_id": sessionID, "quantity": 2,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/cart/v1/contents/by/id?cartId=%d", cartID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var lines []map[string]interface{}
	decode(t, rec, &lines)
	require.Len(t, lines, 1)
	assert.EqualValues(t, sessionID, lines[0]["event_session_id"])
	assert.EqualValues(t, 2, lines[0]["quantity"])
	assert.Equal(t, "Conference", lines[0]["event_title"])

	rec = doJSON(t, router, http.MethodGet, "/api/cart/v1/contents/total?sessionId=S1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var subtotal map[string]float64
	decode(t, rec, &subtotal)
	assert.InDelta(t, 50.0, subtotal["subtotal"], 1e-9)

	rec = doJSON(t, router, http.MethodPost, "/api/cart/v1/add/cart/item", map[string]int{
		"cart_id": cartID, "event_session_id": sessionID, "quantity": 0,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var upsert map[string]interface{}
	decode(t, rec, &upsert)
	assert.Equal(t, true, upsert["removed"])

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/cart/v1/contents/by/id?cartId=%d", cartID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &lines)
	assert.Empty(t, lines)
}

func TestUpsertItemValidation(t *testing.T) {
	router, _ := setupRouter(t)

	t.Run("missing quantity", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/cart/v1/add/cart/item", map[string]int{
			"cart_id": 1, "event_session_id": 1,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("negative quantity", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/cart/v1/add/cart/item", map[string]int{
			"cart_id": 1, "event_session_id": 1, "quantity": -1,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestFinalize(t *testing.T) {
	router, db := setupRouter(t)
	_, sessionID := seedCatalog(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/cart/v1/add/cart", map[string]string{"session_id": "S1"})
	require.Equal(t, http.StatusOK, rec.Code)
	var created map[string]int
	decode(t, rec, &created)
	cartID := created["cart_id"]

	rec = doJSON(t, router, http.MethodPost, "/api/cart/v1/add/cart/item", map[string]int{
		"cart_id": cartID, "event_session_id": sessionID, "quantity": 2,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var upsert map[string]interface{}
	decode(t, rec, &upsert)
	itemID := int(upsert["cart_item_id"].(float64))

	t.Run("empty ticket list rejected", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/sold/v1/add/tickets/sold", map[string]interface{}{
			"tickets": []interface{}{},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var count int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM cart_item").Scan(&count))
		assert.Equal(t, 1, count)
	})

	t.Run("records tickets and clears the cart", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/sold/v1/add/tickets/sold", map[string]interface{}{
			"tickets": []map[string]interface{}{
				{
					"cartItem": map[string]int{
						"cart_item_id":     itemID,
						"cart_id":          cartID,
						"event_session_id": sessionID,
						"quantity":         2,
					},
					"firstName": "Ada",
					"lastName":  "Lovelace",
					"email":     "ada@example.com",
					"phone":     "555-0100",
					"company":   "Analytical Engines",
				},
			},
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var sold, items, carts int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM tickets_sold").Scan(&sold))
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM cart_item").Scan(&items))
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM cart").Scan(&carts))
		assert.Equal(t, 1, sold)
		assert.Equal(t, 0, items)
		assert.Equal(t, 0, carts)
	})

	t.Run("sold totals reflect the sale", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/sold/v1/tickets/event/session?eventSessionId=%d", sessionID), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var total map[string]interface{}
		decode(t, rec, &total)
		assert.EqualValues(t, 2, total["totalSold"])
	})
}

func TestEventEndpoints(t *testing.T) {
	router, _ := setupRouter(t)

	t.Run("missing event id", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/events/v1", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty catalog is an empty list", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/events/v1/all", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("sessions ordered by price", func(t *testing.T) {
		eventID, _ := seedCatalog(t, router)
		doJSON(t, router, http.MethodPost, "/api/event-sessions/v1/add/event/session", map[string]interface{}{
			"event_id":           eventID,
			"title":              "VIP",
			"description":        "front row",
			"type":               "vip",
			"price":              75.0,
			"sale":               false,
			"sale_end_date_time": "2026-09-30T00:00:00Z",
			"total_quantity":     20,
		})

		rec := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/event-sessions/v1?eventId=%d", eventID), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var sessions []map[string]interface{}
		decode(t, rec, &sessions)
		require.Len(t, sessions, 2)
		assert.Equal(t, "General", sessions[0]["title"])
		assert.Equal(t, "VIP", sessions[1]["title"])
	})
}
