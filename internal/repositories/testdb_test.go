package repositories

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"

	"event-checkout-api/internal/models"
)

// The tests run against an in-memory SQLite store with the same table and
// column layout as the Postgres migrations. The CHECK on quantity exists
// only here, to let tests force a statement failure partway through a
// transaction.
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
		event_id INTEGER NOT NULL REFERENCES event(event_id),
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
		quantity INTEGER NOT NULL CHECK (quantity >= 0),
		first_name VARCHAR(255) NOT NULL,
		last_name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(50) NOT NULL DEFAULT '',
		company VARCHAR(255) NOT NULL DEFAULT ''
	);
`

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// In-memory SQLite exists per connection, so the pool has to stay at one
	db.SetMaxOpenConns(1)

	_, err = db.Exec(testSchema)
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })
	return db
}

func seedEvent(t *testing.T, db *sql.DB, title string) int {
	t.Helper()

	repo := NewEventRepository(db)
	start := time.Date(2026, 10, 1, 19, 0, 0, 0, time.UTC)
	end := start.Add(3 * time.Hour)
	eventID, err := repo.Create(&models.EventCreateRequest{
		Title:         title,
		Description:   "test event",
		Status:        string(models.StatusPublished),
		StartDateTime: &start,
		EndDateTime:   &end,
	})
	require.NoError(t, err)
	return eventID
}

func seedSession(t *testing.T, db *sql.DB, eventID int, title string, price float64) int {
	t.Helper()

	repo := NewSessionRepository(db)
	sale := false
	saleEnd := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	quantity := 100
	sessionID, err := repo.Create(&models.SessionCreateRequest{
		EventID:         &eventID,
		Title:           title,
		Description:     "test session",
		Type:            "general",
		Price:           &price,
		Sale:            &sale,
		SaleEndDateTime: &saleEnd,
		TotalQuantity:   &quantity,
	})
	require.NoError(t, err)
	return sessionID
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&count))
	return count
}
