package routecache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/gridroute/gridmap"
	"github.com/katalvlaran/gridroute/route"
)

// Sentinel errors.
var (
	// ErrEmptyKey indicates a lookup or store with an empty key.
	ErrEmptyKey = errors.New("routecache: key must not be empty")

	// ErrClosed indicates use of a Cache after Close.
	ErrClosed = errors.New("routecache: cache is closed")
)

const memoryPath = ":memory:"

const schema = `
CREATE TABLE IF NOT EXISTS routes (
	key            TEXT PRIMARY KEY,
	cost           REAL    NOT NULL,
	origin_row     INTEGER NOT NULL,
	origin_col     INTEGER NOT NULL,
	dest_row       INTEGER NOT NULL,
	dest_col       INTEGER NOT NULL,
	path           TEXT    NOT NULL,
	waypoint_order TEXT    NOT NULL,
	strategy       TEXT    NOT NULL,
	explored       INTEGER NOT NULL,
	created_at     INTEGER NOT NULL
);`

// Cache is a SQLite-backed route result store. Get and Put may be called
// concurrently; Close must not race with them.
type Cache struct {
	db *sql.DB
}

// Open creates or opens the cache database at path, creating parent
// directories as needed.
func Open(path string) (*Cache, error) {
	if path != memoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("routecache: create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("routecache: open %q: %w", path, err)
	}
	// One connection: an in-memory database is per connection, and SQLite
	// serializes writers anyway.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("routecache: %s: %w", p, err)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("routecache: init schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close releases the database handle.
func (c *Cache) Close() error {
	if c.db == nil {
		return ErrClosed
	}
	err := c.db.Close()
	c.db = nil
	return err
}

// Key digests the raw map document together with the search strategy.
// Pruning and worker count never change the chosen route and are left out.
func Key(mapDoc []byte, strategy route.Strategy) string {
	h := sha256.New()
	h.Write(mapDoc)
	h.Write([]byte{0})
	h.Write([]byte(strategy.String()))
	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the stored result for key. The bool is false on a miss.
// Chains and Partial are never stored and come back zero.
func (c *Cache) Get(ctx context.Context, key string) (route.Result, bool, error) {
	if key == "" {
		return route.Result{}, false, ErrEmptyKey
	}
	if c.db == nil {
		return route.Result{}, false, ErrClosed
	}

	const q = `
	SELECT cost, origin_row, origin_col, dest_row, dest_col,
	       path, waypoint_order, strategy, explored
	FROM routes
	WHERE key = ?`

	var (
		res             route.Result
		pathDoc, ordDoc string
		strategy        string
	)
	err := c.db.QueryRowContext(ctx, q, key).Scan(
		&res.Cost,
		&res.Origin.Row, &res.Origin.Col,
		&res.Destination.Row, &res.Destination.Col,
		&pathDoc, &ordDoc, &strategy, &res.Explored,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return route.Result{}, false, nil
	}
	if err != nil {
		return route.Result{}, false, fmt.Errorf("routecache: get %s: %w", key, err)
	}

	if res.Path, err = decodeCoords(pathDoc); err != nil {
		return route.Result{}, false, fmt.Errorf("routecache: get %s: path: %w", key, err)
	}
	if res.Order, err = decodeCoords(ordDoc); err != nil {
		return route.Result{}, false, fmt.Errorf("routecache: get %s: order: %w", key, err)
	}
	if res.Strategy, err = route.ParseStrategy(strategy); err != nil {
		return route.Result{}, false, fmt.Errorf("routecache: get %s: %w", key, err)
	}

	return res, true, nil
}

// Put stores res under key, replacing any previous entry. Partial results
// are not worth keeping and are skipped.
func (c *Cache) Put(ctx context.Context, key string, res route.Result) error {
	if key == "" {
		return ErrEmptyKey
	}
	if c.db == nil {
		return ErrClosed
	}
	if res.Partial {
		return nil
	}

	pathDoc, err := json.Marshal(res.Path)
	if err != nil {
		return fmt.Errorf("routecache: put %s: path: %w", key, err)
	}
	order := res.Order
	if order == nil {
		order = []gridmap.Coordinate{}
	}
	ordDoc, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("routecache: put %s: order: %w", key, err)
	}

	const q = `
	INSERT OR REPLACE INTO routes (
		key, cost, origin_row, origin_col, dest_row, dest_col,
		path, waypoint_order, strategy, explored, created_at
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = c.db.ExecContext(ctx, q,
		key, res.Cost,
		res.Origin.Row, res.Origin.Col,
		res.Destination.Row, res.Destination.Col,
		string(pathDoc), string(ordDoc), res.Strategy.String(), res.Explored,
		time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("routecache: put %s: %w", key, err)
	}

	return nil
}

// Len reports the number of stored entries.
func (c *Cache) Len(ctx context.Context) (int, error) {
	if c.db == nil {
		return 0, ErrClosed
	}
	var n int
	if err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM routes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("routecache: count: %w", err)
	}
	return n, nil
}

func decodeCoords(doc string) ([]gridmap.Coordinate, error) {
	var cs []gridmap.Coordinate
	if err := json.Unmarshal([]byte(doc), &cs); err != nil {
		return nil, err
	}
	return cs, nil
}
