package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/arangodb/go-driver/v2/arangodb"
	"github.com/arangodb/go-driver/v2/connection"
)

// Collection names, one per persisted entity.
const (
	CollectionUsers      = "users"
	CollectionWorkspaces = "workspaces"
	CollectionBoards     = "boards"
)

// DB wraps an ArangoDB database handle. It is the single shared resource
// behind every store; stores re-fetch documents from it rather than cache.
type DB struct {
	conn   connection.Connection
	client arangodb.Client
	db     arangodb.Database
	cfg    Config
}

type Config struct {
	URL      string
	Username string
	Password string
	Database string
}

func (c Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("arangodb URL is required")
	}
	if c.Username == "" {
		return fmt.Errorf("arangodb username is required")
	}
	if c.Database == "" {
		return fmt.Errorf("arangodb database name is required")
	}
	return nil
}

// New connects to ArangoDB and bootstraps the database, its collections
// and the unique email index. Safe to call against an already-provisioned
// deployment; all setup steps are idempotent.
func New(ctx context.Context, cfg Config) (*DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("arangodb config: %w", err)
	}

	endpoint := connection.NewRoundRobinEndpoints([]string{cfg.URL})
	conn := connection.NewHttp2Connection(connection.DefaultHTTP2ConfigurationWrapper(endpoint, true))

	auth := connection.NewBasicAuth(cfg.Username, cfg.Password)
	if err := conn.SetAuthentication(auth); err != nil {
		return nil, fmt.Errorf("arangodb auth: %w", err)
	}

	d := &DB{
		conn:   conn,
		client: arangodb.NewClient(conn),
		cfg:    cfg,
	}

	if err := d.ensureDatabase(ctx); err != nil {
		return nil, err
	}
	if err := d.ensureCollections(ctx); err != nil {
		return nil, err
	}

	return d, nil
}

// Database returns the underlying database handle for AQL queries.
func (d *DB) Database() arangodb.Database {
	return d.db
}

// Collection resolves a collection by name.
func (d *DB) Collection(ctx context.Context, name string) (arangodb.Collection, error) {
	col, err := d.db.GetCollection(ctx, name, nil)
	if err != nil {
		return nil, fmt.Errorf("get collection %s: %w", name, err)
	}
	return col, nil
}

func (d *DB) Close() error {
	return nil
}

func (d *DB) ensureDatabase(ctx context.Context) error {
	start := time.Now()

	exists, err := d.client.DatabaseExists(ctx, d.cfg.Database)
	if err != nil {
		return fmt.Errorf("check database exists: %w", err)
	}

	if !exists {
		_, err = d.client.CreateDatabase(ctx, d.cfg.Database, nil)
		if err != nil {
			return fmt.Errorf("create database: %w", err)
		}
		slog.InfoContext(ctx, "arangodb database created",
			"database", d.cfg.Database,
			"duration_ms", time.Since(start).Milliseconds())
	}

	db, err := d.client.GetDatabase(ctx, d.cfg.Database, nil)
	if err != nil {
		return fmt.Errorf("get database: %w", err)
	}
	d.db = db

	return nil
}

func (d *DB) ensureCollections(ctx context.Context) error {
	for _, name := range []string{CollectionUsers, CollectionWorkspaces, CollectionBoards} {
		if err := d.ensureCollection(ctx, name); err != nil {
			return err
		}
	}

	// Duplicate registrations are rejected by the store, not the app.
	users, err := d.db.GetCollection(ctx, CollectionUsers, nil)
	if err != nil {
		return fmt.Errorf("get collection %s: %w", CollectionUsers, err)
	}
	unique := true
	_, _, err = users.EnsurePersistentIndex(ctx, []string{"email"}, &arangodb.CreatePersistentIndexOptions{
		Unique: &unique,
	})
	if err != nil {
		return fmt.Errorf("ensure email index: %w", err)
	}

	return nil
}

func (d *DB) ensureCollection(ctx context.Context, name string) error {
	exists, err := d.db.CollectionExists(ctx, name)
	if err != nil {
		return fmt.Errorf("check collection %s exists: %w", name, err)
	}

	if !exists {
		colType := arangodb.CollectionTypeDocument
		_, err = d.db.CreateCollectionV2(ctx, name, &arangodb.CreateCollectionPropertiesV2{
			Type: &colType,
		})
		if err != nil {
			return fmt.Errorf("create collection %s: %w", name, err)
		}
		slog.InfoContext(ctx, "arangodb collection created", "collection", name)
	}

	return nil
}
