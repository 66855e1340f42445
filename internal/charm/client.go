// ABOUTME: Charm KV slot store using the transactional Do API
// ABOUTME: Short-lived connections per operation, optional cloud sync after writes

package charm

import (
	"errors"
	"os"
	"time"

	"github.com/charmbracelet/charm/client"
	"github.com/charmbracelet/charm/kv"
	charmproto "github.com/charmbracelet/charm/proto"
	"github.com/charmbracelet/log"
	"github.com/dgraph-io/badger/v3"
	"github.com/harper/notebook/internal/store"
)

const (
	// DBName is the name of the charm kv database for notebook.
	DBName = "notebook"
)

// Client is a store.Backend over charm kv.
// It does NOT hold a persistent connection: each operation opens the
// database, performs the operation, and closes it.
type Client struct {
	dbName         string
	autoSync       bool
	staleThreshold time.Duration
	logger         *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithDBName sets the database name.
func WithDBName(name string) Option {
	return func(c *Client) {
		c.dbName = name
	}
}

// WithAutoSync enables or disables auto-sync after writes.
func WithAutoSync(enabled bool) Option {
	return func(c *Client) {
		c.autoSync = enabled
	}
}

// WithStaleThreshold syncs before reads when the last sync is older than d.
// Zero disables the check.
func WithStaleThreshold(d time.Duration) Option {
	return func(c *Client) {
		c.staleThreshold = d
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithHost points charm at a self-hosted server.
func WithHost(host string) Option {
	return func(c *Client) {
		if host != "" {
			_ = os.Setenv("CHARM_HOST", host)
		}
	}
}

// NewClient creates a new client with the given options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		dbName:   DBName,
		autoSync: true,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get retrieves a slot (read-only, no lock contention).
func (c *Client) Get(slot string) ([]byte, error) {
	if err := c.SyncIfStale(); err != nil {
		c.logger.Warn("stale sync failed, reading local copy", "err", err)
	}
	var val []byte
	err := kv.DoReadOnly(c.dbName, func(k *kv.KV) error {
		var err error
		val, err = k.Get([]byte(slot))
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, store.ErrSlotNotFound
	}
	return val, err
}

// Set stores a slot and syncs when auto-sync is enabled.
func (c *Client) Set(slot string, value []byte) error {
	return kv.Do(c.dbName, func(k *kv.KV) error {
		if err := k.Set([]byte(slot), value); err != nil {
			return err
		}
		if c.autoSync {
			return k.Sync()
		}
		return nil
	})
}

// Sync triggers a manual sync with the charm server.
func (c *Client) Sync() error {
	return kv.Do(c.dbName, func(k *kv.KV) error {
		return k.Sync()
	})
}

// LastSyncTime returns the timestamp of the last sync operation.
func (c *Client) LastSyncTime() time.Time {
	var lastSync time.Time
	_ = kv.DoReadOnly(c.dbName, func(k *kv.KV) error {
		lastSync = k.LastSyncTime()
		return nil
	})
	return lastSync
}

// IsStale checks if the data is stale based on the configured threshold.
func (c *Client) IsStale() bool {
	if c.staleThreshold == 0 {
		return false
	}
	var isStale bool
	_ = kv.DoReadOnly(c.dbName, func(k *kv.KV) error {
		isStale = k.IsStale(c.staleThreshold)
		return nil
	})
	return isStale
}

// SyncIfStale syncs with the charm server if data is stale.
func (c *Client) SyncIfStale() error {
	if !c.IsStale() {
		return nil
	}
	c.logger.Info("data stale, syncing", "threshold", c.staleThreshold)
	return c.Sync()
}

// Reset clears all local data.
func (c *Client) Reset() error {
	return kv.Do(c.dbName, func(k *kv.KV) error {
		return k.Reset()
	})
}

// User returns the current charm user information.
func (c *Client) User() (*charmproto.User, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return nil, err
	}
	return cc.Bio()
}

// Link initiates the charm linking process for this device.
func (c *Client) Link() error {
	_, err := c.User()
	return err
}

// Unlink removes the local charm data for this device.
func (c *Client) Unlink() error {
	return c.Reset()
}

// Close is a no-op; connections are closed after each operation.
func (c *Client) Close() error {
	return nil
}
