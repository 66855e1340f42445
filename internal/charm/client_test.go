// ABOUTME: Tests for charm client option handling.
// ABOUTME: Network and kv operations are exercised via the CLI, not here.

package charm

import (
	"os"
	"testing"
	"time"

	"github.com/harper/notebook/internal/store"
	"github.com/stretchr/testify/assert"
)

var _ store.Backend = (*Client)(nil)

func TestNewClientDefaults(t *testing.T) {
	c := NewClient()

	assert.Equal(t, DBName, c.dbName)
	assert.True(t, c.autoSync)
	assert.Zero(t, c.staleThreshold)
	assert.False(t, c.IsStale(), "zero threshold never reports stale")
}

func TestNewClientOptions(t *testing.T) {
	t.Setenv("CHARM_HOST", "")
	c := NewClient(
		WithDBName("notebook-test"),
		WithAutoSync(false),
		WithStaleThreshold(time.Hour),
		WithHost("charm.example.com"),
	)

	assert.Equal(t, "notebook-test", c.dbName)
	assert.False(t, c.autoSync)
	assert.Equal(t, time.Hour, c.staleThreshold)
	assert.Equal(t, "charm.example.com", os.Getenv("CHARM_HOST"))
}

func TestWithHostEmptyKeepsEnv(t *testing.T) {
	t.Setenv("CHARM_HOST", "keep.example.com")
	NewClient(WithHost(""))
	assert.Equal(t, "keep.example.com", os.Getenv("CHARM_HOST"))
}
