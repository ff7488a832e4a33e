package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/config"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/notify"
)

func TestSeedCatalog(t *testing.T) {
	products := catalog.NewService(nil)

	require.NoError(t, seedCatalog(products, filepath.Join("..", "..", "config", "catalog.yaml"), zap.NewNop()))
	assert.True(t, products.IsProductAvailable("101"))
	assert.False(t, products.IsProductAvailable("103"))

	assert.Error(t, seedCatalog(products, filepath.Join(t.TempDir(), "missing.yaml"), zap.NewNop()))
}

func TestBuildNotifier_Log(t *testing.T) {
	n, closeFn, err := buildNotifier(config.Config{Notifier: config.NotifierLog}, zap.NewNop())
	require.NoError(t, err)
	defer closeFn()

	ln, ok := n.(*notify.LogNotifier)
	require.True(t, ok)
	require.NoError(t, ln.SendSMS(context.Background(), "+1", "hi"))
	assert.Len(t, ln.Sent(), 1)
}

func TestRun_StopsOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("products: []\n"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := run(ctx, config.Config{
		HTTPAddr:        "127.0.0.1:0",
		Notifier:        config.NotifierLog,
		ShutdownTimeout: time.Second,
		SeedCatalog:     path,
	}, zap.NewNop())
	assert.NoError(t, err)
}
