package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopez/shopez/internal/catalog"
	_ "github.com/shopez/shopez/testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCatalogList(t *testing.T) {
	out, err := execute(t, "catalog", "list", "--locale", "en")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "p1")
	assert.Contains(t, lines[1], "Wireless Mouse")
	assert.Contains(t, lines[1], "599.00")
	assert.Contains(t, lines[7], "5,999.00")
}

func TestCatalogListJSON(t *testing.T) {
	out, err := execute(t, "catalog", "list", "--json")
	require.NoError(t, err)

	var products []catalog.Product
	require.NoError(t, json.Unmarshal([]byte(out), &products))
	require.Len(t, products, 7)
	assert.Equal(t, int64(59900), products[0].Price)
}

func TestCatalogStatsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.yaml")
	data := []byte("products:\n  - id: a\n    name: A\n    price: 1000\n  - id: b\n    name: B\n    price: 3000\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	out, err := execute(t, "catalog", "stats", "--file", path, "--currency", "USD", "--locale", "en")
	require.NoError(t, err)
	assert.Contains(t, out, "products  2")
	assert.Contains(t, out, "$40.00")
	assert.Contains(t, out, "$20.00")
}

func TestCatalogRejectsUnknownCurrency(t *testing.T) {
	_, err := execute(t, "catalog", "stats", "--currency", "NOPE")
	require.Error(t, err)
}

func TestServeIsNoOpInTestMode(t *testing.T) {
	_, err := execute(t, "serve", "--env-file", "")
	require.NoError(t, err)
}
