package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAliasesYAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "aliases.yaml", `
Microsoft.Foo:
  bar:
    alias1: properties.a
    alias2: properties.b
`)
	cat, err := LoadAliases(path)
	require.NoError(t, err)

	got, ok := cat.Resolve("microsoft.foo", "bar", "alias2")
	require.True(t, ok)
	assert.Equal(t, "properties.b", got)
}

func TestLoadAliasesJSONC(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "aliases.jsonc", `{
	// externally curated; comments allowed
	"Microsoft.Foo": {
		"bar": {"alias1": "properties.a"},
	},
}`)
	cat, err := LoadAliases(path)
	require.NoError(t, err)

	got, ok := cat.Resolve("Microsoft.Foo", "bar", "alias1")
	require.True(t, ok)
	assert.Equal(t, "properties.a", got)
}

func TestLoadProvidersJSON(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "providers.json",
		`{"Microsoft.Storage": {"types": {"storageAccounts": {"kind": "StorageV2"}}}}`)
	cat, err := LoadProviders(path)
	require.NoError(t, err)

	_, ok := cat.Type("Microsoft.Storage", "storageAccounts")
	assert.True(t, ok)
}

func TestLoadRecords(t *testing.T) {
	t.Parallel()

	t.Run("single object yaml", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "single.yml", "name: one\nvalue: 1\n")
		recs, err := LoadRecords(path)
		require.NoError(t, err)
		require.Len(t, recs, 1)
	})

	t.Run("array json", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "many.json", `[{"name":"a"},{"name":"b"}]`)
		recs, err := LoadRecords(path)
		require.NoError(t, err)
		require.Len(t, recs, 2)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := LoadRecords(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})
}
