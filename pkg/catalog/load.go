package catalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"sigs.k8s.io/yaml"

	"github.com/vhavlena/polstream/pkg/record"
	"github.com/vhavlena/polstream/pkg/token"
)

// LoadAliases reads an alias catalog file and decodes it. The format is
// picked by extension: .yaml/.yml files are converted to JSON first, .jsonc
// files are stripped of comments and trailing commas, anything else is read
// as plain JSON.
func LoadAliases(path string) (AliasCatalog, error) {
	r, err := openTokenStream(path)
	if err != nil {
		return nil, err
	}
	return DecodeAliases(r)
}

// LoadProviders reads a provider catalog file (dictionary mode) and decodes
// it. Format handling matches LoadAliases.
func LoadProviders(path string) (ProviderCatalog, error) {
	r, err := openTokenStream(path)
	if err != nil {
		return nil, err
	}
	return DecodeProviders(r)
}

// LoadRecords reads a configuration file whose root is either a single
// object or an array of objects and returns the normalized record sequence.
func LoadRecords(path string) ([]record.Record, error) {
	r, err := openTokenStream(path)
	if err != nil {
		return nil, err
	}
	return record.DecodeRootSequence(r)
}

// openTokenStream normalizes the file contents to JSON and wraps them in a
// token reader.
func openTokenStream(path string) (token.Reader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.YAMLToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("load catalog %s: %w", path, err)
		}
	case ".jsonc":
		data = jsonc.ToJSON(data)
	}
	return token.NewJSONReader(bytes.NewReader(data)), nil
}
