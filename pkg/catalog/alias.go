// Package catalog decodes resource-provider catalogs and policy alias
// mappings directly from a token stream into dense nested maps. The two
// shapes are known in advance, so the decoders skip the generic dynamic
// record model and build their lookup structures in a single pass.
package catalog

import (
	"fmt"
	"strings"

	perr "github.com/vhavlena/polstream/pkg/err"
	"github.com/vhavlena/polstream/pkg/token"
)

// AliasPaths maps a folded alias name to its alias path.
type AliasPaths map[string]string

// TypeAliases maps a folded resource-type name to its alias paths.
type TypeAliases map[string]AliasPaths

// AliasCatalog maps a folded provider namespace to its resource types.
// All three key levels are case-insensitive: keys are folded on insert and
// lookups fold their arguments, matching cloud resource naming conventions.
type AliasCatalog map[string]TypeAliases

// fold canonicalizes a catalog key for case-insensitive matching.
func fold(key string) string {
	return strings.ToLower(key)
}

// Resolve returns the alias path registered for the given provider, resource
// type, and alias name.
//
// Parameters:
//
//	provider string: Provider namespace, any casing.
//	resourceType string: Resource-type name, any casing.
//	alias string: Alias name, any casing.
//
// Returns:
//
//	string: The alias path.
//	bool: True when the full chain is present.
func (c AliasCatalog) Resolve(provider, resourceType, alias string) (string, bool) {
	paths, ok := c.Aliases(provider, resourceType)
	if !ok {
		return "", false
	}
	path, ok := paths[fold(alias)]
	return path, ok
}

// Aliases returns the alias paths for a provider and resource type.
//
// Parameters:
//
//	provider string: Provider namespace, any casing.
//	resourceType string: Resource-type name, any casing.
//
// Returns:
//
//	AliasPaths: Alias-name to path map.
//	bool: True when the provider/type pair is present.
func (c AliasCatalog) Aliases(provider, resourceType string) (AliasPaths, bool) {
	types, ok := c[fold(provider)]
	if !ok {
		return nil, false
	}
	paths, ok := types[fold(resourceType)]
	return paths, ok
}

// DecodeAliases decodes a three-level nested object stream into an alias
// catalog: provider to resource type to alias name to alias path.
//
// Alias catalogs are large externally curated artifacts, so entries whose
// value has the wrong kind at any inner level are consumed and dropped
// rather than failing the whole decode. Only a root that is not an object
// start is fatal.
//
// Parameters:
//
//	r token.Reader: Token stream positioned at the catalog root.
//
// Returns:
//
//	AliasCatalog: Fully materialized catalog.
//	error: Malformed-input failure at the root, or a stream error.
func DecodeAliases(r token.Reader) (AliasCatalog, error) {
	tok, err := r.Next()
	if err != nil {
		return nil, fmt.Errorf("decode aliases: %w", err)
	}
	if tok.Kind != token.KindObjectStart {
		return nil, perr.ErrUnexpectedToken(token.KindObjectStart.String(), tok.Kind.String())
	}

	catalog := AliasCatalog{}
	for {
		tok, err := r.Next()
		if err != nil {
			return nil, fmt.Errorf("decode aliases: %w", err)
		}
		switch tok.Kind {
		case token.KindObjectEnd:
			return catalog, nil
		case token.KindName:
			provider := tok.Str
			vtok, err := r.Next()
			if err != nil {
				return nil, fmt.Errorf("decode aliases: %w", err)
			}
			if vtok.Kind != token.KindObjectStart {
				if err := skipValueFrom(r, vtok); err != nil {
					return nil, err
				}
				continue
			}
			types, err := decodeTypeAliases(r)
			if err != nil {
				return nil, err
			}
			catalog[fold(provider)] = types
		default:
			return nil, perr.ErrUnexpectedToken("property name or object end", tok.Kind.String())
		}
	}
}

// decodeTypeAliases decodes the resource-type level of the catalog. The
// object-start token has already been consumed.
func decodeTypeAliases(r token.Reader) (TypeAliases, error) {
	types := TypeAliases{}
	for {
		tok, err := r.Next()
		if err != nil {
			return nil, fmt.Errorf("decode aliases: %w", err)
		}
		switch tok.Kind {
		case token.KindObjectEnd:
			return types, nil
		case token.KindName:
			resourceType := tok.Str
			vtok, err := r.Next()
			if err != nil {
				return nil, fmt.Errorf("decode aliases: %w", err)
			}
			if vtok.Kind != token.KindObjectStart {
				if err := skipValueFrom(r, vtok); err != nil {
					return nil, err
				}
				continue
			}
			paths, err := decodeAliasPaths(r)
			if err != nil {
				return nil, err
			}
			types[fold(resourceType)] = paths
		default:
			return nil, perr.ErrUnexpectedToken("property name or object end", tok.Kind.String())
		}
	}
}

// decodeAliasPaths decodes the innermost alias-name level. Values must be
// strings; anything else is consumed and dropped.
func decodeAliasPaths(r token.Reader) (AliasPaths, error) {
	paths := AliasPaths{}
	for {
		tok, err := r.Next()
		if err != nil {
			return nil, fmt.Errorf("decode aliases: %w", err)
		}
		switch tok.Kind {
		case token.KindObjectEnd:
			return paths, nil
		case token.KindName:
			alias := tok.Str
			vtok, err := r.Next()
			if err != nil {
				return nil, fmt.Errorf("decode aliases: %w", err)
			}
			if vtok.Kind != token.KindString {
				if err := skipValueFrom(r, vtok); err != nil {
					return nil, err
				}
				continue
			}
			paths[fold(alias)] = vtok.Str
		default:
			return nil, perr.ErrUnexpectedToken("property name or object end", tok.Kind.String())
		}
	}
}
