package catalog

import (
	"fmt"

	perr "github.com/vhavlena/polstream/pkg/err"
	"github.com/vhavlena/polstream/pkg/record"
	"github.com/vhavlena/polstream/pkg/token"
)

// typesKey is the reserved property of a provider entry that holds its
// resource-type map. All sibling properties exist in the source but are
// irrelevant to the catalog and are consumed without materialization.
const typesKey = "types"

// TypeDefinition is the opaque leaf of a provider catalog. Its fields come
// from the delegated generic decoder; the catalog does not interpret them.
type TypeDefinition struct {
	Properties record.Record
}

// ResourceTypes maps a folded resource-type name to its definition.
type ResourceTypes map[string]TypeDefinition

// ProviderCatalog maps a folded provider namespace to its resource types.
// Both key levels are case-insensitive.
type ProviderCatalog map[string]ResourceTypes

// Type returns the definition registered for the given namespace and
// resource-type name.
//
// Parameters:
//
//	namespace string: Provider namespace, any casing.
//	name string: Resource-type name, any casing.
//
// Returns:
//
//	TypeDefinition: The registered definition.
//	bool: True when the namespace/name pair is present.
func (c ProviderCatalog) Type(namespace, name string) (TypeDefinition, bool) {
	types, ok := c[fold(namespace)]
	if !ok {
		return TypeDefinition{}, false
	}
	def, ok := types[fold(name)]
	return def, ok
}

// DecodeProviders decodes a map of provider-name to provider-entry objects
// into a provider catalog. This is the dictionary mode; use DecodeProvider
// when the stream holds a single provider entry. The mode is chosen by the
// caller's target shape, never by inspecting the stream.
//
// Parameters:
//
//	r token.Reader: Token stream positioned at the root object.
//
// Returns:
//
//	ProviderCatalog: Namespace to type-name to definition map.
//	error: Malformed-input failure, a delegated leaf error, or a stream error.
func DecodeProviders(r token.Reader) (ProviderCatalog, error) {
	tok, err := r.Next()
	if err != nil {
		return nil, fmt.Errorf("decode providers: %w", err)
	}
	if tok.Kind != token.KindObjectStart {
		return nil, perr.ErrUnexpectedToken(token.KindObjectStart.String(), tok.Kind.String())
	}

	catalog := ProviderCatalog{}
	for {
		tok, err := r.Next()
		if err != nil {
			return nil, fmt.Errorf("decode providers: %w", err)
		}
		switch tok.Kind {
		case token.KindObjectEnd:
			return catalog, nil
		case token.KindName:
			namespace := tok.Str
			vtok, err := r.Next()
			if err != nil {
				return nil, fmt.Errorf("decode providers: %w", err)
			}
			if vtok.Kind != token.KindObjectStart {
				return nil, perr.ErrUnexpectedToken(token.KindObjectStart.String(), vtok.Kind.String())
			}
			types, err := decodeProviderEntry(r)
			if err != nil {
				return nil, err
			}
			catalog[fold(namespace)] = types
		default:
			return nil, perr.ErrUnexpectedToken("property name or object end", tok.Kind.String())
		}
	}
}

// DecodeProvider decodes a single provider entry object into its resource
// types. This is the single mode counterpart of DecodeProviders.
//
// Parameters:
//
//	r token.Reader: Token stream positioned at the provider entry object.
//
// Returns:
//
//	ResourceTypes: Type-name to definition map.
//	error: Malformed-input failure, a delegated leaf error, or a stream error.
func DecodeProvider(r token.Reader) (ResourceTypes, error) {
	tok, err := r.Next()
	if err != nil {
		return nil, fmt.Errorf("decode provider: %w", err)
	}
	if tok.Kind != token.KindObjectStart {
		return nil, perr.ErrUnexpectedToken(token.KindObjectStart.String(), tok.Kind.String())
	}
	return decodeProviderEntry(r)
}

// decodeProviderEntry reads a provider entry whose object-start token has
// already been consumed. Only the reserved types key contributes to the
// result.
func decodeProviderEntry(r token.Reader) (ResourceTypes, error) {
	types := ResourceTypes{}
	for {
		tok, err := r.Next()
		if err != nil {
			return nil, fmt.Errorf("decode provider: %w", err)
		}
		switch tok.Kind {
		case token.KindObjectEnd:
			return types, nil
		case token.KindName:
			name := tok.Str
			vtok, err := r.Next()
			if err != nil {
				return nil, fmt.Errorf("decode provider: %w", err)
			}
			if name != typesKey {
				if err := skipValueFrom(r, vtok); err != nil {
					return nil, err
				}
				continue
			}
			if vtok.Kind != token.KindObjectStart {
				return nil, perr.ErrUnexpectedToken(token.KindObjectStart.String(), vtok.Kind.String())
			}
			if err := decodeResourceTypes(r, types); err != nil {
				return nil, err
			}
		default:
			return nil, perr.ErrUnexpectedToken("property name or object end", tok.Kind.String())
		}
	}
}

// decodeResourceTypes reads the types object, delegating each leaf to the
// generic record decoder. Leaf errors propagate unchanged.
func decodeResourceTypes(r token.Reader, types ResourceTypes) error {
	for {
		tok, err := r.Next()
		if err != nil {
			return fmt.Errorf("decode provider types: %w", err)
		}
		switch tok.Kind {
		case token.KindObjectEnd:
			return nil
		case token.KindName:
			name := tok.Str
			vtok, err := r.Next()
			if err != nil {
				return fmt.Errorf("decode provider types: %w", err)
			}
			if vtok.Kind != token.KindObjectStart {
				return perr.ErrUnexpectedToken(token.KindObjectStart.String(), vtok.Kind.String())
			}
			props, err := record.DecodeBody(r)
			if err != nil {
				return err
			}
			types[fold(name)] = TypeDefinition{Properties: props}
		default:
			return perr.ErrUnexpectedToken("property name or object end", tok.Kind.String())
		}
	}
}
