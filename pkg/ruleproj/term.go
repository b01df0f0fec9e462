package ruleproj

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/open-policy-agent/opa/ast"

	"github.com/vhavlena/polstream/pkg/token"
)

// Term renders the projected rule as an OPA AST term so it can be handed to
// the Rego evaluation engine as input data.
//
// Returns:
//
//	*ast.Term: Term holding the projected rule document.
//	error: Projection or conversion failure.
func (r *RuleDefinition) Term() (*ast.Term, error) {
	var buf bytes.Buffer
	if err := Encode(token.NewJSONWriter(&buf), r); err != nil {
		return nil, err
	}
	dec := json.NewDecoder(&buf)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("rule projection: %w", err)
	}
	v, err := ast.InterfaceToValue(doc)
	if err != nil {
		return nil, fmt.Errorf("rule projection: %w", err)
	}
	return ast.NewTerm(v), nil
}
