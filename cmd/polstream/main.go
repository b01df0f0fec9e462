// Command polstream inspects policy catalog files: alias mappings, resource
// provider catalogs, and rule configuration documents.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/davecgh/go-spew/spew"

	"github.com/vhavlena/polstream/pkg/catalog"
	"github.com/vhavlena/polstream/pkg/record"
	"github.com/vhavlena/polstream/pkg/ruleproj"
	"github.com/vhavlena/polstream/pkg/token"
)

type cli struct {
	Dump bool `help:"Dump decoded structures instead of printing summaries."`

	Aliases   aliasesCmd   `cmd:"" help:"Decode a policy alias catalog file."`
	Providers providersCmd `cmd:"" help:"Decode a resource provider catalog file."`
	Normalize normalizeCmd `cmd:"" help:"Normalize a configuration file into a record sequence."`
	Project   projectCmd   `cmd:"" help:"Project a rule definition file into the consumer schema."`
}

type aliasesCmd struct {
	Path string `arg:"" help:"Catalog file (.json, .jsonc, .yaml)."`
}

func (c *aliasesCmd) Run(root *cli) error {
	cat, err := catalog.LoadAliases(c.Path)
	if err != nil {
		return err
	}
	if root.Dump {
		spew.Dump(cat)
		return nil
	}
	aliases := 0
	for _, types := range cat {
		for _, paths := range types {
			aliases += len(paths)
		}
	}
	fmt.Printf("%d providers, %d aliases\n", len(cat), aliases)
	return nil
}

type providersCmd struct {
	Path string `arg:"" help:"Catalog file (.json, .jsonc, .yaml)."`
}

func (c *providersCmd) Run(root *cli) error {
	cat, err := catalog.LoadProviders(c.Path)
	if err != nil {
		return err
	}
	if root.Dump {
		spew.Dump(cat)
		return nil
	}
	types := 0
	for _, t := range cat {
		types += len(t)
	}
	fmt.Printf("%d namespaces, %d resource types\n", len(cat), types)
	return nil
}

type normalizeCmd struct {
	Path string `arg:"" help:"Configuration file holding an object or an array of objects."`
}

func (c *normalizeCmd) Run(root *cli) error {
	recs, err := catalog.LoadRecords(c.Path)
	if err != nil {
		return err
	}
	if root.Dump {
		spew.Dump(recs)
		return nil
	}
	fmt.Printf("%d records\n", len(recs))
	return nil
}

type projectCmd struct {
	Path string `arg:"" help:"Rule definition file."`
}

func (c *projectCmd) Run(root *cli) error {
	recs, err := catalog.LoadRecords(c.Path)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		return fmt.Errorf("no rule definition in %s", c.Path)
	}
	rule := ruleFromRecord(recs[0])
	w := token.NewJSONWriter(os.Stdout)
	if err := ruleproj.Encode(w, rule); err != nil {
		return err
	}
	fmt.Println()
	return nil
}

// ruleFromRecord maps the fields of a decoded rule document onto the domain
// rule object. Missing fields stay zero.
func ruleFromRecord(rec record.Record) *ruleproj.RuleDefinition {
	rule := &ruleproj.RuleDefinition{}
	rule.Name = stringField(rec, "name")
	rule.DisplayName = stringField(rec, "displayName")
	rule.Description = stringField(rec, "description")
	rule.Mode = stringField(rec, "mode")
	rule.Effect = stringField(rec, "effect")
	if v, ok := rec.Get("if"); ok {
		rule.Condition = v
	}
	if v, ok := rec.Get("metadata"); ok {
		if meta, isMap := v.AsInterface().(map[string]any); isMap {
			rule.Metadata = meta
		}
	}
	return rule
}

func stringField(rec record.Record, name string) string {
	if v, ok := rec.Get(name); ok {
		if s, isStr := v.String(); isStr {
			return s
		}
	}
	return ""
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("polstream"),
		kong.Description("Policy catalog decoding tools."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(&c); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
