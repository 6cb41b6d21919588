package main

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/AMBE1203/xmpcore"
	"github.com/AMBE1203/xmpcore/debug"
	"github.com/AMBE1203/xmpcore/encode"
	"github.com/AMBE1203/xmpcore/ir"
)

// importDoc is the YAML shape accepted by the import command:
//
//	namespaces:
//	  ns1: http://ns.example.com/1/
//	properties:
//	  - schema: http://ns.example.com/1/
//	    path: ns1:Title
//	    value: Hello
//	    qualifiers:
//	      xml:lang: en
//	  - schema: http://ns.example.com/1/
//	    path: ns1:Keywords
//	    options: unordered
//	    items: [go, metadata]
type importDoc struct {
	Namespaces map[string]string `yaml:"namespaces"`
	Properties []importProp      `yaml:"properties"`
}

type importProp struct {
	Schema     string            `yaml:"schema"`
	Path       string            `yaml:"path"`
	Value      string            `yaml:"value"`
	Options    string            `yaml:"options"`
	Items      []string          `yaml:"items"`
	Qualifiers map[string]string `yaml:"qualifiers"`
}

func importCmd(cfg *ImportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Import.Parse(cc, args)
	if err != nil {
		cfg.Import.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range fileArgs(args) {
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		meta, err := importTree(d)
		if err != nil {
			return fmt.Errorf("error importing %s: %w", arg, err)
		}
		if err := encode.Encode(meta.Root(), cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}

func importTree(d []byte) (*xmpcore.Meta, error) {
	doc := &importDoc{}
	if err := yaml.Unmarshal(d, doc); err != nil {
		return nil, err
	}
	meta := xmpcore.NewMeta()
	for prefix, uri := range doc.Namespaces {
		if _, err := meta.Registry().RegisterNamespace(uri, prefix); err != nil {
			return nil, err
		}
	}
	for _, prop := range doc.Properties {
		if debug.Import() {
			debug.Logf("import %s %s\n", prop.Schema, prop.Path)
		}
		opts, err := ir.ParseOptions(prop.Options)
		if err != nil {
			return nil, fmt.Errorf("property %s: %w", prop.Path, err)
		}
		if len(prop.Items) > 0 {
			if opts == 0 {
				opts = ir.OptArray
			}
			for _, item := range prop.Items {
				if err := meta.AppendArrayItem(prop.Schema, prop.Path, item, opts); err != nil {
					return nil, fmt.Errorf("property %s: %w", prop.Path, err)
				}
			}
		} else if err := meta.SetProperty(prop.Schema, prop.Path, prop.Value, opts); err != nil {
			return nil, fmt.Errorf("property %s: %w", prop.Path, err)
		}
		for name, value := range prop.Qualifiers {
			if err := meta.SetQualifier(prop.Schema, prop.Path, name, value); err != nil {
				return nil, fmt.Errorf("property %s qualifier %s: %w", prop.Path, name, err)
			}
		}
	}
	return meta, nil
}
