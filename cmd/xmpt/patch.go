package main

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	"github.com/AMBE1203/xmpcore/debug"
	"github.com/AMBE1203/xmpcore/encode"
	"github.com/AMBE1203/xmpcore/ir"
)

// patch applies an RFC 6902 JSON patch to the JSON form of each document
// and re-encodes the result.
func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	patchData := []byte(args[0])
	if cfg.File {
		patchData, err = readArg(args[0])
		if err != nil {
			return err
		}
	}
	p, err := jsonpatch.DecodePatch(patchData)
	if err != nil {
		return fmt.Errorf("error decoding patch: %w", err)
	}
	for _, arg := range fileArgs(args[1:]) {
		root, err := docArg(arg)
		if err != nil {
			return err
		}
		doc, err := ir.ToJSON(root)
		if err != nil {
			return err
		}
		patched, err := p.Apply(doc)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		if debug.Patch() {
			debug.Logf("patched %s:\n%s\n", arg, string(patched))
		}
		back, err := ir.FromJSON(patched)
		if err != nil {
			return fmt.Errorf("patch result for %s is not a valid tree: %w", arg, err)
		}
		if err := encode.Encode(back, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
