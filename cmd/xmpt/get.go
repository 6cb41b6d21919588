package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/AMBE1203/xmpcore/encode"
)

// get resolves a property path whose first segment is a schema prefix,
// for example ns1/ns1:Title or dc/dc:creator[1].
func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a property path", cli.ErrUsage)
	}
	path := args[0]
	for _, arg := range fileArgs(args[1:]) {
		root, err := docArg(arg)
		if err != nil {
			return err
		}
		node, err := root.GetPath(path)
		if err != nil {
			return fmt.Errorf("error resolving %s in %s: %w", path, arg, err)
		}
		if node == nil {
			return cli.ExitCodeErr(1)
		}
		if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
