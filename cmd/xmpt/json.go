package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/AMBE1203/xmpcore/ir"
)

func jsonExport(cfg *JSONConfig, cc *cli.Context, args []string) error {
	args, err := cfg.JSON.Parse(cc, args)
	if err != nil {
		cfg.JSON.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range fileArgs(args) {
		root, err := docArg(arg)
		if err != nil {
			return err
		}
		d, err := ir.ToJSON(root)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s\n", d)
	}
	return nil
}
