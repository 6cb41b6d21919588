package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/AMBE1203/xmpcore/eval"
)

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		cfg.Find.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	src := cfg.Expr
	if src == "" {
		if len(args) == 0 {
			return fmt.Errorf("%w: find requires a filter expression", cli.ErrUsage)
		}
		src = args[0]
		args = args[1:]
	}
	matched := false
	for _, arg := range fileArgs(args) {
		root, err := docArg(arg)
		if err != nil {
			return err
		}
		nodes, err := eval.Filter(root, src)
		if err != nil {
			return err
		}
		for _, n := range nodes {
			matched = true
			if n.Opts.IsComposite() {
				fmt.Fprintf(cc.Out, "%s\n", n.Path())
				continue
			}
			fmt.Fprintf(cc.Out, "%s = %q\n", n.Path(), n.Value)
		}
	}
	if !matched {
		return cli.ExitCodeErr(1)
	}
	return nil
}
