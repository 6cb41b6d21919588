package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/AMBE1203/xmpcore/encode"
	"github.com/AMBE1203/xmpcore/ir"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	a, err := docArg(args[0])
	if err != nil {
		return err
	}
	b, err := docArg(args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		a, b = b, a
	}
	if err := a.Sort(); err != nil {
		return err
	}
	if err := b.Sort(); err != nil {
		return err
	}
	// cheap equality check before rendering anything
	if a.Hash() == b.Hash() && ir.Equal(a, b) {
		return nil
	}

	aText := encode.MustString(a) + "\n"
	bText := encode.MustString(b) + "\n"
	dmp := diffmatchpatch.New()
	ac, bc, lines := dmp.DiffLinesToChars(aText, bText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ac, bc, false), lines)

	if useColor(cfg.MainConfig, cc) {
		fmt.Fprint(cc.Out, dmp.DiffPrettyText(diffs))
		return cli.ExitCodeErr(1)
	}
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			fmt.Fprintf(cc.Out, "%s%s\n", prefix, line)
		}
	}
	return cli.ExitCodeErr(1)
}

func useColor(cfg *MainConfig, cc *cli.Context) bool {
	if cfg.Color {
		return true
	}
	f, ok := cc.Out.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
