package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/cfg-format/go-cfg/encode"
	"github.com/cfg-format/go-cfg/ir"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getCfgFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getCfgFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if ir.Equal(a, b) {
		return nil
	}
	da, err := canonical(a)
	if err != nil {
		return err
	}
	db, err := canonical(b)
	if err != nil {
		return err
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(da, db, true)
	if cfg.Patch {
		patches := dmp.PatchMake(da, diffs)
		if _, err := io.WriteString(cc.Out, dmp.PatchToText(patches)); err != nil {
			return err
		}
	} else {
		if _, err := io.WriteString(cc.Out, dmp.DiffPrettyText(diffs)); err != nil {
			return err
		}
	}
	return cli.ExitCodeErr(1)
}

// canonical renders the tree without color so diffs compare content,
// not escape codes.
func canonical(y *ir.Node) (string, error) {
	var buf bytes.Buffer
	if err := encode.Encode(y, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
