package main

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/cfg-format/go-cfg/gomap"
)

func export(cfg *ExportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Export.Parse(cc, args)
	if err != nil {
		cfg.Export.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		if i > 0 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if err := exportFile(cfg, cc, arg); err != nil {
			return err
		}
	}
	return nil
}

func exportFile(cfg *ExportConfig, cc *cli.Context, file string) error {
	root, err := getCfgFile(cc, file, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	d, err := yaml.Marshal(gomap.ToGo(root))
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	if _, err := cc.Out.Write(d); err != nil {
		return err
	}
	return nil
}
