package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ravenclaw900/dst-farming-ui/internal/config"
	"github.com/ravenclaw900/dst-farming-ui/internal/plant"
	"github.com/ravenclaw900/dst-farming-ui/internal/report"
	"github.com/ravenclaw900/dst-farming-ui/internal/tui"
	"gopkg.in/yaml.v3"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := run(os.Args[1:], cfg, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	season      string
	ratio       string
	size        string
	format      string
	plants      bool
	interactive bool
}

func parseFlags(args []string, cfg *config.Config) (options, error) {
	var opts options
	fs := flag.NewFlagSet("dst-farming", flag.ContinueOnError)
	fs.StringVar(&opts.season, "season", "", "season to plan for (Spring, Summer, Autumn, Winter)")
	fs.StringVar(&opts.ratio, "ratio", "", "crop ratio (1:1, 1:1:1, 2:1, 2:1:1)")
	fs.StringVar(&opts.size, "size", cfg.FarmSize.String(), "farm size in cells, as WIDTHxHEIGHT")
	fs.StringVar(&opts.format, "format", cfg.Format, "output format (text or yaml)")
	fs.BoolVar(&opts.plants, "plants", false, "print the plant catalog and exit")
	fs.BoolVar(&opts.interactive, "i", false, "pick season and ratio interactively")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

func run(args []string, cfg *config.Config, out io.Writer) error {
	opts, err := parseFlags(args, cfg)
	if err != nil {
		return err
	}
	format, err := config.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	logger := cfg.Logger()

	if opts.plants {
		return printCatalog(out, format)
	}

	if opts.interactive || (opts.season == "" && opts.ratio == "") {
		farm, err := plant.ParseFarmSize(opts.size)
		if err != nil {
			return err
		}
		cfg.FarmSize = farm
		return tui.Run(cfg, logger)
	}
	if opts.season == "" || opts.ratio == "" {
		return fmt.Errorf("-season and -ratio must be given together")
	}

	season, err := plant.ParseSeason(opts.season)
	if err != nil {
		return err
	}
	ratio, err := plant.ParseCropRatio(opts.ratio)
	if err != nil {
		return err
	}
	farm, err := plant.ParseFarmSize(opts.size)
	if err != nil {
		return err
	}

	rep := report.Build(season, ratio, &farm)
	logger.Debug("lookup", "season", season, "ratio", ratio, "farm", farm, "found", rep.Found, "recipes", len(rep.Recipes))
	return printReport(out, rep, format)
}

func printReport(out io.Writer, rep report.Report, format string) error {
	if format == "yaml" {
		data, err := rep.YAML()
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}
	_, err := fmt.Fprint(out, tui.RenderReport(rep))
	return err
}

func printCatalog(out io.Writer, format string) error {
	if format == "yaml" {
		return writeYAML(out, report.Catalog())
	}
	_, err := fmt.Fprintln(out, tui.RenderCatalog(report.Catalog()))
	return err
}

func writeYAML(out io.Writer, v any) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
