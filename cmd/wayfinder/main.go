// Command wayfinder finds the cheapest route across a terrain map file and
// writes a copy of the map with the route marked by '#'.
//
// Usage:
//
//	wayfinder [-map large_map.txt] [-out file | -inplace] [-heuristic manhattan|chebyshev]
//	          [-max-expansions n] [-geojson file] [-png file] [-scale px] [-caption]
//	          [-dump] [-v]
//
// Exit status is 0 when a route was found, 2 when the end is unreachable and
// 1 on any error.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/wayfinder/annotate"
	"github.com/katalvlaran/wayfinder/mapfile"
	"github.com/katalvlaran/wayfinder/render"
	"github.com/katalvlaran/wayfinder/report"
	"github.com/katalvlaran/wayfinder/search"
	"github.com/katalvlaran/wayfinder/terrain"
)

// Exit codes.
const (
	exitFound  = 0
	exitError  = 1
	exitNoPath = 2
)

// DefaultMapFile is read when -map is not given.
const DefaultMapFile = "large_map.txt"

// progressEvery is the number of closed cells between debug progress lines.
const progressEvery = 10000

var errUnknownHeuristic = errors.New("unknown heuristic")

type config struct {
	mapFile       string
	out           string
	inPlace       bool
	heuristic     string
	maxExpansions int
	geoJSON       string
	png           string
	scale         int
	caption       bool
	dump          bool
	verbose       bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitFound
		}
		return exitError
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	code, err := solve(cfg, stdout, log)
	if err != nil {
		log.Error("wayfinder failed", "err", err)
		return exitError
	}

	return code
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("wayfinder", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.mapFile, "map", DefaultMapFile, "terrain map file")
	fs.StringVar(&cfg.out, "out", "", "annotated copy (default <map>.path<ext>)")
	fs.BoolVar(&cfg.inPlace, "inplace", false, "mark the route in the map file itself")
	fs.StringVar(&cfg.heuristic, "heuristic", "manhattan", "manhattan (default, may return a non-minimal path) or chebyshev (always minimal)")
	fs.IntVar(&cfg.maxExpansions, "max-expansions", 0, "stop after closing this many cells (0 = no cap)")
	fs.StringVar(&cfg.geoJSON, "geojson", "", "write the route as GeoJSON to this file")
	fs.StringVar(&cfg.png, "png", "", "write a PNG rendering to this file")
	fs.IntVar(&cfg.scale, "scale", render.DefaultScale, "PNG pixels per cell")
	fs.BoolVar(&cfg.caption, "caption", false, "add a cost caption under the PNG")
	fs.BoolVar(&cfg.dump, "dump", false, "print the grid and the cell scores")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.inPlace && cfg.out != "" {
		fmt.Fprintln(stderr, "-inplace and -out are mutually exclusive")
		return cfg, errors.New("conflicting flags")
	}

	return cfg, nil
}

func heuristicOf(name string) (terrain.Heuristic, error) {
	switch strings.ToLower(name) {
	case "manhattan":
		return terrain.Manhattan, nil
	case "chebyshev":
		return terrain.Chebyshev, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownHeuristic, name)
	}
}

// outputPath returns the annotated copy's name: name.txt becomes
// name.path.txt.
func outputPath(cfg config) string {
	switch {
	case cfg.inPlace:
		return cfg.mapFile
	case cfg.out != "":
		return cfg.out
	}
	ext := filepath.Ext(cfg.mapFile)

	return strings.TrimSuffix(cfg.mapFile, ext) + ".path" + ext
}

func solve(cfg config, stdout io.Writer, log *slog.Logger) (int, error) {
	h, err := heuristicOf(cfg.heuristic)
	if err != nil {
		return exitError, err
	}

	// 1) Parse
	m, err := mapfile.ParseFile(cfg.mapFile, mapfile.WithHeuristic(h))
	if err != nil {
		return exitError, err
	}
	start, _ := m.Start()
	end, _ := m.End()
	log.Info("terrain loaded", "file", cfg.mapFile, "dimension", m.Dim(),
		"passable", m.Passable(), "start", start.String(), "end", end.String())
	if cfg.dump {
		if err := report.Grid(stdout, m); err != nil {
			return exitError, err
		}
	}

	// 2) Search
	closed := 0
	res, err := search.Run(m,
		search.WithMaxExpansions(cfg.maxExpansions),
		search.WithOnClose(func(cell *terrain.Cell) {
			if closed++; closed%progressEvery == 0 {
				log.Debug("searching", "closed", closed, "cell", cell.Coord.String(), "total", cell.TotalCost())
			}
		}),
	)
	if err != nil {
		return exitError, err
	}
	log.Info("search finished", "found", res.Found, "cost", res.Cost,
		"expanded", res.Expanded, "truncated", res.Truncated)
	if cfg.dump {
		if err := report.Scores(stdout, m); err != nil {
			return exitError, err
		}
	}

	// 3) No route: explain and stop
	if !res.Found {
		if err := report.NoPath(stdout); err != nil {
			return exitError, err
		}
		explain(m, res, log)
		return exitNoPath, nil
	}

	// 4) Route: mark a copy, then the optional exports
	out := outputPath(cfg)
	if !cfg.inPlace {
		if err := annotate.CopyFile(cfg.mapFile, out); err != nil {
			return exitError, err
		}
	}
	path, err := annotate.Annotate(m, res, out)
	if err != nil {
		return exitError, err
	}
	log.Info("route marked", "file", out, "cells", len(path))
	if err := report.Path(stdout, path); err != nil {
		return exitError, err
	}
	if cfg.dump {
		if err := report.Overlay(stdout, m, path); err != nil {
			return exitError, err
		}
	}

	if cfg.geoJSON != "" {
		data, err := annotate.GeoJSON(m, path)
		if err != nil {
			return exitError, err
		}
		if err := os.WriteFile(cfg.geoJSON, data, 0o644); err != nil {
			return exitError, fmt.Errorf("%w: %v", annotate.ErrIO, err)
		}
		log.Info("geojson written", "file", cfg.geoJSON)
	}
	if cfg.png != "" {
		opts := []render.Option{render.WithScale(cfg.scale)}
		if cfg.caption {
			opts = append(opts, render.WithCaption(fmt.Sprintf("cost %d, %d cells expanded", res.Cost, res.Expanded)))
		}
		if err := render.SavePNG(cfg.png, m, path, opts...); err != nil {
			return exitError, err
		}
		log.Info("png written", "file", cfg.png)
	}

	return exitFound, nil
}

// explain logs the water bodies whose bounding boxes lie between the
// endpoints.
func explain(m *terrain.Map, res *search.Result, log *slog.Logger) {
	if res.Truncated {
		log.Warn("search stopped at the expansion cap", "expanded", res.Expanded)
		return
	}
	idx, err := terrain.NewWaterIndex(m)
	if err != nil {
		log.Warn("water index unavailable", "err", err)
		return
	}
	start, _ := m.Start()
	end, _ := m.End()
	bodies := idx.QueryRegion(start, end)
	cells := 0
	for _, b := range bodies {
		cells += len(b.Cells)
	}
	log.Info("end unreachable", "water_bodies", idx.Len(),
		"between_endpoints", len(bodies), "water_cells", cells)
}
