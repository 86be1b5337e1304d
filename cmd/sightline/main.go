// Command sightline loads a YAML scenario, computes the field of view from an
// origin and prints what can be seen.
//
// Usage:
//
//	sightline -scenario room.yaml [-x 2 -y 2] [-depth 12] [-log-level debug] [-log-json]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/hupe1980/sightline"
	"github.com/hupe1980/sightline/fov"
	"github.com/hupe1980/sightline/grid"
	"github.com/hupe1980/sightline/morton"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("sightline", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		scenarioPath = fs.String("scenario", "", "path to a YAML scenario (required)")
		x            = fs.Int64("x", -1, "origin x (default: scenario origin or first '@')")
		y            = fs.Int64("y", -1, "origin y (default: scenario origin or first '@')")
		depth        = fs.Int("depth", 0, "max depth; 0 uses the scenario value, -1 is unbounded")
		hidden       = fs.String("hidden", "?", "glyph drawn for cells that are not visible")
		logLevel     = fs.String("log-level", "warn", "log level (debug, info, warn, error)")
		logJSON      = fs.Bool("log-json", false, "emit JSON logs")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *scenarioPath == "" {
		fs.Usage()
		return errors.New("missing -scenario")
	}

	logger, err := newLogger(stderr, *logLevel, *logJSON)
	if err != nil {
		return err
	}

	sc, err := grid.LoadScenarioFile(*scenarioPath)
	if err != nil {
		return err
	}
	world, err := sc.Grid()
	if err != nil {
		return err
	}

	origin, ok := sc.Start(world)
	if *x >= 0 && *y >= 0 {
		origin, ok = morton.Pt(*x, *y), true
	}
	if !ok {
		return errors.New("no origin: set -x/-y, scenario origin, or place '@' on the map")
	}

	maxDepth := sc.Depth()
	if *depth != 0 {
		maxDepth = *depth
	}

	hiddenGlyph := []rune(*hidden)
	if len(hiddenGlyph) != 1 {
		return fmt.Errorf("-hidden must be a single glyph, got %q", *hidden)
	}

	tr := sightline.New[string](
		sightline.WithLogger(logger),
		sightline.WithMaxDepth(maxDepth),
	)
	if err := placeActors(ctx, tr, sc, world); err != nil {
		return err
	}

	logger.WithOrigin(origin).InfoContext(ctx, "computing field of view",
		"scenario", sc.Name,
		"max_depth", maxDepth,
	)
	seen, err := sightline.Observe(ctx, tr, origin, world.Query)
	if err != nil {
		return err
	}

	return report(stdout, sc, world, origin, maxDepth, hiddenGlyph[0], seen)
}

func newLogger(w io.Writer, level string, json bool) (*sightline.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid -log-level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if json {
		return sightline.NewLogger(slog.NewJSONHandler(w, opts)), nil
	}
	return sightline.NewLogger(slog.NewTextHandler(w, opts)), nil
}

// placeActors registers named scenario actors, then any actor glyph on the map
// not already covered by a named actor under a generated id.
func placeActors(ctx context.Context, tr *sightline.Tracker[string], sc *grid.Scenario, world *grid.Grid) error {
	named := make(map[morton.Point]bool)
	for name, pos := range sc.Actors {
		if err := tr.Place(ctx, name, pos.Point()); err != nil {
			return fmt.Errorf("actor %s: %w", name, err)
		}
		named[pos.Point()] = true
	}

	for glyph, positions := range world.Actors() {
		for _, p := range positions {
			if named[p] {
				continue
			}
			id := fmt.Sprintf("%c-%s", glyph, uuid.NewString()[:8])
			if err := tr.Place(ctx, id, p); err != nil {
				return fmt.Errorf("actor %s: %w", id, err)
			}
		}
	}
	return nil
}

func report(w io.Writer, sc *grid.Scenario, world *grid.Grid, origin morton.Point, maxDepth int, hidden rune, seen []sightline.Sighting[string, grid.Tile]) error {
	visible := make(map[morton.Point]bool, len(seen))
	for _, s := range seen {
		visible[s.Pos] = true
	}

	depth := fmt.Sprint(maxDepth)
	if maxDepth == fov.Unbounded {
		depth = "unbounded"
	}

	var sb strings.Builder
	if sc.Name != "" {
		fmt.Fprintf(&sb, "scenario: %s\n", sc.Name)
	}
	fmt.Fprintf(&sb, "origin: %v depth: %s visible: %d\n", origin, depth, len(seen))
	for _, line := range world.Render(func(p morton.Point) bool { return visible[p] }, hidden) {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	var lines []string
	for _, s := range seen {
		if s.Pos == origin {
			continue
		}
		for _, id := range s.IDs {
			lines = append(lines, fmt.Sprintf("seen: %s at %v", id, s.Pos))
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
