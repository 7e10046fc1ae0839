package cli

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gridworks/mazekit/pkg/cache"
	"github.com/gridworks/mazekit/pkg/grid"
	"github.com/gridworks/mazekit/pkg/maze"
	"github.com/gridworks/mazekit/pkg/render"
)

// Output formats for the generate command.
const (
	formatText = "text"
	formatPNG  = "png"
	formatSVG  = "svg"
	formatDOT  = "dot"
)

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatText: true, formatPNG: true, formatSVG: true, formatDOT: true}

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	rows        int    // grid height in cells
	cols        int    // grid width in cells
	algorithm   string // carving algorithm name
	seed        int64  // random seed (reproducible output)
	format      string // output format: text, png, svg, or dot
	output      string // output file path ("" means stdout for text/dot)
	cellSize    int    // interior pixel size per cell (png)
	borderWidth int    // wall thickness in pixels (png)
	cellWidth   int    // interior character width per cell (text)
	wall        string // wall color, #rrggbb or #rrggbb.aa (png)
	background  string // passage color (png)
	noCache     bool   // skip the artifact cache
}

// generateCommand creates the generate command for carving and rendering mazes.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{
		rows:      c.Config.Generate.Rows,
		cols:      c.Config.Generate.Cols,
		algorithm: c.Config.Generate.Algorithm,
		format:    formatText,
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Carve a maze and render it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validFormats[opts.format] {
				return fmt.Errorf("invalid format: %s (must be 'text', 'png', 'svg', or 'dot')", opts.format)
			}
			if !cmd.Flags().Changed("seed") {
				opts.seed = time.Now().UnixNano()
			}
			return c.runGenerate(cmd.Context(), &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.rows, "rows", "r", opts.rows, "grid height in cells")
	cmd.Flags().IntVarP(&opts.cols, "cols", "c", opts.cols, "grid width in cells")
	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", opts.algorithm, "carving algorithm: binary-tree, sidewinder, backtracker, hunt-and-kill")
	cmd.Flags().Int64VarP(&opts.seed, "seed", "s", 0, "random seed (default: current time)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text (default), png, svg, dot")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout for text/dot, derived name otherwise)")
	cmd.Flags().IntVar(&opts.cellSize, "cell-size", c.Config.Render.CellSize, "interior cell size in pixels (png)")
	cmd.Flags().IntVar(&opts.borderWidth, "border", c.Config.Render.BorderWidth, "wall thickness in pixels (png)")
	cmd.Flags().IntVar(&opts.cellWidth, "cell-width", c.Config.Render.CellWidth, "interior cell width in characters (text)")
	cmd.Flags().StringVar(&opts.wall, "wall", c.Config.Render.Wall, "wall color as #rrggbb or #rrggbb.aa (png)")
	cmd.Flags().StringVar(&opts.background, "background", c.Config.Render.Background, "passage color as #rrggbb or #rrggbb.aa (png)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "skip the artifact cache")

	return cmd
}

// runGenerate carves the maze, renders it (consulting the artifact cache),
// and writes the result to the output file or stdout.
func (c *CLI) runGenerate(ctx context.Context, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	algo, err := maze.ParseAlgorithm(opts.algorithm)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	g, err := grid.New(opts.rows, opts.cols)
	if err != nil {
		return err
	}
	if err := maze.Carve(g, algo, maze.NewSource(opts.seed)); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Carved %dx%d maze (%s, seed %d)", opts.rows, opts.cols, algo, opts.seed))

	store := c.newCache(opts.noCache)
	defer store.Close()

	key := cache.NewDefaultKeyer().ArtifactKey(opts.rows, opts.cols, algo.String(), opts.seed, cache.ArtifactKeyOpts{
		Format:      opts.format,
		CellSize:    opts.cellSize,
		BorderWidth: opts.borderWidth,
		CellWidth:   opts.cellWidth,
		Wall:        opts.wall,
		Background:  opts.background,
	})

	artifact, cached, err := store.Get(ctx, key)
	if err != nil {
		logger.Debugf("Cache read failed: %v", err)
	}
	if !cached {
		artifact, err = c.renderArtifact(ctx, g, opts)
		if err != nil {
			return err
		}
		if err := store.Set(ctx, key, artifact, c.cacheTTL()); err != nil {
			logger.Debugf("Cache write failed: %v", err)
		}
	}
	logger.Debugf("Rendered %s: %d bytes", opts.format, len(artifact))

	path := opts.output
	if path == "" && (opts.format == formatText || opts.format == formatDOT) {
		fmt.Print(string(artifact))
		printStats(g.Cells(), g.LinkCount(), len(g.DeadEnds()), cached)
		return nil
	}
	if path == "" {
		path = fmt.Sprintf("maze_%dx%d_%d.%s", opts.rows, opts.cols, opts.seed, opts.format)
	}
	if err := os.WriteFile(path, artifact, 0o644); err != nil {
		return err
	}

	printSuccess("Generated %s maze", algo)
	printStats(g.Cells(), g.LinkCount(), len(g.DeadEnds()), cached)
	printFile(path)
	return nil
}

// renderArtifact renders the carved grid into the requested format.
func (c *CLI) renderArtifact(ctx context.Context, g *grid.Grid, opts *generateOpts) ([]byte, error) {
	switch opts.format {
	case formatText:
		return []byte(render.Text(g, render.TextOptions{CellWidth: opts.cellWidth})), nil
	case formatDOT:
		return []byte(render.ToDOT(g, render.DOTOptions{})), nil
	case formatSVG:
		return render.RenderSVG(ctx, render.ToDOT(g, render.DOTOptions{}))
	case formatPNG:
		imgOpts, err := imageOptions(opts)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, render.Image(g, imgOpts).ToImage()); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", opts.format)
	}
}

// imageOptions builds render.ImageOptions from the flag values, parsing the
// color strings. Empty colors keep the renderer defaults.
func imageOptions(opts *generateOpts) (render.ImageOptions, error) {
	imgOpts := render.ImageOptions{
		CellSize:    opts.cellSize,
		BorderWidth: opts.borderWidth,
	}
	if opts.wall != "" {
		p, err := render.ParsePixel(opts.wall)
		if err != nil {
			return render.ImageOptions{}, fmt.Errorf("wall color: %w", err)
		}
		imgOpts.Wall = p
	}
	if opts.background != "" {
		p, err := render.ParsePixel(opts.background)
		if err != nil {
			return render.ImageOptions{}, fmt.Errorf("background color: %w", err)
		}
		imgOpts.Background = p
	}
	return imgOpts, nil
}

// cacheTTL returns the artifact TTL from config, or no expiry when unset.
func (c *CLI) cacheTTL() time.Duration {
	if h := c.Config.Cache.TTLHours; h > 0 {
		return time.Duration(h) * time.Hour
	}
	return 0
}
