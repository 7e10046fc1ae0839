package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/gridworks/mazekit/pkg/cache"
	"github.com/gridworks/mazekit/pkg/grid"
	"github.com/gridworks/mazekit/pkg/maze"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr    string
	noCache bool
}

// serveCommand creates the serve command: an HTTP API over the engine.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: ":8080"}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve mazes over HTTP",
		Long: `Serve runs an HTTP API for generating and retrieving mazes.

Endpoints:
  GET  /healthz                     liveness probe
  GET  /maze.{txt|png|svg|dot}      render a maze from query parameters
  POST /mazes                       store maze parameters, returns an ID
  GET  /mazes/{id}                  render a stored maze (?format=text|png|svg|dot)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "skip the artifact cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	store := c.newCache(opts.noCache)
	defer store.Close()

	s := &server{
		cli:   c,
		store: store,
		keyer: cache.NewScopedKeyer(nil, "server:"),
	}

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Infof("Listening on %s", opts.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		c.Logger.Info("Server stopped")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// server holds the HTTP handler state.
type server struct {
	cli   *CLI
	store cache.Cache
	keyer cache.Keyer
}

// mazeSpec is the persisted description of a stored maze. Because carving
// is deterministic, these four values fully determine the maze.
type mazeSpec struct {
	Rows      int    `json:"rows"`
	Cols      int    `json:"cols"`
	Algorithm string `json:"algorithm"`
	Seed      int64  `json:"seed"`
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/maze.txt", s.handleRender(formatText))
	r.Get("/maze.png", s.handleRender(formatPNG))
	r.Get("/maze.svg", s.handleRender(formatSVG))
	r.Get("/maze.dot", s.handleRender(formatDOT))
	r.Post("/mazes", s.handleCreate)
	r.Get("/mazes/{id}", s.handleGet)

	return r
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleRender renders a maze directly from query parameters.
func (s *server) handleRender(format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		spec, err := s.specFromQuery(r)
		if err != nil {
			httpError(w, http.StatusBadRequest, err)
			return
		}
		s.render(w, r, spec, format)
	}
}

// handleCreate stores maze parameters under a fresh ID.
func (s *server) handleCreate(w http.ResponseWriter, r *http.Request) {
	spec := s.defaultSpec()
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		httpError(w, http.StatusBadRequest, fmt.Errorf("invalid body: %w", err))
		return
	}
	if err := validateSpec(spec); err != nil {
		httpError(w, http.StatusBadRequest, err)
		return
	}

	id := uuid.NewString()
	data, err := json.Marshal(spec)
	if err != nil {
		httpError(w, http.StatusInternalServerError, err)
		return
	}
	if err := s.store.Set(r.Context(), mazeKey(id), data, s.cli.cacheTTL()); err != nil {
		httpError(w, http.StatusInternalServerError, err)
		return
	}

	s.cli.Logger.Infof("Stored maze %s (%dx%d %s seed %d)", id, spec.Rows, spec.Cols, spec.Algorithm, spec.Seed)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"id":  id,
		"url": "/mazes/" + id,
	})
}

// handleGet renders a stored maze in the requested format.
func (s *server) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	data, hit, err := s.store.Get(r.Context(), mazeKey(id))
	if err != nil {
		httpError(w, http.StatusInternalServerError, err)
		return
	}
	if !hit {
		httpError(w, http.StatusNotFound, fmt.Errorf("maze %s not found", id))
		return
	}

	var spec mazeSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		httpError(w, http.StatusInternalServerError, err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = formatText
	}
	if !validFormats[format] {
		httpError(w, http.StatusBadRequest, fmt.Errorf("invalid format: %s", format))
		return
	}
	s.render(w, r, spec, format)
}

// render carves the maze for spec and writes the artifact, consulting the
// scoped artifact cache first.
func (s *server) render(w http.ResponseWriter, r *http.Request, spec mazeSpec, format string) {
	ctx := r.Context()

	key := s.keyer.ArtifactKey(spec.Rows, spec.Cols, spec.Algorithm, spec.Seed, cache.ArtifactKeyOpts{Format: format})
	if data, hit, err := s.store.Get(ctx, key); err == nil && hit {
		writeArtifact(w, format, data)
		return
	}

	algo, err := maze.ParseAlgorithm(spec.Algorithm)
	if err != nil {
		httpError(w, http.StatusBadRequest, err)
		return
	}
	g, err := grid.New(spec.Rows, spec.Cols)
	if err != nil {
		httpError(w, http.StatusBadRequest, err)
		return
	}
	if err := maze.Carve(g, algo, maze.NewSource(spec.Seed)); err != nil {
		httpError(w, http.StatusInternalServerError, err)
		return
	}

	data, err := s.cli.renderArtifact(ctx, g, &generateOpts{format: format})
	if err != nil {
		httpError(w, http.StatusInternalServerError, err)
		return
	}
	if err := s.store.Set(ctx, key, data, s.cli.cacheTTL()); err != nil {
		s.cli.Logger.Debugf("Cache write failed: %v", err)
	}
	writeArtifact(w, format, data)
}

// specFromQuery builds a mazeSpec from URL query parameters, falling back
// to the configured defaults.
func (s *server) specFromQuery(r *http.Request) (mazeSpec, error) {
	spec := s.defaultSpec()
	q := r.URL.Query()

	var err error
	if v := q.Get("rows"); v != "" {
		if spec.Rows, err = strconv.Atoi(v); err != nil {
			return spec, fmt.Errorf("invalid rows: %q", v)
		}
	}
	if v := q.Get("cols"); v != "" {
		if spec.Cols, err = strconv.Atoi(v); err != nil {
			return spec, fmt.Errorf("invalid cols: %q", v)
		}
	}
	if v := q.Get("algorithm"); v != "" {
		spec.Algorithm = v
	}
	if v := q.Get("seed"); v != "" {
		if spec.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return spec, fmt.Errorf("invalid seed: %q", v)
		}
	}
	return spec, validateSpec(spec)
}

func (s *server) defaultSpec() mazeSpec {
	return mazeSpec{
		Rows:      s.cli.Config.Generate.Rows,
		Cols:      s.cli.Config.Generate.Cols,
		Algorithm: s.cli.Config.Generate.Algorithm,
	}
}

// maxServeCells caps request size so a single request cannot pin the server.
const maxServeCells = 250_000

func validateSpec(spec mazeSpec) error {
	if spec.Rows < 1 || spec.Cols < 1 {
		return fmt.Errorf("dimensions must be positive, got %dx%d", spec.Rows, spec.Cols)
	}
	if spec.Rows*spec.Cols > maxServeCells {
		return fmt.Errorf("maze too large: %d cells (limit %d)", spec.Rows*spec.Cols, maxServeCells)
	}
	if _, err := maze.ParseAlgorithm(spec.Algorithm); err != nil {
		return err
	}
	return nil
}

// mazeKey is the cache key for a stored maze spec.
func mazeKey(id string) string {
	return "maze:" + id
}

// contentTypes maps output formats to their MIME types.
var contentTypes = map[string]string{
	formatText: "text/plain; charset=utf-8",
	formatPNG:  "image/png",
	formatSVG:  "image/svg+xml",
	formatDOT:  "text/vnd.graphviz",
}

func writeArtifact(w http.ResponseWriter, format string, data []byte) {
	w.Header().Set("Content-Type", contentTypes[format])
	_, _ = w.Write(data)
}

func httpError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
