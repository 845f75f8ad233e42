// Package serve implements the preview server. Markdown sources under a root
// directory are converted on every request, the response writer is the
// session sink so documents stream out as they are generated.
package serve

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/klauspost/compress/gzhttp"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/bratpeki/bookgen/common"
	"github.com/bratpeki/bookgen/config"
	"github.com/bratpeki/bookgen/convert"
	"github.com/bratpeki/bookgen/state"
)

const shutdownGrace = 10 * time.Second

// Run implements the serve subcommand. The server stays up until the context
// is cancelled, remaining responses get a grace period to finish.
func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("serve")

	root := cmd.Args().Get(0)
	if len(root) == 0 {
		var err error
		if root, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return err
	}
	if fi, err := os.Stat(root); err != nil || !fi.IsDir() {
		return fmt.Errorf("served root is not a directory (%s)", root)
	}

	if bind := cmd.String("bind"); len(bind) != 0 {
		env.Cfg.Serve.Bind = bind
	}

	var handler http.Handler = NewServer(root, env.Cfg, log)
	if env.Cfg.Serve.Compress {
		handler = gzhttp.GzipHandler(handler)
	}

	httpServer := &http.Server{
		Addr:        env.Cfg.Serve.Bind,
		Handler:     handler,
		ReadTimeout: 30 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Warn("Unclean server shutdown", zap.Error(err))
		}
	}()

	log.Info("Serving documents", zap.String("root", root), zap.String("bind", env.Cfg.Serve.Bind))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("unable to serve: %w", err)
	}
	log.Info("Server stopped")
	return nil
}

// Server converts and serves Markdown sources from a single root directory.
type Server struct {
	root   string
	cfg    *config.Config
	log    *zap.Logger
	router chi.Router
}

// NewServer creates and configures the preview server.
func NewServer(root string, cfg *config.Config, log *zap.Logger) *Server {
	s := &Server{
		root: root,
		cfg:  cfg,
		log:  log,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.log))

	r.Get("/healthz", s.handleHealth)

	r.Group(func(r chi.Router) {
		if token := s.cfg.Serve.AuthToken; len(token) != 0 {
			r.Use(authMiddleware(token, s.log))
		}
		r.Get("/*", s.handleDocument)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// handleDocument resolves the request path to a Markdown source under the
// root and streams the converted document. A path without extension gets
// ".md" appended, "/" serves index.md.
func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	rel := resolveDocumentPath(r.URL.Path)
	if rel == "" {
		http.NotFound(w, r)
		return
	}

	src := filepath.Join(s.root, rel)
	f, err := os.Open(src)
	if err != nil {
		if os.IsNotExist(err) {
			http.NotFound(w, r)
		} else {
			s.log.Error("Unable to open source", zap.String("source", src), zap.Error(err))
			http.Error(w, "unable to open source", http.StatusInternalServerError)
		}
		return
	}
	defer f.Close()

	if fi, err := f.Stat(); err != nil || !fi.Mode().IsRegular() {
		http.NotFound(w, r)
		return
	}

	docCfg := s.cfg.Document
	contentType := "text/html; charset=utf-8"
	if docCfg.Dialect == common.DialectXhtml {
		contentType = "application/xhtml+xml; charset=utf-8"
	}
	w.Header().Set("Content-Type", contentType)

	b, err := convert.GenerateDocument(r.Context(), f, rel, filepath.Dir(src), w, &docCfg, s.log)
	if err != nil {
		// part of the response is out already, all we can do is cut the
		// stream short
		s.log.Error("Conversion failed mid-response", zap.String("source", src), zap.Error(err))
		return
	}
	s.log.Debug("Served document", zap.String("source", src), zap.String("ref_id", b.ID().String()))
}

// resolveDocumentPath maps a request path to a relative Markdown path. An
// empty result means the request names nothing servable, paths pointing
// outside the root included.
func resolveDocumentPath(requested string) string {
	rel := strings.TrimPrefix(path.Clean("/"+requested), "/")
	if rel == "" {
		rel = "index"
	}
	switch path.Ext(rel) {
	case "":
		rel += ".md"
	case ".md":
	default:
		return ""
	}
	name := filepath.FromSlash(rel)
	if !filepath.IsLocal(name) {
		return ""
	}
	return name
}
