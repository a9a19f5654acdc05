package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/axisticks/pkg/axis/bbox"
	"github.com/matzehuels/axisticks/pkg/axis/sink"
	"github.com/matzehuels/axisticks/pkg/buildinfo"
	"github.com/matzehuels/axisticks/pkg/cache"
	"github.com/matzehuels/axisticks/pkg/config"
	"github.com/matzehuels/axisticks/pkg/errors"
	"github.com/matzehuels/axisticks/pkg/observability"
	"github.com/matzehuels/axisticks/pkg/render"
)

const (
	defaultAddr     = ":8080"
	defaultCacheTTL = 10 * time.Minute
	shutdownTimeout = 5 * time.Second
	requestTimeout  = 10 * time.Second
	requestIDHeader = "X-Request-ID"
)

// serveOpts holds the serve command's flags.
type serveOpts struct {
	addr      string
	cacheTTL  time.Duration
	cacheSize int
	redisURL  string
}

var contentTypes = map[string]string{
	config.FormatSVG:  "image/svg+xml",
	config.FormatJSON: "application/json",
	config.FormatPDF:  "application/pdf",
	config.FormatPNG:  "image/png",
}

func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: defaultAddr, cacheTTL: defaultCacheTTL, cacheSize: cache.DefaultMaxEntries}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve axes over HTTP",
		Long: `Serve answers GET /axis.{svg,json,pdf,png} with a rendered axis. The axis
is described by query parameters:

  orient       top, right, bottom or left (required)
  type         linear (default) or band
  domain       comma-separated domain, e.g. 0,100 or Mon,Tue,Wed
  range        comma-separated pixel range, e.g. 300,0
  height       pixel height that caps generated ticks
  ticks        tick count hint
  values       explicit comma-separated tick values
  format       printf label format, e.g. %.1f%%
  grid         draw gridlines (true/false)
  width        gridline span
  max_label    label length before trimming
  tick_marks   draw tick marks (true/false)
  padding      document padding
  embed_font   embed the label font (true/false)
  scale        PNG scale factor

Responses are cached for --cache-ttl, in memory or in Redis with --redis.
A zero TTL disables caching.

Example:

  curl 'localhost:8080/axis.svg?orient=left&domain=0,100&range=300,0&grid=true&width=400'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().DurationVar(&opts.cacheTTL, "cache-ttl", opts.cacheTTL, "how long rendered axes are cached (0 disables)")
	cmd.Flags().IntVar(&opts.cacheSize, "cache-size", opts.cacheSize, "entries kept by the in-memory cache")
	cmd.Flags().StringVar(&opts.redisURL, "redis", "", "cache in Redis at this URL (redis://host:port/db)")
	return cmd
}

func runServe(ctx context.Context, opts serveOpts) error {
	logger := loggerFromContext(ctx)
	m, err := bbox.NewDefaultMeasurer()
	if err != nil {
		return err
	}
	store, err := openServeCache(ctx, opts)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           newRouter(logger, m, store, opts.cacheTTL),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", opts.addr, "version", buildinfo.Version)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	if mc, ok := store.(*cache.MemoryCache); ok {
		st := mc.Stats()
		logger.Info("shutting down", "cache_hits", st.Hits, "cache_misses", st.Misses, "cache_evictions", st.Evictions)
	} else {
		logger.Info("shutting down")
	}
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return err
	}
	return ctx.Err()
}

func openServeCache(ctx context.Context, opts serveOpts) (cache.Cache, error) {
	switch {
	case opts.cacheTTL <= 0:
		return cache.NewNullCache(), nil
	case opts.redisURL != "":
		c, err := cache.NewRedisCache(ctx, opts.redisURL, appName+":")
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "cannot use redis cache")
		}
		return c, nil
	}
	return cache.NewMemoryCache(opts.cacheSize), nil
}

// newRouter builds the HTTP routes. Every request is reported to the
// registered observability.HTTPHooks.
func newRouter(logger *log.Logger, m *bbox.Measurer, store cache.Cache, ttl time.Duration) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(observe(logger))
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})
	r.Get("/version", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(buildinfo.String() + "\n"))
	})
	r.Get("/axis.{format}", axisHandler(logger, m, store, ttl))
	return r
}

func observe(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			id := r.Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, id)
			hooks := observability.HTTP()
			hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			elapsed := time.Since(start)
			hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, elapsed)
			logger.Debug("request", "id", id, "method", r.Method, "path", r.URL.Path, "status", status, "duration", elapsed)
		})
	}
}

// cachedAxis is the cache entry of one rendered response.
type cachedAxis struct {
	Width int    `json:"width"`
	Data  []byte `json:"data"`
}

func axisHandler(logger *log.Logger, m *bbox.Measurer, store cache.Cache, ttl time.Duration) http.HandlerFunc {
	converter := render.NewConverter(store, ttl)
	return func(w http.ResponseWriter, r *http.Request) {
		format := chi.URLParam(r, "format")
		if err := config.ValidateFormat(format); err != nil {
			writeError(w, err)
			return
		}
		q := r.URL.Query()
		key := cache.Key("axis", format, q.Encode())
		if raw, ok, err := store.Get(r.Context(), key); err != nil {
			logger.Warn("cache read failed", "err", err)
		} else if ok {
			var hit cachedAxis
			if json.Unmarshal(raw, &hit) == nil {
				writeAxis(w, format, hit, "hit")
				return
			}
		}

		a, err := axisFromQuery(q)
		if err != nil {
			writeError(w, err)
			return
		}
		enc, err := encoderFromQuery(q)
		if err != nil {
			writeError(w, err)
			return
		}

		in, err := a.Inputs()
		if err != nil {
			writeError(w, err)
			return
		}
		l, width, err := settleAxis(r.Context(), in, m, logger)
		if err != nil {
			writeError(w, err)
			return
		}
		enc.name, enc.width = a.Name, width
		enc.tickMarks = a.TickMarks
		enc.converter = converter
		frame := sink.FitFrame(l, a.Length(), m.Bounds(l), enc.padding)
		data, err := enc.encode(r.Context(), format, l, frame)
		if err != nil {
			writeError(w, err)
			return
		}

		out := cachedAxis{Width: width, Data: data}
		if raw, err := json.Marshal(out); err == nil {
			if err := store.Set(r.Context(), key, raw, ttl); err != nil {
				logger.Warn("cache write failed", "err", err)
			}
		}
		writeAxis(w, format, out, "miss")
	}
}

func writeAxis(w http.ResponseWriter, format string, a cachedAxis, cacheStatus string) {
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("X-Axis-Width", strconv.Itoa(a.Width))
	w.Header().Set("X-Cache", cacheStatus)
	_, _ = w.Write(a.Data)
}

// axisFromQuery reads an axis definition from query parameters and
// validates it like a definition file entry.
func axisFromQuery(q url.Values) (config.Axis, error) {
	a := config.Axis{
		Name:   "axis",
		Orient: q.Get("orient"),
		Format: q.Get("format"),
		Scale: config.Scale{
			Type: q.Get("type"),
		},
	}
	if a.Scale.Type == "" {
		a.Scale.Type = config.ScaleLinear
	}

	var err error
	if a.Scale.Range, err = floatList(q, "range"); err != nil {
		return a, err
	}
	if a.Height, err = optionalFloat(q, "height"); err != nil {
		return a, err
	}
	if a.GridLineWidth, err = optionalFloat(q, "grid_width"); err != nil {
		return a, err
	}
	if w, err := optionalFloat(q, "width"); err != nil {
		return a, err
	} else if w != nil {
		a.Width = *w
	}
	if a.GridLines, err = boolParam(q, "grid"); err != nil {
		return a, err
	}
	if a.TickMarks, err = boolParam(q, "tick_marks"); err != nil {
		return a, err
	}
	if v := q.Get("ticks"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return a, errors.New(errors.ErrCodeInvalidInput, "ticks must be an integer (got %q)", v)
		}
		a.TickCount = &n
	}
	if v := q.Get("max_label"); v != "" {
		if a.MaxLabelLength, err = strconv.Atoi(v); err != nil {
			return a, errors.New(errors.ErrCodeInvalidInput, "max_label must be an integer (got %q)", v)
		}
	}

	numeric := a.Scale.Type == config.ScaleLinear
	if a.Scale.Domain, err = valueList(q, "domain", numeric); err != nil {
		return a, err
	}
	if a.TickValues, err = valueList(q, "values", numeric); err != nil {
		return a, err
	}

	return a, a.Validate()
}

func encoderFromQuery(q url.Values) (encoder, error) {
	enc := encoder{padding: config.DefaultPadding}
	if p, err := optionalFloat(q, "padding"); err != nil {
		return enc, err
	} else if p != nil {
		if *p < 0 {
			return enc, errors.New(errors.ErrCodeInvalidInput, "padding cannot be negative")
		}
		enc.padding = *p
	}
	if s, err := optionalFloat(q, "scale"); err != nil {
		return enc, err
	} else if s != nil {
		enc.pngScale = *s
	}
	var err error
	enc.embedFont, err = boolParam(q, "embed_font")
	return enc, err
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func floatList(q url.Values, key string) ([]float64, error) {
	var out []float64
	for _, p := range splitList(q.Get(key)) {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "%s must be numbers (got %q)", key, p)
		}
		out = append(out, f)
	}
	return out, nil
}

// valueList parses a comma-separated list as numbers for linear scales and
// as strings for band scales.
func valueList(q url.Values, key string, numeric bool) ([]any, error) {
	parts := splitList(q.Get(key))
	if parts == nil {
		return nil, nil
	}
	out := make([]any, len(parts))
	for i, p := range parts {
		if !numeric {
			out[i] = p
			continue
		}
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "%s must be numbers for a linear scale (got %q)", key, p)
		}
		out[i] = f
	}
	return out, nil
}

func optionalFloat(q url.Values, key string) (*float64, error) {
	v := q.Get(key)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "%s must be a number (got %q)", key, v)
	}
	return &f, nil
}

func boolParam(q url.Values, key string) (bool, error) {
	v := q.Get(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.New(errors.ErrCodeInvalidInput, "%s must be true or false (got %q)", key, v)
	}
	return b, nil
}

type errorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// writeError maps error codes onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.IsInvalid(err):
		status = http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeUnsupported):
		status = http.StatusNotImplemented
	case errors.Is(err, errors.ErrCodeNotConverged), errors.Is(err, errors.ErrCodeClosed):
		status = http.StatusServiceUnavailable
	}
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Code: code, Message: errors.UserMessage(err)})
}
