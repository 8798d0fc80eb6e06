// Package httpx exposes the REST API: account registration and login plus
// token-protected folder and file metadata routes.
package httpx

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/dmitrijs2005/filekeeper/internal/logging"
	"github.com/dmitrijs2005/filekeeper/internal/server/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	rateWindowDefault  = time.Minute
	healthCheckTimeout = 2 * time.Second
	maxBodyBytes       = 1 << 20
)

type UserService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}

type MetadataService interface {
	CreateFolder(ctx context.Context, name string, dateModified time.Time) (*models.Folder, error)
	GetFolder(ctx context.Context, id int64) (*models.Folder, error)
	ListFolders(ctx context.Context) ([]*models.Folder, error)
	RenameFolder(ctx context.Context, id int64, name string) (*models.Folder, error)
	DeleteFolder(ctx context.Context, id int64) error

	CreateFile(ctx context.Context, name string, size int64, dateModified time.Time, parentID *int64) (*models.File, error)
	GetFile(ctx context.Context, id int64) (*models.File, error)
	ListFiles(ctx context.Context) ([]*models.File, error)
	RenameFile(ctx context.Context, id int64, name string) (*models.File, error)
	DeleteFile(ctx context.Context, id int64) error
	ListFilesByParent(ctx context.Context, folderID int64) ([]*models.File, error)
}

// Deps collects what the router needs. Limiter defaults to an in-memory one
// when nil; AuthRateLimit of zero disables limiting.
type Deps struct {
	Logger        logging.Logger
	Users         UserService
	Metadata      MetadataService
	Tokens        TokenVerifier
	Limiter       RateLimiter
	AuthRateLimit int
	DBHealth      func(context.Context) error
}

// Router wires HTTP endpoints to services.
type Router struct {
	mux           *http.ServeMux
	logger        logging.Logger
	users         UserService
	metadata      MetadataService
	tokens        TokenVerifier
	limiter       RateLimiter
	authRateLimit int
	dbHealth      func(context.Context) error

	metricsOnce        sync.Once
	metricsInitialized bool
	requestTotal       *prometheus.CounterVec
	requestLatency     *prometheus.HistogramVec
	rateLimitHits      *prometheus.CounterVec
}

// NewRouter assembles routes with dependencies.
func NewRouter(d Deps) *Router {
	r := &Router{
		mux:           http.NewServeMux(),
		logger:        d.Logger,
		users:         d.Users,
		metadata:      d.Metadata,
		tokens:        d.Tokens,
		limiter:       d.Limiter,
		authRateLimit: d.AuthRateLimit,
		dbHealth:      d.DBHealth,
	}
	if r.logger == nil {
		r.logger = logging.Nop()
	}
	if r.limiter == nil {
		r.limiter = NewMemoryRateLimiter()
	}
	r.initMetrics()
	r.register()
	return r
}

// ServeHTTP delegates to underlying mux.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// Close releases background resources.
func (r *Router) Close() {
	if r.limiter != nil {
		r.limiter.Close()
	}
}

func (r *Router) handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, r.audit(pattern, h))
}

func (r *Router) register() {
	r.handle("GET /healthz", r.handleHealthz)
	r.mux.Handle("GET /metrics", promhttp.Handler())

	r.handle("POST /register", r.withRateLimit("/register", r.authRateLimit, rateWindowDefault, rateLimitKeyIP, r.handleRegister))
	r.handle("POST /login", r.withRateLimit("/login", r.authRateLimit, rateWindowDefault, rateLimitKeyIP, r.handleLogin))

	r.handle("GET /files", r.requireToken(r.handleListFiles))
	r.handle("POST /files", r.requireToken(r.handleCreateFile))
	r.handle("GET /files/{id}", r.requireToken(r.handleGetFile))
	r.handle("PUT /files/{id}", r.requireToken(r.handleRenameFile))
	r.handle("DELETE /files/{id}", r.requireToken(r.handleDeleteFile))

	r.handle("GET /folders", r.requireToken(r.handleListFolders))
	r.handle("POST /folders", r.requireToken(r.handleCreateFolder))
	r.handle("GET /folders/{id}", r.requireToken(r.handleGetFolder))
	r.handle("PUT /folders/{id}", r.requireToken(r.handleRenameFolder))
	r.handle("DELETE /folders/{id}", r.requireToken(r.handleDeleteFolder))
	r.handle("GET /folders/{id}/files", r.requireToken(r.handleListFolderFiles))
}

// pathID parses the {id} segment. Only positive integers are accepted.
func pathID(req *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(req.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (r *Router) handleHealthz(w http.ResponseWriter, req *http.Request) {
	components := make(map[string]any)
	status := "ok"
	if r.dbHealth != nil {
		ctx, cancel := context.WithTimeout(req.Context(), healthCheckTimeout)
		defer cancel()
		if err := r.dbHealth(ctx); err != nil {
			r.logger.Warn(req.Context(), "database health check failed", "error", err)
			status = "degraded"
			components["database"] = map[string]any{"status": "down"}
		} else {
			components["database"] = map[string]any{"status": "up"}
		}
	}
	code := http.StatusOK
	if status != "ok" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, map[string]any{
		"status":     status,
		"components": components,
		"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
	})
}
