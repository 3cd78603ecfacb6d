package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/cultsicarias/File-Shrine/api/controllers"
	"github.com/cultsicarias/File-Shrine/api/middlewares"
	"github.com/cultsicarias/File-Shrine/api/models"
	"github.com/cultsicarias/File-Shrine/api/notifyhub"
	"github.com/cultsicarias/File-Shrine/store"
	"github.com/cultsicarias/File-Shrine/tool"
	"github.com/cultsicarias/File-Shrine/types"
)

// maxMultipartMemory bounds how much of an upload body gin buffers in memory
// before spilling to temp files.
const maxMultipartMemory = 32 << 20

// Server is the HTTP server exposing the password-gated file share.
type Server struct {
	cfg      types.AppConfig
	blobs    store.Store
	sessions *models.SessionStore
	hub      *notifyhub.Hub
	engine   *gin.Engine
	server   *http.Server
	mu       sync.RWMutex
}

// NewServer wires the session store, blob store and optional notify hub.
// hub may be nil when the notify websocket is disabled.
func NewServer(cfg types.AppConfig, blobs store.Store, sessions *models.SessionStore, hub *notifyhub.Hub) *Server {
	return &Server{
		cfg:      cfg,
		blobs:    blobs,
		sessions: sessions,
		hub:      hub,
	}
}

// Hub returns the notify hub, nil when disabled.
func (s *Server) Hub() *notifyhub.Hub {
	return s.hub
}

func (s *Server) setupRoutes() *gin.Engine {
	if tool.DefaultLogger.GetLevel() == log.DebugLevel {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.Default()
	engine.Use(gin.Recovery())
	engine.MaxMultipartMemory = maxMultipartMemory
	engine.Use(middlewares.EnsureSession(s.sessions))

	authCtrl := controllers.NewAuthController(s.sessions, s.cfg.Password)
	uploadCtrl := controllers.NewUploadController(s.blobs, s.hub)
	filesCtrl := controllers.NewFilesController(s.blobs)
	downloadCtrl := controllers.NewDownloadController(s.blobs)

	engine.POST("/login", authCtrl.HandleLogin)
	engine.GET("/auth-status", authCtrl.HandleAuthStatus)

	gated := engine.Group("/", middlewares.RequireAuth(s.sessions))
	{
		gated.POST("/upload", uploadCtrl.HandleUpload)
		gated.GET("/files", filesCtrl.HandleListFiles)
		if s.hub != nil {
			gated.GET("/notify-ws", notifyhub.HandleNotifyWS(s.hub))
		}
	}

	// The download and raw-file routes are deliberately left ungated to keep
	// preview links shareable; see DESIGN.md.
	engine.GET("/download/:filename", downloadCtrl.HandleDownload)
	engine.Static("/uploads", s.cfg.UploadFolder)

	shareURL := s.cfg.ShareURL
	if shareURL == "" {
		shareURL = fmt.Sprintf("http://localhost:%d/", s.cfg.Port)
	}
	qrCtrl := controllers.NewQRCodeController(shareURL)
	engine.GET("/qr", qrCtrl.HandleQRCode)

	// Serve the static web client from the public folder. HTML routes fall
	// back to index.html so opening a deep link does not 404.
	if s.cfg.PublicFolder != "" {
		if info, err := os.Stat(s.cfg.PublicFolder); err == nil && info.IsDir() {
			publicDir := s.cfg.PublicFolder
			fileServer := http.FileServer(http.Dir(publicDir))
			engine.NoRoute(gin.WrapF(func(w http.ResponseWriter, r *http.Request) {
				path := strings.TrimPrefix(r.URL.Path, "/")
				if path == "" {
					path = "index.html"
				}
				if ext := filepath.Ext(path); ext != "" && ext != ".html" {
					if _, err := os.Stat(filepath.Join(publicDir, filepath.FromSlash(path))); err == nil {
						fileServer.ServeHTTP(w, r)
						return
					}
					http.NotFound(w, r)
					return
				}
				data, err := os.ReadFile(filepath.Join(publicDir, "index.html"))
				if err != nil {
					http.NotFound(w, r)
					return
				}
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write(data)
			}))
			tool.DefaultLogger.Infof("[Server] Serving web client from %s", publicDir)
		}
	}

	return engine
}

// Handler builds the route table and returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.setupRoutes()
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	engine := s.setupRoutes()

	s.mu.Lock()
	s.engine = engine
	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.cfg.Port),
		Handler: engine,
	}
	s.mu.Unlock()

	tool.DefaultLogger.Infof("Starting server on http://0.0.0.0:%d", s.cfg.Port)
	return s.server.ListenAndServe()
}
