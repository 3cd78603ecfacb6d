package main

import (
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/cultsicarias/File-Shrine/api"
	"github.com/cultsicarias/File-Shrine/api/models"
	"github.com/cultsicarias/File-Shrine/api/notifyhub"
	"github.com/cultsicarias/File-Shrine/store"
	"github.com/cultsicarias/File-Shrine/tool"
)

func main() {
	cfg := tool.SetFlags()
	appCfg, err := tool.LoadConfig(cfg.UseConfigPath)
	if err != nil {
		tool.DefaultLogger.Fatalf("%v", err)
	}
	if cfg.UsePassword != "" {
		appCfg.Password = cfg.UsePassword
	}
	if cfg.UsePort > 0 {
		appCfg.Port = cfg.UsePort
	}
	if cfg.UseUploadFolder != "" {
		appCfg.UploadFolder = cfg.UseUploadFolder
	}
	if cfg.UsePublicFolder != "" {
		appCfg.PublicFolder = cfg.UsePublicFolder
	}
	if cfg.UseShareURL != "" {
		appCfg.ShareURL = cfg.UseShareURL
	}
	if cfg.SkipNotify {
		appCfg.Notify = false
	}

	tool.InitLogger()
	if cfg.Log == "" {
		tool.DefaultLogger.SetLevel(log.DebugLevel)
	} else {
		switch strings.ToLower(cfg.Log) {
		case "dev":
			tool.DefaultLogger.SetLevel(log.DebugLevel)
		case "prod":
			tool.DefaultLogger.SetLevel(log.InfoLevel)
		case "none":
			tool.DefaultLogger.SetLevel(log.FatalLevel)
		default:
			tool.DefaultLogger.Warnf("Unknown log mode %q, using debug level", cfg.Log)
			tool.DefaultLogger.SetLevel(log.DebugLevel)
		}
	}

	blobs, err := store.NewDir(appCfg.UploadFolder)
	if err != nil {
		tool.DefaultLogger.Fatalf("Failed to prepare upload folder: %v", err)
	}

	sessions := models.NewSessionStore(time.Duration(appCfg.SessionTTLMins) * time.Minute)

	var hub *notifyhub.Hub
	if appCfg.Notify {
		hub = notifyhub.New()
	}

	server := api.NewServer(appCfg, blobs, sessions, hub)
	if err := server.Start(); err != nil {
		tool.DefaultLogger.Fatalf("Server startup failed: %v", err)
	}
}
