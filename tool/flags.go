package tool

import (
	"flag"

	"github.com/cultsicarias/File-Shrine/types"
)

// SetFlags parses CLI flags and returns the override config.
func SetFlags() types.Config {
	var cfg types.Config
	flag.StringVar(&cfg.Log, "log", "", "log mode: dev|prod|none")
	flag.StringVar(&cfg.UseConfigPath, "useConfigPath", "", "override config file path")
	flag.StringVar(&cfg.UsePassword, "usePassword", "", "override the shared upload password")
	flag.IntVar(&cfg.UsePort, "usePort", 0, "override the listen port")
	flag.StringVar(&cfg.UseUploadFolder, "useUploadFolder", "", "override the shared upload folder")
	flag.StringVar(&cfg.UsePublicFolder, "usePublicFolder", "", "override the static web folder")
	flag.StringVar(&cfg.UseShareURL, "useShareUrl", "", "override the externally reachable URL used for the QR code")
	flag.BoolVar(&cfg.SkipNotify, "skipNotify", false, "do not expose the notify websocket")
	flag.Parse()
	return cfg
}
