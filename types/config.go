package types

// AppConfig represents the application configuration loaded from config file
type AppConfig struct {
	Password       string `yaml:"password"`
	Port           int    `yaml:"port"`
	UploadFolder   string `yaml:"uploadFolder"`
	PublicFolder   string `yaml:"publicFolder"`
	SessionTTLMins int    `yaml:"sessionTTLMins"`
	ShareURL       string `yaml:"shareUrl,omitempty"` // externally reachable URL, used for the QR code
	Notify         bool   `yaml:"notify"`             // expose the notify websocket
}

// Config holds runtime overrides from CLI flags
type Config struct {
	Log             string
	UseConfigPath   string
	UsePassword     string
	UsePort         int
	UseUploadFolder string
	UsePublicFolder string
	UseShareURL     string
	SkipNotify      bool // if true, do not expose the notify websocket
}
