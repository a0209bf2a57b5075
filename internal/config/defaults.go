package config

const (
	defaultConfigPath   = "~/.config/logpage/config.toml"
	defaultLogRoot      = "~/.local/share/logpage/work"
	defaultStateDir     = "~/.local/state/logpage"
	defaultBind         = "127.0.0.1:8081"
	defaultWindowBytes  = 100 * 1024
	defaultMaxBytes     = 1024 * 1024
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	defaultLogFile      = true
	tokenEnvironmentKey = "LOGPAGE_API_TOKEN"
	logRootEnvKey       = "LOGPAGE_LOG_ROOT"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogRoot:  defaultLogRoot,
			StateDir: defaultStateDir,
		},
		Server: Server{
			Bind: defaultBind,
		},
		Window: Window{
			DefaultBytes: defaultWindowBytes,
			MaxBytes:     defaultMaxBytes,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
			File:   defaultLogFile,
		},
	}
}
