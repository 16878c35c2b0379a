package config

// ContextFlagsConfig will keep the values for the cli.Context flags
type ContextFlagsConfig struct {
	WorkingDir                   string
	LogLevel                     string
	DisableAnsiColor             bool
	RestApiInterface             string
	EnableGops                   bool
	EnablePprof                  bool
	EnableRestAPIServerDebugMode bool
	Version                      string
}
