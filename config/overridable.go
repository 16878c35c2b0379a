package config

// OverridableConfig holds a value that replaces the one loaded from a config file
type OverridableConfig struct {
	File  string
	Path  string
	Value interface{}
}

// Configs holds all the loaded configuration files
type Configs struct {
	GeneralConfig   *Config
	ApiRoutesConfig *ApiRoutesConfig
	FlagsConfig     *ContextFlagsConfig
}
