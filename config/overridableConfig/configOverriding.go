package overridableConfig

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/multiversx/mx-chain-tax-ledger-go/config"
)

const (
	configTomlFile = "config.toml"
	apiTomlFile    = "api.toml"
	pathSeparator  = "."
	fileSeparator  = ":"
	valueSeparator = "="
)

var (
	availableConfigFilesForOverriding = []string{configTomlFile, apiTomlFile}
	errNilStructure                   = errors.New("nil structure to update")
	errInvalidOverride                = errors.New("invalid config override")
)

// OverrideConfigValues will override config values for the specified configurations
func OverrideConfigValues(overrides []config.OverridableConfig, configs *config.Configs) error {
	var err error
	for _, override := range overrides {
		switch override.File {
		case configTomlFile:
			err = overrideValue(configs.GeneralConfig == nil, configs.GeneralConfig, override)
		case apiTomlFile:
			err = overrideValue(configs.ApiRoutesConfig == nil, configs.ApiRoutesConfig, override)
		default:
			err = fmt.Errorf("invalid config file <%s>. Available options are %s", override.File, strings.Join(availableConfigFilesForOverriding, ","))
		}

		if err != nil {
			return err
		}
	}

	return nil
}

// ParseOverride parses an override of the form file:Path.To.Field=value
func ParseOverride(raw string) (config.OverridableConfig, error) {
	fileAndRest := strings.SplitN(raw, fileSeparator, 2)
	if len(fileAndRest) != 2 {
		return config.OverridableConfig{}, fmt.Errorf("%w: %s", errInvalidOverride, raw)
	}

	pathAndValue := strings.SplitN(fileAndRest[1], valueSeparator, 2)
	if len(pathAndValue) != 2 || len(pathAndValue[0]) == 0 {
		return config.OverridableConfig{}, fmt.Errorf("%w: %s", errInvalidOverride, raw)
	}

	return config.OverridableConfig{
		File:  fileAndRest[0],
		Path:  pathAndValue[0],
		Value: pathAndValue[1],
	}, nil
}

func overrideValue(isNil bool, structure interface{}, override config.OverridableConfig) error {
	if isNil {
		return errNilStructure
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           structure,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}

	err = decoder.Decode(nestedMap(override.Path, override.Value))
	if err != nil {
		return fmt.Errorf("%w <%s> in %s: %s", errInvalidOverride, override.Path, override.File, err.Error())
	}

	return nil
}

// nestedMap converts A.B.C=value into {"A": {"B": {"C": value}}}
func nestedMap(path string, value interface{}) map[string]interface{} {
	parts := strings.Split(path, pathSeparator)
	current := map[string]interface{}{parts[len(parts)-1]: value}
	for i := len(parts) - 2; i >= 0; i-- {
		current = map[string]interface{}{parts[i]: current}
	}

	return current
}

// AvailableFiles returns the sorted list of config files supporting overrides
func AvailableFiles() []string {
	files := append(make([]string, 0, len(availableConfigFilesForOverriding)), availableConfigFilesForOverriding...)
	sort.Strings(files)

	return files
}
