// --- START OF FINAL REVISED FILE internal/cli/config/config.go ---
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/pkg/converter"
	"github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/pkg/converter/encoding"
	"github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/pkg/converter/language"
	"github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/pkg/converter/script"
	"github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/pkg/util"
)

const (
	EnvPrefix         = "ZHCONVERTER"
	DefaultConfigName = "zh-converter"
)

// flagKeys maps command-line flag names to the configuration keys they override.
var flagKeys = map[string]string{
	"input":             "input",
	"ext":               "extensions",
	"language":          "languages",
	"mode":              "mode",
	"ignore":            "ignore",
	"skip-vendored":     "skipVendored",
	"on-decode-error":   "onDecodeError",
	"write-mode":        "writeMode",
	"source-encoding":   "sourceEncoding",
	"require-clean-git": "requireCleanGit",
	"output-format":     "outputFormat",
	"verbose":           "verbose",
}

// LoadAndValidate loads configuration from all sources (defaults, file,
// profile, env, flags), validates the merged result and derives the values
// the engine needs (absolute root, final extension list). The returned
// Request carries the logger handler but no Transformer, hooks or git client;
// those are injected by the caller.
func LoadAndValidate(cfgFile, profileName, appVersion string, verbose bool, flags *pflag.FlagSet) (converter.Request, *slog.Logger, error) {
	var req converter.Request

	v, configFileUsed, err := loadViper(cfgFile, profileName, flags)
	if err != nil {
		return req, earlyLogger(verbose), err
	}

	req.AppVersion = appVersion
	req.ConfigFilePath = configFileUsed
	req.ProfileName = profileName
	if err := v.Unmarshal(&req); err != nil {
		return req, earlyLogger(verbose), fmt.Errorf("error unmarshalling configuration: %w", err)
	}

	// --- Explicit flag overrides ---
	if flags.Changed("verbose") || verbose {
		req.Verbose = true
	}
	if flags.Changed("no-tag-rewrite") {
		if disabled, _ := flags.GetBool("no-tag-rewrite"); disabled {
			req.TagRewrite.Disabled = true
		}
	}

	logger, logHandler := newLogger(req.Verbose)
	req.Logger = logHandler

	if err := validateAndDerive(&req, logger, flags); err != nil {
		return req, logger, err
	}

	logger.Debug("Configuration loading and validation complete",
		slog.String("configFile", req.ConfigFilePath),
		slog.String("profile", req.ProfileName),
		slog.String("root", req.RootPath),
		slog.String("mode", string(req.Mode)),
		slog.Any("extensions", req.Extensions),
		slog.Bool("tuiEnabled", req.TuiEnabled),
	)
	return req, logger, nil
}

// LoadForText resolves only what text mode needs: the conversion profile and a logger.
func LoadForText(cfgFile, profileName string, verbose bool, flags *pflag.FlagSet) (script.Profile, *slog.Logger, error) {
	v, _, err := loadViper(cfgFile, profileName, flags)
	if err != nil {
		return "", earlyLogger(verbose), err
	}
	logger, _ := newLogger(verbose || v.GetBool("verbose"))
	mode, err := script.ParseProfile(v.GetString("mode"))
	if err != nil {
		err = fmt.Errorf("%w: key 'mode' (flag --mode): %w", converter.ErrConfigValidation, err)
		logger.Error(err.Error())
		return "", logger, err
	}
	return mode, logger, nil
}

// loadViper layers defaults, the config file, the selected profile, the
// environment and the bound flags, in increasing priority.
func loadViper(cfgFile, profileName string, flags *pflag.FlagSet) (*viper.Viper, string, error) {
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", DefaultConfigName))
			v.AddConfigPath(filepath.Join(home, "."+DefaultConfigName))
		}
	}

	configFileUsed := ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			path := cfgFile
			if path == "" {
				path = fmt.Sprintf("searched locations for %s.yaml", DefaultConfigName)
			}
			return nil, "", fmt.Errorf("error reading config file '%s': %w", path, err)
		}
	} else {
		configFileUsed = v.ConfigFileUsed()
	}

	// --- Apply Profile ---
	if profileName != "" {
		profileKey := "profiles." + profileName
		profileSettings := v.Sub(profileKey)
		if profileSettings == nil {
			configPath := configFileUsed
			if configPath == "" {
				configPath = "(no config file found)"
			}
			return nil, "", fmt.Errorf("profile '%s' not found in config file '%s'", profileName, configPath)
		}
		if err := v.MergeConfigMap(profileSettings.AllSettings()); err != nil {
			return nil, "", fmt.Errorf("error merging profile '%s': %w", profileName, err)
		}
	}

	// --- Bind Environment Variables ---
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// --- Bind Flags (Highest Priority) ---
	if flags != nil {
		for flagName, key := range flagKeys {
			flag := flags.Lookup(flagName)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, "", fmt.Errorf("error binding flag '--%s': %w", flagName, err)
			}
		}
	}
	return v, configFileUsed, nil
}

// setDefaults establishes the default values for configuration options in Viper.
// "extensions" has no default here: it depends on whether languages are given.
func setDefaults(v *viper.Viper) {
	v.SetDefault("mode", string(converter.DefaultMode))
	v.SetDefault("verbose", converter.DefaultVerbose)
	v.SetDefault("tuiEnabled", converter.DefaultTuiEnabled)
	v.SetDefault("outputFormat", string(converter.DefaultOutputFormat))

	v.SetDefault("ignore", []string{})
	v.SetDefault("languages", []string{})
	v.SetDefault("skipVendored", converter.DefaultSkipVendored)
	v.SetDefault("onDecodeError", string(converter.DefaultOnDecodeError))
	v.SetDefault("writeMode", string(converter.DefaultWriteMode))
	v.SetDefault("sourceEncoding", "")
	v.SetDefault("requireCleanGit", converter.DefaultRequireCleanGit)

	v.SetDefault("tagRewrite.disabled", false)
	v.SetDefault("tagRewrite.from", converter.DefaultTagRewriteFrom)
	v.SetDefault("tagRewrite.to", converter.DefaultTagRewriteTo)
}

// isValidEnumValue checks if a given string value is present in a slice of allowed enum values.
func isValidEnumValue[T ~string](value T, allowedValues []T) bool {
	return slices.Contains(allowedValues, value)
}

// validateAndDerive performs semantic validation on the populated Request and
// calculates derived fields. Errors wrap converter.ErrConfigValidation.
func validateAndDerive(req *converter.Request, logger *slog.Logger, flags *pflag.FlagSet) error {
	fail := func(key, value string, err error) error {
		logger.Error(err.Error(), slog.String("key", key), slog.String("value", value))
		return err
	}

	// === Root ===
	if req.RootPath == "" {
		return fail("input", "", fmt.Errorf("%w: input directory is required (-i, --input)", converter.ErrConfigValidation))
	}
	absRoot, err := filepath.Abs(req.RootPath)
	if err != nil {
		return fail("input", req.RootPath, fmt.Errorf("%w: cannot resolve absolute input path '%s': %w", converter.ErrConfigValidation, req.RootPath, err))
	}
	req.RootPath = absRoot

	// === Mode ===
	mode, err := script.ParseProfile(string(req.Mode))
	if err != nil {
		return fail("mode", string(req.Mode), fmt.Errorf("%w: key 'mode' (flag --mode): %w", converter.ErrConfigValidation, err))
	}
	req.Mode = mode

	// === Extensions ===
	extensions := util.NormalizeExtensions(req.Extensions)
	if len(req.Languages) > 0 {
		langExts, err := language.ExtensionsFor(req.Languages)
		if err != nil {
			return fail("languages", strings.Join(req.Languages, ","), fmt.Errorf("%w: key 'languages' (flag --language): %w", converter.ErrConfigValidation, err))
		}
		extensions = util.NormalizeExtensions(append(extensions, langExts...))
	} else if len(req.Extensions) == 0 {
		extensions = slices.Clone(converter.DefaultExtensions)
	}
	if len(extensions) == 0 {
		return fail("extensions", "", fmt.Errorf("%w: at least one file extension is required (-e, --ext)", converter.ErrConfigValidation))
	}
	req.Extensions = extensions

	// === Enum String Validations ===
	allowedDecode := []converter.OnDecodeErrorMode{converter.OnDecodeErrorStop, converter.OnDecodeErrorSkip}
	if !isValidEnumValue(req.OnDecodeError, allowedDecode) {
		return fail("onDecodeError", string(req.OnDecodeError), fmt.Errorf("%w: invalid value '%s' for key 'onDecodeError' (flag --on-decode-error). Allowed: %v", converter.ErrConfigValidation, req.OnDecodeError, allowedDecode))
	}
	allowedWrite := []converter.WriteMode{converter.WriteInPlace, converter.WriteAtomic}
	if !isValidEnumValue(req.WriteMode, allowedWrite) {
		return fail("writeMode", string(req.WriteMode), fmt.Errorf("%w: invalid value '%s' for key 'writeMode' (flag --write-mode). Allowed: %v", converter.ErrConfigValidation, req.WriteMode, allowedWrite))
	}
	allowedOutput := []converter.OutputFormat{converter.OutputFormatText, converter.OutputFormatJSON, converter.OutputFormatYAML}
	if !isValidEnumValue(req.OutputFormat, allowedOutput) {
		return fail("outputFormat", string(req.OutputFormat), fmt.Errorf("%w: invalid value '%s' for key 'outputFormat' (flag --output-format). Allowed: %v", converter.ErrConfigValidation, req.OutputFormat, allowedOutput))
	}

	// === Source encoding ===
	handler, err := encoding.NewHandler(req.SourceEncoding)
	if err != nil {
		return fail("sourceEncoding", req.SourceEncoding, fmt.Errorf("%w: key 'sourceEncoding' (flag --source-encoding): %w", converter.ErrConfigValidation, err))
	}
	req.EncodingHandler = handler

	// === Tag rewrite ===
	if !req.TagRewrite.Disabled && req.TagRewrite.From == "" {
		return fail("tagRewrite.from", "", fmt.Errorf("%w: tagRewrite.from must not be empty when tagRewrite is enabled", converter.ErrConfigValidation))
	}

	// Verbose logging and the TUI share the terminal; verbose wins.
	if req.Verbose {
		req.TuiEnabled = false
	} else if flags != nil && flags.Changed("no-tui") {
		if noTui, _ := flags.GetBool("no-tui"); noTui {
			req.TuiEnabled = false
		}
	}
	return nil
}

func newLogger(verbose bool) (*slog.Logger, slog.Handler) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler), handler
}

func earlyLogger(verbose bool) *slog.Logger {
	logger, _ := newLogger(verbose)
	return logger
}

// --- END OF FINAL REVISED FILE internal/cli/config/config.go ---
