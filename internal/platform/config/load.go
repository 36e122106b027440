package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// profilePattern keeps profile names to plain file stems.
var profilePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// listKeys hold string lists; their env values are comma-separated.
var listKeys = map[string]bool{
	"cors.allowed_origins": true,
}

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir reads the YAML layers from dir instead of ./configs.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) { o.configDir = dir }
}

// Load builds the configuration for profile from four layers, later ones
// winning: built-in defaults, {dir}/base.yaml, {dir}/{profile}.yaml and
// APP_-prefixed environment variables. The result is validated.
//
// An env var names a key by joining its path with underscores, so
// APP_AUTH_SESSION_CLIENT_RETRY_MAX_ATTEMPTS sets
// auth.session.client.retry.max_attempts. Keys are matched against the known
// key set first, which keeps underscores inside a key name intact.
func Load(profile string, opts ...Option) (*Config, error) {
	if !profilePattern.MatchString(profile) {
		return nil, fmt.Errorf("invalid profile %q: want lower-case letters, digits, '-' or '_'", profile)
	}

	o := loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(&o)
	}

	k := koanf.New(".")
	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}

	known := envKeys(k.Keys())
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(name, value string) (string, any) {
			return envToKey(known, name, value)
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", profile, err)
	}
	return &cfg, nil
}

// envKeys maps the underscore form of every known key back to the key.
func envKeys(keys []string) map[string]string {
	m := make(map[string]string, len(keys)+len(listKeys))
	for _, key := range keys {
		m[strings.ReplaceAll(key, ".", "_")] = key
	}
	// Empty lists do not show up in koanf's key set.
	for key := range listKeys {
		m[strings.ReplaceAll(key, ".", "_")] = key
	}
	return m
}

func envToKey(known map[string]string, name, value string) (string, any) {
	name = strings.ToLower(strings.TrimPrefix(name, envPrefix))

	key, ok := known[name]
	if !ok {
		key = strings.ReplaceAll(name, "_", ".")
	}
	if listKeys[key] {
		return key, splitList(value)
	}
	return key, value
}

func splitList(value string) []string {
	var out []string
	for item := range strings.SplitSeq(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

var errNoProfile = errors.New("APP_PROFILE must name a config profile (e.g. local, dev, prod)")

// ProfileFromEnv returns the profile named by APP_PROFILE.
func ProfileFromEnv(getenv func(string) string) (string, error) {
	profile := strings.TrimSpace(getenv("APP_PROFILE"))
	if profile == "" {
		return "", errNoProfile
	}
	return profile, nil
}
