package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath = "."

	defaultRadius      = 100.0
	defaultMinRadius   = 50.0
	defaultMaxRadius   = 5000.0
	defaultCapacity    = 20
	defaultSettleDelay = 350 * time.Millisecond
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Monitoring configuration for region watching and attendance tracking
	Monitoring *MonitoringConfig `json:"monitoring" yaml:"monitoring"`

	// Storage configuration for snapshot persistence
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Geocoder configuration for reverse address lookup
	Geocoder *GeocoderConfig `json:"geocoder" yaml:"geocoder"`

	// Notification configuration for per-target notifications
	Notification *NotificationConfig `json:"notification" yaml:"notification"`

	// PubSub configuration for visit-event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MonitoringConfig defines region monitoring behaviour and radius bounds
type MonitoringConfig struct {
	// Radius in meters used when a target has none set
	DefaultRadius float64 `json:"defaultRadius" yaml:"defaultRadius"`

	// Lower bound applied when creating or updating a target radius
	MinRadius float64 `json:"minRadius" yaml:"minRadius"`

	// Upper bound applied when creating or updating a target radius
	MaxRadius float64 `json:"maxRadius" yaml:"maxRadius"`

	// Maximum number of simultaneously watched regions
	RegionCapacity int `json:"regionCapacity" yaml:"regionCapacity"`
}

// StorageConfig defines snapshot persistence configuration
type StorageConfig struct {
	// Provider type: "file" for a JSON snapshot file or "sqlite" for a sqlite database
	Provider string `json:"provider" yaml:"provider"`

	// Path to the snapshot file (for file provider)
	Path string `json:"path" yaml:"path"`

	// Path to the sqlite database file (for sqlite provider)
	DSN string `json:"dsn" yaml:"dsn"`
}

// GeocoderConfig defines reverse-geocoding configuration
type GeocoderConfig struct {
	// Base URL of a Nominatim-compatible reverse endpoint
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// Per-request timeout
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Settle delay before a pending lookup executes; a newer request
	// within the window supersedes it
	SettleDelay time.Duration `json:"settleDelay" yaml:"settleDelay"`
}

// NotificationConfig defines notification scheduling configuration
type NotificationConfig struct {
	// Provider type: "log" for structured-log delivery or "fcm" for Firebase Cloud Messaging
	Provider string `json:"provider" yaml:"provider"`

	// Firebase project ID (for fcm provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Path to the Firebase service-account credentials (for fcm provider)
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	// Device token the fcm provider delivers to
	DeviceToken string `json:"deviceToken" yaml:"deviceToken"`
}

// PubSubConfig defines Pub/Sub configuration for visit-event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: GEOCODER_BASEURL -> geocoder.baseUrl (not geocoder.baseurl)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.Monitoring = withMonitoringDefaults(cfg.Monitoring)
	if cfg.Geocoder != nil && cfg.Geocoder.SettleDelay <= 0 {
		cfg.Geocoder.SettleDelay = defaultSettleDelay
	}

	return cfg, nil
}

// withMonitoringDefaults fills unset monitoring values.
func withMonitoringDefaults(cfg *MonitoringConfig) *MonitoringConfig {
	if cfg == nil {
		cfg = &MonitoringConfig{}
	}
	if cfg.DefaultRadius <= 0 {
		cfg.DefaultRadius = defaultRadius
	}
	if cfg.MinRadius <= 0 {
		cfg.MinRadius = defaultMinRadius
	}
	if cfg.MaxRadius <= 0 {
		cfg.MaxRadius = defaultMaxRadius
	}
	if cfg.RegionCapacity <= 0 {
		cfg.RegionCapacity = defaultCapacity
	}

	return cfg
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
