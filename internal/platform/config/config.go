// internal/platform/config/config.go
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"uuidhunt/internal/core/domain"
	"uuidhunt/internal/platform/errors"
	"uuidhunt/internal/platform/registry"
	"uuidhunt/internal/platform/validator"
)

// EnvPrefix es el prefijo de todas las variables de entorno.
const EnvPrefix = "UUIDHUNT_"

// Config es la configuración inmutable de una ejecución.
type Config struct {
	Core       Core       `yaml:"core"`
	Input      Input      `yaml:"input"`
	Output     Output     `yaml:"output"`
	Lookup     Lookup     `yaml:"lookup"`
	Resilience Resilience `yaml:"resilience"`
	Network    Network    `yaml:"network"`
	Names      Names      `yaml:"names"`

	Version VersionInfo `yaml:"-"`
}

type Core struct {
	Threads  int    `yaml:"threads"`
	TimeoutS int    `yaml:"timeout"` // segundos (0 = sin timeout)
	Quiet    bool   `yaml:"quiet"`
	LogLevel string `yaml:"log_level"`

	ConfigFile   string `yaml:"-"`
	PrintVersion bool   `yaml:"-"`
	PrintHelp    bool   `yaml:"-"`
}

type Input struct {
	Wordlist          string `yaml:"wordlist"`
	Suffixes          string `yaml:"suffixes"`
	Ignored           string `yaml:"ignored"`
	IgnoredTruncation int    `yaml:"ignored_truncation"` // 0 = ids completos
}

type Output struct {
	Path        string `yaml:"path"` // "-" = stdout
	Format      string `yaml:"format"`
	ShowIgnored bool   `yaml:"show_ignored"`
	Color       string `yaml:"color"`
}

type Lookup struct {
	Resolver       string        `yaml:"resolver"`
	Endpoint       string        `yaml:"endpoint"` // vacío = default del resolver
	Batch          int           `yaml:"batch"`
	Rate           float64       `yaml:"rate"` // req/s, 0 = sin límite
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

type Resilience struct {
	MaxRetries       int           `yaml:"retries"`
	Backoff          time.Duration `yaml:"backoff"`
	MaxBackoff       time.Duration `yaml:"max_backoff"`
	BreakerThreshold int           `yaml:"breaker"` // 0 = desactivado
	ShutdownTimeout  time.Duration `yaml:"shutdown_timeout"`
}

type Network struct {
	ProxyURL  string `yaml:"proxy"`
	UserAgent string `yaml:"user_agent"`
}

type Names struct {
	MinLength int `yaml:"min_length"`
	MaxLength int `yaml:"max_length"`
}

type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// MaxTruncation es la longitud de un uuid en hex.
const MaxTruncation = 32

// MaxBatch es el máximo de nombres por petición bulk.
const MaxBatch = 10

// Valores aceptados por --log-level, --format y --color.
var (
	LogLevels  = []string{"debug", "info", "warn", "warning", "error"}
	Formats    = []string{"pair", "id", "jsonl", "csv"}
	ColorModes = []string{"auto", "always", "never"}
)

// DefaultConfig retorna una configuración por defecto.
func DefaultConfig() Config {
	return Config{
		Core: Core{
			Threads:  80,
			TimeoutS: 0,
			LogLevel: "info",
		},
		Output: Output{
			Format: "pair",
			Color:  "auto",
		},
		Lookup: Lookup{
			Resolver:       "mowojang",
			Batch:          MaxBatch,
			RequestTimeout: 15 * time.Second,
		},
		Resilience: Resilience{
			MaxRetries:       3,
			Backoff:          500 * time.Millisecond,
			MaxBackoff:       30 * time.Second,
			BreakerThreshold: 25,
			ShutdownTimeout:  10 * time.Second,
		},
		Network: Network{
			UserAgent: "uuidhunt",
		},
		Names: Names{
			MinLength: 3,
			MaxLength: 16,
		},
	}
}

// Load inicializa la configuración desde os.Args.
// Precedencia: defaults -> YAML (--config) -> ENV -> FLAGS.
func Load(version, commit, date string) (Config, error) {
	return LoadArgs(os.Args[1:], version, commit, date)
}

// LoadArgs es Load con argumentos explícitos.
func LoadArgs(args []string, version, commit, date string) (Config, error) {
	// Primera pasada: solo interesa --config y los errores de sintaxis
	early := DefaultConfig()
	if err := parseFlags(&early, args); err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig()

	path := getenv(EnvPrefix+"CONFIG", "")
	if early.Core.ConfigFile != "" {
		path = early.Core.ConfigFile
	}
	if path != "" {
		if err := loadFromFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}

	if err := loadFromEnv(&cfg); err != nil {
		return Config{}, err
	}

	// Segunda pasada: los flags ganan sobre YAML y ENV
	if err := parseFlags(&cfg, args); err != nil {
		return Config{}, err
	}
	cfg.Core.ConfigFile = path
	cfg.Version = VersionInfo{Version: version, Commit: commit, Date: date}

	normalize(&cfg)

	if cfg.Core.PrintHelp || cfg.Core.PrintVersion {
		return cfg, nil
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadFromFile aplica un archivo YAML sobre cfg. Las claves ausentes
// conservan su valor.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: config file: %w", domain.ErrInvalidConfig, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: config file %s: %w", domain.ErrInvalidConfig, path, err)
	}
	return nil
}

// loadFromEnv carga configuración desde variables de entorno.
func loadFromEnv(cfg *Config) error {
	var errs []error
	str := func(key string, dst *string) {
		if v := getenv(EnvPrefix+key, ""); v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) {
		if v := getenv(EnvPrefix+key, ""); v != "" {
			i, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
				return
			}
			*dst = i
		}
	}
	flt := func(key string, dst *float64) {
		if v := getenv(EnvPrefix+key, ""); v != "" {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
				return
			}
			*dst = f
		}
	}
	dur := func(key string, dst *time.Duration) {
		if v := getenv(EnvPrefix+key, ""); v != "" {
			d, err := parseDuration(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
				return
			}
			*dst = d
		}
	}
	boolean := func(key string, dst *bool) {
		if v := getenv(EnvPrefix+key, ""); v != "" {
			*dst = parseBool(v)
		}
	}

	// Core
	num("THREADS", &cfg.Core.Threads)
	num("TIMEOUT", &cfg.Core.TimeoutS)
	boolean("QUIET", &cfg.Core.Quiet)
	str("LOG_LEVEL", &cfg.Core.LogLevel)

	// Input
	str("WORDLIST", &cfg.Input.Wordlist)
	str("SUFFIXES", &cfg.Input.Suffixes)
	str("IGNORED", &cfg.Input.Ignored)
	num("IGNORED_TRUNCATION", &cfg.Input.IgnoredTruncation)

	// Output
	str("OUTPUT", &cfg.Output.Path)
	str("FORMAT", &cfg.Output.Format)
	boolean("SHOW_IGNORED", &cfg.Output.ShowIgnored)
	str("COLOR", &cfg.Output.Color)

	// Lookup
	str("RESOLVER", &cfg.Lookup.Resolver)
	str("ENDPOINT", &cfg.Lookup.Endpoint)
	num("BATCH", &cfg.Lookup.Batch)
	flt("RATE", &cfg.Lookup.Rate)
	dur("REQUEST_TIMEOUT", &cfg.Lookup.RequestTimeout)

	// Resilience
	num("RETRIES", &cfg.Resilience.MaxRetries)
	dur("BACKOFF", &cfg.Resilience.Backoff)
	dur("MAX_BACKOFF", &cfg.Resilience.MaxBackoff)
	num("BREAKER", &cfg.Resilience.BreakerThreshold)
	dur("SHUTDOWN_TIMEOUT", &cfg.Resilience.ShutdownTimeout)

	// Network
	str("PROXY_URL", &cfg.Network.ProxyURL)
	str("USER_AGENT", &cfg.Network.UserAgent)

	// Names
	num("MIN_LENGTH", &cfg.Names.MinLength)
	num("MAX_LENGTH", &cfg.Names.MaxLength)

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: malformed environment values: %w", domain.ErrInvalidConfig, err)
	}
	return nil
}

// parseFlags parsea args sobre cfg; los valores actuales de cfg son los defaults.
func parseFlags(cfg *Config, args []string) error {
	fs := pflag.NewFlagSet("uuidhunt", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	// Core
	fs.IntVarP(&cfg.Core.Threads, "threads", "t", cfg.Core.Threads, "Number of concurrent lookup workers")
	fs.IntVarP(&cfg.Core.TimeoutS, "timeout", "T", cfg.Core.TimeoutS, "Global timeout in seconds (0 = none)")
	fs.BoolVarP(&cfg.Core.Quiet, "quiet", "q", cfg.Core.Quiet, "Disable the status line and summary")
	fs.StringVar(&cfg.Core.LogLevel, "log-level", cfg.Core.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.Core.ConfigFile, "config", cfg.Core.ConfigFile, "YAML configuration file")
	fs.BoolVarP(&cfg.Core.PrintVersion, "version", "v", false, "Print version information and exit")
	fs.BoolVarP(&cfg.Core.PrintHelp, "help", "h", false, "Show help message")

	// Input
	fs.StringVarP(&cfg.Input.Wordlist, "wordlist", "w", cfg.Input.Wordlist, "Wordlist file (required)")
	fs.StringVarP(&cfg.Input.Suffixes, "suffixes", "s", cfg.Input.Suffixes, "Suffix file")
	fs.StringVarP(&cfg.Input.Ignored, "ignored", "i", cfg.Input.Ignored, "File of known uuids to exclude")
	fs.IntVarP(&cfg.Input.IgnoredTruncation, "ignored-truncation", "r", cfg.Input.IgnoredTruncation, "Match ignored uuids on the first N hex digits")

	// Output
	fs.StringVarP(&cfg.Output.Path, "output", "o", cfg.Output.Path, "Output file, - for stdout (required)")
	fs.StringVarP(&cfg.Output.Format, "format", "f", cfg.Output.Format, "Output format: pair, id, jsonl, csv")
	fs.BoolVarP(&cfg.Output.ShowIgnored, "show-ignored", "a", cfg.Output.ShowIgnored, "Write ignored uuids in a distinguished form")
	fs.StringVar(&cfg.Output.Color, "color", cfg.Output.Color, "Color: auto, always, never")

	// Lookup
	fs.StringVar(&cfg.Lookup.Resolver, "resolver", cfg.Lookup.Resolver, "Resolver: mowojang, mowojang-bulk, mojang")
	fs.StringVar(&cfg.Lookup.Endpoint, "endpoint", cfg.Lookup.Endpoint, "Override the resolver endpoint")
	fs.IntVar(&cfg.Lookup.Batch, "batch", cfg.Lookup.Batch, "Names per request for bulk resolvers (1-10)")
	fs.Float64Var(&cfg.Lookup.Rate, "rate", cfg.Lookup.Rate, "Max requests per second (0 = unlimited)")
	fs.DurationVar(&cfg.Lookup.RequestTimeout, "request-timeout", cfg.Lookup.RequestTimeout, "Per-request timeout")

	// Resilience
	fs.IntVar(&cfg.Resilience.MaxRetries, "retries", cfg.Resilience.MaxRetries, "Retries per lookup on transient errors")
	fs.DurationVar(&cfg.Resilience.Backoff, "backoff", cfg.Resilience.Backoff, "Initial retry backoff")
	fs.DurationVar(&cfg.Resilience.MaxBackoff, "max-backoff", cfg.Resilience.MaxBackoff, "Maximum retry backoff")
	fs.IntVar(&cfg.Resilience.BreakerThreshold, "breaker", cfg.Resilience.BreakerThreshold, "Consecutive failed lookups before giving up (0 = off)")
	fs.DurationVar(&cfg.Resilience.ShutdownTimeout, "shutdown-timeout", cfg.Resilience.ShutdownTimeout, "Grace period for in-flight lookups on stop")

	// Network
	fs.StringVarP(&cfg.Network.ProxyURL, "proxy", "p", cfg.Network.ProxyURL, "Proxy URL (http, https, socks5)")
	fs.StringVar(&cfg.Network.UserAgent, "user-agent", cfg.Network.UserAgent, "User-Agent header")

	// Names
	fs.IntVar(&cfg.Names.MinLength, "min-length", cfg.Names.MinLength, "Minimum candidate length")
	fs.IntVar(&cfg.Names.MaxLength, "max-length", cfg.Names.MaxLength, "Maximum candidate length")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments: %s", domain.ErrInvalidConfig, strings.Join(fs.Args(), " "))
	}
	return nil
}

func normalize(c *Config) {
	if c.Core.Threads < 1 {
		c.Core.Threads = 1
	}
	if c.Core.TimeoutS < 0 {
		c.Core.TimeoutS = 0
	}
	c.Core.LogLevel = strings.ToLower(strings.TrimSpace(c.Core.LogLevel))

	if c.Input.IgnoredTruncation < 0 {
		c.Input.IgnoredTruncation = 0
	}
	if c.Input.IgnoredTruncation > MaxTruncation {
		c.Input.IgnoredTruncation = MaxTruncation
	}

	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = "pair"
	}
	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))
	if c.Output.Color == "" {
		c.Output.Color = "auto"
	}

	c.Lookup.Resolver = strings.ToLower(strings.TrimSpace(c.Lookup.Resolver))
	if c.Lookup.Endpoint != "" {
		c.Lookup.Endpoint = validator.NormalizeEndpoint(c.Lookup.Endpoint)
	}
	if c.Lookup.Batch < 1 {
		c.Lookup.Batch = 1
	}
	if c.Lookup.Batch > MaxBatch {
		c.Lookup.Batch = MaxBatch
	}
	if c.Lookup.Rate < 0 {
		c.Lookup.Rate = 0
	}

	if c.Resilience.MaxRetries < 0 {
		c.Resilience.MaxRetries = 0
	}
	if c.Resilience.MaxBackoff < c.Resilience.Backoff {
		c.Resilience.MaxBackoff = c.Resilience.Backoff
	}
	if c.Resilience.BreakerThreshold < 0 {
		c.Resilience.BreakerThreshold = 0
	}

	if c.Names.MinLength < 1 {
		c.Names.MinLength = 1
	}
	if c.Names.MaxLength < c.Names.MinLength {
		c.Names.MaxLength = c.Names.MinLength
	}
}

// Validate comprueba los campos obligatorios y los que llegan sin validar
// a otros componentes.
func (c Config) Validate() error {
	if validator.IsEmpty(c.Input.Wordlist) {
		return fmt.Errorf("%w: --wordlist is required", domain.ErrMissingConfig)
	}
	if validator.IsEmpty(c.Output.Path) {
		return fmt.Errorf("%w: --output is required", domain.ErrMissingConfig)
	}
	if c.Network.ProxyURL != "" && !validator.IsProxyURL(c.Network.ProxyURL) {
		return fmt.Errorf("%w: invalid proxy URL %q", domain.ErrInvalidConfig, c.Network.ProxyURL)
	}
	if c.Lookup.Endpoint != "" && !validator.IsURL(c.Lookup.Endpoint) {
		return fmt.Errorf("%w: invalid endpoint %q", domain.ErrInvalidConfig, c.Lookup.Endpoint)
	}
	checks := []error{
		registry.ValidateEnum("log-level", c.Core.LogLevel, LogLevels),
		registry.ValidateEnum("format", c.Output.Format, Formats),
		registry.ValidateEnum("color", c.Output.Color, ColorModes),
		registry.ValidatePositiveDuration("request-timeout", c.Lookup.RequestTimeout),
		registry.ValidatePositiveDuration("backoff", c.Resilience.Backoff),
		registry.ValidatePositiveDuration("shutdown-timeout", c.Resilience.ShutdownTimeout),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}

// Timeout devuelve el timeout global como duración (0 = sin timeout).
func (c Config) Timeout() time.Duration {
	if c.Core.TimeoutS <= 0 {
		return 0
	}
	return time.Duration(c.Core.TimeoutS) * time.Second
}

// ToYAML serializa la configuración (útil para debugging).
func (c Config) ToYAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Helpers

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		return v
	}
	return def
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	default:
		return false
	}
}

// parseDuration acepta "500ms", "2s" o un número de segundos.
func parseDuration(v string) (time.Duration, error) {
	v = strings.TrimSpace(v)
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(v)
}
