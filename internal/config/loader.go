// internal/config/loader.go
//
// Configuration loader.
//
/*
Context
--------
`Load()` builds one immutable `Config` struct from three layers (highest
precedence last):

  1. Optional `conf/.env` file.
  2. `conf/payable.yaml`.
  3. Environment variables prefixed `PAYABLE_`, where `__` maps to “.”
     (e.g., `PAYABLE_HTTP__LISTEN_ADDR → http.listen_addr`).

After merging, the tree is unmarshalled into strongly-typed structs,
defaulted, validated, enriched with the runtime root path, and cached in
an `atomic.Pointer` for lock-free reads.  `Reload()` simply calls `Load()`
again and swaps the pointer.

Notes
-----
  • `rootDir()` climbs the cwd tree until it finds `conf/payable.yaml`;
    this lets `go run ./cmd/payabled` work from any sub-directory.
  • A missing YAML file is not fatal: env overrides plus defaults are a
    complete configuration for the stub-gateway development mode.
  • Early boot logs use the global sugared logger (`zap.S()`) so issues
    surface even before the file logger is installed.
*/
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

var current atomic.Pointer[Config]

/*──────────────────────────── root discovery ───────────────────────────────*/

// rootDir resolves PAYABLE_ROOT or climbs directories until
// conf/payable.yaml is found, falling back to the working directory.
func rootDir() string {
	if r := os.Getenv("PAYABLE_ROOT"); r != "" {
		return r
	}

	wd, _ := os.Getwd()
	dir := wd
	for {
		if _, err := os.Stat(filepath.Join(dir, "conf", "payable.yaml")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir { // reached filesystem root
			break
		}
		dir = parent
	}
	return wd
}

/*─────────────────────────────── loader ───────────────────────────────────*/

// Load reads .env, YAML, and env overrides, applies defaults, validates,
// and caches the Config.
func Load() (*Config, error) {
	root := rootDir()
	zap.S().Debugw("config root resolved", "root", root)

	// .env (optional, no error if missing)
	_ = godotenv.Load(filepath.Join(root, "conf", ".env"))

	k := koanf.New(".")

	yamlPath := filepath.Join(root, "conf", "payable.yaml")
	if err := k.Load(file.Provider(yamlPath), yaml.Parser()); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			zap.S().Errorw("config yaml load failed", "file", yamlPath, "err", err)
			return nil, err
		}
		zap.S().Debugw("config yaml absent, using defaults", "file", yamlPath)
	}

	// Env overrides: PAYABLE_HTTP__LISTEN_ADDR → http.listen_addr
	if err := k.Load(env.Provider("PAYABLE_", ".", func(s string) string {
		return strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(s, "PAYABLE_"), "__", "."))
	}), nil); err != nil {
		zap.S().Errorw("config env overlay failed", "err", err)
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		zap.S().Errorw("config unmarshal failed", "err", err)
		return nil, err
	}

	applyDefaults(&cfg)
	cfg.Paths.Root = root

	if err := validateStruct(&cfg); err != nil {
		zap.S().Errorw("config validation failed", "err", err)
		return nil, err
	}

	current.Store(&cfg)
	zap.S().Infow("config loaded",
		"listen", cfg.HTTP.ListenAddr,
		"store_gateway", cfg.Database.DSN != "",
		"nats", cfg.NATS.URL != "",
	)
	return &cfg, nil
}

// Reload re-runs Load and swaps the cached pointer.
func Reload() error {
	_, err := Load()
	return err
}

// Get returns the cached Config.  Panics when Load has never succeeded;
// callers must Load during boot.
func Get() *Config {
	c := current.Load()
	if c == nil {
		panic("config: Get before successful Load")
	}
	return c
}

/*────────────────────────────── defaults ──────────────────────────────────*/

// applyDefaults fills gaps so a bare environment still boots the
// development mode: local listener, stub gateway with the classic 1.5 s
// latency and 20 % failure rate.
func applyDefaults(cfg *Config) {
	if cfg.HTTP.ListenAddr == "" {
		cfg.HTTP.ListenAddr = ":8080"
	}
	if cfg.Gateway.LatencyMS == 0 {
		cfg.Gateway.LatencyMS = 1500
	}
	if cfg.Gateway.FailureRate == 0 {
		cfg.Gateway.FailureRate = 0.2
	}
}
