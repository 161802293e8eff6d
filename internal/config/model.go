// internal/config/model.go
//
// Typed configuration model for the payable service.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `conf/.env`                     – dotenv values,
//   • `conf/payable.yaml`                      – primary static file,
//   • `PAYABLE_`-prefixed environment overrides – highest precedence.
//
// Validation happens immediately after unmarshal; the service fails fast
// if a required field is missing or out of range.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`—Koanf ignores `yaml` tags
//     unless configured otherwise.
//   • The `Paths` block is filled at runtime; YAML must not try to set it.

package config

//
// HTTP section
//

// HTTP holds web-server tunables.
type HTTP struct {
	ListenAddr string `koanf:"listen_addr" validate:"required,hostname_port"`
}

//
// Database section
//

// Database selects the gateway backing.  An empty DSN selects the
// in-memory stub gateway; a MySQL DSN selects the store gateway.
type Database struct {
	DSN string `koanf:"dsn"`
}

//
// Gateway section (stub tunables)
//

// Gateway configures the stub's simulated behavior.  Ignored when the
// store gateway is active.
type Gateway struct {
	FailureRate float64 `koanf:"failure_rate" validate:"gte=0,lte=1"`
	LatencyMS   int     `koanf:"latency_ms"   validate:"gte=0"`
}

//
// NATS section
//

// NATS configures the optional accepted-payable event publisher.  An empty
// URL disables publishing entirely.
type NATS struct {
	URL string `koanf:"url"`
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime—never set in YAML or env.  The loader
// discovers `Root` (repo root or PAYABLE_ROOT override) so later code can
// build absolute file paths.
type Paths struct {
	Root string
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads throughout the service lifetime.
type Config struct {
	HTTP     HTTP     `koanf:"http"`
	Database Database `koanf:"database"`
	Gateway  Gateway  `koanf:"gateway"`
	NATS     NATS     `koanf:"nats"`
	Paths    Paths    `koanf:"-"`
}
