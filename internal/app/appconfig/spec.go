package appconfig

import (
	"time"

	"quakerfm.dev/market-next/internal/app/appcontext"
)

type ConfigSpec struct {
	// ServiceAddress is the listen address would listen on for serving requests.
	ServiceAddress string `required:"true" split_words:"true" default:"localhost:9030"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// DevMode to indicate development mode. When true, the program would spin up utilities for debugging.
	DevMode bool `split_words:"true"`

	// TrustedProxies is a list of trusted proxies that are trusted to report a real IP via the X-Forwarded-For header.
	TrustedProxies []string `required:"true" split_words:"true" default:"::1,127.0.0.1,10.0.0.0/8"`

	// DataDir is the directory holding the flat JSON snapshots (drops, prices, keys).
	// Snapshots are seeded with built-in defaults on first startup.
	DataDir string `required:"true" split_words:"true" default:"data"`

	// AdminUsername and AdminPassword are the fixed dashboard admin credentials.
	// A successful login mints an API key that authorizes drop table mutations.
	AdminUsername string `required:"true" split_words:"true" default:"admin"`
	AdminPassword string `required:"true" split_words:"true" default:"quakerfm"`

	// WebhookURL is the notification sink that market log messages are relayed to.
	// Leaving this empty disables forwarding; relay requests still report accepted.
	WebhookURL string `split_words:"true"`

	// RelayTimeout bounds a single delivery attempt to the notification sink so a
	// slow sink cannot hang the caller's request.
	RelayTimeout time.Duration `split_words:"true" default:"5s"`

	// SentryDSN is the DSN of the Sentry server. See https://pkg.go.dev/github.com/getsentry/sentry-go#ClientOptions
	SentryDSN string `split_words:"true"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to shut down gracefully.
	HTTPServerShutdownTimeout time.Duration `required:"true" split_words:"true" default:"60s"`
}

type Config struct {
	// ConfigSpec is the configuration specification injected to the config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}
