package go_nvp

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/stremovskyy/go-nvp/consts"
	"github.com/stremovskyy/go-nvp/log"
	"github.com/stremovskyy/go-nvp/profile"
	"github.com/stremovskyy/recorder"
)

type Option func(*config) error

type config struct {
	profile     profile.Profile
	environment consts.Environment
	version     string
	endpointURL string

	httpClient *http.Client
	transport  Transport
	logger     log.Logger
	logLevel   *log.Level
	logBodies  bool
	recorder   recorder.Recorder
}

func defaultConfig() config {
	return config{
		environment: consts.Sandbox,
		version:     consts.DefaultVersion,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		logger:      log.NewDefault(),
	}
}

// WithProfile sets the credentials prepended to every request.
func WithProfile(p profile.Profile) Option {
	return func(cfg *config) error {
		if p == nil {
			return errors.New("profile is nil")
		}
		cfg.profile = p
		return nil
	}
}

// WithEnvironment selects the live, sandbox or beta sandbox host.
func WithEnvironment(env consts.Environment) Option {
	return func(cfg *config) error {
		parsed, err := consts.ParseEnvironment(string(env))
		if err != nil {
			return err
		}
		cfg.environment = parsed
		return nil
	}
}

// WithConfigFile loads profile, environment, version, endpoint and log level
// from a TOML file. Options passed after it override the file; the log level
// applies to whichever logger the client ends up with.
func WithConfigFile(path string) Option {
	return func(cfg *config) error {
		f, err := profile.LoadFile(path)
		if err != nil {
			return err
		}
		env, err := f.Env()
		if err != nil {
			return err
		}
		cfg.profile = f.Profile
		cfg.environment = env
		if f.Version != "" {
			cfg.version = f.Version
		}
		if f.EndpointURL != "" {
			cfg.endpointURL = f.EndpointURL
		}
		if f.LogLevel != "" {
			level, err := log.ParseLevel(f.LogLevel)
			if err != nil {
				return err
			}
			cfg.logLevel = &level
		}
		return nil
	}
}

// WithVersion sets the VERSION sent with every request.
func WithVersion(version string) Option {
	return func(cfg *config) error {
		version = strings.TrimSpace(version)
		if version == "" {
			return errors.New("api version is empty")
		}
		cfg.version = version
		return nil
	}
}

// WithEndpointURL overrides the endpoint derived from the environment.
func WithEndpointURL(endpoint string) Option {
	return func(cfg *config) error {
		if endpoint == "" {
			return errors.New("endpoint url is empty")
		}
		cfg.endpointURL = endpoint
		return nil
	}
}

// WithHTTPClient sets a custom *http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *config) error {
		if client == nil {
			return errors.New("http client is nil")
		}
		cfg.httpClient = client
		return nil
	}
}

// WithTimeout sets http client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(cfg *config) error {
		if timeout <= 0 {
			return errors.New("timeout must be > 0")
		}
		cfg.httpClient.Timeout = timeout
		return nil
	}
}

// WithTransport replaces the HTTP transport. The http client, body logging
// and recorder options do not apply to a custom transport.
func WithTransport(t Transport) Option {
	return func(cfg *config) error {
		if t == nil {
			return errors.New("transport is nil")
		}
		cfg.transport = t
		return nil
	}
}

func WithLogger(logger log.Logger) Option {
	return func(cfg *config) error {
		if logger == nil {
			cfg.logger = log.NopLogger{}
			return nil
		}
		cfg.logger = logger
		return nil
	}
}

// WithLogHTTPBodies enables verbose request/response body logging for debugging.
//
// Disabled by default. Credentials and card data are masked either way.
func WithLogHTTPBodies(enabled bool) Option {
	return func(cfg *config) error {
		cfg.logBodies = enabled
		return nil
	}
}

// WithRecorder attaches a recorder that receives every request, response
// and transport error keyed by request id.
func WithRecorder(r recorder.Recorder) Option {
	return func(cfg *config) error {
		cfg.recorder = r
		return nil
	}
}
