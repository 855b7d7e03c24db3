package server

import "time"

type Option func(*options)

type options struct {
	maxMessageBytes int
	path            string
	writeTimeout    time.Duration
	healthService   string
}

func defaultOptions() options {
	return options{
		maxMessageBytes: 1 << 20,
		path:            "/graphql",
		writeTimeout:    10 * time.Second,
		healthService:   "gqldb",
	}
}

// MaxMessageBytes bounds a single pending message.
func MaxMessageBytes(n int) Option {
	return func(o *options) {
		o.maxMessageBytes = n
	}
}

// Path is the HTTP path upgraded to websocket connections.
func Path(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

func WriteTimeout(d time.Duration) Option {
	return func(o *options) {
		o.writeTimeout = d
	}
}

// HealthService names the service reported by the health endpoint in
// addition to the overall server status.
func HealthService(name string) Option {
	return func(o *options) {
		o.healthService = name
	}
}
