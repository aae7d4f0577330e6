package qdrant

// Config holds the connection target for the Qdrant instance.
//
// Exactly one target form is used: when URL is set it wins, otherwise the
// client connects to Host:Port. The zero values of Host and Port fall back
// to "localhost" and DefaultPort.
type Config struct {
	// URL is the full address of the instance, e.g. "https://xyz.qdrant.tech"
	// or "http://localhost:6334". Takes precedence over Host/Port.
	URL string

	// Host is the hostname of the instance when no URL is given.
	Host string

	// Port is the gRPC port of the instance when no URL is given.
	Port int

	// APIKey is the optional authentication token for secured deployments.
	APIKey string
}

const (
	// DefaultPort is used for the Host/Port form when no port is configured.
	DefaultPort = 6333

	// defaultURLPort is assumed when a URL carries no explicit port.
	defaultURLPort = 6334
)
