// Package netprobe implements the reachability port with a point-in-time
// TCP dial against the backend host. No retries, no subscription: the
// answer is whatever the network looks like right now.
package netprobe

import (
	"context"
	"net"
	"net/url"
	"time"

	"github.com/example/monitoreo/internal/ports/secondary"
)

const dialTimeout = 3 * time.Second

// Probe checks connectivity by dialing the backend's host.
type Probe struct {
	host string
}

// New creates a probe for the backend base URI. On an unparseable URI the
// probe always reports disconnected.
func New(baseURI string) *Probe {
	u, err := url.Parse(baseURI)
	if err != nil || u.Host == "" {
		return &Probe{}
	}
	host := u.Host
	if u.Port() == "" {
		port := "443"
		if u.Scheme == "http" {
			port = "80"
		}
		host = net.JoinHostPort(u.Hostname(), port)
	}
	return &Probe{host: host}
}

// IsConnected reports whether the backend host accepts a TCP connection.
func (p *Probe) IsConnected(ctx context.Context) bool {
	if p.host == "" {
		return false
	}
	d := net.Dialer{Timeout: dialTimeout}
	conn, err := d.DialContext(ctx, "tcp", p.host)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

var _ secondary.Reachability = (*Probe)(nil)
