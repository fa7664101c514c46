// Package config parses server connection strings and configuration files.
package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
)

const (
	DefaultHost    = "localhost"
	DefaultAPIPort = 7876
)

// Connection identifies one node API server.
type Connection struct {
	Host string
	// Port is 0 when the connection string did not name one.
	Port          int
	AdminPassword string
}

// Address returns host:port, bracketing IPv6 hosts.
func (c Connection) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c Connection) String() string {
	return c.Address()
}

// ParseConnection parses "host[:port][;adminPassword]". IPv6 hosts must be
// bracketed. An empty host means localhost.
func ParseConnection(s string) (Connection, error) {
	conn := Connection{Host: DefaultHost}
	if s == "" {
		return conn, nil
	}

	rest := s
	if i := strings.IndexByte(rest, ';'); i >= 0 {
		conn.AdminPassword = rest[i+1:]
		rest = rest[:i]
	}

	var port string
	if strings.HasPrefix(rest, "[") {
		end := strings.IndexByte(rest, ']')
		if end < 2 {
			return Connection{}, fmt.Errorf("invalid IPv6 address: %s", s)
		}
		conn.Host = rest[1:end]
		rest = rest[end+1:]
		if rest != "" {
			if rest[0] != ':' {
				return Connection{}, fmt.Errorf("invalid connection string: %s", s)
			}
			port = rest[1:]
		}
	} else {
		host := rest
		if i := strings.IndexByte(rest, ':'); i >= 0 {
			host, port = rest[:i], rest[i+1:]
		}
		if host != "" {
			conn.Host = host
		}
	}

	if port != "" {
		p, err := strconv.Atoi(port)
		if err != nil || p < 1 || p > 65535 {
			return Connection{}, fmt.Errorf("invalid port in connection string %s", s)
		}
		conn.Port = p
	}
	return conn, nil
}

// ResolveConnections parses every connection string and fills in the default
// port and admin password. No strings yields a single localhost connection.
func ResolveConnections(values []string, defaultPort int, defaultAdminPassword string) ([]Connection, error) {
	if defaultPort < 1 || defaultPort > 65535 {
		return nil, fmt.Errorf("invalid api port %d", defaultPort)
	}
	if len(values) == 0 {
		values = []string{""}
	}

	conns := make([]Connection, 0, len(values))
	var errs []error
	for _, v := range values {
		conn, err := ParseConnection(v)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if conn.Port == 0 {
			conn.Port = defaultPort
		}
		if conn.AdminPassword == "" {
			conn.AdminPassword = defaultAdminPassword
		}
		conns = append(conns, conn)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return conns, nil
}
