package kafka

import (
	"crypto/tls"

	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/pkg/sasl/plain"
	"github.com/twmb/franz-go/pkg/sasl/scram"
)

// AuthKind enumerates the supported authentication mechanisms.
type AuthKind int

const (
	AuthNone AuthKind = iota
	AuthSASLPlain
	AuthSASLSCRAM256
	AuthSASLSCRAM512
)

func (a AuthKind) String() string {
	switch a {
	case AuthNone:
		return "None"
	case AuthSASLPlain:
		return "SASL/PLAIN"
	case AuthSASLSCRAM256:
		return "SASL/SCRAM-256"
	case AuthSASLSCRAM512:
		return "SASL/SCRAM-512"
	default:
		return "Unknown"
	}
}

// Config is everything the client needs to reach a cluster. Credentials are
// passed through opaquely; nothing here is persisted.
type Config struct {
	Brokers       []string
	Auth          AuthKind
	Username      string
	Password      string
	TLS           bool
	TLSSkipVerify bool
}

// clientOpts translates a Config into franz-go client options.
func (c Config) clientOpts(extra ...kgo.Opt) []kgo.Opt {
	opts := []kgo.Opt{
		kgo.SeedBrokers(c.Brokers...),
	}

	switch c.Auth {
	case AuthSASLPlain:
		opts = append(opts, kgo.SASL(plain.Auth{
			User: c.Username,
			Pass: c.Password,
		}.AsMechanism()))
	case AuthSASLSCRAM256:
		opts = append(opts, kgo.SASL(scram.Auth{
			User: c.Username,
			Pass: c.Password,
		}.AsSha256Mechanism()))
	case AuthSASLSCRAM512:
		opts = append(opts, kgo.SASL(scram.Auth{
			User: c.Username,
			Pass: c.Password,
		}.AsSha512Mechanism()))
	}

	if c.TLS {
		opts = append(opts, kgo.DialTLSConfig(&tls.Config{
			InsecureSkipVerify: c.TLSSkipVerify,
		}))
	}

	return append(opts, extra...)
}
