package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

// NetAddress is a flag.Value holding a validated host:port pair. An empty
// host means every interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the process command line.
//
// Flags:
//
//	-a            HTTP address, [host]:port
//	-grpc-address gRPC health address, [host]:port
//	-d            database DSN
//	-f            evidence directory
//	-max-upload   maximum evidence upload size in bytes
//	-c, -config   JSON config file path
//	-token-sign-key, -token-issuer   identity token verification
//	-admin-emails comma separated admin email addresses
//	-request-timeout  e.g. "30s"
//	-email-api-key    transactional email API key
//	-redis-address    Redis for submission rate limiting
//	-log-level        debug, info, warn or error
func ParseFlags() (*StructuredConfig, error) {
	return parseFlagSet(flag.CommandLine, os.Args[1:])
}

func parseFlagSet(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var (
		httpAddress, grpcAddress NetAddress
		adminEmails              string
		cfg                      StructuredConfig
	)

	fs.Var(&httpAddress, "a", "HTTP address [host]:port")
	fs.Var(&grpcAddress, "grpc-address", "gRPC address [host]:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.Files.EvidenceDir, "f", "", "Evidence directory")
	fs.Int64Var(&cfg.Storage.Files.MaxUploadBytes, "max-upload", 0, "Maximum evidence upload size in bytes")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Identity token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Identity token issuer")
	fs.StringVar(&adminEmails, "admin-emails", "", "Comma separated admin emails")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Minimum log level")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&cfg.Server.UploadTimeout, "upload-timeout", 0, "Evidence upload timeout (e.g., 10m)")
	fs.StringVar(&cfg.Adapter.Email.APIKey, "email-api-key", "", "Transactional email API key")
	fs.StringVar(&cfg.Adapter.Redis.Address, "redis-address", "", "Redis address host:port")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.App.AdminEmails = splitList(adminEmails)
	cfg.Server.HTTPAddress = httpAddress.String()
	cfg.Server.GRPCAddress = grpcAddress.String()

	return &cfg, nil
}

// splitList splits a comma separated flag value, dropping empty items.
func splitList(s string) []string {
	var items []string
	for item := range strings.SplitSeq(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// String returns "" for an unset address so it never overrides other
// sources during the merge.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set accepts "host:port", ":port" and "[ipv6]:port". A named host other
// than localhost is rejected; bind addresses are IPs.
func (a *NetAddress) Set(s string) error {
	host, portText, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(portText)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("port must be a number between 1 and 65535, got %q", portText)
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
