package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/nutrilabel/nutrictl/pkg/server"
	"github.com/nutrilabel/nutrictl/pkg/session"
)

const (
	name           = "nutrictl-api"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/nutrilabel/nutrictl/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until ctx is canceled or the server
// fails. Scripts posted to /v1/report are evaluated against a fresh
// aggregator per request.
func Serve(ctx context.Context) error {
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	r := map[string]http.HandlerFunc{
		"/v1/report": session.HandleReport,
	}

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(r),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
