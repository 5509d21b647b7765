package server

import (
	"context"

	"github.com/bufbuild/connect-go"
	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	"go.uber.org/zap"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthChecker reports the server as serving while the database answers pings. Only the
// overall status, the empty service name, is known.
type HealthChecker struct {
	db     pinger
	logger *zap.Logger
}

func NewHealthChecker(db pinger, logger *zap.Logger) *HealthChecker {
	return &HealthChecker{db: db, logger: logger}
}

func (h *HealthChecker) Check(ctx context.Context, request *grpchealth.CheckRequest) (*grpchealth.CheckResponse, error) {
	if request.Service != "" {
		return nil, connect.NewError(connect.CodeNotFound, nil)
	}

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn("database ping failed", zap.Error(err))

		return &grpchealth.CheckResponse{Status: grpchealth.StatusNotServing}, nil
	}

	return &grpchealth.CheckResponse{Status: grpchealth.StatusServing}, nil
}
