package infra

import (
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// NewHTTPClient returns a resty client that logs through logger. It does not retry.
func NewHTTPClient(logger *zap.Logger) *resty.Client {
	return resty.New().
		SetLogger(logger.Sugar()).
		SetRetryCount(0)
}
