// Package connectivity tells a failed write apart from being offline.
package connectivity

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Checker probes the backend host. Any HTTP answer, even an error status,
// counts as online; only transport failures mean offline.
type Checker struct {
	http   *resty.Client
	target string
	logger *zap.Logger
}

func NewChecker(target string, timeout time.Duration, logger *zap.Logger) *Checker {
	return &Checker{
		http: resty.New().
			SetTimeout(timeout).
			SetRetryCount(0),
		target: strings.TrimRight(strings.TrimSpace(target), "/"),
		logger: logger.Named("connectivity"),
	}
}

func (c *Checker) Online(ctx context.Context) bool {
	if c == nil || c.target == "" {
		return true
	}

	resp, err := c.http.R().SetContext(ctx).Head(c.target)
	if err != nil {
		c.logger.Debug("connectivity probe failed", zap.String("target", c.target), zap.Error(err))
		return false
	}
	c.logger.Debug("connectivity probe", zap.String("target", c.target), zap.Int("status", resp.StatusCode()))
	return true
}
