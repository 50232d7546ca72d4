package mcp

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

// Call outcomes. A rejected call is one the builder refused, e.g. a payload
// that matches no variant; failed means the handler itself returned an error.
const (
	outcomeOK       = "ok"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)

var (
	toolCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cwmcp",
			Subsystem: "tools",
			Name:      "calls_total",
			Help:      "Tool calls by tool and outcome.",
		},
		[]string{"tool", "outcome"},
	)

	toolCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cwmcp",
			Subsystem: "tools",
			Name:      "call_duration_seconds",
			Help:      "Tool call latency.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"tool"},
	)
)

// instrumentTools tags each call with an id, attaches a logger carrying it to
// the context, and records metrics once the handler returns.
func instrumentTools(next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tool := req.Params.Name
		l := log.With().Str("tool", tool).Str("call_id", uuid.NewString()).Logger()
		ctx = l.WithContext(ctx)

		start := time.Now()
		res, err := next(ctx, req)
		elapsed := time.Since(start)

		outcome := outcomeOf(res, err)
		toolCallsTotal.WithLabelValues(tool, outcome).Inc()
		toolCallDuration.WithLabelValues(tool).Observe(elapsed.Seconds())

		switch outcome {
		case outcomeOK:
			l.Debug().Dur("elapsed", elapsed).Msg("tool call completed")
		case outcomeRejected:
			l.Warn().Str("kind", rejectionKind(res)).Dur("elapsed", elapsed).Msg("tool call rejected")
		default:
			l.Error().Err(err).Dur("elapsed", elapsed).Msg("tool call failed")
		}
		return res, err
	}
}

func outcomeOf(res *mcp.CallToolResult, err error) string {
	switch {
	case err != nil:
		return outcomeFailed
	case res != nil && res.IsError:
		return outcomeRejected
	default:
		return outcomeOK
	}
}

// rejectionKind extracts error.kind from a tool error result, if present.
func rejectionKind(res *mcp.CallToolResult) string {
	if res == nil || len(res.Content) == 0 {
		return ""
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		return ""
	}
	return gjson.Get(tc.Text, "error.kind").String()
}
