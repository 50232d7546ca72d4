package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	cwerrors "github.com/archway-network/cosmwasm-mcp-template/contract/errors"
)

type errorPayload struct {
	Error *cwerrors.Error `json:"error"`
}

// jsonResult renders v as an indented JSON text result. Canonical messages
// are embedded as written, without HTML escaping.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(strings.TrimSuffix(buf.String(), "\n")), nil
}

// errorResult renders err as a tool error whose text is {"error":{...}}.
// Errors that are not builder errors are reported without a kind.
func errorResult(err error) *mcp.CallToolResult {
	e, ok := cwerrors.As(err)
	if !ok {
		e = &cwerrors.Error{Message: err.Error()}
	}
	b, mErr := json.Marshal(errorPayload{Error: e})
	if mErr != nil {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultError(string(b))
}

// argumentError reports a malformed tool argument.
func argumentError(format string, args ...any) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf(format, args...))
}

// maxExactFloat is 2^53. Integers at or above it may have been rounded when
// the request was decoded into float64.
const maxExactFloat = 1 << 53

// rawArgument returns a JSON argument as raw bytes. Clients may send the
// object itself or a string holding its JSON text. Objects arrive decoded
// into float64 numbers, so any number too large to be exact is refused
// rather than passed on silently rounded.
func rawArgument(req mcp.CallToolRequest, name string) (json.RawMessage, error) {
	v, ok := req.GetArguments()[name]
	if !ok || v == nil {
		return nil, fmt.Errorf("%s is required", name)
	}
	if s, isStr := v.(string); isStr {
		return json.RawMessage(s), nil
	}
	if path, inexact := inexactNumber(v, ""); inexact {
		return nil, fmt.Errorf("%s: the number at %q is too large to be represented exactly; quote it as a string, or pass %s as a JSON string", name, path, name)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", name, err)
	}
	return b, nil
}

// inexactNumber finds the first float64 in a decoded argument whose
// magnitude is at least 2^53, returning its path.
func inexactNumber(v any, path string) (string, bool) {
	switch t := v.(type) {
	case float64:
		if math.IsInf(t, 0) || math.IsNaN(t) || math.Abs(t) >= maxExactFloat {
			return path, true
		}
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			kp := k
			if path != "" {
				kp = path + "." + k
			}
			if p, bad := inexactNumber(t[k], kp); bad {
				return p, true
			}
		}
	case []any:
		for i, item := range t {
			if p, bad := inexactNumber(item, fmt.Sprintf("%s[%d]", path, i)); bad {
				return p, true
			}
		}
	}
	return "", false
}
