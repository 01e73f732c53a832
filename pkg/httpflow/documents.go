package httpflow

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Source document names chains can target with the schema "in" selector.
const (
	SourceBody    = "body"
	SourceQuery   = "query"
	SourceParams  = "params"
	SourceHeaders = "headers"
)

var (
	// ErrInvalidBody is returned when a request declares a JSON body that
	// does not decode to an object.
	ErrInvalidBody = errors.New("httpflow: invalid request body")
)

// Documents maps source names to their mutable document trees.
type Documents map[string]map[string]any

// FromRequest splits a request into source documents. The body document is
// populated only for JSON object bodies; other content types leave it
// empty rather than failing, since a chain may only target query or
// headers. Multi-valued query parameters and headers become arrays.
func FromRequest(r *http.Request) (Documents, error) {
	docs := Documents{
		SourceBody:    map[string]any{},
		SourceQuery:   map[string]any{},
		SourceParams:  map[string]any{},
		SourceHeaders: map[string]any{},
	}

	if r.Body != nil && r.Body != http.NoBody && isJSON(r.Header.Get("Content-Type")) {
		var body any
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err := dec.Decode(&body); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
		}
		obj, ok := body.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: top level must be an object", ErrInvalidBody)
		}
		docs[SourceBody] = normalize(obj).(map[string]any)
	}

	for key, values := range r.URL.Query() {
		docs[SourceQuery][key] = collapse(values)
	}

	if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
		for i, key := range routeCtx.URLParams.Keys {
			if key == "*" {
				continue
			}
			docs[SourceParams][key] = routeCtx.URLParams.Values[i]
		}
	}

	for key, values := range r.Header {
		docs[SourceHeaders][strings.ToLower(key)] = collapse(values)
	}

	return docs, nil
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

func collapse(values []string) any {
	if len(values) == 1 {
		return values[0]
	}
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// normalize rewrites json.Number leaves into int64 or float64 so numeric
// rules see plain Go numbers.
func normalize(v any) any {
	switch node := v.(type) {
	case map[string]any:
		for key, val := range node {
			node[key] = normalize(val)
		}
		return node
	case []any:
		for i, val := range node {
			node[i] = normalize(val)
		}
		return node
	case json.Number:
		if i, err := node.Int64(); err == nil {
			return i
		}
		if f, err := node.Float64(); err == nil {
			return f
		}
		return node.String()
	default:
		return v
	}
}
