package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-client/pkg/ctxutil"
)

// RequestIDHeader carries the request ID to the backend, which echoes it in
// its own logs.
const RequestIDHeader = "X-Request-Id"

// middleware wraps an http.RoundTripper.
type middleware func(http.RoundTripper) http.RoundTripper

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// chain applies mws to base so that chain(base, mw1, mw2) runs mw1 first.
func chain(base http.RoundTripper, mws ...middleware) http.RoundTripper {
	for i := len(mws) - 1; i >= 0; i-- {
		base = mws[i](base)
	}
	return base
}

// withRequestID sets the request ID header from the context, generating one
// when the context has none.
func withRequestID() middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripFunc(func(r *http.Request) (*http.Response, error) {
			id := ctxutil.RequestIDFromCtx(r.Context())
			if id == "" {
				id = uuid.New().String()
			}
			r = r.Clone(r.Context())
			r.Header.Set(RequestIDHeader, id)
			return next.RoundTrip(r)
		})
	}
}

// withAuth sets the bearer token and the client identification headers.
func withAuth(token, userAgent string) middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripFunc(func(r *http.Request) (*http.Response, error) {
			r = r.Clone(r.Context())
			r.Header.Set("Authorization", "Bearer "+token)
			if userAgent != "" {
				r.Header.Set("User-Agent", userAgent)
			}
			return next.RoundTrip(r)
		})
	}
}

// withLogging logs every round trip with status, duration and request ID.
// Transport failures and 5xx responses are logged at warn.
func withLogging(logger *slog.Logger) middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripFunc(func(r *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.RoundTrip(r)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("host", r.URL.Host),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", r.Header.Get(RequestIDHeader)),
			}

			level := slog.LevelDebug
			switch {
			case err != nil:
				level = slog.LevelWarn
				attrs = append(attrs, slog.String("error", err.Error()))
			case resp.StatusCode >= 500:
				level = slog.LevelWarn
				attrs = append(attrs, slog.Int("status", resp.StatusCode))
			default:
				attrs = append(attrs, slog.Int("status", resp.StatusCode))
			}
			logger.LogAttrs(r.Context(), level, "http.roundtrip", attrs...)

			return resp, err
		})
	}
}
