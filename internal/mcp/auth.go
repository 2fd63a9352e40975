package mcp

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/primrose-mcp/primrose-mcp-trello/internal/trello"
)

// Tenant credential headers. Both are required on every MCP request.
const (
	HeaderAPIKey = "X-Trello-API-Key"
	HeaderToken  = "X-Trello-Token"
)

type credentialsKey struct{}

// withCredentials stores the tenant credentials on the context for the
// duration of one inbound request.
func withCredentials(ctx context.Context, creds trello.Credentials) context.Context {
	return context.WithValue(ctx, credentialsKey{}, creds)
}

// CredentialsFromContext extracts the tenant credentials placed on the
// context by the HTTP layer.
func CredentialsFromContext(ctx context.Context) (trello.Credentials, bool) {
	creds, ok := ctx.Value(credentialsKey{}).(trello.Credentials)
	return creds, ok
}

// httpContextFunc copies the credential headers into the request context
// so tool handlers can construct a per-tenant client. Missing headers are
// handled earlier by requireCredentials; an empty pair here simply leaves
// the context unchanged.
func httpContextFunc(ctx context.Context, r *http.Request) context.Context {
	key := r.Header.Get(HeaderAPIKey)
	token := r.Header.Get(HeaderToken)
	if key == "" || token == "" {
		return ctx
	}
	return withCredentials(ctx, trello.Credentials{Key: key, Token: token})
}

// requireCredentials rejects MCP requests lacking either credential header
// with a 401 and a structured body naming exactly what is missing.
func requireCredentials() gin.HandlerFunc {
	return func(c *gin.Context) {
		var missing []string
		if c.GetHeader(HeaderAPIKey) == "" {
			missing = append(missing, HeaderAPIKey)
		}
		if c.GetHeader(HeaderToken) == "" {
			missing = append(missing, HeaderToken)
		}
		if len(missing) > 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":          "missing credentials",
				"missingHeaders": missing,
			})
			return
		}
		c.Next()
	}
}
