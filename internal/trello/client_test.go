package trello

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/primrose-mcp/primrose-mcp-trello/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient spins up a fake Trello server and a client pointed at it.
// The handler receives every request; tests record what they need from it.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger, _ := logging.NewTestLogger()
	return NewClient(
		Credentials{Key: "test-key", Token: "test-token"},
		WithBaseURL(srv.URL),
		WithLogger(logger),
	)
}

func TestCredentialsAppendedToEveryRequest(t *testing.T) {
	var query url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`{"id":"b1","name":"Board"}`))
	})

	_, err := client.GetBoard(context.Background(), "b1")
	require.NoError(t, err)

	assert.Equal(t, "test-key", query.Get("key"))
	assert.Equal(t, "test-token", query.Get("token"))
}

func TestClassify401AsAuthenticationError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("invalid token"))
	})

	// Classification is independent of the operation.
	_, err := client.GetCard(context.Background(), "c1")
	var authErr *AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.False(t, IsRetryable(err))

	_, err = client.ListMyBoards(context.Background(), FilterOpen)
	require.ErrorAs(t, err, &authErr)
}

func TestClassify429WithRetryAfter(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "120")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.GetBoard(context.Background(), "b1")
	var rateErr *RateLimitError
	require.ErrorAs(t, err, &rateErr)
	assert.Equal(t, 120*time.Second, rateErr.RetryAfter)
	assert.True(t, IsRetryable(err))
}

func TestClassify429DefaultsToSixtySeconds(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.GetBoard(context.Background(), "b1")
	var rateErr *RateLimitError
	require.ErrorAs(t, err, &rateErr)
	assert.Equal(t, 60*time.Second, rateErr.RetryAfter)
}

func TestClassifyGenericAPIError(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		retryable bool
	}{
		{"not found is not retryable", http.StatusNotFound, false},
		{"bad request is not retryable", http.StatusBadRequest, false},
		{"internal error is retryable", http.StatusInternalServerError, true},
		{"bad gateway is retryable", http.StatusBadGateway, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte("upstream failure"))
			})

			_, err := client.GetBoard(context.Background(), "b1")
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, "upstream failure", apiErr.Body)
			assert.Equal(t, tt.retryable, IsRetryable(err))
		})
	}
}

func TestEmptyBodySuccessIsVoid(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	err := client.DeleteCard(context.Background(), "c1")
	assert.NoError(t, err)
}

func TestNetworkErrorIsNotClassified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	logger, _ := logging.NewTestLogger()
	client := NewClient(Credentials{Key: "k", Token: "t"}, WithBaseURL(srv.URL), WithLogger(logger))

	_, err := client.GetBoard(context.Background(), "b1")
	require.Error(t, err)

	var authErr *AuthenticationError
	var rateErr *RateLimitError
	var apiErr *APIError
	assert.False(t, errors.As(err, &authErr))
	assert.False(t, errors.As(err, &rateErr))
	assert.False(t, errors.As(err, &apiErr))
	assert.False(t, IsRetryable(err))
}

func TestListMyBoardsDefaultsToOpenFilter(t *testing.T) {
	var query url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`[]`))
	})

	_, err := client.ListMyBoards(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "open", query.Get("filter"))

	_, err = client.ListMyBoards(context.Background(), FilterAll)
	require.NoError(t, err)
	assert.Equal(t, "all", query.Get("filter"))
}

func TestInvalidFilterRejectedBeforeAnyRequest(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.Write([]byte(`[]`))
	})

	_, err := client.ListMyBoards(context.Background(), Filter("archived"))
	require.Error(t, err)
	assert.False(t, called, "invalid filter must not reach the server")
}

func TestActionLimitBounds(t *testing.T) {
	tests := []struct {
		name    string
		limit   int
		wantErr bool
	}{
		{"zero uses server default", 0, false},
		{"lower bound", 1, false},
		{"upper bound", 1000, false},
		{"too large", 1001, true},
		{"negative", -5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`[]`))
			})
			_, err := client.GetBoardActions(context.Background(), "b1", tt.limit)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSearchMembersLimitBounds(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	_, err := client.SearchMembers(context.Background(), "alice", 20)
	assert.NoError(t, err)

	_, err = client.SearchMembers(context.Background(), "alice", 21)
	assert.Error(t, err)
}

func TestArchiveCardSetsClosedFlag(t *testing.T) {
	var method string
	var query url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		query = r.URL.Query()
		w.Write([]byte(`{"id":"c1","name":"Card","closed":true}`))
	})

	card, err := client.ArchiveCard(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "true", query.Get("closed"))
	assert.True(t, card.Closed)

	_, err = client.UnarchiveCard(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "false", query.Get("closed"))
}

func TestMoveCardSetsDestination(t *testing.T) {
	var query url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`{"id":"c1","name":"Card"}`))
	})

	_, err := client.MoveCard(context.Background(), "c1", "l2", "b2", "top")
	require.NoError(t, err)
	assert.Equal(t, "l2", query.Get("idList"))
	assert.Equal(t, "b2", query.Get("idBoard"))
	assert.Equal(t, "top", query.Get("pos"))

	// Same-board move omits idBoard entirely.
	_, err = client.MoveCard(context.Background(), "c1", "l3", "", "")
	require.NoError(t, err)
	assert.Equal(t, "l3", query.Get("idList"))
	_, present := query["idBoard"]
	assert.False(t, present)
}
