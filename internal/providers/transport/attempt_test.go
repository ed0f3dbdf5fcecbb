package transport

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func clientFunc(fn roundTripperFunc) *http.Client {
	return &http.Client{Transport: fn}
}

func respond(status int, body string) roundTripperFunc {
	return func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: status,
			Header:     http.Header{"Content-Type": []string{"application/json"}},
			Body:       io.NopCloser(strings.NewReader(body)),
		}, nil
	}
}

func failing(err error) roundTripperFunc {
	return func(*http.Request) (*http.Response, error) { return nil, err }
}

func getRequest(ctx context.Context) (*http.Request, error) {
	return http.NewRequestWithContext(ctx, http.MethodGet, "https://upstream.test/scoreboard", nil)
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestDoFallsThroughConnectionErrors(t *testing.T) {
	var observed []string
	attempts := []Attempt{
		{Name: "a", Client: clientFunc(failing(errors.New("x509: unknown authority")))},
		{Name: "b", Client: clientFunc(respond(http.StatusOK, `{"ok":true}`))},
		{Name: "c", Client: clientFunc(failing(errors.New("must not be reached")))},
	}

	res, err := Do(context.Background(), attempts, getRequest, func(name string, _ time.Duration, err error) {
		observed = append(observed, name)
	})

	require.NoError(t, err)
	assert.Equal(t, "b", res.Transport)
	assert.True(t, res.OK())
	assert.Equal(t, `{"ok":true}`, string(res.Body))
	assert.Equal(t, "application/json", res.Header.Get("Content-Type"))
	assert.Equal(t, []string{"a", "b"}, observed)
}

func TestDoDoesNotRetryHTTPErrorStatus(t *testing.T) {
	calls := 0
	attempts := []Attempt{
		{Name: "a", Client: clientFunc(func(r *http.Request) (*http.Response, error) {
			calls++
			return respond(http.StatusServiceUnavailable, "down")(r)
		})},
		{Name: "b", Client: clientFunc(func(r *http.Request) (*http.Response, error) {
			calls++
			return respond(http.StatusOK, "{}")(r)
		})},
	}

	res, err := Do(context.Background(), attempts, getRequest, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.False(t, res.OK())
	assert.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
}

func TestDoTreatsBodyReadFailureAsTransportError(t *testing.T) {
	attempts := []Attempt{
		{Name: "a", Client: clientFunc(func(*http.Request) (*http.Response, error) {
			return &http.Response{StatusCode: http.StatusOK, Header: http.Header{}, Body: io.NopCloser(errReader{})}, nil
		})},
		{Name: "b", Client: clientFunc(respond(http.StatusOK, "[]"))},
	}

	res, err := Do(context.Background(), attempts, getRequest, nil)

	require.NoError(t, err)
	assert.Equal(t, "b", res.Transport)
}

func TestDoReturnsLastErrorWhenAllFail(t *testing.T) {
	attempts := []Attempt{
		{Name: "a", Client: clientFunc(failing(errors.New("first")))},
		{Name: "b", Client: clientFunc(failing(errors.New("second")))},
	}

	_, err := Do(context.Background(), attempts, getRequest, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "second")
}

func TestDoWithoutAttempts(t *testing.T) {
	_, err := Do(context.Background(), nil, getRequest, nil)
	assert.ErrorIs(t, err, ErrNoTransport)
}

func TestDoStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	attempts := []Attempt{{Name: "a", Client: clientFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		return respond(http.StatusOK, "{}")(r)
	})}}

	_, err := Do(ctx, attempts, getRequest, nil)

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestDoPropagatesRequestBuildErrors(t *testing.T) {
	attempts := []Attempt{{Name: "a", Client: clientFunc(respond(http.StatusOK, "{}"))}}
	_, err := Do(context.Background(), attempts, func(context.Context) (*http.Request, error) {
		return nil, errors.New("bad url")
	}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "build request")
}
