package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNoTransport is returned when no transport-trust configuration is available.
var ErrNoTransport = errors.New("no transport available")

// Doer sends HTTP requests; *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Attempt is a ready-to-use client for one trust configuration.
type Attempt struct {
	Name   string
	Client Doer
}

// Result is a completed exchange with its body fully read.
type Result struct {
	Transport  string
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports whether the upstream answered with a 2xx status.
func (r Result) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Observer is called after every attempt with the transport name, latency and outcome.
type Observer func(transport string, duration time.Duration, err error)

// Do sends the request built by newRequest over each attempt in order and returns the first
// exchange that completes, whatever its HTTP status. Connection, TLS and body read failures move on
// to the next attempt; the last such error is returned when every attempt fails.
func Do(ctx context.Context, attempts []Attempt, newRequest func(context.Context) (*http.Request, error), observe Observer) (Result, error) {
	if len(attempts) == 0 {
		return Result{}, ErrNoTransport
	}

	var lastErr error
	for _, attempt := range attempts {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		req, err := newRequest(ctx)
		if err != nil {
			return Result{}, fmt.Errorf("build request: %w", err)
		}

		start := time.Now()
		res, err := exchange(attempt, req)
		if observe != nil {
			observe(attempt.Name, time.Since(start), err)
		}
		if err != nil {
			lastErr = err
			continue
		}
		return res, nil
	}
	return Result{}, lastErr
}

func exchange(attempt Attempt, req *http.Request) (Result, error) {
	resp, err := attempt.Client.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("read body: %w", err)
	}
	return Result{
		Transport:  attempt.Name,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}
