package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/phanxgames/nodegraph"
	"github.com/phanxgames/nodegraph/internal/ctxlog"
)

// DefaultTimeout bounds a fetch when the Fetcher has no client of its own.
const DefaultTimeout = 10 * time.Second

// maxPayload caps how much of a response body is read.
const maxPayload = 16 << 20

// FetchError reports a transport failure or a non-2xx response.
// StatusCode is zero for transport failures.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch graph %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch graph %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Fetcher retrieves a graph payload with a single GET. It never retries.
type Fetcher struct {
	URL    string
	Client *http.Client
}

// NewFetcher returns a Fetcher for url using a client with DefaultTimeout.
func NewFetcher(url string) *Fetcher {
	return &Fetcher{URL: url, Client: &http.Client{Timeout: DefaultTimeout}}
}

// Fetch performs the request. Cancel ctx to abandon it. Transport errors and
// non-2xx statuses are returned as *FetchError; bodies that do not decode as
// *PayloadError.
func (f *Fetcher) Fetch(ctx context.Context) (nodegraph.Graph, error) {
	log := ctxlog.FromContext(ctx)
	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nodegraph.Graph{}, &FetchError{URL: f.URL, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		log.Warn("graph fetch failed", "url", f.URL, "err", err)
		return nodegraph.Graph{}, &FetchError{URL: f.URL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn("graph fetch rejected", "url", f.URL, "status", resp.StatusCode)
		return nodegraph.Graph{}, &FetchError{
			URL:        f.URL,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPayload))
	if err != nil {
		return nodegraph.Graph{}, &FetchError{URL: f.URL, Err: err}
	}
	g, err := decode(data)
	if err != nil {
		return nodegraph.Graph{}, &PayloadError{Source: f.URL, Err: err}
	}
	log.Debug("graph fetched", "url", f.URL, "nodes", len(g.Nodes), "edges", len(g.Edges),
		"elapsed", time.Since(start))
	return g, nil
}
