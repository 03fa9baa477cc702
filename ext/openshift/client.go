package openshift

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"

	"github.com/odpf/shelflife/core/shelflife"
	"github.com/odpf/shelflife/internal/errors"
	"github.com/odpf/shelflife/internal/telemetry"
)

const (
	metricClusterRequests = "shelflife_cluster_requests_total"

	projectPathFormat = "https://%s/apis/project.openshift.io/v1/projects/%s"
)

// ResponseError is returned when the cluster answers with anything but 200
type ResponseError struct {
	URL        string
	StatusCode int
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("could not run API call. Call: %s, Code: %d", e.URL, e.StatusCode)
}

type Client struct {
	httpClient *http.Client
}

// NewClient initializes client for the cluster API, a nil httpClient falls back to http.DefaultClient
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{httpClient: httpClient}
}

// NewHTTPClient builds a traced http client for the cluster API
func NewHTTPClient(timeout time.Duration, insecureSkipVerify bool) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if insecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(transport),
	}
}

// Fetch runs a single authenticated GET and decodes the JSON body into out
func (c *Client) Fetch(ctx context.Context, url, token string, out interface{}) error {
	body, err := c.FetchRaw(ctx, url, token)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Decode(shelflife.EntityCluster, fmt.Sprintf("invalid response body from [%s]", url), err)
	}
	return nil
}

// FetchRaw runs a single authenticated GET and returns the body untouched
func (c *Client) FetchRaw(ctx context.Context, url, token string) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, errors.Transport(shelflife.EntityCluster, "error encountered when constructing request", err)
	}
	(&oauth2.Token{AccessToken: token}).SetAuthHeader(request)
	request.Header.Set("Accept", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		countRequest("error")
		return nil, errors.Transport(shelflife.EntityCluster, "error encountered when sending request", err)
	}
	defer response.Body.Close()

	countRequest(strconv.Itoa(response.StatusCode))
	if response.StatusCode != http.StatusOK {
		return nil, errors.Transport(shelflife.EntityCluster, "unexpected status response", &ResponseError{
			URL:        url,
			StatusCode: response.StatusCode,
		})
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, errors.Transport(shelflife.EntityCluster, "error reading response body", err)
	}
	return body, nil
}

// ProjectURL returns the project resource for the namespace
func ProjectURL(host, namespace string) string {
	return fmt.Sprintf(projectPathFormat, shelflife.HostName(host), namespace)
}

func countRequest(status string) {
	telemetry.NewCounter(metricClusterRequests, map[string]string{"status": status}).Inc()
}
