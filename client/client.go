package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/Draketheb4dass/reaction-admin/config"
)

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data,omitempty"`
	Errors []GraphQLError  `json:"errors,omitempty"`
}

// Client talks to the remote commerce GraphQL API. It does not cache and does
// not mutate local state; callers refetch to observe the effects of mutations.
type Client struct {
	config     config.CommerceAPIConfig
	httpClient *http.Client
}

func NewClient(cfg config.CommerceAPIConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{config: cfg, httpClient: httpClient}
}

// Do executes one GraphQL operation. The response data object is decoded into
// out (pass nil to discard). Remote errors are folded into the returned error;
// throttle and transient HTTP failures are retried with backoff.
func (c *Client) Do(ctx context.Context, query string, variables map[string]any, out any) error {
	if c.config.Endpoint == "" {
		return errors.New("commerce api endpoint is not configured")
	}

	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return err
	}

	var resp graphQLResponse
	for attempt := 0; ; attempt++ {
		resp = graphQLResponse{}
		err = c.post(ctx, body, &resp)
		retryable := err != nil && isRetryableHTTPError(err)
		if err == nil && isThrottleGraphQLError(resp.Errors) {
			retryable = true
			err = graphQLErrorsToError(resp.Errors)
		}
		if !retryable || attempt >= graphqlRetryMax {
			break
		}
		if serr := sleepWithContext(ctx, retryDelay(attempt)); serr != nil {
			return serr
		}
	}
	if err != nil {
		return err
	}
	if len(resp.Errors) > 0 {
		return graphQLErrorsToError(resp.Errors)
	}

	if out == nil || len(resp.Data) == 0 {
		return nil
	}
	return decodeData(resp.Data, out)
}

func (c *Client) post(ctx context.Context, body []byte, resp *graphQLResponse) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.config.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.Token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	respBody, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return newHTTPStatusError(res.StatusCode, res.Status, respBody)
	}
	return json.Unmarshal(respBody, resp)
}

// decodeData unmarshals the GraphQL data object into a generic map first and
// then decodes through mapstructure, so model structs keep their dual
// json/mapstructure tags working for both wire and cache paths.
func decodeData(raw json.RawMessage, out any) error {
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return fmt.Errorf("decode graphql data: %w", err)
	}
	cfg := &mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	}
	dec, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}
	if err := dec.Decode(m); err != nil {
		return fmt.Errorf("decode graphql data: %w", err)
	}
	return nil
}
