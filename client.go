package saleorload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// DefaultEndpoint is the Saleor GraphQL endpoint used when none is given.
const DefaultEndpoint = "http://localhost:8000/graphql/"

// uploadTimeout bounds multipart uploads, which move real file content and
// need far longer than an ordinary query round trip.
const uploadTimeout = 90 * time.Second

// Response is a decoded GraphQL response envelope. The data and errors
// members are kept verbatim so callers can inspect operation specific error
// lists with CheckErrors.
type Response map[string]interface{}

// Client is a low level client for a Saleor GraphQL endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client

	// Log is called with various debug information.
	// To log to standard out, use:
	//  client.Log = func(s string) { log.Println(s) }
	Log func(s string)
}

// NewClient makes a new Client capable of making GraphQL requests.
// An empty endpoint falls back to DefaultEndpoint.
func NewClient(endpoint string, opts ...ClientOption) *Client {
	c := &Client{
		endpoint: endpoint,
		Log:      func(string) {},
	}
	if c.endpoint == "" {
		c.endpoint = DefaultEndpoint
	}
	for _, optionFunc := range opts {
		optionFunc(c)
	}
	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}
	return c
}

// WithHTTPClient specifies the underlying http.Client to use when
// making requests.
//
//	NewClient(endpoint, WithHTTPClient(specificHTTPClient))
func WithHTTPClient(httpclient *http.Client) ClientOption {
	return func(client *Client) {
		client.httpClient = httpclient
	}
}

// ClientOption are functions that are passed into NewClient to
// modify the behaviour of the Client.
type ClientOption func(*Client)

func (c *Client) logf(format string, args ...interface{}) {
	c.Log(fmt.Sprintf(format, args...))
}

// Run executes the request and returns the decoded response envelope.
// Requests carrying files are sent as multipart/form-data following the
// GraphQL multipart request spec; everything else goes as a JSON POST.
//
// On HTTP 200 the envelope is returned verbatim: checking it for operation
// specific errors is the caller's job (see CheckErrors). Any other status
// comes back as a *TransportError.
func (c *Client) Run(ctx context.Context, req *Request) (Response, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	if len(req.files) > 0 {
		return c.runUpload(ctx, req)
	}
	return c.runJSON(ctx, req)
}

func (c *Client) runJSON(ctx context.Context, req *Request) (Response, error) {
	var requestBody bytes.Buffer
	requestBodyObj := struct {
		Query     string                 `json:"query"`
		Variables map[string]interface{} `json:"variables"`
	}{
		Query:     req.q,
		Variables: req.vars,
	}
	if err := json.NewEncoder(&requestBody).Encode(requestBodyObj); err != nil {
		return nil, errors.Wrap(err, "encode body")
	}
	c.logf(">> variables: %v", req.vars)
	c.logf(">> query: %s", req.q)
	r, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &requestBody)
	if err != nil {
		return nil, err
	}
	r.Header.Set("Content-Type", "application/json; charset=utf-8")
	r.Header.Set("Accept", "application/json; charset=utf-8")
	mergeHeaders(r.Header, req.Header)
	return c.do(r)
}

func (c *Client) runUpload(ctx context.Context, req *Request) (Response, error) {
	operations, err := req.operationsJSON()
	if err != nil {
		return nil, errors.Wrap(err, "encode operations")
	}
	fileMap, err := req.fileMap()
	if err != nil {
		return nil, errors.Wrap(err, "encode file map")
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("operations", string(operations)); err != nil {
		return nil, errors.Wrap(err, "write operations field")
	}
	if err := writer.WriteField("map", string(fileMap)); err != nil {
		return nil, errors.Wrap(err, "write map field")
	}
	for i, f := range req.files {
		part, err := writer.CreatePart(filePartHeader(i, f))
		if err != nil {
			return nil, errors.Wrap(err, "create form file")
		}
		if _, err := io.Copy(part, f.R); err != nil {
			return nil, errors.Wrap(err, "preparing file")
		}
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "close writer")
	}

	c.logf(">> operations: %s", operations)
	c.logf(">> map: %s", fileMap)
	c.logf(">> files: %d", len(req.files))

	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	r, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return nil, err
	}
	r.Header.Set("Content-Type", writer.FormDataContentType())
	r.Header.Set("Accept", "application/json; charset=utf-8")
	mergeHeaders(r.Header, req.Header)
	return c.do(r)
}

func (c *Client) do(r *http.Request) (Response, error) {
	c.logf(">> headers: %v", r.Header)
	res, err := c.httpClient.Do(r)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, res.Body); err != nil {
		return nil, errors.Wrap(err, "reading body")
	}
	c.logf("<< %s", buf.String())

	// The body is decoded regardless of status: failure bodies usually carry
	// an errors list worth surfacing.
	var envelope Response
	decodeErr := json.Unmarshal(buf.Bytes(), &envelope)
	if res.StatusCode != http.StatusOK {
		return nil, newTransportError(res.StatusCode, envelope)
	}
	if decodeErr != nil {
		return nil, errors.Wrap(decodeErr, "decoding response")
	}
	return envelope, nil
}

// filePartHeader builds the MIME header for an indexed file part, keeping the
// guessed content type (CreateFormFile would force octet-stream).
func filePartHeader(index int, f File) textproto.MIMEHeader {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, strconv.Itoa(index), f.Name))
	if f.ContentType != "" {
		h.Set("Content-Type", f.ContentType)
	}
	return h
}

// mergeHeaders lays src over dst key by key, src values winning.
func mergeHeaders(dst, src http.Header) {
	for key, values := range src {
		dst.Del(key)
		for _, value := range values {
			dst.Add(key, value)
		}
	}
}
