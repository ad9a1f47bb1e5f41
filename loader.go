package saleorload

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// Loader wraps the Saleor GraphQL API with one method per operation. The
// authorization header is set once by SetToken or Authenticate and read by
// every subsequent call.
type Loader struct {
	client *Client
	header http.Header

	// Log is called with various debug information, including the shallow
	// merge warnings emitted when overrides replace a nested map.
	Log func(s string)
}

// LoaderOption are functions that are passed into NewLoader to
// modify the behaviour of the Loader.
type LoaderOption func(*Loader)

// WithToken preloads the bearer token sent on every request. Use
// Authenticate to obtain one from an email and password instead.
func WithToken(token string) LoaderOption {
	return func(l *Loader) {
		if token != "" {
			l.header.Set("Authorization", "Bearer "+token)
		}
	}
}

// WithClient supplies a preconfigured low level Client.
func WithClient(client *Client) LoaderOption {
	return func(l *Loader) {
		l.client = client
	}
}

// WithLog sets the debug log hook.
func WithLog(logf func(s string)) LoaderOption {
	return func(l *Loader) {
		l.Log = logf
	}
}

// NewLoader makes a Loader talking to the given endpoint. An empty endpoint
// falls back to DefaultEndpoint.
func NewLoader(endpoint string, opts ...LoaderOption) *Loader {
	l := &Loader{
		header: make(http.Header),
		Log:    func(string) {},
	}
	for _, optionFunc := range opts {
		optionFunc(l)
	}
	if l.client == nil {
		client := NewClient(endpoint)
		client.Log = func(s string) { l.Log(s) }
		l.client = client
	}
	return l
}

func (l *Loader) logf(format string, args ...interface{}) {
	l.Log(fmt.Sprintf(format, args...))
}

// SetToken stores the bearer token sent on every subsequent request.
func (l *Loader) SetToken(token string) error {
	if token == "" {
		return errors.New("authentication failed - check details are correct")
	}
	l.header.Set("Authorization", "Bearer "+token)
	return nil
}

const tokenCreateMutation = `
mutation createToken($email: String!, $password: String!) {
    tokenCreate(email: $email, password: $password) {
        token
    }
}`

// Authenticate exchanges the email and password for a bearer token and stores
// it for every subsequent call.
func (l *Loader) Authenticate(ctx context.Context, email, password string) error {
	resp, err := l.run(ctx, tokenCreateMutation, map[string]interface{}{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return err
	}
	if err := CheckErrors(resp); err != nil {
		return err
	}
	token, _ := dig(resp, "data", "tokenCreate", "token").(string)
	return l.SetToken(token)
}

// run executes one operation with the stored authorization header. The
// returned envelope has not been checked for reported errors yet.
func (l *Loader) run(ctx context.Context, query string, vars map[string]interface{}) (Response, error) {
	req := NewRequest(query)
	for key, value := range vars {
		req.Var(key, value)
	}
	mergeHeaders(req.Header, l.header)
	return l.client.Run(ctx, req)
}

// runChecked executes one operation and checks the response against errsPath
// before handing it back, so no payload is ever surfaced unexamined.
func (l *Loader) runChecked(ctx context.Context, query string, vars map[string]interface{}, errsPath ...string) (Response, error) {
	resp, err := l.run(ctx, query, vars)
	if err != nil {
		return nil, err
	}
	if err := CheckErrors(resp, errsPath...); err != nil {
		return nil, err
	}
	return resp, nil
}

// mutateID runs a mutation whose payload carries a single object id at
// idPath, checking errsPath for operation specific errors first.
func (l *Loader) mutateID(ctx context.Context, query string, vars map[string]interface{}, errsPath []string, idPath ...string) (string, error) {
	resp, err := l.runChecked(ctx, query, vars, errsPath...)
	if err != nil {
		return "", err
	}
	id, ok := dig(resp, idPath...).(string)
	if !ok {
		return "", errors.Errorf("missing %s in response", strings.Join(idPath, "."))
	}
	return id, nil
}

func (l *Loader) override(base, overrides map[string]interface{}) {
	Override(base, overrides, l.logf)
}
