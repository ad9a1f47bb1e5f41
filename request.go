package saleorload

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
)

// Request is a GraphQL request.
type Request struct {
	q     string
	vars  map[string]interface{}
	files []File

	// Header represent any request headers that will be set
	// when the request is made.
	Header http.Header
}

// NewRequest makes a new Request with the specified string.
func NewRequest(q string) *Request {
	req := &Request{
		q:      q,
		Header: make(map[string][]string),
	}
	return req
}

// Var sets a variable.
func (req *Request) Var(key string, value interface{}) {
	if req.vars == nil {
		req.vars = make(map[string]interface{})
	}
	req.vars[key] = value
}

// Vars gets the variables for this Request.
func (req *Request) Vars() map[string]interface{} {
	return req.vars
}

// Query gets the query string of this request.
func (req *Request) Query() string {
	return req.q
}

// Files gets the files attached to this request.
func (req *Request) Files() []File {
	return req.files
}

// File attaches a file to upload. field is the dotted path of the Upload
// variable the file content binds to, e.g. "variables.image". Attaching a
// file switches the request to multipart/form-data encoding.
func (req *Request) File(field, name, contentType string, r io.Reader) {
	req.files = append(req.files, File{
		Field:       field,
		Name:        name,
		ContentType: contentType,
		R:           r,
	})
}

// File represents a file to upload.
type File struct {
	Field       string
	Name        string
	ContentType string
	R           io.Reader
}

// operationsJSON serializes the operation following
// https://github.com/jaydenseric/graphql-multipart-request-spec.
func (req *Request) operationsJSON() ([]byte, error) {
	operations := struct {
		Query     string                 `json:"query"`
		Variables map[string]interface{} `json:"variables"`
	}{
		Query:     req.q,
		Variables: req.vars,
	}
	return json.Marshal(operations)
}

// fileMap associates every file part index with the variable path it fills,
// e.g. {"0": ["variables.image"]}.
func (req *Request) fileMap() ([]byte, error) {
	m := make(map[string][]string, len(req.files))
	for i, f := range req.files {
		m[strconv.Itoa(i)] = []string{f.Field}
	}
	return json.Marshal(m)
}
