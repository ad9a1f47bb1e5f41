package saleorload

import (
	"fmt"
	"strings"
)

// ErrorRecord is one structured error reported by the server.
type ErrorRecord struct {
	Field      string
	Message    string
	Code       string
	Extensions map[string]interface{}
}

// TransportError reports a non-200 HTTP status. When the failure body carried
// a top level errors list its entries are kept in Errors.
type TransportError struct {
	StatusCode int
	Errors     []ErrorRecord
}

func (e *TransportError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("graphql: server returned a non-200 status code: %d", e.StatusCode)
	}
	first := e.Errors[0]
	return fmt.Sprintf("graphql: %s\n extensions: %v", first.Message, first.Extensions)
}

// DomainError reports business rule rejections found inside an otherwise
// successful response, one line per rejection in server order.
type DomainError struct {
	Errors []ErrorRecord
	lines  []string
}

func (e *DomainError) Error() string {
	return strings.Join(e.lines, "\n")
}

// newTransportError builds a TransportError from a failure status and
// whatever envelope the body decoded into (possibly nil).
func newTransportError(status int, resp Response) *TransportError {
	e := &TransportError{StatusCode: status}
	if list, ok := resp["errors"].([]interface{}); ok {
		for _, entry := range list {
			if m, ok := entry.(map[string]interface{}); ok {
				e.Errors = append(e.Errors, recordFrom(m))
			}
		}
	}
	return e
}

// CheckErrors inspects a response envelope for reported errors.
//
// The check is two stage. First the operation specific errorsPath (for
// example "data", "productCreate", "productErrors") is walked one key at a
// time; a missing key or falsy value abandons the walk silently. A resolved
// non-empty list yields one line per entry carrying a field key, formatted
// "<field> : <message>". If that produced nothing, the top level errors list
// is consulted instead (lines are plain messages), falling back to the legacy
// error.errors nesting.
//
// Saleor splits its error surface in two: transport and schema errors appear
// top level, business rule errors inside the mutation's own payload. Callers
// must look in both places, and this routine is that policy in one place.
//
// Reported errors come back as a *DomainError; a nil return means the
// response is clean.
func CheckErrors(resp Response, errorsPath ...string) error {
	domainErr := &DomainError{}

	if len(errorsPath) > 0 {
		if list, ok := dig(resp, errorsPath...).([]interface{}); ok {
			for _, entry := range list {
				m, ok := entry.(map[string]interface{})
				if !ok {
					continue
				}
				if _, ok := m["field"]; !ok {
					continue
				}
				domainErr.Errors = append(domainErr.Errors, recordFrom(m))
				domainErr.lines = append(domainErr.lines,
					fmt.Sprintf("%v : %v", m["field"], m["message"]))
			}
		}
	}

	if len(domainErr.lines) == 0 {
		for _, entry := range topLevelErrors(resp) {
			m, ok := entry.(map[string]interface{})
			if !ok {
				continue
			}
			if _, ok := m["message"]; !ok {
				continue
			}
			domainErr.Errors = append(domainErr.Errors, recordFrom(m))
			domainErr.lines = append(domainErr.lines, fmt.Sprintf("%v", m["message"]))
		}
	}

	if len(domainErr.lines) > 0 {
		return domainErr
	}
	return nil
}

func topLevelErrors(resp Response) []interface{} {
	if list, ok := resp["errors"].([]interface{}); ok {
		return list
	}
	if nested, ok := resp["error"].(map[string]interface{}); ok {
		if list, ok := nested["errors"].([]interface{}); ok {
			return list
		}
	}
	return nil
}

func recordFrom(m map[string]interface{}) ErrorRecord {
	rec := ErrorRecord{}
	if s, ok := m["field"].(string); ok {
		rec.Field = s
	}
	if s, ok := m["message"].(string); ok {
		rec.Message = s
	}
	if s, ok := m["code"].(string); ok {
		rec.Code = s
	}
	if ext, ok := m["extensions"].(map[string]interface{}); ok {
		rec.Extensions = ext
	}
	return rec
}

// dig walks nested maps one key at a time, returning nil as soon as a key is
// missing or holds a falsy value.
func dig(m map[string]interface{}, path ...string) interface{} {
	current := interface{}(m)
	for _, key := range path {
		node, ok := current.(map[string]interface{})
		if !ok {
			return nil
		}
		value, ok := node[key]
		if !ok || !truthy(value) {
			return nil
		}
		current = value
	}
	return current
}

func truthy(v interface{}) bool {
	switch value := v.(type) {
	case nil:
		return false
	case bool:
		return value
	case string:
		return value != ""
	case float64:
		return value != 0
	case []interface{}:
		return len(value) > 0
	case map[string]interface{}:
		return len(value) > 0
	default:
		return true
	}
}
