package saleorload

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseResponse(t *testing.T, body string) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	return resp
}

func TestCheckErrorsPathErrors(t *testing.T) {
	resp := parseResponse(t, `{
		"data": {
			"productCreate": {
				"product": null,
				"productErrors": [
					{"field": "name", "message": "required", "code": "REQUIRED"},
					{"field": "slug", "message": "invalid slug", "code": "INVALID"}
				]
			}
		}
	}`)

	err := CheckErrors(resp, "data", "productCreate", "productErrors")
	require.Error(t, err)
	assert.Equal(t, "name : required\nslug : invalid slug", err.Error())

	var domainErr *DomainError
	require.True(t, errors.As(err, &domainErr))
	require.Len(t, domainErr.Errors, 2)
	assert.Equal(t, "name", domainErr.Errors[0].Field)
	assert.Equal(t, "REQUIRED", domainErr.Errors[0].Code)
}

func TestCheckErrorsPathEntriesWithoutField(t *testing.T) {
	// Path entries without a field key are skipped entirely; with nothing
	// left the top level list takes over.
	resp := parseResponse(t, `{
		"data": {
			"productCreate": {
				"productErrors": [{"message": "no field here"}]
			}
		},
		"errors": [{"message": "top level failure"}]
	}`)

	err := CheckErrors(resp, "data", "productCreate", "productErrors")
	require.Error(t, err)
	assert.Equal(t, "top level failure", err.Error())
}

func TestCheckErrorsTopLevel(t *testing.T) {
	resp := parseResponse(t, `{
		"errors": [
			{"message": "first"},
			{"message": "second"}
		]
	}`)

	err := CheckErrors(resp)
	require.Error(t, err)
	assert.Equal(t, "first\nsecond", err.Error())
}

func TestCheckErrorsLegacyNesting(t *testing.T) {
	resp := parseResponse(t, `{
		"error": {
			"errors": [{"message": "legacy failure"}]
		}
	}`)

	err := CheckErrors(resp)
	require.Error(t, err)
	assert.Equal(t, "legacy failure", err.Error())
}

func TestCheckErrorsAbsentPathIsSilent(t *testing.T) {
	resp := parseResponse(t, `{
		"data": {
			"productCreate": {
				"product": {"id": "UHJvZHVjdDox"}
			}
		}
	}`)

	assert.NoError(t, CheckErrors(resp, "data", "productCreate", "productErrors"))
}

func TestCheckErrorsEmptyPathList(t *testing.T) {
	resp := parseResponse(t, `{
		"data": {
			"productCreate": {
				"product": {"id": "UHJvZHVjdDox"},
				"productErrors": []
			}
		}
	}`)

	assert.NoError(t, CheckErrors(resp, "data", "productCreate", "productErrors"))
}

func TestCheckErrorsPathThroughNonList(t *testing.T) {
	// The customers lookup points its path at the connection itself; a non
	// list value yields nothing and must not raise on its own.
	resp := parseResponse(t, `{
		"data": {
			"customers": {"edges": []}
		}
	}`)

	assert.NoError(t, CheckErrors(resp, "data", "customers"))
}

func TestCheckErrorsClean(t *testing.T) {
	resp := parseResponse(t, `{"data": {"channels": []}}`)
	assert.NoError(t, CheckErrors(resp))
}

func TestDigAbandonsFalsyValues(t *testing.T) {
	resp := parseResponse(t, `{
		"data": {
			"tokenCreate": {"token": ""}
		}
	}`)

	assert.Nil(t, dig(resp, "data", "tokenCreate", "token"))
	assert.Nil(t, dig(resp, "data", "missing"))
	assert.NotNil(t, dig(resp, "data", "tokenCreate"))
}
