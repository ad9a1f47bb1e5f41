package saleorload

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestVariables(t *testing.T, r *http.Request) map[string]interface{} {
	t.Helper()
	var body struct {
		Variables map[string]interface{} `json:"variables"`
	}
	require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	return body.Variables
}

func TestFetchWarehousesPaginates(t *testing.T) {
	pages := []string{
		`{"data":{"warehouses":{
			"pageInfo":{"hasNextPage":true,"endCursor":"c1"},
			"edges":[{"node":{"id":"w1"}},{"node":{"id":"w2"}}]}}}`,
		`{"data":{"warehouses":{
			"pageInfo":{"hasNextPage":true,"endCursor":"c2"},
			"edges":[{"node":{"id":"w3"}},{"node":{"id":"w4"}}]}}}`,
		`{"data":{"warehouses":{
			"pageInfo":{"hasNextPage":false,"endCursor":"c3"},
			"edges":[{"node":{"id":"w5"}},{"node":{"id":"w6"}}]}}}`,
	}
	cursors := []string{"", "c1", "c2"}

	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Less(t, calls, len(pages))
		vars := requestVariables(t, r)
		assert.Equal(t, cursors[calls], vars["after"])
		_, err := io.WriteString(w, pages[calls])
		require.NoError(t, err)
		calls++
	}))
	defer srv.Close()

	loader := NewLoader(srv.URL)
	warehouses, err := loader.FetchWarehouses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, calls, 3)

	require.Len(t, warehouses, 6)
	for i, warehouse := range warehouses {
		assert.Equal(t, fmt.Sprintf("w%d", i+1), warehouse["id"])
	}
}

func TestFetchProductCategoriesStopsAtEmptyLevel(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vars := requestVariables(t, r)
		level := vars["level"].(float64)
		switch calls {
		case 0:
			assert.Equal(t, 0.0, level)
			assert.Equal(t, "", vars["after"])
			_, _ = io.WriteString(w, `{"data":{"categories":{
				"pageInfo":{"hasNextPage":false,"endCursor":"c1"},
				"edges":[
					{"node":{"id":"c1"}},{"node":{"id":"c2"}},{"node":{"id":"c3"}},
					{"node":{"id":"c4"}},{"node":{"id":"c5"}}],
				"totalCount":5}}}`)
		case 1:
			assert.Equal(t, 1.0, level)
			assert.Equal(t, "", vars["after"])
			_, _ = io.WriteString(w, `{"data":{"categories":{
				"pageInfo":{"hasNextPage":false,"endCursor":""},
				"edges":[],
				"totalCount":0}}}`)
		default:
			t.Error("unexpected extra request")
		}
		calls++
	}))
	defer srv.Close()

	loader := NewLoader(srv.URL)
	categories, err := loader.FetchProductCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, calls, 2)
	require.Len(t, categories, 5)
	assert.Equal(t, "c1", categories[0]["id"])
	assert.Equal(t, "c5", categories[4]["id"])
}

func TestFetchProductCategoriesPagesWithinLevel(t *testing.T) {
	// Level 0 spans two pages; the level only advances once its cursor is
	// exhausted, and the next level starts from an empty cursor again.
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vars := requestVariables(t, r)
		level := vars["level"].(float64)
		switch calls {
		case 0:
			assert.Equal(t, 0.0, level)
			assert.Equal(t, "", vars["after"])
			_, _ = io.WriteString(w, `{"data":{"categories":{
				"pageInfo":{"hasNextPage":true,"endCursor":"cur1"},
				"edges":[{"node":{"id":"root1"}}],
				"totalCount":2}}}`)
		case 1:
			assert.Equal(t, 0.0, level)
			assert.Equal(t, "cur1", vars["after"])
			_, _ = io.WriteString(w, `{"data":{"categories":{
				"pageInfo":{"hasNextPage":false,"endCursor":"cur2"},
				"edges":[{"node":{"id":"root2"}}],
				"totalCount":2}}}`)
		case 2:
			assert.Equal(t, 1.0, level)
			assert.Equal(t, "", vars["after"])
			_, _ = io.WriteString(w, `{"data":{"categories":{
				"pageInfo":{"hasNextPage":false,"endCursor":""},
				"edges":[{"node":{"id":"child1"}}],
				"totalCount":1}}}`)
		case 3:
			assert.Equal(t, 2.0, level)
			_, _ = io.WriteString(w, `{"data":{"categories":{
				"pageInfo":{"hasNextPage":false,"endCursor":""},
				"edges":[],
				"totalCount":0}}}`)
		default:
			t.Error("unexpected extra request")
		}
		calls++
	}))
	defer srv.Close()

	loader := NewLoader(srv.URL)
	categories, err := loader.FetchProductCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, calls, 4)
	require.Len(t, categories, 3)
	assert.Equal(t, "root1", categories[0]["id"])
	assert.Equal(t, "root2", categories[1]["id"])
	assert.Equal(t, "child1", categories[2]["id"])
}

func TestFetchChannels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data":{"channels":[
			{"id":"ch1","name":"Default","slug":"default-channel"},
			{"id":"ch2","name":"EU","slug":"eu"}]}}`)
	}))
	defer srv.Close()

	loader := NewLoader(srv.URL)
	channels, err := loader.FetchChannels(context.Background())
	require.NoError(t, err)
	require.Len(t, channels, 2)
	assert.Equal(t, "ch1", channels[0]["id"])
	assert.Equal(t, "eu", channels[1]["slug"])
}

func TestFetchProductsSearchFilter(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		vars := requestVariables(t, r)
		filter := vars["filter"].(map[string]interface{})
		assert.Equal(t, "mug", filter["search"])
		_, _ = io.WriteString(w, `{"data":{"products":{
			"pageInfo":{"hasNextPage":false,"endCursor":""},
			"edges":[{"node":{"id":"p1","name":"Mug"}}]}}}`)
	}))
	defer srv.Close()

	loader := NewLoader(srv.URL)
	products, err := loader.FetchProducts(context.Background(), "mug")
	require.NoError(t, err)
	assert.Equal(t, calls, 1)
	require.Len(t, products, 1)
	assert.Equal(t, "Mug", products[0]["name"])
}

func TestFetchProductsEmptySearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vars := requestVariables(t, r)
		filter := vars["filter"].(map[string]interface{})
		_, set := filter["search"]
		assert.False(t, set)
		_, _ = io.WriteString(w, `{"data":{"products":{
			"pageInfo":{"hasNextPage":false,"endCursor":""},
			"edges":[]}}}`)
	}))
	defer srv.Close()

	loader := NewLoader(srv.URL)
	products, err := loader.FetchProducts(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestFetchProductVariantNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data":{"productVariant":null}}`)
	}))
	defer srv.Close()

	loader := NewLoader(srv.URL)
	variant, err := loader.FetchProductVariant(context.Background(), "", "missing-sku")
	require.NoError(t, err)
	assert.Nil(t, variant)
}
