package saleorload

import (
	"context"

	"github.com/pkg/errors"
)

const categoryCreateMutation = `
mutation createCategory($input: CategoryInput!, $parent: ID) {
    categoryCreate(input: $input, parent: $parent) {
        category {
            id
        }
        productErrors {
            field
            message
            code
        }
    }
}`

const categoriesQuery = `
query FetchAllProductCategories($level: Int, $after: String) {
    categories(level: $level, first: 10, after: $after) {
        pageInfo {
            hasNextPage
            endCursor
        }
        edges {
            node {
                id
                name
                slug
            }
        }
        totalCount
    }
}`

// CreateCategory creates a product category under parentID (empty for a top
// level category) and returns its id. overrides are merged over the default
// CategoryInput fields.
func (l *Loader) CreateCategory(ctx context.Context, parentID string, overrides map[string]interface{}) (string, error) {
	input := map[string]interface{}{
		"name": "default",
	}
	l.override(input, overrides)

	return l.mutateID(ctx, categoryCreateMutation,
		map[string]interface{}{"input": input, "parent": parentID},
		[]string{"data", "categoryCreate", "productErrors"},
		"data", "categoryCreate", "category", "id")
}

// FetchProductCategories walks the category tree level by level, breadth
// first. Each level is cursor paginated like any other connection; only once
// a level's pages are exhausted does the walk move one level deeper, with a
// fresh empty cursor. It stops at the first level whose totalCount comes back
// zero.
func (l *Loader) FetchProductCategories(ctx context.Context) ([]map[string]interface{}, error) {
	var categories []map[string]interface{}
	level := 0
	vars := map[string]interface{}{"level": level, "after": ""}
	for {
		resp, err := l.runChecked(ctx, categoriesQuery, vars)
		if err != nil {
			return nil, err
		}
		conn, ok := dig(resp, "data", "categories").(map[string]interface{})
		if !ok {
			return nil, errors.New("missing categories connection in response")
		}
		total, _ := conn["totalCount"].(float64)
		if total == 0 {
			return categories, nil
		}
		categories = append(categories, nodes(conn)...)
		pi := pageInfoFrom(conn)
		if pi.hasNextPage {
			vars["after"] = pi.endCursor
			continue
		}
		level++
		vars = map[string]interface{}{"level": level, "after": ""}
	}
}
