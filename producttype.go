package saleorload

import "context"

const productTypeCreateMutation = `
mutation createProductType($input: ProductTypeInput!) {
    productTypeCreate(input: $input) {
        productType {
            id
        }
        productErrors {
            field
            message
            code
        }
    }
}`

const productTypesQuery = `
query FetchAllProductTypes($after: String) {
    productTypes(filter: {kind: NORMAL}, first: 10, after: $after) {
        pageInfo {
            hasNextPage
            endCursor
        }
        edges {
            node {
                id
                name
                slug
                productAttributes {
                    id
                    name
                    slug
                }
                variantAttributes {
                    id
                    name
                    slug
                }
            }
        }
    }
}`

// CreateProductType creates a product type and returns its id. overrides are
// merged over the default ProductTypeInput fields.
func (l *Loader) CreateProductType(ctx context.Context, overrides map[string]interface{}) (string, error) {
	input := map[string]interface{}{
		"name":              "default",
		"hasVariants":       false,
		"productAttributes": []interface{}{},
		"variantAttributes": []interface{}{},
		"isDigital":         false,
	}
	l.override(input, overrides)

	return l.mutateID(ctx, productTypeCreateMutation,
		map[string]interface{}{"input": input},
		[]string{"data", "productTypeCreate", "productErrors"},
		"data", "productTypeCreate", "productType", "id")
}

// FetchProductTypes returns every normal product type with its product and
// variant attributes, walking the connection page by page.
func (l *Loader) FetchProductTypes(ctx context.Context) ([]map[string]interface{}, error) {
	return l.fetchAll(ctx, productTypesQuery, map[string]interface{}{}, "productTypes")
}
