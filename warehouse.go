package saleorload

import "context"

const warehouseCreateMutation = `
mutation createWarehouse($input: WarehouseCreateInput!) {
    createWarehouse(input: $input) {
        warehouse {
            id
        }
        warehouseErrors {
            field
            message
            code
        }
    }
}`

const warehousesQuery = `
query FetchAllWarehouses($after: String) {
    warehouses(first: 10, after: $after) {
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
    }
}`

// CreateWarehouse creates a warehouse and returns its id. overrides are
// merged over the default WarehouseCreateInput fields.
func (l *Loader) CreateWarehouse(ctx context.Context, overrides map[string]interface{}) (string, error) {
	input := map[string]interface{}{
		"email": "fake@example.com",
		"name":  "Fake Warehouse",
		"address": map[string]interface{}{
			"companyName":    "The Fake Company",
			"streetAddress1": "A Fake Street Address",
			"city":           "Fake City",
			"postalCode":     "1024",
			"country":        "CH",
		},
	}
	l.override(input, overrides)

	return l.mutateID(ctx, warehouseCreateMutation,
		map[string]interface{}{"input": input},
		[]string{"data", "createWarehouse", "warehouseErrors"},
		"data", "createWarehouse", "warehouse", "id")
}

// FetchWarehouses returns every warehouse, walking the cursor paginated
// connection page by page.
func (l *Loader) FetchWarehouses(ctx context.Context) ([]map[string]interface{}, error) {
	return l.fetchAll(ctx, warehousesQuery, map[string]interface{}{}, "warehouses")
}
