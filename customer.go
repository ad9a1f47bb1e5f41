package saleorload

import "context"

const customerCreateMutation = `
mutation customerCreate($input: UserCreateInput!) {
    customerCreate(input: $input) {
        user {
            id
        }
        accountErrors {
            field
            message
            code
        }
    }
}`

const customerDeleteMutation = `
mutation customerDelete($id: ID!) {
    customerDelete(id: $id) {
        user {
            id
        }
        accountErrors {
            field
            message
            code
        }
    }
}`

const customerByEmailQuery = `
query customerByEmail($email: String!) {
    customers(first: 1, filter: { search: $email }) {
        edges {
            node {
                id
            }
        }
    }
}`

// CreateCustomerAccount creates a customer as an admin and returns the user
// id. overrides are merged over the default UserCreateInput fields.
func (l *Loader) CreateCustomerAccount(ctx context.Context, overrides map[string]interface{}) (string, error) {
	input := map[string]interface{}{
		"firstName": "default",
		"lastName":  "default",
		"email":     "default@default.com",
		"isActive":  false,
	}
	l.override(input, overrides)

	return l.mutateID(ctx, customerCreateMutation,
		map[string]interface{}{"input": input},
		[]string{"data", "customerCreate", "accountErrors"},
		"data", "customerCreate", "user", "id")
}

// FindCustomerByEmail returns the id of the customer matching email, or an
// empty string when there is no single match.
func (l *Loader) FindCustomerByEmail(ctx context.Context, email string) (string, error) {
	resp, err := l.runChecked(ctx, customerByEmailQuery,
		map[string]interface{}{"email": email},
		"data", "customers")
	if err != nil {
		return "", err
	}
	edges, _ := dig(resp, "data", "customers", "edges").([]interface{})
	if len(edges) != 1 {
		return "", nil
	}
	edge, _ := edges[0].(map[string]interface{})
	id, _ := dig(edge, "node", "id").(string)
	return id, nil
}

// DeleteCustomerAccount deletes a customer as an admin and returns the
// deleted user id.
func (l *Loader) DeleteCustomerAccount(ctx context.Context, customerID string) (string, error) {
	return l.mutateID(ctx, customerDeleteMutation,
		map[string]interface{}{"id": customerID},
		[]string{"data", "customerDelete", "accountErrors"},
		"data", "customerDelete", "user", "id")
}
