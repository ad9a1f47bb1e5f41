package saleorload

import "context"

const attributeCreateMutation = `
mutation createAttribute($input: AttributeCreateInput!) {
    attributeCreate(input: $input) {
        attribute {
            id
        }
        attributeErrors {
            field
            message
            code
        }
    }
}`

const attributeValueCreateMutation = `
mutation createAttributeValue($input: AttributeValueCreateInput!, $attribute: ID!) {
    attributeValueCreate(input: $input, attribute: $attribute) {
        attribute {
            id
        }
        productErrors {
            field
            message
            code
        }
    }
}`

const attributeQuery = `
query FetchAttribute($id: ID, $slug: String) {
    attribute(id: $id, slug: $slug) {
        id
        name
        slug
        inputType
    }
}`

// CreateAttribute creates a product attribute and returns its id. overrides
// are merged over the default AttributeCreateInput fields.
func (l *Loader) CreateAttribute(ctx context.Context, overrides map[string]interface{}) (string, error) {
	input := map[string]interface{}{
		"inputType": "DROPDOWN",
		"name":      "default",
		"type":      "PRODUCT_TYPE",
	}
	l.override(input, overrides)

	return l.mutateID(ctx, attributeCreateMutation,
		map[string]interface{}{"input": input},
		[]string{"data", "attributeCreate", "attributeErrors"},
		"data", "attributeCreate", "attribute", "id")
}

// CreateAttributeValue adds a value to an attribute and returns the attribute
// id. overrides are merged over the default AttributeValueCreateInput fields.
func (l *Loader) CreateAttributeValue(ctx context.Context, attributeID string, overrides map[string]interface{}) (string, error) {
	input := map[string]interface{}{
		"name": "default",
	}
	l.override(input, overrides)

	return l.mutateID(ctx, attributeValueCreateMutation,
		map[string]interface{}{"attribute": attributeID, "input": input},
		[]string{"data", "attributeValueCreate", "productErrors"},
		"data", "attributeValueCreate", "attribute", "id")
}

// FetchAttribute looks an attribute up by id or slug, returning nil when the
// server has no match.
func (l *Loader) FetchAttribute(ctx context.Context, id, slug string) (map[string]interface{}, error) {
	resp, err := l.runChecked(ctx, attributeQuery,
		map[string]interface{}{"id": id, "slug": slug})
	if err != nil {
		return nil, err
	}
	attribute, _ := dig(resp, "data", "attribute").(map[string]interface{})
	return attribute, nil
}
