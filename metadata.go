package saleorload

import "context"

const updateMetadataMutation = `
mutation updateMetadata($id: ID!, $input: [MetadataInput!]!) {
    updateMetadata(id: $id, input: $input) {
        item {
            metadata {
                key
                value
            }
        }
        metadataErrors {
            field
            message
            code
        }
    }
}`

const updatePrivateMetadataMutation = `
mutation updatePrivateMetadata($id: ID!, $input: [MetadataInput!]!) {
    updatePrivateMetadata(id: $id, input: $input) {
        item {
            privateMetadata {
                key
                value
            }
        }
        metadataErrors {
            field
            message
            code
        }
    }
}`

// UpdatePublicMetadata sets public metadata entries on any item that carries
// metadata. It reports whether the server confirmed metadata on the item.
// Each input entry follows the MetadataInput GraphQL type.
func (l *Loader) UpdatePublicMetadata(ctx context.Context, itemID string, input []map[string]interface{}) (bool, error) {
	resp, err := l.runChecked(ctx, updateMetadataMutation,
		map[string]interface{}{"id": itemID, "input": input},
		"data", "updateMetadata", "metadataErrors")
	if err != nil {
		return false, err
	}
	entries, ok := dig(resp, "data", "updateMetadata", "item", "metadata").([]interface{})
	return ok && len(entries) > 0, nil
}

// UpdatePrivateMetadata sets private metadata entries on any item that
// carries metadata. It reports whether the server confirmed private metadata
// on the item. Each input entry follows the MetadataInput GraphQL type.
func (l *Loader) UpdatePrivateMetadata(ctx context.Context, itemID string, input []map[string]interface{}) (bool, error) {
	resp, err := l.runChecked(ctx, updatePrivateMetadataMutation,
		map[string]interface{}{"id": itemID, "input": input},
		"data", "updatePrivateMetadata", "metadataErrors")
	if err != nil {
		return false, err
	}
	entries, ok := dig(resp, "data", "updatePrivateMetadata", "item", "privateMetadata").([]interface{})
	return ok && len(entries) > 0, nil
}
