package saleorload

import (
	"context"
	"mime"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const productCreateMutation = `
mutation createProduct($input: ProductCreateInput!) {
    productCreate(input: $input) {
        product {
            id
        }
        productErrors {
            field
            message
            code
        }
    }
}`

const productUpdateMutation = `
mutation updateProduct($id: ID!, $input: ProductInput!) {
    productUpdate(id: $id, input: $input) {
        product {
            id
        }
        productErrors {
            field
            message
            code
        }
    }
}`

const productVariantCreateMutation = `
mutation createProductVariant($input: ProductVariantCreateInput!) {
    productVariantCreate(input: $input) {
        productVariant {
            id
        }
        productErrors {
            field
            message
            code
        }
    }
}`

const productChannelListingUpdateMutation = `
mutation updateProductChannelListings($id: ID!, $input: ProductChannelListingUpdateInput!) {
    productChannelListingUpdate(id: $id, input: $input) {
        product {
            id
        }
        productChannelListingErrors {
            field
            message
            code
        }
    }
}`

const productVariantChannelListingUpdateMutation = `
mutation updateProductVariantChannelListings($id: ID!, $input: [ProductVariantChannelListingAddInput!]!) {
    productVariantChannelListingUpdate(id: $id, input: $input) {
        variant {
            id
        }
        productChannelListingErrors {
            field
            message
            code
        }
    }
}`

const productVariantStocksUpdateMutation = `
mutation updateProductVariantStocks($variantId: ID!, $stocks: [StockInput!]!) {
    productVariantStocksUpdate(variantId: $variantId, stocks: $stocks) {
        productVariant {
            id
        }
        bulkStockErrors {
            field
            message
            code
        }
    }
}`

const productMediaCreateMutation = `
mutation ProductMediaCreate($product: ID!, $image: Upload!, $alt: String) {
    productMediaCreate(input: {alt: $alt, image: $image, product: $product}) {
        media {
            id
        }
        productErrors {
            field
            message
        }
    }
}`

const productMediaCreateURLMutation = `
mutation createProductMedia($input: ProductMediaCreateInput!) {
    productMediaCreate(input: $input) {
        media {
            id
        }
        productErrors {
            field
            message
        }
    }
}`

const productsQuery = `
query FetchProducts($filter: ProductFilterInput, $after: String) {
    products(filter: $filter, first: 100, after: $after) {
        pageInfo {
            hasNextPage
            endCursor
        }
        edges {
            node {
                id
                name
                slug
                description
                productType {
                    slug
                }
                attributes {
                    attribute {
                        id
                        slug
                    }
                    values {
                        name
                        slug
                        inputType
                        value
                        richText
                        plainText
                        boolean
                        date
                        dateTime
                    }
                }
                variants {
                    sku
                }
            }
        }
    }
}`

const productVariantQuery = `
query FetchProductVariant($id: ID, $sku: String) {
    productVariant(id: $id, sku: $sku) {
        id
        name
        sku
        product {
            id
            name
        }
    }
}`

// CreateProduct creates a product of the given type and returns its id.
// overrides are merged over the default ProductCreateInput fields.
func (l *Loader) CreateProduct(ctx context.Context, productTypeID string, overrides map[string]interface{}) (string, error) {
	input := map[string]interface{}{
		"name":        "default",
		"productType": productTypeID,
	}
	l.override(input, overrides)

	return l.mutateID(ctx, productCreateMutation,
		map[string]interface{}{"input": input},
		[]string{"data", "productCreate", "productErrors"},
		"data", "productCreate", "product", "id")
}

// UpdateProduct sets product fields and attributes. input follows the
// ProductInput GraphQL type.
func (l *Loader) UpdateProduct(ctx context.Context, productID string, input map[string]interface{}) (string, error) {
	return l.mutateID(ctx, productUpdateMutation,
		map[string]interface{}{"id": productID, "input": input},
		[]string{"data", "productUpdate", "productErrors"},
		"data", "productUpdate", "product", "id")
}

// CreateProductVariant creates a variant of the given product and returns its
// id. overrides are merged over the default ProductVariantCreateInput fields.
func (l *Loader) CreateProductVariant(ctx context.Context, productID string, overrides map[string]interface{}) (string, error) {
	input := map[string]interface{}{
		"product":    productID,
		"sku":        "0",
		"attributes": []interface{}{},
	}
	l.override(input, overrides)

	return l.mutateID(ctx, productVariantCreateMutation,
		map[string]interface{}{"input": input},
		[]string{"data", "productVariantCreate", "productErrors"},
		"data", "productVariantCreate", "productVariant", "id")
}

// UpdateProductChannelListings sets product and variant channel availability.
// input follows the ProductChannelListingUpdateInput GraphQL type.
func (l *Loader) UpdateProductChannelListings(ctx context.Context, productID string, input map[string]interface{}) (string, error) {
	return l.mutateID(ctx, productChannelListingUpdateMutation,
		map[string]interface{}{"id": productID, "input": input},
		[]string{"data", "productChannelListingUpdate", "productChannelListingErrors"},
		"data", "productChannelListingUpdate", "product", "id")
}

// UpdateProductVariantChannelListings sets per channel prices for a variant.
// Each input entry follows the ProductVariantChannelListingAddInput GraphQL
// type.
func (l *Loader) UpdateProductVariantChannelListings(ctx context.Context, variantID string, input []map[string]interface{}) (string, error) {
	return l.mutateID(ctx, productVariantChannelListingUpdateMutation,
		map[string]interface{}{"id": variantID, "input": input},
		[]string{"data", "productVariantChannelListingUpdate", "productChannelListingErrors"},
		"data", "productVariantChannelListingUpdate", "variant", "id")
}

// UpdateProductVariantStocks sets per warehouse stock levels for a variant.
// Each stocks entry follows the StockInput GraphQL type.
func (l *Loader) UpdateProductVariantStocks(ctx context.Context, variantID string, stocks []map[string]interface{}) (string, error) {
	return l.mutateID(ctx, productVariantStocksUpdateMutation,
		map[string]interface{}{"variantId": variantID, "stocks": stocks},
		[]string{"data", "productVariantStocksUpdate", "bulkStockErrors"},
		"data", "productVariantStocksUpdate", "productVariant", "id")
}

// CreateProductMedia attaches media to a product and returns the media id.
// A local filePath is uploaded through the GraphQL multipart request spec; a
// fileURL is passed straight to the server instead. Exactly one of the two
// should be set; filePath wins when both are.
func (l *Loader) CreateProductMedia(ctx context.Context, productID, filePath, fileURL, alt string) (string, error) {
	if filePath != "" {
		return l.createProductMediaUpload(ctx, productID, filePath, alt)
	}
	input := map[string]interface{}{
		"product":  productID,
		"mediaUrl": fileURL,
	}
	if alt != "" {
		input["alt"] = alt
	}
	return l.mutateID(ctx, productMediaCreateURLMutation,
		map[string]interface{}{"input": input},
		[]string{"data", "productMediaCreate", "productErrors"},
		"data", "productMediaCreate", "media", "id")
}

func (l *Loader) createProductMediaUpload(ctx context.Context, productID, filePath, alt string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	req := NewRequest(productMediaCreateMutation)
	req.Var("product", productID)
	req.Var("image", "0")
	req.Var("alt", alt)
	req.File("variables.image", filepath.Base(filePath),
		mime.TypeByExtension(filepath.Ext(filePath)), f)
	mergeHeaders(req.Header, l.header)

	resp, err := l.client.Run(ctx, req)
	if err != nil {
		return "", err
	}
	if err := CheckErrors(resp, "data", "productMediaCreate", "productErrors"); err != nil {
		return "", err
	}
	id, ok := dig(resp, "data", "productMediaCreate", "media", "id").(string)
	if !ok {
		return "", errors.New("missing media id in response")
	}
	return id, nil
}

// FetchProducts returns every product matching search (all products when
// search is empty), walking the connection page by page.
func (l *Loader) FetchProducts(ctx context.Context, search string) ([]map[string]interface{}, error) {
	filter := map[string]interface{}{}
	if search != "" {
		filter["search"] = search
	}
	return l.fetchAll(ctx, productsQuery,
		map[string]interface{}{"filter": filter}, "products")
}

// FetchProductVariant looks a variant up by id or sku, returning nil when the
// server has no match.
func (l *Loader) FetchProductVariant(ctx context.Context, id, sku string) (map[string]interface{}, error) {
	resp, err := l.runChecked(ctx, productVariantQuery,
		map[string]interface{}{"id": id, "sku": sku})
	if err != nil {
		return nil, err
	}
	variant, _ := dig(resp, "data", "productVariant").(map[string]interface{})
	return variant, nil
}
