// Package saleorload is a thin client for the Saleor GraphQL API, built for
// loading catalog data into a Saleor instance.
//
//	// create a loader (safe to share across calls)
//	ctx := context.Background()
//	loader := saleorload.NewLoader("http://localhost:8000/graphql/")
//	if err := loader.Authenticate(ctx, "admin@example.com", "admin"); err != nil {
//	    log.Fatal(err)
//	}
//
//	// create a product, overriding a few of the default input fields
//	id, err := loader.CreateProduct(ctx, productTypeID, map[string]interface{}{
//	    "name": "Mug",
//	    "slug": "mug",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Every method sends one GraphQL operation and checks the response for
// reported errors before returning its payload. Business rule rejections come
// back as *DomainError, HTTP level failures as *TransportError; nothing is
// retried internally.
package saleorload
