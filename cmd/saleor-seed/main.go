// Command saleor-seed replays a YAML seed file against a Saleor instance:
// shop settings, channels, warehouses, shipping zones, attributes, product
// types and products with their variants, stocks and media.
//
// Authentication comes from the environment (a .env file is honored):
// SALEOR_TOKEN, or SALEOR_EMAIL plus SALEOR_PASSWORD.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/grll/saleorload"
	"github.com/grll/saleorload/internal/seed"
)

var (
	endpoint = flag.String("endpoint", "", "Saleor GraphQL endpoint (default "+saleorload.DefaultEndpoint+")")
	seedPath = flag.String("seed", "seed.yaml", "path to the YAML seed file")
	verbose  = flag.Bool("v", false, "log every GraphQL exchange")
)

func main() {
	flag.Parse()
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not loaded:", err)
	}
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ctx := context.Background()

	var opts []saleorload.LoaderOption
	token := os.Getenv("SALEOR_TOKEN")
	if token != "" {
		opts = append(opts, saleorload.WithToken(token))
	}
	if *verbose {
		opts = append(opts, saleorload.WithLog(func(s string) { log.Println(s) }))
	}
	loader := saleorload.NewLoader(*endpoint, opts...)

	if token == "" {
		email := os.Getenv("SALEOR_EMAIL")
		password := os.Getenv("SALEOR_PASSWORD")
		if email == "" || password == "" {
			return errors.New("set SALEOR_TOKEN, or SALEOR_EMAIL and SALEOR_PASSWORD")
		}
		if err := loader.Authenticate(ctx, email, password); err != nil {
			return err
		}
	}

	f, err := seed.Load(*seedPath)
	if err != nil {
		return err
	}
	return apply(ctx, loader, f)
}

func apply(ctx context.Context, loader *saleorload.Loader, f *seed.File) error {
	if len(f.Shop) > 0 {
		if _, err := loader.UpdateShopSettings(ctx, f.Shop); err != nil {
			return err
		}
		log.Println("updated shop settings")
	}
	for _, channel := range f.Channels {
		id, err := loader.CreateChannel(ctx, channel)
		if err != nil {
			return err
		}
		log.Println("created channel", id)
	}
	for _, warehouse := range f.Warehouses {
		id, err := loader.CreateWarehouse(ctx, warehouse)
		if err != nil {
			return err
		}
		log.Println("created warehouse", id)
	}
	for _, zone := range f.ShippingZones {
		id, err := loader.CreateShippingZone(ctx, zone)
		if err != nil {
			return err
		}
		log.Println("created shipping zone", id)
	}
	for _, attribute := range f.Attributes {
		id, err := loader.CreateAttribute(ctx, attribute.Input)
		if err != nil {
			return err
		}
		log.Println("created attribute", id)
		for _, value := range attribute.Values {
			if _, err := loader.CreateAttributeValue(ctx, id, value); err != nil {
				return err
			}
		}
	}

	// Product types are remembered by name so products can refer to them.
	types := make(map[string]string)
	for _, productType := range f.ProductTypes {
		id, err := loader.CreateProductType(ctx, productType)
		if err != nil {
			return err
		}
		if name, ok := productType["name"].(string); ok {
			types[name] = id
		}
		log.Println("created product type", id)
	}

	for _, product := range f.Products {
		typeID := product.Type
		if id, ok := types[product.Type]; ok {
			typeID = id
		}
		productID, err := loader.CreateProduct(ctx, typeID, product.Input)
		if err != nil {
			return err
		}
		log.Println("created product", productID)
		for _, variant := range product.Variants {
			variantID, err := loader.CreateProductVariant(ctx, productID, variant.Input)
			if err != nil {
				return err
			}
			if len(variant.ChannelListings) > 0 {
				if _, err := loader.UpdateProductVariantChannelListings(ctx, variantID, variant.ChannelListings); err != nil {
					return err
				}
			}
			if len(variant.Stocks) > 0 {
				if _, err := loader.UpdateProductVariantStocks(ctx, variantID, variant.Stocks); err != nil {
					return err
				}
			}
		}
		for _, media := range product.Media {
			if _, err := loader.CreateProductMedia(ctx, productID, media.Path, media.URL, media.Alt); err != nil {
				return err
			}
		}
	}
	return nil
}
