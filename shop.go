package saleorload

import (
	"context"

	"github.com/pkg/errors"
)

const shopSettingsUpdateMutation = `
mutation ShopSettingsUpdate($input: ShopSettingsInput!) {
  shopSettingsUpdate(input: $input) {
    shop {
        headerText
        description
        includeTaxesInPrices
        displayGrossPrices
        chargeTaxesOnShipping
        trackInventoryByDefault
        defaultWeightUnit
        automaticFulfillmentDigitalProducts
        defaultDigitalMaxDownloads
        defaultDigitalUrlValidDays
        defaultMailSenderName
        defaultMailSenderAddress
        customerSetPasswordUrl
    }
    shopErrors {
        field
        message
        code
    }
  }
}`

const shopDomainUpdateMutation = `
mutation ShopDomainUpdate($siteDomainInput: SiteDomainInput!) {
  shopDomainUpdate(input: $siteDomainInput) {
    shop {
        domain {
            host
            sslEnabled
            url
        }
    }
    shopErrors {
        field
        message
        code
    }
  }
}`

const shopAddressUpdateMutation = `
mutation ShopAddressUpdate($addressInput: AddressInput!) {
  shopAddressUpdate(input: $addressInput) {
    shop {
        companyAddress {
            id
            firstName
            lastName
            companyName
            streetAddress1
            streetAddress2
            city
            cityArea
            postalCode
            country {
                code
                country
            }
            countryArea
            phone
            isDefaultShippingAddress
            isDefaultBillingAddress
        }
    }
    shopErrors {
        field
        message
        code
    }
  }
}`

// UpdateShopSettings updates the shop wide settings and returns the shop
// object as confirmed by the server. input follows the ShopSettingsInput
// GraphQL type.
func (l *Loader) UpdateShopSettings(ctx context.Context, input map[string]interface{}) (map[string]interface{}, error) {
	resp, err := l.runChecked(ctx, shopSettingsUpdateMutation,
		map[string]interface{}{"input": input},
		"data", "shopSettingsUpdate", "shopErrors")
	if err != nil {
		return nil, err
	}
	shop, ok := dig(resp, "data", "shopSettingsUpdate", "shop").(map[string]interface{})
	if !ok {
		return nil, errors.New("missing shop in response")
	}
	return shop, nil
}

// UpdateShopDomain updates the shop domain and returns the confirmed domain
// object. input follows the SiteDomainInput GraphQL type.
func (l *Loader) UpdateShopDomain(ctx context.Context, input map[string]interface{}) (map[string]interface{}, error) {
	resp, err := l.runChecked(ctx, shopDomainUpdateMutation,
		map[string]interface{}{"siteDomainInput": input},
		"data", "shopDomainUpdate", "shopErrors")
	if err != nil {
		return nil, err
	}
	domain, ok := dig(resp, "data", "shopDomainUpdate", "shop", "domain").(map[string]interface{})
	if !ok {
		return nil, errors.New("missing shop domain in response")
	}
	return domain, nil
}

// UpdateShopAddress updates the shop company address and returns the
// confirmed address object. input follows the AddressInput GraphQL type.
func (l *Loader) UpdateShopAddress(ctx context.Context, input map[string]interface{}) (map[string]interface{}, error) {
	resp, err := l.runChecked(ctx, shopAddressUpdateMutation,
		map[string]interface{}{"addressInput": input},
		"data", "shopAddressUpdate", "shopErrors")
	if err != nil {
		return nil, err
	}
	address, ok := dig(resp, "data", "shopAddressUpdate", "shop", "companyAddress").(map[string]interface{})
	if !ok {
		return nil, errors.New("missing company address in response")
	}
	return address, nil
}
