package saleorload

import "context"

const shippingZoneCreateMutation = `
mutation createShippingZone($input: ShippingZoneCreateInput!) {
    shippingZoneCreate(input: $input) {
        shippingZone {
            id
        }
        shippingErrors {
            field
            message
            code
        }
    }
}`

// CreateShippingZone creates a shipping zone and returns its id. overrides
// are merged over the default ShippingZoneCreateInput fields.
func (l *Loader) CreateShippingZone(ctx context.Context, overrides map[string]interface{}) (string, error) {
	input := map[string]interface{}{
		"name":      "CH",
		"countries": []interface{}{"CH"},
		"default":   false,
	}
	l.override(input, overrides)

	return l.mutateID(ctx, shippingZoneCreateMutation,
		map[string]interface{}{"input": input},
		[]string{"data", "shippingZoneCreate", "shippingErrors"},
		"data", "shippingZoneCreate", "shippingZone", "id")
}
