package saleorload

import "context"

const channelCreateMutation = `
mutation createChannel($input: ChannelCreateInput!) {
    channelCreate(input: $input) {
        channel {
            id
        }
        channelErrors {
            field
            message
            code
        }
    }
}`

const channelsQuery = `
query FetchAllChannels {
    channels {
        id
        name
        slug
    }
}`

// CreateChannel creates a channel and returns its id. overrides are merged
// over the default ChannelCreateInput fields.
func (l *Loader) CreateChannel(ctx context.Context, overrides map[string]interface{}) (string, error) {
	input := map[string]interface{}{
		"isActive":         true,
		"name":             "Fake Channel",
		"slug":             "fake-channel",
		"currencyCode":     "USD",
		"defaultCountry":   "US",
		"addShippingZones": []interface{}{},
	}
	l.override(input, overrides)

	return l.mutateID(ctx, channelCreateMutation,
		map[string]interface{}{"input": input},
		[]string{"data", "channelCreate", "channelErrors"},
		"data", "channelCreate", "channel", "id")
}

// FetchChannels returns every channel. The channels field is a plain list,
// not a paginated connection.
func (l *Loader) FetchChannels(ctx context.Context) ([]map[string]interface{}, error) {
	resp, err := l.runChecked(ctx, channelsQuery, nil)
	if err != nil {
		return nil, err
	}
	var channels []map[string]interface{}
	if list, ok := dig(resp, "data", "channels").([]interface{}); ok {
		for _, entry := range list {
			if m, ok := entry.(map[string]interface{}); ok {
				channels = append(channels, m)
			}
		}
	}
	return channels, nil
}
