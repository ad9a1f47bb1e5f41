package saleorload

import (
	"context"

	"github.com/pkg/errors"
)

// pageInfo mirrors the Relay pageInfo block every Saleor connection carries.
type pageInfo struct {
	hasNextPage bool
	endCursor   string
}

func pageInfoFrom(conn map[string]interface{}) pageInfo {
	var pi pageInfo
	info, ok := conn["pageInfo"].(map[string]interface{})
	if !ok {
		return pi
	}
	pi.hasNextPage, _ = info["hasNextPage"].(bool)
	pi.endCursor, _ = info["endCursor"].(string)
	return pi
}

// nodes collects every edges[].node of a connection, in server order.
func nodes(conn map[string]interface{}) []map[string]interface{} {
	edges, _ := conn["edges"].([]interface{})
	items := make([]map[string]interface{}, 0, len(edges))
	for _, edge := range edges {
		m, ok := edge.(map[string]interface{})
		if !ok {
			continue
		}
		if node, ok := m["node"].(map[string]interface{}); ok {
			items = append(items, node)
		}
	}
	return items
}

// fetchAll walks the cursor paginated connection at data.connKey until
// hasNextPage goes false, accumulating every node in server order. vars is
// reused across pages with the after cursor swapped in, starting empty.
func (l *Loader) fetchAll(ctx context.Context, query string, vars map[string]interface{}, connKey string) ([]map[string]interface{}, error) {
	var items []map[string]interface{}
	vars["after"] = ""
	for {
		resp, err := l.runChecked(ctx, query, vars)
		if err != nil {
			return nil, err
		}
		conn, ok := dig(resp, "data", connKey).(map[string]interface{})
		if !ok {
			return nil, errors.Errorf("missing %s connection in response", connKey)
		}
		items = append(items, nodes(conn)...)
		pi := pageInfoFrom(conn)
		if !pi.hasNextPage {
			return items, nil
		}
		vars["after"] = pi.endCursor
	}
}
