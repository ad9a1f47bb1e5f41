package saleorload

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverrideDisjointKeys(t *testing.T) {
	base := map[string]interface{}{"name": "default"}
	Override(base, map[string]interface{}{"slug": "mug"}, nil)
	assert.Equal(t, map[string]interface{}{"name": "default", "slug": "mug"}, base)
}

func TestOverrideValueWins(t *testing.T) {
	base := map[string]interface{}{"name": "default", "isActive": true}
	Override(base, map[string]interface{}{"name": "Mug"}, nil)
	assert.Equal(t, "Mug", base["name"])
	assert.Equal(t, true, base["isActive"])
}

func TestOverrideNestedMapWarnsAndReplaces(t *testing.T) {
	var warnings []string
	logf := func(format string, args ...interface{}) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	base := map[string]interface{}{
		"address": map[string]interface{}{
			"city":       "Fake City",
			"postalCode": "1024",
		},
	}
	Override(base, map[string]interface{}{
		"address": map[string]interface{}{"city": "Bern"},
	}, logf)

	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], `"address"`)
	// the nested map is replaced wholesale, never merged into
	assert.Equal(t, map[string]interface{}{"city": "Bern"}, base["address"])
}

func TestOverrideNestedMapNilLog(t *testing.T) {
	base := map[string]interface{}{
		"address": map[string]interface{}{"city": "Fake City"},
	}
	assert.NotPanics(t, func() {
		Override(base, map[string]interface{}{"address": map[string]interface{}{}}, nil)
	})
	assert.Equal(t, map[string]interface{}{}, base["address"])
}
