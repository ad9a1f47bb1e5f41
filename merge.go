package saleorload

// Override lays overrides over base in place, key by key. The merge is
// deliberately shallow: when base holds a nested map at an overridden key the
// whole nested map is replaced, and logf (if non nil) is told about it so the
// caller knows every value in the nested map needs restating. There is no
// deep merge.
func Override(base, overrides map[string]interface{}, logf func(format string, args ...interface{})) {
	for key, value := range overrides {
		if _, nested := base[key].(map[string]interface{}); nested && logf != nil {
			logf("**warning**: key %q contained a map, make sure to override each value in the nested map", key)
		}
		base[key] = value
	}
}
