package config

// mergeMap key-wise unions overlay onto base, overlay winning wholesale
// on collisions. Returns a fresh map; neither input is mutated.
func mergeMap[K comparable, V any](base, overlay map[K]V) map[K]V {
	if base == nil && overlay == nil {
		return nil
	}
	out := make(map[K]V, len(base)+len(overlay))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overlay {
		out[k] = v
	}
	return out
}

// mergeMapWith is mergeMap for maps whose values define their own merge:
// a key present in both sides keeps a recursively merged value.
func mergeMapWith[K comparable, V any](base, overlay map[K]V, merge func(V, V) V) map[K]V {
	if base == nil && overlay == nil {
		return nil
	}
	out := make(map[K]V, len(base)+len(overlay))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overlay {
		if bv, ok := out[k]; ok {
			out[k] = merge(bv, v)
		} else {
			out[k] = v
		}
	}
	return out
}
