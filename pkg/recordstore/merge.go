package recordstore

// deepMerge merges partial into dst in place and returns dst. Nested maps
// merge recursively; arrays keyed "history" append; any other collision is
// last-writer-wins.
func deepMerge(dst, partial map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(partial))
	}
	for k, v := range partial {
		pv, isMap := v.(map[string]any)
		dv, dstIsMap := dst[k].(map[string]any)
		switch {
		case isMap && dstIsMap:
			dst[k] = deepMerge(dv, pv)
		case isMap:
			dst[k] = deepMerge(nil, pv)
		case k == FieldHistory:
			dst[k] = appendHistory(dst[k], v)
		default:
			dst[k] = v
		}
	}
	return dst
}

func appendHistory(existing, incoming any) any {
	var out []any
	if cur, ok := existing.([]any); ok {
		out = append(out, cur...)
	}
	switch inc := incoming.(type) {
	case []any:
		out = append(out, inc...)
	default:
		out = append(out, inc)
	}
	return out
}

// flattenForUpdate translates a merge partial into dotted-path leaf writes
// and history appends, mirroring deepMerge's semantics for the Mongo update
// operators ($set per leaf, $push $each per history array).
func flattenForUpdate(prefix string, partial map[string]any, set map[string]any, push map[string][]any) {
	for k, v := range partial {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		switch t := v.(type) {
		case map[string]any:
			flattenForUpdate(path, t, set, push)
		default:
			if k == FieldHistory {
				if items, ok := v.([]any); ok {
					push[path] = append(push[path], items...)
				} else {
					push[path] = append(push[path], v)
				}
				continue
			}
			set[path] = v
		}
	}
}
