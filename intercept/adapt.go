package intercept

import "fmt"

// AdaptFunc rewrites the parameters of a requested tool into the shape
// its substitute expects. Implementations must be pure: they receive a
// copy and return a new map (returning the input copy mutated is fine).
type AdaptFunc func(params map[string]any) map[string]any

// adapterName is the table key for a tool pair. compat matrix entries
// reference adapters by the same "from->to" string in their param_map
// fields.
func adapterName(from, to string) string {
	return from + "->" + to
}

// adapt applies the adapter registered for the pair. Unknown pairs pass
// parameters through unchanged: partial data beats none when a curated
// adapter is missing.
func (i *Interceptor) adapt(from, to string, params map[string]any) map[string]any {
	fn := i.adapters[adapterName(from, to)]
	if fn == nil {
		return params
	}
	return fn(copyParams(params))
}

// adaptNamed applies an adapter referenced by name from a matrix
// descriptor (param_map). Empty or unknown names are identity.
func (i *Interceptor) adaptNamed(name string, params map[string]any) map[string]any {
	if name == "" {
		return params
	}
	fn := i.adapters[name]
	if fn == nil {
		return params
	}
	return fn(copyParams(params))
}

func copyParams(params map[string]any) map[string]any {
	out := make(map[string]any, len(params))
	for k, v := range params {
		out[k] = v
	}
	return out
}

// rename moves a key when present. Missing keys are left alone so the
// identity-fallback policy degrades per field, not per call.
func rename(params map[string]any, from, to string) {
	if v, ok := params[from]; ok {
		delete(params, from)
		params[to] = v
	}
}

// builtinAdapters covers the tool pairs the builtin matrix and legacy
// tables can produce. Keys match the param_map strings in builtin.yaml.
func builtinAdapters() map[string]AdaptFunc {
	return map[string]AdaptFunc{
		"kb_search->grep": func(p map[string]any) map[string]any {
			rename(p, "query", "pattern")
			return p
		},
		"kb_list->glob": func(p map[string]any) map[string]any {
			rename(p, "directory", "path")
			if _, ok := p["pattern"]; !ok {
				p["pattern"] = "*"
			}
			return p
		},
		"search_replace->edit": func(p map[string]any) map[string]any {
			rename(p, "file", "filePath")
			rename(p, "old", "oldString")
			rename(p, "new", "newString")
			return p
		},
		"search_replace->grep": func(p map[string]any) map[string]any {
			out := map[string]any{}
			if v, ok := p["old"]; ok {
				out["pattern"] = fmt.Sprintf("%v", v)
			}
			if v, ok := p["path"]; ok {
				out["path"] = v
			}
			return out
		},
		"format_code->read": func(p map[string]any) map[string]any {
			rename(p, "file", "filePath")
			return p
		},
		"run_tests->bash": func(p map[string]any) map[string]any {
			if v, ok := p["command"]; ok {
				return map[string]any{"command": v}
			}
			return p
		},
		"read_file->read": func(p map[string]any) map[string]any {
			rename(p, "path", "filePath")
			return p
		},
		"write_file->write": func(p map[string]any) map[string]any {
			rename(p, "path", "filePath")
			return p
		},
	}
}
