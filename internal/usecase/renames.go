package usecase

// FieldRenames maps request aliases to the field name Paystand expects.
type FieldRenames map[string]string

// Apply returns a shallow copy of body with every alias present moved to its
// canonical name. The alias key never survives. body is not modified.
func (r FieldRenames) Apply(body map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(body))
	for k, v := range body {
		out[k] = v
	}
	for alias, canonical := range r {
		v, ok := out[alias]
		if !ok {
			continue
		}
		delete(out, alias)
		out[canonical] = v
	}
	return out
}
