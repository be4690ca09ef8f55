package record

// Record is one flat JSON object from the data file. The schema is
// passthrough apart from the guid field used as the lookup key.
type Record map[string]any

// GUID returns the record's guid field, or "" when the field is absent
// or not a string.
func (r Record) GUID() string {
	v, ok := r["guid"].(string)
	if !ok {
		return ""
	}
	return v
}
