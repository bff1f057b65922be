// Package normalize rewrites storage-assigned identifiers on documents
// fetched from MongoDB before they are returned to API clients.
package normalize

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document returns a copy of doc with the storage identifier field "_id"
// renamed to a public "id" field holding the id's string form. The rewrite
// is applied to the top-level document, to nested record values (a populated
// user reference), and to each record element of nested lists (populated
// positions, embedded degrees). Reference fields that are scalar ids are
// left untouched. The input document is not mutated; a nil input is
// returned unchanged. Re-applying to an already-normalized document is a
// no-op since no "_id" field remains.
func Document(doc map[string]interface{}) map[string]interface{} {
	if doc == nil {
		return nil
	}

	out := make(map[string]interface{}, len(doc)+1)
	for key, val := range doc {
		out[key] = value(val)
	}
	if raw, ok := out["_id"]; ok {
		delete(out, "_id")
		out["id"] = idString(raw)
	}
	return out
}

func value(v interface{}) interface{} {
	switch t := v.(type) {
	case bson.M:
		return Document(t)
	case map[string]interface{}:
		return Document(t)
	case bson.A:
		return list(t)
	case []interface{}:
		return list(t)
	default:
		return v
	}
}

func list(in []interface{}) []interface{} {
	out := make([]interface{}, len(in))
	for i, el := range in {
		out[i] = value(el)
	}
	return out
}

func idString(raw interface{}) string {
	switch t := raw.(type) {
	case primitive.ObjectID:
		return t.Hex()
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}
