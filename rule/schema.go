// Package rule builds handler predicates from declarative descriptions.
package rule

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/go-kratos/relay"
)

// Schema returns a predicate that matches requests whose JSON encoding validates
// against schema. The schema is resolved once; requests that cannot be encoded
// never match.
//
// Example usage:
//
//	minCredits := 5.0
//	match, err := rule.Schema[Student](&jsonschema.Schema{
//	    Type: "object",
//	    Properties: map[string]*jsonschema.Schema{
//	        "credits": {Type: "number", Minimum: &minCredits},
//	    },
//	    Required: []string{"credits"},
//	})
func Schema[Req any](schema *jsonschema.Schema) (relay.MatchFunc[Req], error) {
	if schema == nil {
		return nil, fmt.Errorf("rule: schema is nil")
	}
	resolved, err := schema.Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("rule: resolve schema: %w", err)
	}
	return func(_ context.Context, req Req) bool {
		instance, err := toInstance(req)
		if err != nil {
			return false
		}
		return resolved.Validate(instance) == nil
	}, nil
}

// MustSchema is like Schema but panics if the schema cannot be resolved.
// It simplifies package-level rule tables.
func MustSchema[Req any](schema *jsonschema.Schema) relay.MatchFunc[Req] {
	match, err := Schema[Req](schema)
	if err != nil {
		panic(err)
	}
	return match
}

// toInstance converts a request into the generic JSON value the validator expects.
func toInstance(req any) (any, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	var instance any
	if err := json.Unmarshal(b, &instance); err != nil {
		return nil, err
	}
	return instance, nil
}
