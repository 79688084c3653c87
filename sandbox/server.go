package sandbox

import (
	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
)

// NewSchema parses the sandbox schema over a store.
func NewSchema(store *Store) (*gql.Schema, error) {
	return gql.ParseSchema(Schema, NewRootResolver(store), gql.UseFieldResolvers())
}

// Handler returns an http.Handler for the sandbox GraphQL endpoint (relay
// format), suitable for echo wrapping or httptest.
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
