package resource

import _ "embed"

var (
	//go:embed schema-kitchen-sink.graphql
	KitchenSinkSDL string
	//go:embed kitchen-sink.graphql
	KitchenSinkQuery string
)
