// Package spec embeds the OpenAPI specification for the Sushi API.
// It is imported by the HTTP server to serve the spec at /openapi.yaml, and
// internal/handler/gen is generated from the same file.
package spec

import _ "embed"

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 --config=oapi-codegen.yaml openapi.yaml

// OpenAPI contains the raw bytes of openapi.yaml, embedded at compile time.
// Serving it from the binary means the spec and the running code are always in sync.
//
//go:embed openapi.yaml
var OpenAPI []byte
