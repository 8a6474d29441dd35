// Package openapi exposes the public contracts for loading and parsing
// OpenAPI documents into operation default tables. Implementations live
// under internal/openapi so kin-openapi stays hidden from consumers.
package openapi
