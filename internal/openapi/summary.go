package openapi

import (
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
)

// Summary is a flattened view of a document's shape, used by the inspect command.
type Summary struct {
	Title      string
	Version    string
	OpenAPI    string
	Servers    []string
	Paths      int
	Operations int
	Schemas    int
	Endpoints  []Endpoint
}

// Endpoint is one method+path pair a document declares.
type Endpoint struct {
	Method      string
	Path        string
	OperationID string
	Summary     string
}

// Summarize walks an already loaded document and counts up what it declares.
// Paths and methods come back sorted so output is stable between runs.
func Summarize(doc *openapi3.T) Summary {
	summary := Summary{OpenAPI: doc.OpenAPI}

	if doc.Info != nil {
		summary.Title = doc.Info.Title
		summary.Version = doc.Info.Version
	}

	for _, server := range doc.Servers {
		summary.Servers = append(summary.Servers, server.URL)
	}

	if doc.Paths != nil {
		summary.Paths = doc.Paths.Len()

		pathItems := doc.Paths.Map()

		paths := make([]string, 0, len(pathItems))
		for path := range pathItems {
			paths = append(paths, path)
		}
		sort.Strings(paths)

		for _, path := range paths {
			operations := pathItems[path].Operations()

			methods := make([]string, 0, len(operations))
			for method := range operations {
				methods = append(methods, method)
			}
			sort.Strings(methods)

			for _, method := range methods {
				operation := operations[method]
				summary.Operations++
				summary.Endpoints = append(summary.Endpoints, Endpoint{
					Method:      method,
					Path:        path,
					OperationID: operation.OperationID,
					Summary:     operation.Summary,
				})
			}
		}
	}

	if doc.Components != nil {
		summary.Schemas = len(doc.Components.Schemas)
	}

	return summary
}
