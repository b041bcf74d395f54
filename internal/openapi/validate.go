// Package openapi wraps the handful of OpenAPI document operations the command line
// exposes: loading, validation, reference bundling, version conversion, and summarizing.
// All rule evaluation is delegated to the kin-openapi library; this package's job is
// shaping library results into something the command line can present.
package openapi

import (
	"context"
	"errors"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog/log"
)

// Issue is a single validation finding for a document.
type Issue struct {
	// Message is the library's description of what is wrong.
	Message string
	// Location is a JSON pointer to the offending element. Not every finding carries one;
	// load failures and whole-document findings leave it empty.
	Location string
}

// Outcome is the result of validating one document.
type Outcome struct {
	// Path is the file the outcome describes.
	Path string
	// Valid is true only when the document loaded and passed every check.
	Valid bool
	// Issues holds the findings for an invalid document, in the order the library
	// reported them. Empty when Valid is true.
	Issues []Issue
}

// State returns the outcome as an enum-like string, suitable for the display helpers.
func (o *Outcome) State() string {
	if o.Valid {
		return "VALID"
	}

	return "INVALID"
}

// Err collapses the outcome's issues into a single error. Returns nil for a valid outcome.
func (o *Outcome) Err() error {
	if o.Valid {
		return nil
	}

	var result error
	for _, issue := range o.Issues {
		result = multierror.Append(result, errors.New(issue.Message))
	}

	return result
}

// Load reads the document at path into memory, resolving any file or URL references
// it makes along the way.
func Load(ctx context.Context, path string) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = true
	loader.Context = ctx

	return loader.LoadFromFile(path)
}

// Validate loads the document at path and checks it against the OpenAPI specification.
// Never returns an error; failures of any kind (unreadable file, malformed YAML/JSON,
// specification violations) become issues on the outcome so callers have one result
// shape to report.
func Validate(ctx context.Context, path string) Outcome {
	log.Debug().Str("path", path).Msg("validating document")

	doc, err := Load(ctx, path)
	if err != nil {
		return Outcome{Path: path, Issues: []Issue{newIssue(err)}}
	}

	return ValidateDocument(ctx, path, doc)
}

// ValidateDocument checks an already loaded document. Used directly by operations that
// produce documents in memory, like version conversion.
func ValidateDocument(ctx context.Context, path string, doc *openapi3.T) Outcome {
	err := doc.Validate(ctx)
	if err == nil {
		return Outcome{Path: path, Valid: true}
	}

	issues := flattenIssues(err)
	log.Debug().Str("path", path).Int("issues", len(issues)).Msg("document failed validation")

	return Outcome{Path: path, Issues: issues}
}

// flattenIssues unpacks the library's error shapes. Validation can hand back a single
// wrapped error or a MultiError carrying several findings at once.
func flattenIssues(err error) []Issue {
	var merr openapi3.MultiError
	if errors.As(err, &merr) {
		issues := make([]Issue, 0, len(merr))
		for _, err := range merr {
			issues = append(issues, newIssue(err))
		}
		return issues
	}

	return []Issue{newIssue(err)}
}

func newIssue(err error) Issue {
	issue := Issue{Message: err.Error()}

	// Schema findings know where in the document they point; surface that so the
	// reporter can print a location line.
	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		pointer := schemaErr.JSONPointer()
		if len(pointer) > 0 {
			issue.Location = "#/" + strings.Join(pointer, "/")
		}
	}

	return issue
}
