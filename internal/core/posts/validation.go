package posts

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rivo/uniseg"
	"github.com/xeipuuv/gojsonschema"

	"Dealio/internal/core/categories"
)

const (
	maxTitleLength          = 200
	maxCouponCodeLength     = 20
	maxURLLength            = 200
	maxDescriptionGraphemes = 10000
)

var (
	createPostSchema = mustCompileSchema(true)
	editPostSchema   = mustCompileSchema(false)
)

// postSchema mirrors the payload contract clients were written against:
// required dates/title/category, category from the seeded set, and http(s) URLs.
func postSchema(requireFields bool) map[string]interface{} {
	enum := make([]interface{}, 0, len(categories.Names))
	for _, n := range categories.Names {
		enum = append(enum, n)
	}

	schema := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"start_date":  map[string]interface{}{"type": "string", "format": "date"},
			"end_date":    map[string]interface{}{"type": "string", "format": "date"},
			"title":       map[string]interface{}{"type": "string", "minLength": 1, "maxLength": maxTitleLength},
			"category":    map[string]interface{}{"type": "string", "enum": enum},
			"description": map[string]interface{}{"type": "string"},
			"url":         map[string]interface{}{"$ref": "#/definitions/valid_url"},
			"coupon_code": map[string]interface{}{"type": "string", "maxLength": maxCouponCodeLength},
			"image_url":   map[string]interface{}{"$ref": "#/definitions/valid_url"},
		},
		"definitions": map[string]interface{}{
			"valid_url": map[string]interface{}{
				"type":      "string",
				"format":    "uri",
				"pattern":   "^https?://",
				"maxLength": maxURLLength,
			},
		},
	}
	if requireFields {
		schema["required"] = []string{"start_date", "end_date", "title", "category"}
	}
	return schema
}

func mustCompileSchema(requireFields bool) *gojsonschema.Schema {
	raw, err := json.Marshal(postSchema(requireFields))
	if err != nil {
		panic(fmt.Sprintf("posts: failed to marshal schema: %v", err))
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		panic(fmt.Sprintf("posts: failed to compile schema: %v", err))
	}
	return schema
}

// validateAgainstSchema marshals the request and checks it against schema.
// Nil pointer fields are omitted, so partial edits only validate what they carry.
func validateAgainstSchema(schema *gojsonschema.Schema, req interface{}) error {
	doc, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal post payload: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("failed to validate post payload: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var messages []string
	field := ""
	for _, desc := range result.Errors() {
		if field == "" {
			field = desc.Field()
		}
		messages = append(messages, desc.String())
	}
	return NewValidationError(field, strings.Join(messages, "; "))
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, NewValidationError(field, "must be a date formatted YYYY-MM-DD")
	}
	return t, nil
}

func validateDescription(desc *string) error {
	if desc != nil && uniseg.GraphemeClusterCount(*desc) > maxDescriptionGraphemes {
		return NewValidationError("description", fmt.Sprintf("must be at most %d characters", maxDescriptionGraphemes))
	}
	return nil
}

func validateTitle(title *string) error {
	if title != nil && uniseg.GraphemeClusterCount(*title) > maxTitleLength {
		return NewValidationError("title", fmt.Sprintf("must be at most %d characters", maxTitleLength))
	}
	return nil
}

func validateDateRange(start, end time.Time) error {
	if end.Before(start) {
		return NewValidationError("end_date", "must not be before start_date")
	}
	return nil
}

// emptyToNil turns "" into nil for optional text columns
func emptyToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
