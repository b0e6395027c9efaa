package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/model"
)

// ValidationError reports what is wrong with a rule file, field by field.
// Field keys use json names and slice indices, e.g. "folders[1].name".
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid config"
	}
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+" "+msg)
	}
	sort.Strings(parts)
	return "invalid config: " + strings.Join(parts, "; ")
}

// validate is the shared validator instance, reporting fields by their json
// names.
var validate = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("json")
		if name == "" {
			return fld.Name
		}
		if i := strings.IndexByte(name, ','); i >= 0 {
			return name[:i]
		}
		return name
	})
	return v
}()

// structuralCheck enforces the shape contract before full decoding: the
// payload is a JSON object carrying folders, exceptions, and settings, and
// every folder entry has non-empty string id and name fields.
func structuralCheck(data []byte) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config is not a JSON object: %w", err)
	}
	for _, key := range []string{"folders", "exceptions", "settings"} {
		if _, ok := raw[key]; !ok {
			return nil, &ValidationError{Fields: map[string]string{key: "is missing"}}
		}
	}

	var folders []map[string]json.RawMessage
	if err := json.Unmarshal(raw["folders"], &folders); err != nil {
		return nil, &ValidationError{Fields: map[string]string{"folders": "must be an array of objects"}}
	}
	for i, f := range folders {
		for _, field := range []string{"id", "name"} {
			var s string
			if f[field] == nil || json.Unmarshal(f[field], &s) != nil || s == "" {
				key := fmt.Sprintf("folders[%d].%s", i, field)
				return nil, &ValidationError{Fields: map[string]string{key: "must be a non-empty string"}}
			}
		}
	}
	return raw, nil
}

// Validate runs tag validation over the rule set plus the cross-field checks
// the tags cannot express.
func Validate(cfg model.OrganizerConfig) error {
	if err := validate.Struct(cfg); err != nil {
		return asValidationError(err)
	}

	fields := make(map[string]string)
	seen := make(map[string]int)
	for i := range cfg.Folders {
		f := &cfg.Folders[i]
		if prev, ok := seen[f.ID]; ok {
			fields[fmt.Sprintf("folders[%d].id", i)] = fmt.Sprintf("duplicates folders[%d]", prev)
		}
		seen[f.ID] = i
		for j := range f.Categories {
			if err := f.Categories[j].Validate(); err != nil {
				fields[fmt.Sprintf("folders[%d].categories[%d]", i, j)] = err.Error()
			}
		}
	}
	for i := range cfg.Exceptions {
		if err := cfg.Exceptions[i].Validate(); err != nil {
			fields[fmt.Sprintf("exceptions[%d]", i)] = err.Error()
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func asValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, e := range verrs {
		// Namespace starts with the struct type name; drop it.
		field := e.Namespace()
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}
		fields[field] = friendlyMessage(e)
	}
	return &ValidationError{Fields: fields}
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + e.Param()
	case "max":
		return "must be at most " + e.Param()
	case "oneof":
		return "must be one of: " + e.Param()
	default:
		return "is invalid"
	}
}

// Warnings surfaces rule shapes that are legal but probably mistakes: the
// same category type mapped into several folders with nothing to steer
// between them, unconditional subcategories shadowing later ones, and
// exceptions whose target folder does not exist.
func Warnings(cfg model.OrganizerConfig) []string {
	var warnings []string
	norm := cfg.Normalized()

	unkeyworded := make(map[model.CategoryType]string)
	for i := range norm.Folders {
		f := &norm.Folders[i]
		for j := range f.Categories {
			c := &f.Categories[j]
			if !c.Enabled || len(c.Keywords) > 0 {
				continue
			}
			if first, ok := unkeyworded[c.Type]; ok {
				warnings = append(warnings, fmt.Sprintf(
					"category %s appears in folders %q and %q without keywords; items always go to %q",
					c.Type, first, f.Name, first))
				continue
			}
			unkeyworded[c.Type] = f.Name
		}
	}

	for i := range norm.Folders {
		f := &norm.Folders[i]
		for j := range f.Categories {
			c := &f.Categories[j]
			if len(c.Subcategories) < 2 {
				continue
			}
			sorted := make([]model.Subcategory, len(c.Subcategories))
			copy(sorted, c.Subcategories)
			sort.SliceStable(sorted, func(a, b int) bool { return sorted[a].Order < sorted[b].Order })
			for k := range sorted {
				if sorted[k].MatchesAll() && k < len(sorted)-1 {
					warnings = append(warnings, fmt.Sprintf(
						"subcategory %q in %s/%s matches all items; %d later subcategories are unreachable",
						sorted[k].Name, f.Name, c.Type, len(sorted)-1-k))
					break
				}
			}
		}
	}

	for i := range norm.Exceptions {
		e := &norm.Exceptions[i]
		if norm.FindFolder(e.TargetFolderID) == nil {
			warnings = append(warnings, fmt.Sprintf(
				"exception %q targets unknown folder %q and will be ignored", e.Pattern, e.TargetFolderID))
		}
	}
	return warnings
}
