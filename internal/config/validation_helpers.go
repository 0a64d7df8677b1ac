package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	gladeerrors "github.com/alexisbeaulieu97/glade/pkg/errors"
)

// convertValidationError normalizes validator errors into glade validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Tag() == "component_kind" {
			msg = fmt.Sprintf("%s: unknown component kind %q", field, ve.Value())
		}
		return gladeerrors.NewValidationError(field, msg, err)
	}

	return gladeerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName turns "Config.pages[0].components[1].kind" into
// "pages[0].components[1].kind".
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	return ns
}

func fieldForPage(index int, field string) string {
	return fmt.Sprintf("pages[%d].%s", index, field)
}

func fieldForComponent(page, index int, field string) string {
	return fmt.Sprintf("pages[%d].components[%d].%s", page, index, field)
}
