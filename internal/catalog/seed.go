package catalog

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	exterrors "github.com/alexisbeaulieu97/extdeck/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	yamlLineRegex = regexp.MustCompile(`line (\d+)`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// LoadFile reads a seed catalog. JSON is accepted as a subset of YAML.
func LoadFile(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, exterrors.NewParseError(path, 0, err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, exterrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(file.Extensions); err != nil {
		return nil, err
	}

	return file.Extensions, nil
}

// Validate checks per-item constraints and name uniqueness.
func Validate(items []Item) error {
	if err := validatorInstance().Struct(File{Extensions: items}); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(items))
	for i, item := range items {
		if first, ok := seen[item.Name]; ok {
			return exterrors.NewValidationError(
				fmt.Sprintf("extensions[%d].name", i),
				fmt.Sprintf("duplicate extension name %q (first defined at extensions[%d])", item.Name, first),
				nil,
			)
		}
		seen[item.Name] = i
	}

	return nil
}

func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return exterrors.NewValidationError(field, msg, err)
	}

	return exterrors.NewValidationError("extensions", err.Error(), err)
}

// yamlishFieldName turns "File.Extensions[2].Name" into "extensions[2].name".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
