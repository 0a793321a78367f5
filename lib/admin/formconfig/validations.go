package formconfig

import (
	"context"
	"encoding/json"
	"fmt"
	"recruitment-dashboard/models"
	formconfigapimodels "recruitment-dashboard/models/api/formconfig"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xeipuuv/gojsonschema"
)

const (
	RuleMinLength    = "minLength"
	RuleMaxLength    = "maxLength"
	RulePattern      = "pattern"
	RuleErrorMessage = "errorMessage"
)

var ValidationRules = []string{RuleMinLength, RuleMaxLength, RulePattern, RuleErrorMessage}

const ErrInvalidValidations = models.UserError("Validations must be a JSON object.")

type ValidationRow struct {
	FieldID      int
	Label        string
	Name         string
	MinLength    string
	MaxLength    string
	Pattern      string
	ErrorMessage string
}

// ParseValidations некорректный JSON считается пустым набором правил
func ParseValidations(raw string) map[string]any {
	rules := map[string]any{}
	if strings.TrimSpace(raw) == "" {
		return rules
	}
	if err := json.Unmarshal([]byte(raw), &rules); err != nil || rules == nil {
		return map[string]any{}
	}
	return rules
}

// ApplyRule пустое значение удаляет правило; minLength и maxLength хранятся целыми числами
func ApplyRule(rules map[string]any, rule, value string) error {
	switch rule {
	case RuleMinLength, RuleMaxLength:
		value = strings.TrimSpace(value)
		if value == "" {
			delete(rules, rule)
			return nil
		}
		number, err := strconv.Atoi(value)
		if err != nil {
			return models.UserError(fmt.Sprintf("%s must be a whole number.", rule))
		}
		rules[rule] = number
	case RulePattern, RuleErrorMessage:
		if value == "" {
			delete(rules, rule)
			return nil
		}
		rules[rule] = value
	default:
		return models.UserError(fmt.Sprintf("Unknown validation rule %q.", rule))
	}
	return nil
}

var validationsSchema = gojsonschema.NewStringLoader(`{
	"type": "object",
	"properties": {
		"minLength": {"type": "integer", "minimum": 0},
		"maxLength": {"type": "integer", "minimum": 0},
		"pattern": {"type": "string"},
		"errorMessage": {"type": "string"}
	},
	"additionalProperties": false
}`)

// NormalizeValidations проверяет текст правил из формы редактирования поля
func NormalizeValidations(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "{}", nil
	}
	rules := map[string]any{}
	if err := json.Unmarshal([]byte(raw), &rules); err != nil || rules == nil {
		return "", ErrInvalidValidations
	}
	result, err := gojsonschema.Validate(validationsSchema, gojsonschema.NewGoLoader(rules))
	if err != nil {
		return "", errors.Wrap(err, "ошибка проверки правил")
	}
	if !result.Valid() {
		descriptions := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			descriptions = append(descriptions, desc.String())
		}
		return "", models.UserError("Invalid validations: " + strings.Join(descriptions, "; "))
	}
	data, err := json.Marshal(rules)
	if err != nil {
		return "", errors.Wrap(err, "ошибка сериализации правил")
	}
	return string(data), nil
}

// SetValidation каждое изменение правила сохраняется сразу и отдельно
func (i *impl) SetValidation(ctx context.Context, fieldID int, rule, value string) error {
	field, ok := i.findField(fieldID)
	if !ok {
		return ErrFieldNotFound
	}
	rules := ParseValidations(field.Validations)
	if err := ApplyRule(rules, rule, value); err != nil {
		return err
	}
	data, err := json.Marshal(rules)
	if err != nil {
		return errors.Wrap(err, "ошибка сериализации правил")
	}
	serialized := string(data)
	logger := log.
		WithField("field_id", fieldID).
		WithField("rule", rule)
	_, err = i.client.UpdateField(ctx, fieldID, formconfigapimodels.FieldUpdate{Validations: &serialized})
	if err != nil {
		logger.WithError(err).Error("ошибка изменения правил проверки поля")
		return errors.Wrap(err, "ошибка изменения правил проверки поля")
	}
	i.state.UpdateField(fieldID, func(f *formconfigapimodels.FieldDefinition) {
		f.Validations = serialized
	})
	logger.Info("правила проверки поля изменены")
	return nil
}

// Value значение правила для ячейки таблицы
func (r ValidationRow) Value(rule string) string {
	switch rule {
	case RuleMinLength:
		return r.MinLength
	case RuleMaxLength:
		return r.MaxLength
	case RulePattern:
		return r.Pattern
	case RuleErrorMessage:
		return r.ErrorMessage
	}
	return ""
}

func validationRows(fields []formconfigapimodels.FieldDefinition) []ValidationRow {
	result := make([]ValidationRow, 0, len(fields))
	for _, field := range fields {
		rules := ParseValidations(field.Validations)
		result = append(result, ValidationRow{
			FieldID:      field.ID,
			Label:        field.Label,
			Name:         field.Name,
			MinLength:    models.ValueText(rules[RuleMinLength]),
			MaxLength:    models.ValueText(rules[RuleMaxLength]),
			Pattern:      models.ValueText(rules[RulePattern]),
			ErrorMessage: models.ValueText(rules[RuleErrorMessage]),
		})
	}
	return result
}
