package formconfigapimodels

import (
	"bytes"
	"recruitment-dashboard/models"
	"strings"

	"github.com/pkg/errors"
)

// Flag логический признак. sqlite отдает его как 0/1, иногда как true/false или null.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	switch strings.ToLower(value) {
	case "true", "1":
		*f = true
	case "false", "0", "null", "":
		*f = false
	default:
		return errors.Errorf("некорректное логическое значение: %s", string(data))
	}
	return nil
}

type FieldDefinition struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Label       string           `json:"label"`
	Type        models.FieldType `json:"type"`
	Subsection  string           `json:"subsection"`
	FieldOrder  int              `json:"field_order"`
	Required    Flag             `json:"required"`
	IsCore      Flag             `json:"is_core"`
	Options     string           `json:"options"`
	Validations string           `json:"validations"`
}

type FieldCreateRequest struct {
	Name       string           `json:"name" form:"name"`
	Label      string           `json:"label" form:"label"`
	Type       models.FieldType `json:"type" form:"type"`
	Subsection string           `json:"subsection" form:"subsection"`
	Options    string           `json:"options" form:"options"`
	Required   bool             `json:"required" form:"required"`
}

func (r FieldCreateRequest) Validate() error {
	if r.Name == "" {
		return errors.New("Field name is required.")
	}
	if r.Label == "" || r.Type == "" || r.Subsection == "" {
		return errors.New("Name, label, type, and subsection are required.")
	}
	return nil
}

// FieldUpdate частичное изменение поля, передаются только заполненные атрибуты
type FieldUpdate struct {
	Label       *string           `json:"label,omitempty"`
	Type        *models.FieldType `json:"type,omitempty"`
	Subsection  *string           `json:"subsection,omitempty"`
	Options     *string           `json:"options,omitempty"`
	Required    *bool             `json:"required,omitempty"`
	Validations *string           `json:"validations,omitempty"`
}

func (u FieldUpdate) IsEmpty() bool {
	return u.Label == nil && u.Type == nil && u.Subsection == nil &&
		u.Options == nil && u.Required == nil && u.Validations == nil
}

type FieldReorderRequest struct {
	FieldOrders [][2]int `json:"field_orders"`
}
