package formconfigapimodels

import (
	"encoding/json"
	"recruitment-dashboard/models"
	"strings"

	"github.com/pkg/errors"
)

type Section struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Order       int    `json:"order"`
}

// UnmarshalJSON старый формат backend отдает раздел строкой с именем
func (s *Section) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*s = Section{Name: name, Icon: models.DefaultSectionIcon}
		return nil
	}
	var raw struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
		Icon        *string `json:"icon"`
		Order       *int    `json:"order"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "некорректный формат раздела")
	}
	section := Section{Name: raw.Name, Icon: models.DefaultSectionIcon}
	if raw.Description != nil {
		section.Description = *raw.Description
	}
	if raw.Icon != nil && *raw.Icon != "" {
		section.Icon = *raw.Icon
	}
	if raw.Order != nil {
		section.Order = *raw.Order
	}
	*s = section
	return nil
}

type SectionRequest struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
	Icon        string `json:"icon" form:"icon"`
}

func (r SectionRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("Section name is required.")
	}
	return nil
}

type SectionReorderRequest struct {
	Sections []string `json:"sections"`
}
