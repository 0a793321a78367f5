package formconfig

import (
	"context"
	"fmt"
	"recruitment-dashboard/models"
	formconfigapimodels "recruitment-dashboard/models/api/formconfig"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	ErrEmptySectionName = models.UserError("Please enter a section name.")
	ErrNoSections       = models.UserError("No sections to reorder.")
	ErrSectionNotFound  = models.UserError("Section not found.")
)

func (i *impl) CreateSection(ctx context.Context, request formconfigapimodels.SectionRequest) error {
	request.Name = strings.TrimSpace(request.Name)
	request.Description = strings.TrimSpace(request.Description)
	if request.Name == "" {
		return ErrEmptySectionName
	}
	if request.Icon == "" {
		request.Icon = models.DefaultSectionIcon
	}
	logger := log.WithField("section", request.Name)
	_, err := i.client.CreateSection(ctx, request)
	if err != nil {
		logger.WithError(err).Error("ошибка создания раздела формы")
		return errors.Wrap(err, "ошибка создания раздела формы")
	}
	logger.Info("раздел формы создан")
	return i.refresh(ctx)
}

// RenameSection пустое или прежнее имя ничего не меняет. Описание и иконка берутся из кэша.
func (i *impl) RenameSection(ctx context.Context, name, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" || newName == name {
		return nil
	}
	request := formconfigapimodels.SectionRequest{
		Name: newName,
		Icon: models.DefaultSectionIcon,
	}
	if section, ok := i.findSection(name); ok {
		request.Description = section.Description
		if section.Icon != "" {
			request.Icon = section.Icon
		}
	}
	logger := log.
		WithField("section", name).
		WithField("new_name", newName)
	_, err := i.client.UpdateSection(ctx, name, request)
	if err != nil {
		logger.WithError(err).Error("ошибка переименования раздела формы")
		return errors.Wrap(err, "ошибка переименования раздела формы")
	}
	logger.Info("раздел формы переименован")
	return i.refresh(ctx)
}

// DeleteSection раздел, на который ссылается хотя бы одно поле, не удаляется и запрос не отправляется.
// Пустой кэш сначала загружается.
func (i *impl) DeleteSection(ctx context.Context, name string, confirmed bool) error {
	if err := i.ensureLoaded(ctx); err != nil {
		return err
	}
	if _, ok := i.findSection(name); !ok {
		return ErrSectionNotFound
	}
	if count := FieldCount(i.state.Fields(), name); count > 0 {
		return models.UserError(fmt.Sprintf(
			"Cannot delete section %q because it contains %d field(s). Please move or delete the fields first.", name, count))
	}
	if !confirmed {
		return models.UserError(fmt.Sprintf("Are you sure you want to delete the section %q?", name))
	}
	logger := log.WithField("section", name)
	_, err := i.client.DeleteSection(ctx, name)
	if err != nil {
		logger.WithError(err).Error("ошибка удаления раздела формы")
		return errors.Wrap(err, "ошибка удаления раздела формы")
	}
	logger.Info("раздел формы удален")
	return i.refresh(ctx)
}

func (i *impl) MoveSection(from, to int) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.sectionOrder.Move(from, to)
}

func (i *impl) SaveSectionOrder(ctx context.Context) error {
	i.mu.Lock()
	sections := i.sectionOrder.Items()
	i.mu.Unlock()
	if len(sections) == 0 {
		return ErrNoSections
	}
	names := make([]string, 0, len(sections))
	for _, section := range sections {
		names = append(names, section.Name)
	}
	_, err := i.client.ReorderSections(ctx, formconfigapimodels.SectionReorderRequest{Sections: names})
	if err != nil {
		log.WithError(err).Error("ошибка сохранения порядка разделов")
		return errors.Wrap(err, "ошибка сохранения порядка разделов")
	}
	log.WithField("sections", names).Info("порядок разделов сохранен")
	return i.refresh(ctx)
}

func (i *impl) findSection(name string) (formconfigapimodels.Section, bool) {
	for _, section := range i.state.Sections() {
		if section.Name == name {
			return section, true
		}
	}
	return formconfigapimodels.Section{}, false
}

func sectionViews(sections []formconfigapimodels.Section, fields []formconfigapimodels.FieldDefinition) []SectionView {
	result := make([]SectionView, 0, len(sections))
	for _, section := range sections {
		result = append(result, SectionView{
			Section:    section,
			FieldCount: FieldCount(fields, section.Name),
			IconClass:  models.SectionIconClass(section.Icon),
		})
	}
	return result
}
