package formconfig

import (
	"context"
	"recruitment-dashboard/lib/admin/reorder"
	"recruitment-dashboard/lib/utils/helpers"
	"recruitment-dashboard/models"
	formconfigapimodels "recruitment-dashboard/models/api/formconfig"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	ErrEmptyFieldName          = models.UserError("Field Name is required and cannot contain spaces.")
	ErrCoreFieldDelete         = models.UserError("Core fields cannot be deleted.")
	ErrCoreFieldOptional       = models.UserError("Core fields cannot be made optional.")
	ErrFieldNotFound           = models.UserError("Field not found.")
	ErrNoFieldChanges          = models.UserError("No fields to update.")
	ErrNoFieldsToReorder       = models.UserError("No fields to reorder.")
	ErrFieldDeleteNotConfirmed = models.UserError("Are you sure you want to delete this field? This will remove the corresponding column and all its data from the database. This action cannot be undone.")
	MsgFieldOrderSaved         = "Field order saved successfully!"
)

func (i *impl) AddField(ctx context.Context, request formconfigapimodels.FieldCreateRequest) (string, error) {
	request.Name = helpers.NormalizeFieldName(request.Name)
	if request.Name == "" {
		return "", ErrEmptyFieldName
	}
	if err := request.Validate(); err != nil {
		return "", models.UserError(err.Error())
	}
	if !request.Type.HasOptions() {
		request.Options = ""
	}
	logger := log.WithField("field_name", request.Name)
	resp, err := i.client.CreateField(ctx, request)
	if err != nil {
		logger.WithError(err).Error("ошибка добавления поля формы")
		return "", errors.Wrap(err, "ошибка добавления поля формы")
	}
	logger.Info("поле формы добавлено")
	return resp.Message, i.refresh(ctx)
}

func (i *impl) EditField(ctx context.Context, fieldID int, update formconfigapimodels.FieldUpdate) error {
	if update.IsEmpty() {
		return ErrNoFieldChanges
	}
	field, ok := i.findField(fieldID)
	if !ok {
		return ErrFieldNotFound
	}
	if bool(field.IsCore) && update.Required != nil && !*update.Required {
		return ErrCoreFieldOptional
	}
	if update.Validations != nil {
		normalized, err := NormalizeValidations(*update.Validations)
		if err != nil {
			return err
		}
		update.Validations = &normalized
	}
	logger := log.WithField("field_id", fieldID)
	_, err := i.client.UpdateField(ctx, fieldID, update)
	if err != nil {
		logger.WithError(err).Error("ошибка изменения поля формы")
		return errors.Wrap(err, "ошибка изменения поля формы")
	}
	logger.Info("поле формы изменено")
	return i.refresh(ctx)
}

func (i *impl) DeleteField(ctx context.Context, fieldID int, confirmed bool) error {
	field, ok := i.findField(fieldID)
	if !ok {
		return ErrFieldNotFound
	}
	if field.IsCore {
		return ErrCoreFieldDelete
	}
	if !confirmed {
		return ErrFieldDeleteNotConfirmed
	}
	logger := log.
		WithField("field_id", fieldID).
		WithField("field_name", field.Name)
	_, err := i.client.DeleteField(ctx, fieldID)
	if err != nil {
		logger.WithError(err).Error("ошибка удаления поля формы")
		return errors.Wrap(err, "ошибка удаления поля формы")
	}
	logger.Info("поле формы удалено")
	return i.refresh(ctx)
}

// ToggleRequired кэш меняется сразу и откатывается, если backend вернул ошибку
func (i *impl) ToggleRequired(ctx context.Context, fieldID int, required bool) error {
	field, ok := i.findField(fieldID)
	if !ok {
		return ErrFieldNotFound
	}
	if bool(field.IsCore) && !required {
		return ErrCoreFieldOptional
	}
	previous := field.Required
	i.state.UpdateField(fieldID, func(f *formconfigapimodels.FieldDefinition) {
		f.Required = formconfigapimodels.Flag(required)
	})
	_, err := i.client.UpdateField(ctx, fieldID, formconfigapimodels.FieldUpdate{Required: &required})
	if err != nil {
		i.state.UpdateField(fieldID, func(f *formconfigapimodels.FieldDefinition) {
			f.Required = previous
		})
		log.WithError(err).WithField("field_id", fieldID).Error("ошибка изменения обязательности поля")
		return errors.Wrap(err, "ошибка изменения обязательности поля")
	}
	return nil
}

func (i *impl) MoveField(from, to int) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.fieldOrder.Move(from, to)
}

// SaveFieldOrder отправляет весь список пар [id, порядок] в текущем порядке перетаскивания
func (i *impl) SaveFieldOrder(ctx context.Context) error {
	i.mu.Lock()
	pairs := reorder.Pairs(i.fieldOrder, func(f formconfigapimodels.FieldDefinition) int { return f.ID })
	i.mu.Unlock()
	if len(pairs) == 0 {
		return ErrNoFieldsToReorder
	}
	_, err := i.client.ReorderFields(ctx, formconfigapimodels.FieldReorderRequest{FieldOrders: pairs})
	if err != nil {
		log.WithError(err).Error("ошибка сохранения порядка полей")
		return errors.Wrap(err, "ошибка сохранения порядка полей")
	}
	log.WithField("fields", len(pairs)).Info("порядок полей сохранен")
	return i.refresh(ctx)
}

func (i *impl) findField(fieldID int) (formconfigapimodels.FieldDefinition, bool) {
	for _, field := range i.state.Fields() {
		if field.ID == fieldID {
			return field, true
		}
	}
	return formconfigapimodels.FieldDefinition{}, false
}
