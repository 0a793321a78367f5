package users

import (
	"context"
	"recruitment-dashboard/lib/backend"
	initchecker "recruitment-dashboard/lib/utils/init-checker"
	"recruitment-dashboard/models"
	usersapimodels "recruitment-dashboard/models/api/users"
	"strings"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	ErrAdminDelete          = models.UserError("Admin users cannot be deleted.")
	ErrUserNotFound         = models.UserError("User not found.")
	ErrConfirmationRequired = models.UserError("Are you sure you want to delete this user?")
)

type Provider interface {
	List(ctx context.Context) ([]usersapimodels.User, error)
	// Add добавляет пользователя с ролью viewer, возвращает сообщение backend
	Add(ctx context.Context, request usersapimodels.CreateRequest) (string, error)
	Delete(ctx context.Context, userID int, confirmed bool) error
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(backend.Instance)
}

func NewInstance(client backend.Provider) Provider {
	instance := &impl{
		client: client,
	}
	initchecker.CheckInit(
		"client", instance.client,
	)
	return instance
}

type impl struct {
	client backend.Provider
	mu     sync.Mutex
	cached []usersapimodels.User
	loaded bool
}

func (i *impl) List(ctx context.Context) ([]usersapimodels.User, error) {
	list, err := i.client.GetUsers(ctx)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка пользователей")
		return nil, errors.Wrap(err, "ошибка получения списка пользователей")
	}
	i.mu.Lock()
	i.cached = list
	i.loaded = true
	i.mu.Unlock()
	return list, nil
}

func (i *impl) Add(ctx context.Context, request usersapimodels.CreateRequest) (string, error) {
	request.Email = strings.TrimSpace(request.Email)
	if err := request.Validate(); err != nil {
		return "", models.UserError(err.Error())
	}
	resp, err := i.client.CreateUser(ctx, request)
	if err != nil {
		log.WithError(err).WithField("email", request.Email).Error("ошибка добавления пользователя")
		return "", errors.Wrap(err, "ошибка добавления пользователя")
	}
	log.WithField("email", request.Email).Info("пользователь добавлен")
	return resp.Message, nil
}

func (i *impl) Delete(ctx context.Context, userID int, confirmed bool) error {
	request := usersapimodels.DeleteRequest{ID: userID}
	if err := request.Validate(); err != nil {
		return models.UserError(err.Error())
	}
	if err := i.ensureLoaded(ctx); err != nil {
		return err
	}
	user, ok := i.find(userID)
	if !ok {
		return ErrUserNotFound
	}
	if !user.CanDelete() {
		return ErrAdminDelete
	}
	if !confirmed {
		return ErrConfirmationRequired
	}
	_, err := i.client.DeleteUser(ctx, request)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Error("ошибка удаления пользователя")
		return errors.Wrap(err, "ошибка удаления пользователя")
	}
	log.WithField("user_id", userID).Info("пользователь удален")
	return nil
}

// ensureLoaded роль пользователя проверяется по списку, поэтому пустой кэш сначала загружается
func (i *impl) ensureLoaded(ctx context.Context) error {
	i.mu.Lock()
	loaded := i.loaded
	i.mu.Unlock()
	if loaded {
		return nil
	}
	_, err := i.List(ctx)
	return err
}

func (i *impl) find(userID int) (usersapimodels.User, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	for _, user := range i.cached {
		if user.ID == userID {
			return user, true
		}
	}
	return usersapimodels.User{}, false
}
