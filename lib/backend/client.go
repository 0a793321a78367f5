package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"recruitment-dashboard/metrics"
	apimodels "recruitment-dashboard/models/api"
	dashboardapimodels "recruitment-dashboard/models/api/dashboard"
	formconfigapimodels "recruitment-dashboard/models/api/formconfig"
	statusapimodels "recruitment-dashboard/models/api/status"
	usersapimodels "recruitment-dashboard/models/api/users"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	GetData(ctx context.Context, query url.Values) (*dashboardapimodels.DataResponse, error)

	GetFields(ctx context.Context) ([]formconfigapimodels.FieldDefinition, error)
	CreateField(ctx context.Context, request formconfigapimodels.FieldCreateRequest) (*apimodels.ActionResponse, error)
	UpdateField(ctx context.Context, fieldID int, request formconfigapimodels.FieldUpdate) (*apimodels.ActionResponse, error)
	DeleteField(ctx context.Context, fieldID int) (*apimodels.ActionResponse, error)
	ReorderFields(ctx context.Context, request formconfigapimodels.FieldReorderRequest) (*apimodels.ActionResponse, error)

	GetSections(ctx context.Context) ([]formconfigapimodels.Section, error)
	CreateSection(ctx context.Context, request formconfigapimodels.SectionRequest) (*apimodels.ActionResponse, error)
	UpdateSection(ctx context.Context, name string, request formconfigapimodels.SectionRequest) (*apimodels.ActionResponse, error)
	DeleteSection(ctx context.Context, name string) (*apimodels.ActionResponse, error)
	ReorderSections(ctx context.Context, request formconfigapimodels.SectionReorderRequest) (*apimodels.ActionResponse, error)

	GetUsers(ctx context.Context) ([]usersapimodels.User, error)
	CreateUser(ctx context.Context, request usersapimodels.CreateRequest) (*apimodels.ActionResponse, error)
	DeleteUser(ctx context.Context, request usersapimodels.DeleteRequest) (*apimodels.ActionResponse, error)

	UpdateStatus(ctx context.Context, request statusapimodels.UpdateRequest) (*apimodels.ActionResponse, error)

	// GetUpload файл резюме из статики backend
	GetUpload(ctx context.Context, fileName string) (*Upload, error)
}

var Instance Provider

type Upload struct {
	ContentType string
	Body        []byte
}

type impl struct {
	host          string
	client        *http.Client
	sessionCookie string
}

func NewProvider(host string, timeout time.Duration, sessionCookie string) {
	Instance = NewClient(host, &http.Client{Timeout: timeout}, sessionCookie)
}

func NewClient(host string, client *http.Client, sessionCookie string) Provider {
	if client == nil {
		client = &http.Client{}
	}
	return &impl{
		host:          strings.TrimRight(host, "/"),
		client:        client,
		sessionCookie: sessionCookie,
	}
}

const (
	dataPath            string = "%s/api/data"
	formConfigPath      string = "%s/api/form/config"
	formFieldPath       string = "%s/api/form/config/%d"
	formReorderPath     string = "%s/api/form/config/reorder"
	sectionsPath        string = "%s/api/form/sections"
	sectionPath         string = "%s/api/form/sections/%s"
	sectionsReorderPath string = "%s/api/form/sections/reorder"
	usersPath           string = "%s/api/users"
	usersDeletePath     string = "%s/api/users/delete"
	updateStatusPath    string = "%s/api/update_status"
	uploadsPath         string = "%s/uploads/%s"

	maxLoggedBody = 2048
)

func (i impl) GetData(ctx context.Context, query url.Values) (*dashboardapimodels.DataResponse, error) {
	uri := fmt.Sprintf(dataPath, i.host)
	if encoded := query.Encode(); encoded != "" {
		uri = uri + "?" + encoded
	}
	resp := dashboardapimodels.DataResponse{}
	if err := i.get(ctx, uri, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i impl) GetFields(ctx context.Context) ([]formconfigapimodels.FieldDefinition, error) {
	resp := []formconfigapimodels.FieldDefinition{}
	if err := i.get(ctx, fmt.Sprintf(formConfigPath, i.host), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (i impl) CreateField(ctx context.Context, request formconfigapimodels.FieldCreateRequest) (*apimodels.ActionResponse, error) {
	return i.action(ctx, http.MethodPost, fmt.Sprintf(formConfigPath, i.host), request)
}

func (i impl) UpdateField(ctx context.Context, fieldID int, request formconfigapimodels.FieldUpdate) (*apimodels.ActionResponse, error) {
	return i.action(ctx, http.MethodPut, fmt.Sprintf(formFieldPath, i.host, fieldID), request)
}

func (i impl) DeleteField(ctx context.Context, fieldID int) (*apimodels.ActionResponse, error) {
	return i.action(ctx, http.MethodDelete, fmt.Sprintf(formFieldPath, i.host, fieldID), nil)
}

func (i impl) ReorderFields(ctx context.Context, request formconfigapimodels.FieldReorderRequest) (*apimodels.ActionResponse, error) {
	return i.action(ctx, http.MethodPost, fmt.Sprintf(formReorderPath, i.host), request)
}

func (i impl) GetSections(ctx context.Context) ([]formconfigapimodels.Section, error) {
	resp := []formconfigapimodels.Section{}
	if err := i.get(ctx, fmt.Sprintf(sectionsPath, i.host), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (i impl) CreateSection(ctx context.Context, request formconfigapimodels.SectionRequest) (*apimodels.ActionResponse, error) {
	return i.action(ctx, http.MethodPost, fmt.Sprintf(sectionsPath, i.host), request)
}

func (i impl) UpdateSection(ctx context.Context, name string, request formconfigapimodels.SectionRequest) (*apimodels.ActionResponse, error) {
	return i.action(ctx, http.MethodPut, fmt.Sprintf(sectionPath, i.host, url.PathEscape(name)), request)
}

func (i impl) DeleteSection(ctx context.Context, name string) (*apimodels.ActionResponse, error) {
	return i.action(ctx, http.MethodDelete, fmt.Sprintf(sectionPath, i.host, url.PathEscape(name)), nil)
}

func (i impl) ReorderSections(ctx context.Context, request formconfigapimodels.SectionReorderRequest) (*apimodels.ActionResponse, error) {
	return i.action(ctx, http.MethodPost, fmt.Sprintf(sectionsReorderPath, i.host), request)
}

func (i impl) GetUsers(ctx context.Context) ([]usersapimodels.User, error) {
	resp := []usersapimodels.User{}
	if err := i.get(ctx, fmt.Sprintf(usersPath, i.host), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (i impl) CreateUser(ctx context.Context, request usersapimodels.CreateRequest) (*apimodels.ActionResponse, error) {
	return i.action(ctx, http.MethodPost, fmt.Sprintf(usersPath, i.host), request)
}

func (i impl) DeleteUser(ctx context.Context, request usersapimodels.DeleteRequest) (*apimodels.ActionResponse, error) {
	return i.action(ctx, http.MethodPost, fmt.Sprintf(usersDeletePath, i.host), request)
}

func (i impl) UpdateStatus(ctx context.Context, request statusapimodels.UpdateRequest) (*apimodels.ActionResponse, error) {
	return i.action(ctx, http.MethodPost, fmt.Sprintf(updateStatusPath, i.host), request)
}

func (i impl) GetUpload(ctx context.Context, fileName string) (*Upload, error) {
	uri := fmt.Sprintf(uploadsPath, i.host, url.PathEscape(fileName))
	logger := log.WithField("external_request", uri)
	r, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования запроса")
	}
	body, response, err := i.do(ctx, logger, r, false)
	if err != nil {
		return nil, err
	}
	return &Upload{
		ContentType: response.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

func (i impl) get(ctx context.Context, uri string, resp interface{}) error {
	logger := log.WithField("external_request", uri)
	r, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return errors.Wrap(err, "ошибка формирования запроса")
	}
	r.Header.Add("Accept", "application/json")
	return i.sendRequest(ctx, logger, r, resp)
}

func (i impl) action(ctx context.Context, method, uri string, request interface{}) (*apimodels.ActionResponse, error) {
	logger := log.
		WithField("external_request", uri).
		WithField("method", method)
	var body io.Reader
	if request != nil {
		data, err := json.Marshal(request)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка сериализации запроса")
		}
		logger = logger.WithField("request_body", string(data))
		body = bytes.NewReader(data)
	}
	r, err := http.NewRequestWithContext(ctx, method, uri, body)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования запроса")
	}
	r.Header.Add("Content-Type", "application/json")
	r.Header.Add("Accept", "application/json")
	resp := apimodels.ActionResponse{}
	if err = i.sendRequest(ctx, logger, r, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i impl) sendRequest(ctx context.Context, logger *log.Entry, r *http.Request, resp interface{}) error {
	responseBody, _, err := i.do(ctx, logger, r, true)
	if err != nil {
		return err
	}
	if resp == nil || len(bytes.TrimSpace(responseBody)) == 0 {
		return nil
	}
	err = json.Unmarshal(responseBody, resp)
	if err != nil {
		logger.WithError(err).Error("ошибка сериализации ответа")
		return &DecodeError{Err: err}
	}
	return nil
}

// do выполняет запрос; статус вне 2xx возвращается как *APIError даже если тело разобралось
func (i impl) do(ctx context.Context, logger *log.Entry, r *http.Request, logBody bool) ([]byte, *http.Response, error) {
	r.Header.Add("User-Agent", "RecruitmentDashboard/1.0")
	cookie := sessionFrom(ctx)
	if cookie == "" {
		cookie = i.sessionCookie
	}
	if cookie != "" {
		r.Header.Set("Cookie", cookie)
	}
	if requestID := RequestIDFrom(ctx); requestID != "" {
		r.Header.Set("X-Request-ID", requestID)
		logger = logger.WithField("request_id", requestID)
	}
	started := time.Now()
	response, err := i.client.Do(r)
	if err != nil {
		metrics.ObserveBackend(r.Method, r.URL.Path, 0, started)
		logger.WithError(err).Error("ошибка отправки запроса в backend")
		return nil, nil, &TransportError{Err: err}
	}
	metrics.ObserveBackend(r.Method, r.URL.Path, response.StatusCode, started)
	defer response.Body.Close()
	// читаем Body только 1 раз
	responseBody, err := io.ReadAll(response.Body)
	logger = logger.WithField("response_status_code", response.StatusCode)
	if err != nil {
		logger.WithError(err).Error("ошибка чтения ответа backend")
		return nil, nil, &TransportError{Err: err}
	}
	if logBody {
		logger = logger.WithField("response_body", truncate(responseBody))
	}
	if response.StatusCode >= 200 && response.StatusCode < 300 {
		logger.Debug("ответ backend получен")
		return responseBody, response, nil
	}
	logger.Warn("backend вернул ошибку")
	return nil, nil, &APIError{
		StatusCode: response.StatusCode,
		Message:    parseErrorMessage(responseBody),
	}
}

func truncate(body []byte) string {
	if len(body) > maxLoggedBody {
		return string(body[:maxLoggedBody]) + "..."
	}
	return string(body)
}
