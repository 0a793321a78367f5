package models

import (
	"bytes"
	"encoding/json"
	"recruitment-dashboard/lib/utils/helpers"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// CandidateRecord строка таблицы заявок. Порядок ключей сохраняется в том виде, в котором его отдал backend.
type CandidateRecord struct {
	keys   []string
	values map[string]any
}

func NewCandidateRecord() *CandidateRecord {
	return &CandidateRecord{values: map[string]any{}}
}

func (r *CandidateRecord) Set(key string, value any) {
	if r.values == nil {
		r.values = map[string]any{}
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

func (r *CandidateRecord) Keys() []string {
	if r == nil {
		return nil
	}
	result := make([]string, len(r.keys))
	copy(result, r.keys)
	return result
}

func (r *CandidateRecord) Get(key string) (any, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r.values[key]
	return v, ok
}

// Text значение поля в виде строки, null и отсутствующее поле дают ""
func (r *CandidateRecord) Text(key string) string {
	v, _ := r.Get(key)
	return ValueText(v)
}

func (r *CandidateRecord) Len() int {
	if r == nil {
		return 0
	}
	return len(r.keys)
}

// Email email кандидата в нижнем регистре
func (r *CandidateRecord) Email() string {
	return strings.ToLower(strings.TrimSpace(r.Text(KeyEmail)))
}

func (r *CandidateRecord) UnmarshalJSON(data []byte) error {
	rec := CandidateRecord{values: map[string]any{}}
	err := helpers.DecodeOrderedObject(data, func(key string, dec *json.Decoder) error {
		var value any
		if err := dec.Decode(&value); err != nil {
			return errors.Wrapf(err, "ошибка чтения поля %s", key)
		}
		rec.Set(key, value)
		return nil
	})
	if err != nil {
		return err
	}
	*r = rec
	return nil
}

func (r CandidateRecord) MarshalJSON() ([]byte, error) {
	buf := bytes.Buffer{}
	buf.WriteByte('{')
	for idx, key := range r.keys {
		if idx > 0 {
			buf.WriteByte(',')
		}
		keyData, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		valueData, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, errors.Wrapf(err, "ошибка сериализации поля %s", key)
		}
		buf.Write(keyData)
		buf.WriteByte(':')
		buf.Write(valueData)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ValueText строковое представление значения ячейки
func ValueText(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case json.Number:
		return value.String()
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case bool:
		return strconv.FormatBool(value)
	default:
		data, err := json.Marshal(value)
		if err != nil {
			return ""
		}
		return string(data)
	}
}

// IsTruthy пустая строка, null, 0 и false считаются пустыми значениями
func IsTruthy(v any) bool {
	switch value := v.(type) {
	case nil:
		return false
	case string:
		return value != ""
	case json.Number:
		f, err := value.Float64()
		return err != nil || f != 0
	case float64:
		return value != 0
	case bool:
		return value
	}
	return true
}
