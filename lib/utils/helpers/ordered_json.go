package helpers

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// DecodeOrderedObject обходит ключи JSON объекта в порядке их следования в документе.
// Значение каждого ключа должно быть прочитано в fn через dec.Decode.
func DecodeOrderedObject(data []byte, fn func(key string, dec *json.Decoder) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return errors.Wrap(err, "ошибка чтения объекта")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.Errorf("ожидался объект, получено %v", tok)
	}
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return errors.Wrap(err, "ошибка чтения ключа")
		}
		key, ok := tok.(string)
		if !ok {
			return errors.Errorf("некорректный ключ %v", tok)
		}
		if err = fn(key, dec); err != nil {
			return err
		}
	}
	if _, err = dec.Token(); err != nil {
		return errors.Wrap(err, "ошибка чтения конца объекта")
	}
	return nil
}

// IsJSONObject проверяет, что документ начинается с '{'
func IsJSONObject(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
