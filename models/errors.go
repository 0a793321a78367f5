package models

// UserError ошибка проверки ввода. Запрос в backend не отправляется, текст показывается пользователю как есть.
type UserError string

func (e UserError) Error() string {
	return string(e)
}
