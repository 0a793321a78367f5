package reorder

import (
	"github.com/pkg/errors"
)

var ErrIndexOutOfRange = errors.New("index out of range")

// List упорядоченный список для перетаскивания. Перемещения не сохраняются, пока не вызван Save у владельца списка.
type List[T any] struct {
	items []T
	dirty bool
}

func New[T any](items []T) *List[T] {
	return &List[T]{items: append([]T(nil), items...)}
}

// Move переносит элемент с позиции from на позицию to, остальные сдвигаются
func (l *List[T]) Move(from, to int) error {
	if from < 0 || from >= len(l.items) || to < 0 || to >= len(l.items) {
		return errors.Wrapf(ErrIndexOutOfRange, "move %d -> %d, len %d", from, to, len(l.items))
	}
	if from == to {
		return nil
	}
	item := l.items[from]
	l.items = append(l.items[:from], l.items[from+1:]...)
	l.items = append(l.items[:to], append([]T{item}, l.items[to:]...)...)
	l.dirty = true
	return nil
}

func (l *List[T]) Items() []T {
	return append([]T(nil), l.items...)
}

func (l *List[T]) Len() int {
	return len(l.items)
}

// Dirty порядок менялся с момента создания списка
func (l *List[T]) Dirty() bool {
	return l.dirty
}

// Pairs пары [id, порядок] с порядком от 1 в текущем порядке списка
func Pairs[T any](l *List[T], id func(T) int) [][2]int {
	result := make([][2]int, 0, len(l.items))
	for idx, item := range l.items {
		result = append(result, [2]int{id(item), idx + 1})
	}
	return result
}
