// Package ptr содержит вспомогательную функцию для получения указателя на значение.
package ptr

// Ptr возвращает указатель на переданное значение
func Ptr[T any](v T) *T {
	return &v
}
