// internal/types/types.go
package types

// EntityID идентификатор сущности в реестрах. Значения никогда не переиспользуются,
// поэтому устаревший ID просто не находится при поиске.
type EntityID uint64

// NoEntity означает отсутствие ссылки (например, ничего не выбрано).
const NoEntity EntityID = 0
