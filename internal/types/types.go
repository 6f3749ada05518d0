// internal/types/types.go
package types

// EntityID — идентификатор сущности внутри одного этапа.
// Ноль зарезервирован под «нет сущности».
type EntityID uint64
