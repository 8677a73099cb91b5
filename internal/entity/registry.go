// internal/entity/registry.go
package entity

import "go-scurve-defense/internal/types"

type entry[T any] struct {
	id   types.EntityID
	item *T
}

// Registry хранит сущности одного вида в порядке добавления и дает поиск по ID.
// Порядок важен: обход карты в Go случаен, а симуляция должна быть детерминированной.
type Registry[T any] struct {
	entries []entry[T]
	index   map[types.EntityID]*T
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{index: make(map[types.EntityID]*T)}
}

// Add добавляет сущность в конец. Повторный ID — ошибка программиста.
func (r *Registry[T]) Add(id types.EntityID, item *T) {
	if _, exists := r.index[id]; exists {
		panic("entity: duplicate id in registry")
	}
	r.entries = append(r.entries, entry[T]{id: id, item: item})
	r.index[id] = item
}

// Get — слабая ссылка: после удаления сущности возвращает false.
func (r *Registry[T]) Get(id types.EntityID) (*T, bool) {
	item, ok := r.index[id]
	return item, ok
}

func (r *Registry[T]) Len() int { return len(r.entries) }

// Each обходит сущности в порядке добавления. Добавленные во время обхода
// сущности в текущий обход не попадают.
func (r *Registry[T]) Each(fn func(id types.EntityID, item *T)) {
	n := len(r.entries)
	for i := 0; i < n && i < len(r.entries); i++ {
		fn(r.entries[i].id, r.entries[i].item)
	}
}

// All возвращает копию списка сущностей в порядке добавления.
func (r *Registry[T]) All() []*T {
	out := make([]*T, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.item
	}
	return out
}

// Remove удаляет одну сущность, сохраняя порядок остальных.
func (r *Registry[T]) Remove(id types.EntityID) bool {
	if _, ok := r.index[id]; !ok {
		return false
	}
	return r.RemoveIf(func(eid types.EntityID, _ *T) bool { return eid == id }) == 1
}

// RemoveIf удаляет все сущности, для которых pred вернул true, и возвращает их число.
func (r *Registry[T]) RemoveIf(pred func(id types.EntityID, item *T) bool) int {
	kept := r.entries[:0]
	removed := 0
	for _, e := range r.entries {
		if pred(e.id, e.item) {
			delete(r.index, e.id)
			removed++
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(r.entries); i++ {
		r.entries[i] = entry[T]{}
	}
	r.entries = kept
	return removed
}

// Reset удаляет все сущности.
func (r *Registry[T]) Reset() {
	r.entries = nil
	r.index = make(map[types.EntityID]*T)
}
