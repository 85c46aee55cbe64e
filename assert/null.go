package assert

import (
	"reflect"
	"sync"
)

type nullPredicate func(value any) bool

// nullRegistry maps a type to the predicate deciding whether its values count
// as null. Interface types are also kept in registration order so that
// implementations of a registered interface inherit its predicate.
type nullRegistry struct {
	mu         sync.RWMutex
	predicates map[reflect.Type]nullPredicate
	interfaces []reflect.Type
	// resolved caches the predicate lookup per dynamic type. A nil entry
	// means no predicate applies. Cleared on every (un)registration.
	resolved sync.Map
}

var nullPredicates = &nullRegistry{predicates: make(map[reflect.Type]nullPredicate)}

// RegisterNullPredicate makes IsNull and IsNotNull consult isNull for values of
// type T, on top of the native nil check. If T is an interface, the predicate
// also applies to every type implementing it that has no predicate of its own.
//
// Usage:
//
//	// Entities stay reachable after the world despawns them.
//	assert.RegisterNullPredicate(func(e *Entity) bool { return e.despawned })
//
//	e := world.Spawn()
//	world.Despawn(e)
//	assert.IsNull(e, "") // passes
//
// Registering a type again replaces its predicate. A nil predicate is
// reported as an IsNotNull failure and never registered.
func RegisterNullPredicate[T any](isNull func(T) bool) {
	IsNotNull(isNull, "RegisterNullPredicate needs a predicate")
	if isNull == nil {
		return
	}
	typ := reflect.TypeFor[T]()
	pred := func(value any) bool {
		v, ok := value.(T)
		return ok && isNull(v)
	}

	r := nullPredicates
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.predicates[typ]; !exists && typ.Kind() == reflect.Interface {
		r.interfaces = append(r.interfaces, typ)
	}
	r.predicates[typ] = pred
	r.resolved.Clear()
}

// UnregisterNullPredicate restores native nil semantics for T.
func UnregisterNullPredicate[T any]() {
	typ := reflect.TypeFor[T]()

	r := nullPredicates
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.predicates, typ)
	for i, iface := range r.interfaces {
		if iface == typ {
			r.interfaces = append(r.interfaces[:i], r.interfaces[i+1:]...)
			break
		}
	}
	r.resolved.Clear()
}

// IsConsideredNull reports whether value is nil, or is a value its type's
// registered predicate treats as null.
func IsConsideredNull[T any](value T) bool {
	boxed := any(value)
	if isNativeNil(boxed) {
		return true
	}
	pred := nullPredicates.resolve(reflect.TypeOf(boxed), reflect.TypeFor[T]())
	return pred != nil && pred(boxed)
}

func (r *nullRegistry) resolve(dynamic, static reflect.Type) nullPredicate {
	type key struct{ dynamic, static reflect.Type }
	k := key{dynamic, static}
	if cached, ok := r.resolved.Load(k); ok {
		return cached.(nullPredicate)
	}

	r.mu.RLock()
	pred, ok := r.predicates[dynamic]
	if !ok {
		pred, ok = r.predicates[static]
	}
	if !ok {
		for _, iface := range r.interfaces {
			if dynamic.Implements(iface) {
				pred = r.predicates[iface]
				break
			}
		}
	}
	// Stored under the read lock so a concurrent registration cannot clear
	// the cache between the lookup and the store.
	r.resolved.Store(k, pred)
	r.mu.RUnlock()
	return pred
}

func isNativeNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}
