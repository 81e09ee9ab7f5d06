package cache

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"github.com/rxtech-lab/argo-chart/internal/types"
)

// Key identifies a registry entry holding a value of type V.
// Two keys address the same entry when their identities are equal, regardless of V.
type Key[V any] struct {
	id any
}

type typeIdentity struct {
	t reflect.Type
}

func (t typeIdentity) String() string {
	return t.t.String()
}

type quotesIdentity struct{}

func (quotesIdentity) String() string {
	return "quotes"
}

// QuotesKey is the reserved entry holding the raw quote sequence.
var QuotesKey = Key[[]types.Quote]{id: quotesIdentity{}}

// KeyOf returns the key identified by the type M itself, i.e. "the one default instance of M".
func KeyOf[V any, M any]() Key[V] {
	return Key[V]{id: typeIdentity{t: reflect.TypeFor[M]()}}
}

// NewKey returns a key identified by an explicit comparable value, used when several
// instances of the same kind must coexist.
func NewKey[V any, I comparable](id I) Key[V] {
	return Key[V]{id: id}
}

// NewUniqueKey returns a key that never collides with any other key.
func NewUniqueKey[V any]() Key[V] {
	return Key[V]{id: uuid.New()}
}

// ID returns the identity used to address the registry.
func (k Key[V]) ID() any {
	return k.id
}

func (k Key[V]) String() string {
	if s, ok := k.id.(fmt.Stringer); ok {
		return s.String()
	}

	return fmt.Sprintf("%v", k.id)
}
