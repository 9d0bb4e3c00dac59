package schema

import (
	"sort"

	"github.com/iancoleman/strcase"
)

// Kind is the semantic kind tag of a node. The built-in kinds are listed
// below; callers may introduce their own.
type Kind string

const (
	KindInt      Kind = "int"
	KindString   Kind = "string"
	KindBool     Kind = "bool"
	KindFloat    Kind = "float"
	KindDecimal  Kind = "decimal"
	KindMoney    Kind = "money"
	KindDate     Kind = "date"
	KindTime     Kind = "time"
	KindDateTime Kind = "datetime"
	KindMapping  Kind = "mapping"
	KindSequence Kind = "sequence"
	KindSet      Kind = "set"
	KindTuple    Kind = "tuple"
)

// kindAliases maps snake_cased spellings to built-in kinds.
var kindAliases = map[string]Kind{
	"int":       KindInt,
	"integer":   KindInt,
	"string":    KindString,
	"str":       KindString,
	"bool":      KindBool,
	"boolean":   KindBool,
	"float":     KindFloat,
	"decimal":   KindDecimal,
	"money":     KindMoney,
	"date":      KindDate,
	"time":      KindTime,
	"datetime":  KindDateTime,
	"date_time": KindDateTime,
	"mapping":   KindMapping,
	"object":    KindMapping,
	"schema":    KindMapping,
	"sequence":  KindSequence,
	"list":      KindSequence,
	"set":       KindSet,
	"tuple":     KindTuple,
}

// ParseKind normalizes a kind name. "DateTime", "date-time" and "date_time"
// all yield KindDateTime. Unknown names are returned snake_cased so that
// user-registered kinds keep a stable spelling.
func ParseKind(name string) Kind {
	n := strcase.ToSnake(name)
	if k, ok := kindAliases[n]; ok {
		return k
	}
	return Kind(n)
}

// IsBuiltin reports whether k is one of the built-in kinds.
func (k Kind) IsBuiltin() bool {
	_, ok := builtinTypes[k]
	return ok
}

// IsContainer reports whether nodes of kind k have children.
func (k Kind) IsContainer() bool {
	switch k {
	case KindMapping, KindSequence, KindSet, KindTuple:
		return true
	}
	return false
}

// BuiltinKinds returns the built-in kinds in lexical order.
func BuiltinKinds() []Kind {
	out := make([]Kind, 0, len(builtinTypes))
	for k := range builtinTypes {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
