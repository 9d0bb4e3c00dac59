package schema

// Type is the concrete type implementation of a node. Its dynamic Go type is
// the fallback lookup key when a node's Kind has no adapter, so a user type
// that embeds a built-in one (for example `type Secret struct{ StringType }`)
// is distinct from it.
type Type interface {
	TypeName() string
}

type (
	IntType      struct{}
	StringType   struct{}
	BoolType     struct{}
	FloatType    struct{}
	DecimalType  struct{}
	MoneyType    struct{}
	DateType     struct{}
	TimeType     struct{}
	DateTimeType struct{}
	MappingType  struct{}
	SequenceType struct{}
	SetType      struct{}
	TupleType    struct{}
)

func (IntType) TypeName() string      { return string(KindInt) }
func (StringType) TypeName() string   { return string(KindString) }
func (BoolType) TypeName() string     { return string(KindBool) }
func (FloatType) TypeName() string    { return string(KindFloat) }
func (DecimalType) TypeName() string  { return string(KindDecimal) }
func (MoneyType) TypeName() string    { return string(KindMoney) }
func (DateType) TypeName() string     { return string(KindDate) }
func (TimeType) TypeName() string     { return string(KindTime) }
func (DateTimeType) TypeName() string { return string(KindDateTime) }
func (MappingType) TypeName() string  { return string(KindMapping) }
func (SequenceType) TypeName() string { return string(KindSequence) }
func (SetType) TypeName() string      { return string(KindSet) }
func (TupleType) TypeName() string    { return string(KindTuple) }

var builtinTypes = map[Kind]Type{
	KindInt:      IntType{},
	KindString:   StringType{},
	KindBool:     BoolType{},
	KindFloat:    FloatType{},
	KindDecimal:  DecimalType{},
	KindMoney:    MoneyType{},
	KindDate:     DateType{},
	KindTime:     TimeType{},
	KindDateTime: DateTimeType{},
	KindMapping:  MappingType{},
	KindSequence: SequenceType{},
	KindSet:      SetType{},
	KindTuple:    TupleType{},
}

// TypeOf returns the built-in Type for k, or nil for user kinds.
func TypeOf(k Kind) Type { return builtinTypes[k] }

// New returns a required node named name with type t. The Kind tag is left
// empty; lookups fall back to the dynamic type of t.
func New(name string, t Type, children ...*Node) *Node {
	return &Node{Name: name, Type: t, Children: children, Required: true}
}

// Scalars leave Kind empty and resolve through their Type.

func Int(name string) *Node      { return New(name, IntType{}) }
func String(name string) *Node   { return New(name, StringType{}) }
func Bool(name string) *Node     { return New(name, BoolType{}) }
func Float(name string) *Node    { return New(name, FloatType{}) }
func Decimal(name string) *Node  { return New(name, DecimalType{}) }
func Money(name string) *Node    { return New(name, MoneyType{}) }
func Date(name string) *Node     { return New(name, DateType{}) }
func Time(name string) *Node     { return New(name, TimeType{}) }
func DateTime(name string) *Node { return New(name, DateTimeType{}) }

// Mapping returns an object node whose properties are children, in order.
func Mapping(name string, children ...*Node) *Node {
	n := New(name, MappingType{}, children...)
	n.Kind = KindMapping
	return n
}

// Sequence returns a list node whose items are described by item.
func Sequence(name string, item *Node) *Node {
	n := New(name, SequenceType{}, item)
	n.Kind = KindSequence
	return n
}

// Tuple returns a fixed-length positional node, one slot per child.
func Tuple(name string, children ...*Node) *Node {
	n := New(name, TupleType{}, children...)
	n.Kind = KindTuple
	return n
}

// Set returns a node for a collection of unique items.
func Set(name string) *Node {
	n := New(name, SetType{})
	n.Kind = KindSet
	return n
}
