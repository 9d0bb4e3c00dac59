package hammer

import "github.com/reoring/hammer/schema"

// bothKeys returns the type keys of v and of a pointer to v.
func bothKeys[T any](v T) []Key {
	return []Key{TypeKey(v), TypeKey(&v)}
}

func keys(k Key, more ...[]Key) []Key {
	out := []Key{k}
	for _, m := range more {
		out = append(out, m...)
	}
	return out
}

// registerBuiltins binds the built-in node kinds, types and validators for
// every supported draft.
func registerBuiltins(r *Registry) {
	// Containers.
	r.mustRegister(adaptMapping, keys(KindKey(schema.KindMapping), bothKeys(schema.MappingType{}))...)
	r.mustRegister(adaptSequence, keys(KindKey(schema.KindSequence), bothKeys(schema.SequenceType{}))...)
	r.mustRegister(adaptSet, keys(KindKey(schema.KindSet), bothKeys(schema.SetType{}))...)
	r.mustRegister(adaptTuple, keys(KindKey(schema.KindTuple), bothKeys(schema.TupleType{}))...)

	// Scalars.
	r.mustRegister(typeAdapter("number"), keys(KindKey(schema.KindInt), bothKeys(schema.IntType{}))...)
	r.mustRegister(typeAdapter("string"), keys(KindKey(schema.KindString), bothKeys(schema.StringType{}))...)
	r.mustRegister(typeAdapter("boolean"), keys(KindKey(schema.KindBool), bothKeys(schema.BoolType{}))...)
	r.mustRegister(adaptDateTime, keys(KindKey(schema.KindDate), bothKeys(schema.DateType{}))...)
	r.mustRegister(adaptDateTime, keys(KindKey(schema.KindTime), bothKeys(schema.TimeType{}))...)
	r.mustRegister(adaptDateTime, keys(KindKey(schema.KindDateTime), bothKeys(schema.DateTimeType{}))...)
	r.mustRegister(adaptFloat, keys(KindKey(schema.KindFloat), bothKeys(schema.FloatType{}))...)
	r.mustRegister(adaptFloat, keys(KindKey(schema.KindDecimal), bothKeys(schema.DecimalType{}))...)
	r.mustRegister(adaptFloat, keys(KindKey(schema.KindMoney), bothKeys(schema.MoneyType{}))...)

	// Validators.
	r.mustRegister(convertRegex, bothKeys(schema.Regex{})...)
	r.mustRegister(convertEmail, bothKeys(schema.Email{})...)
	r.mustRegister(convertURL, bothKeys(schema.URL{})...)
	r.mustRegister(convertRange, bothKeys(schema.Range{})...)
	r.mustRegister(convertLength, bothKeys(schema.Length{})...)
	r.mustRegister(convertOneOf, bothKeys(schema.OneOf{})...)

	// Validators without a JSON Schema equivalent.
	r.mustRegister(IgnoreAdapter, TypeKey(&schema.Func{}))
	r.mustRegister(IgnoreAdapter, bothKeys(schema.All{})...)
	r.mustRegister(IgnoreAdapter, bothKeys(schema.ContainsOnly{})...)
	r.mustRegister(IgnoreAdapter, bothKeys(schema.Luhn{})...)
}
