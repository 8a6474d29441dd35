package pyvalue

// Kind identifies the shape of a Value. The set is closed: renderers
// dispatch on Kind with an exhaustive switch and rely on no other
// shapes existing.
type Kind uint8

const (
	KindNone Kind = iota
	KindBool
	KindInt
	KindFloat
	KindChar
	KindStr
	KindList
	KindPair
	KindDict
	KindSet
)

var kindNames = [...]string{
	KindNone:  "none",
	KindBool:  "bool",
	KindInt:   "int",
	KindFloat: "float",
	KindChar:  "char",
	KindStr:   "str",
	KindList:  "list",
	KindPair:  "pair",
	KindDict:  "dict",
	KindSet:   "set",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsScalar reports whether the kind carries no child values.
func (k Kind) IsScalar() bool {
	return k <= KindStr
}
