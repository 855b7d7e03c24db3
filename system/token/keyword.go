package token

// NAME -> keyword relationship
const (
	FRAGMENT     = "fragment"
	QUERY        = "query"
	MUTATION     = "mutation"
	SUBSCRIPTION = "subscription"
	SCHEMA       = "schema"
	SCALAR       = "scalar"
	TYPE         = "type"
	INTERFACE    = "interface"
	UNION        = "union"
	ENUM         = "enum"
	INPUT        = "input"
	EXTEND       = "extend"
	IMPLEMENTS   = "implements"
	ON           = "on"
	TRUE         = "true"
	FALSE        = "false"
	NULL         = "null"
)

type Keyword int

const (
	NotKeyword Keyword = iota
	KwFragment
	KwQuery
	KwMutation
	KwSubscription
	KwSchema
	KwScalar
	KwType
	KwInterface
	KwUnion
	KwEnum
	KwInput
	KwExtend
	KwImplements
	KwOn
	KwTrue
	KwFalse
	KwNull
)

var keywords = map[string]Keyword{
	FRAGMENT:     KwFragment,
	QUERY:        KwQuery,
	MUTATION:     KwMutation,
	SUBSCRIPTION: KwSubscription,
	SCHEMA:       KwSchema,
	SCALAR:       KwScalar,
	TYPE:         KwType,
	INTERFACE:    KwInterface,
	UNION:        KwUnion,
	ENUM:         KwEnum,
	INPUT:        KwInput,
	EXTEND:       KwExtend,
	IMPLEMENTS:   KwImplements,
	ON:           KwOn,
	TRUE:         KwTrue,
	FALSE:        KwFalse,
	NULL:         KwNull,
}

// LookupKeyword maps a name to its keyword, or NotKeyword.
func LookupKeyword(name string) Keyword {
	return keywords[name]
}

// Keyword classifies a Name token. Other kinds are never keywords.
func (t Token) Keyword() Keyword {
	if t.Kind != Name {
		return NotKeyword
	}
	return LookupKeyword(t.Value)
}

// IsLiteral reports whether k is one of true, false or null.
func (k Keyword) IsLiteral() bool {
	return k == KwTrue || k == KwFalse || k == KwNull
}
