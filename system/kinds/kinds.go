package kinds

const (
	Document = "Document"
	Name     = "Name"

	// executable
	OperationDefinition = "OperationDefinition"
	VariableDefinition  = "VariableDefinition"
	Variable            = "Variable"
	SelectionSet        = "SelectionSet"
	Field               = "Field"
	Argument            = "Argument"
	FragmentSpread      = "FragmentSpread"
	InlineFragment      = "InlineFragment"
	FragmentDefinition  = "FragmentDefinition"

	// values
	IntValue     = "IntValue"
	FloatValue   = "FloatValue"
	StringValue  = "StringValue"
	BooleanValue = "BooleanValue"
	NullValue    = "NullValue"
	EnumValue    = "EnumValue"
	ListValue    = "ListValue"
	ObjectValue  = "ObjectValue"
	ObjectField  = "ObjectField"

	Directive = "Directive"

	// types
	Named   = "Named"
	List    = "List"
	NonNull = "NonNull"

	// type system
	SchemaDefinition        = "SchemaDefinition"
	OperationTypeDefinition = "OperationTypeDefinition"
	ScalarDefinition        = "ScalarDefinition"
	ObjectDefinition        = "ObjectDefinition"
	FieldDefinition         = "FieldDefinition"
	InputValueDefinition    = "InputValueDefinition"
	InterfaceDefinition     = "InterfaceDefinition"
	UnionDefinition         = "UnionDefinition"
	EnumDefinition          = "EnumDefinition"
	EnumValueDefinition     = "EnumValueDefinition"
	InputObjectDefinition   = "InputObjectDefinition"

	ObjectExtension = "ObjectExtension"
)
