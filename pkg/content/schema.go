package content

import (
	"github.com/pkg/errors"
)

// FieldType is the shape a schema field accepts.
type FieldType string

// Field types understood by the validator.
const (
	TypeString     FieldType = "string"
	TypeURL        FieldType = "url"
	TypeDate       FieldType = "date"
	TypeNumber     FieldType = "number"
	TypeInteger    FieldType = "integer"
	TypeBoolean    FieldType = "boolean"
	TypeEnum       FieldType = "enum"
	TypeStringList FieldType = "string[]"
	TypeMetricList FieldType = "metric[]"
	TypeModeList   FieldType = "mode[]"
)

// Field describes one key of a content record.
type Field struct {
	Name     string    `json:"name"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
	Enum     []string  `json:"enum,omitempty"`
	Default  any       `json:"default,omitempty"` // applied when the key is absent
}

// Schema is the field contract of one collection.
type Schema struct {
	Kind   Kind    `json:"kind"`
	Fields []Field `json:"fields"`
}

// Field returns the named field.
func (s Schema) Field(name string) (field Field, ok bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			field = f
			ok = true
			return field, ok
		}
	}
	return field, ok
}

func required(name string, t FieldType) Field {
	return Field{Name: name, Type: t, Required: true}
}

func optional(name string, t FieldType) Field {
	return Field{Name: name, Type: t}
}

func enumField(name string, values ...string) Field {
	return Field{Name: name, Type: TypeEnum, Required: true, Enum: values}
}

func modesField(defaults ...Mode) (field Field) {
	field = Field{Name: "modes", Type: TypeModeList, Enum: ModeSet(Modes()).Strings()}
	if len(defaults) > 0 {
		field.Default = stringList(ModeSet(defaults).Strings())
	}
	return field
}

func journalismTypeNames() (names []string) {
	for _, t := range JournalismTypes() {
		names = append(names, string(t))
	}
	return names
}

func skillLevelNames() (names []string) {
	for _, l := range SkillLevels() {
		names = append(names, string(l))
	}
	return names
}

func experienceFields() (fields []Field) {
	fields = []Field{
		required("organization", TypeString),
		required("role", TypeString),
		required("dateStart", TypeDate),
		optional("dateEnd", TypeDate),
		optional("metrics", TypeMetricList),
		optional("tags", TypeStringList),
		required("summary", TypeString),
		modesField(ModeBusiness),
	}
	return fields
}

//nolint:gochecknoglobals // Collection registry
var registry = map[Kind]Schema{
	KindJournalism: {
		Kind: KindJournalism,
		Fields: []Field{
			required("title", TypeString),
			required("publication", TypeString),
			required("date", TypeDate),
			optional("url", TypeURL),
			enumField("type", journalismTypeNames()...),
			optional("impact", TypeString),
			required("summary", TypeString),
		},
	},
	KindResearch: {
		Kind: KindResearch,
		Fields: []Field{
			required("title", TypeString),
			required("role", TypeString),
			optional("conference", TypeString),
			required("date", TypeDate),
			required("tools", TypeStringList),
			optional("posterUrl", TypeString),
			optional("methodology", TypeString),
			optional("findings", TypeStringList),
			modesField(ModeResearch),
		},
	},
	KindLeadership: {
		Kind:   KindLeadership,
		Fields: experienceFields(),
	},
	KindBusiness: {
		Kind:   KindBusiness,
		Fields: experienceFields(),
	},
	KindSkills: {
		Kind: KindSkills,
		Fields: []Field{
			required("name", TypeString),
			required("icon", TypeString),
			required("shortDesc", TypeString),
			enumField("level", skillLevelNames()...),
			required("since", TypeInteger),
			optional("order", TypeNumber),
			{Name: "featured", Type: TypeBoolean, Default: false},
			modesField(),
		},
	},
	KindModes: {
		Kind: KindModes,
		Fields: []Field{
			required("badgeText", TypeString),
			required("badgeColor", TypeString),
			required("title", TypeString),
			required("description", TypeString),
		},
	},
}

// Schemas returns the schema of every collection, keyed by kind.
func Schemas() (schemas map[Kind]Schema) {
	schemas = make(map[Kind]Schema, len(registry))
	for kind, schema := range registry {
		schemas[kind] = schema.clone()
	}
	return schemas
}

// SchemaFor returns the schema of one collection.
func SchemaFor(kind Kind) (schema Schema, err error) {
	schema, ok := registry[kind]
	if !ok {
		err = errors.Errorf("no schema registered for collection %q", kind)
		return schema, err
	}
	schema = schema.clone()
	return schema, err
}

// clone copies the schema so callers cannot modify the registry.
func (s Schema) clone() (out Schema) {
	out = Schema{Kind: s.Kind, Fields: make([]Field, len(s.Fields))}
	for i, f := range s.Fields {
		if f.Enum != nil {
			f.Enum = append([]string(nil), f.Enum...)
		}
		if list, ok := f.Default.([]any); ok {
			f.Default = append([]any(nil), list...)
		}
		out.Fields[i] = f
	}
	return out
}
