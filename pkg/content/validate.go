package content

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

//nolint:gochecknoglobals // validator.Validate caches struct metadata and is safe for concurrent use
var urlValidator = validator.New()

// dateLayouts are the accepted textual date forms, most specific first.
//
//nolint:gochecknoglobals // Parsing configuration constants
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FieldError names one offending field of a record.
type FieldError struct {
	Field    string
	Expected string
	Got      string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Field, e.Expected, e.Got)
}

// ValidationError collects every field failure of one record.
type ValidationError struct {
	Kind   Kind
	ID     string // empty until the record is tied to a file
	Fields []*FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	subject := string(e.Kind)
	if e.ID != "" {
		subject += "/" + e.ID
	}
	return fmt.Sprintf("invalid %s record: %s", subject, strings.Join(msgs, "; "))
}

// Validate checks raw against the schema of kind and returns the typed record.
// Defaults are applied to absent keys; keys missing from the schema are ignored.
func Validate(kind Kind, raw map[string]any) (data Data, err error) {
	var schema Schema
	schema, err = SchemaFor(kind)
	if err != nil {
		return data, err
	}

	var vals values
	vals, err = schema.check(raw)
	if err != nil {
		return data, err
	}

	switch kind {
	case KindJournalism:
		data = &Journalism{
			Title:       vals.str("title"),
			Publication: vals.str("publication"),
			Date:        vals.date("date"),
			URL:         vals.optStr("url"),
			Type:        JournalismType(vals.str("type")),
			Impact:      vals.optStr("impact"),
			Summary:     vals.str("summary"),
		}
	case KindResearch:
		data = &Research{
			Title:       vals.str("title"),
			Role:        vals.str("role"),
			Conference:  vals.optStr("conference"),
			Date:        vals.date("date"),
			Tools:       vals.list("tools"),
			PosterURL:   vals.optStr("posterUrl"),
			Methodology: vals.optStr("methodology"),
			Findings:    vals.list("findings"),
			Modes:       vals.modes("modes"),
		}
	case KindLeadership:
		data = &Leadership{Experience: vals.experience()}
	case KindBusiness:
		data = &Business{Experience: vals.experience()}
	case KindSkills:
		data = &Skill{
			Name:      vals.str("name"),
			Icon:      vals.str("icon"),
			ShortDesc: vals.str("shortDesc"),
			Level:     SkillLevel(vals.str("level")),
			Since:     vals.integer("since"),
			Order:     vals.optNumber("order"),
			Featured:  vals.boolean("featured"),
			Modes:     vals.modes("modes"),
		}
	case KindModes:
		data = &Hero{
			BadgeText:   vals.str("badgeText"),
			BadgeColor:  vals.str("badgeColor"),
			Title:       vals.str("title"),
			Description: vals.str("description"),
		}
	}

	return data, err
}

// values holds coerced field values. Absent optional keys have no entry.
type values map[string]any

func (v values) str(key string) (s string) {
	s, _ = v[key].(string)
	return s
}

func (v values) optStr(key string) (s *string) {
	if val, ok := v[key].(string); ok {
		s = &val
	}
	return s
}

func (v values) date(key string) (t time.Time) {
	t, _ = v[key].(time.Time)
	return t
}

func (v values) optDate(key string) (t *time.Time) {
	if val, ok := v[key].(time.Time); ok {
		t = &val
	}
	return t
}

func (v values) integer(key string) (n int) {
	n, _ = v[key].(int)
	return n
}

func (v values) optNumber(key string) (n *float64) {
	if val, ok := v[key].(float64); ok {
		n = &val
	}
	return n
}

func (v values) boolean(key string) (b bool) {
	b, _ = v[key].(bool)
	return b
}

func (v values) list(key string) (l []string) {
	l, _ = v[key].([]string)
	return l
}

func (v values) metrics(key string) (m []Metric) {
	m, _ = v[key].([]Metric)
	return m
}

func (v values) modes(key string) (m ModeSet) {
	m, _ = v[key].(ModeSet)
	return m
}

func (v values) experience() (e Experience) {
	e = Experience{
		Organization: v.str("organization"),
		Role:         v.str("role"),
		DateStart:    v.date("dateStart"),
		DateEnd:      v.optDate("dateEnd"),
		Metrics:      v.metrics("metrics"),
		Tags:         v.list("tags"),
		Summary:      v.str("summary"),
		Modes:        v.modes("modes"),
	}
	return e
}

// check coerces every schema field of raw, collecting all failures.
func (s Schema) check(raw map[string]any) (vals values, err error) {
	vals = values{}
	var failures []*FieldError

	for _, field := range s.Fields {
		value, present := raw[field.Name]
		if !present {
			if field.Default != nil {
				value = field.Default
			} else if field.Required {
				failures = append(failures, &FieldError{Field: field.Name, Expected: field.describe(), Got: "nothing"})
				continue
			} else {
				continue
			}
		}

		coerced, fieldErrs := field.coerce(value)
		if len(fieldErrs) > 0 {
			failures = append(failures, fieldErrs...)
			continue
		}
		vals[field.Name] = coerced
	}

	if len(failures) > 0 {
		err = &ValidationError{Kind: s.Kind, Fields: failures}
		return vals, err
	}

	return vals, err
}

// describe is the expectation reported when the field fails.
func (f Field) describe() (desc string) {
	switch f.Type {
	case TypeEnum:
		desc = "one of " + strings.Join(f.Enum, ", ")
	case TypeModeList:
		desc = "non-empty list of " + strings.Join(f.Enum, ", ")
	case TypeURL:
		desc = "absolute URL"
	case TypeDate:
		desc = "date (YYYY-MM-DD or RFC 3339)"
	case TypeInteger:
		desc = "whole number"
	case TypeStringList:
		desc = "list of strings"
	case TypeMetricList:
		desc = "list of {value, label}"
	default:
		desc = string(f.Type)
	}
	return desc
}

func (f Field) fail(value any) []*FieldError {
	return []*FieldError{{Field: f.Name, Expected: f.describe(), Got: describeValue(value)}}
}

// coerce converts a decoded value to the Go type of the field.
func (f Field) coerce(value any) (out any, failures []*FieldError) {
	switch f.Type {
	case TypeString:
		s, ok := value.(string)
		if !ok {
			failures = f.fail(value)
			return out, failures
		}
		out = s

	case TypeURL:
		s, ok := value.(string)
		if !ok || urlValidator.Var(s, "required,url") != nil {
			failures = f.fail(value)
			return out, failures
		}
		out = s

	case TypeEnum:
		s, ok := value.(string)
		if !ok || !containsString(f.Enum, s) {
			failures = f.fail(value)
			return out, failures
		}
		out = s

	case TypeDate:
		t, ok := toDate(value)
		if !ok {
			failures = f.fail(value)
			return out, failures
		}
		out = t

	case TypeNumber:
		n, ok := toNumber(value)
		if !ok {
			failures = f.fail(value)
			return out, failures
		}
		out = n

	case TypeInteger:
		n, ok := toNumber(value)
		if !ok || n != math.Trunc(n) || math.Abs(n) > math.MaxInt32 {
			failures = f.fail(value)
			return out, failures
		}
		out = int(n)

	case TypeBoolean:
		b, ok := value.(bool)
		if !ok {
			failures = f.fail(value)
			return out, failures
		}
		out = b

	case TypeStringList:
		out, failures = f.stringList(value)

	case TypeMetricList:
		out, failures = f.metricList(value)

	case TypeModeList:
		out, failures = f.modeList(value)

	default:
		failures = []*FieldError{{Field: f.Name, Expected: "known field type", Got: string(f.Type)}}
	}

	return out, failures
}

func (f Field) stringList(value any) (out []string, failures []*FieldError) {
	items, ok := toList(value)
	if !ok {
		failures = f.fail(value)
		return out, failures
	}

	out = make([]string, 0, len(items))
	for i, item := range items {
		s, isString := item.(string)
		if !isString {
			failures = append(failures, &FieldError{
				Field:    fmt.Sprintf("%s[%d]", f.Name, i),
				Expected: "string",
				Got:      describeValue(item),
			})
			continue
		}
		out = append(out, s)
	}

	return out, failures
}

func (f Field) metricList(value any) (out []Metric, failures []*FieldError) {
	items, ok := toList(value)
	if !ok {
		failures = f.fail(value)
		return out, failures
	}

	out = make([]Metric, 0, len(items))
	for i, item := range items {
		obj, isObject := toObject(item)
		if !isObject {
			failures = append(failures, &FieldError{
				Field:    fmt.Sprintf("%s[%d]", f.Name, i),
				Expected: "object with value and label",
				Got:      describeValue(item),
			})
			continue
		}

		var metric Metric
		var broken bool
		for _, key := range []string{"value", "label"} {
			s, isString := obj[key].(string)
			if !isString {
				failures = append(failures, &FieldError{
					Field:    fmt.Sprintf("%s[%d].%s", f.Name, i, key),
					Expected: "string",
					Got:      describeValue(obj[key]),
				})
				broken = true
				continue
			}
			if key == "value" {
				metric.Value = s
			} else {
				metric.Label = s
			}
		}
		if !broken {
			out = append(out, metric)
		}
	}

	return out, failures
}

func (f Field) modeList(value any) (out ModeSet, failures []*FieldError) {
	var names []string
	names, failures = f.stringList(value)
	if len(failures) > 0 {
		return out, failures
	}
	if len(names) == 0 {
		failures = f.fail(value)
		return out, failures
	}

	modes := make([]Mode, 0, len(names))
	for i, name := range names {
		mode, err := ParseMode(name)
		if err != nil {
			failures = append(failures, &FieldError{
				Field:    fmt.Sprintf("%s[%d]", f.Name, i),
				Expected: "one of " + strings.Join(f.Enum, ", "),
				Got:      describeValue(name),
			})
			continue
		}
		modes = append(modes, mode)
	}
	if len(failures) > 0 {
		return out, failures
	}

	out = NewModeSet(modes...)
	return out, failures
}

func toDate(value any) (t time.Time, ok bool) {
	switch v := value.(type) {
	case time.Time:
		t = v
		ok = true
	case string:
		for _, layout := range dateLayouts {
			parsed, err := time.Parse(layout, v)
			if err == nil {
				t = parsed
				ok = true
				break
			}
		}
	}
	return t, ok
}

func toNumber(value any) (n float64, ok bool) {
	ok = true
	switch v := value.(type) {
	case int:
		n = float64(v)
	case int64:
		n = float64(v)
	case uint64:
		n = float64(v)
	case float64:
		n = v
	default:
		ok = false
	}
	if ok && (math.IsNaN(n) || math.IsInf(n, 0)) {
		ok = false
	}
	return n, ok
}

func toList(value any) (items []any, ok bool) {
	switch v := value.(type) {
	case []any:
		items = v
		ok = true
	case []string:
		items = stringList(v)
		ok = true
	}
	return items, ok
}

func toObject(value any) (obj map[string]any, ok bool) {
	switch v := value.(type) {
	case map[string]any:
		obj = v
		ok = true
	case Metric:
		obj = map[string]any{"value": v.Value, "label": v.Label}
		ok = true
	}
	return obj, ok
}

// describeValue renders a decoded value for error messages.
func describeValue(value any) (desc string) {
	switch v := value.(type) {
	case nil:
		desc = "null"
	case string:
		desc = fmt.Sprintf("string %q", v)
	case bool:
		desc = fmt.Sprintf("boolean %t", v)
	case int, int64, uint64, float64:
		desc = fmt.Sprintf("number %v", v)
	case time.Time:
		desc = "date " + v.Format("2006-01-02")
	case []any, []string:
		desc = "list"
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		desc = "object {" + strings.Join(keys, ", ") + "}"
	default:
		desc = fmt.Sprintf("%T", v)
	}
	return desc
}

func containsString(list []string, s string) bool {
	for _, candidate := range list {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsValidationError reports whether err carries field failures.
func IsValidationError(err error) (ve *ValidationError, ok bool) {
	ok = errors.As(err, &ve)
	return ve, ok
}
