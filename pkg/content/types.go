package content

import (
	"time"
)

// PresentLabel is shown in place of an end date for ongoing roles.
const PresentLabel = "Present"

// Data is the typed payload of a validated content record.
type Data interface {
	// Kind returns the collection the record belongs to.
	Kind() Kind
	// Fields returns the raw key/value form of the record.
	// Validating the result again yields an identical record.
	Fields() map[string]any
}

// Entry is one validated content record.
type Entry struct {
	ID   string // content file path relative to the collection directory, no extension
	Kind Kind
	Data Data
	Body string // markdown body, empty for data-only files
}

// Journalism is an article, social post, video, or multimedia piece.
// Journalism is visible in every mode.
type Journalism struct {
	Title       string
	Publication string
	Date        time.Time
	URL         *string
	Type        JournalismType
	Impact      *string
	Summary     string
}

// Research is a poster, lab project, or abstract.
type Research struct {
	Title       string
	Role        string
	Conference  *string
	Date        time.Time
	Tools       []string
	PosterURL   *string
	Methodology *string
	Findings    []string // nil when absent
	Modes       ModeSet
}

// Metric is a headline number attached to a role.
type Metric struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Experience is the shape shared by leadership and business roles.
type Experience struct {
	Organization string
	Role         string
	DateStart    time.Time
	DateEnd      *time.Time // nil while the role is ongoing
	Metrics      []Metric   // nil when absent
	Tags         []string   // nil when absent
	Summary      string
	Modes        ModeSet
}

// Ongoing reports whether the role has no end date.
func (e *Experience) Ongoing() bool {
	return e.DateEnd == nil
}

// EndLabel formats the end of the role with the given layout, or "Present".
func (e *Experience) EndLabel(layout string) (label string) {
	if e.Ongoing() {
		label = PresentLabel
		return label
	}
	label = e.DateEnd.Format(layout)
	return label
}

// Leadership is a management or team leadership role.
type Leadership struct {
	Experience
}

// Business is a venture or business operation.
type Business struct {
	Experience
}

// Skill is a technical skill, tool, or certification.
type Skill struct {
	Name      string
	Icon      string
	ShortDesc string
	Level     SkillLevel
	Since     int
	Order     *float64
	Featured  bool
	Modes     ModeSet // nil means derive from referencing records
}

// Hero is the banner metadata for one mode. The record ID is the mode key.
type Hero struct {
	BadgeText   string
	BadgeColor  string
	Title       string
	Description string
}

// Kind implements Data.
func (j *Journalism) Kind() Kind { return KindJournalism }

// Kind implements Data.
func (r *Research) Kind() Kind { return KindResearch }

// Kind implements Data.
func (l *Leadership) Kind() Kind { return KindLeadership }

// Kind implements Data.
func (b *Business) Kind() Kind { return KindBusiness }

// Kind implements Data.
func (s *Skill) Kind() Kind { return KindSkills }

// Kind implements Data.
func (h *Hero) Kind() Kind { return KindModes }

// Fields implements Data.
func (j *Journalism) Fields() (fields map[string]any) {
	fields = map[string]any{
		"title":       j.Title,
		"publication": j.Publication,
		"date":        j.Date,
		"type":        string(j.Type),
		"summary":     j.Summary,
	}
	putString(fields, "url", j.URL)
	putString(fields, "impact", j.Impact)
	return fields
}

// Fields implements Data.
func (r *Research) Fields() (fields map[string]any) {
	fields = map[string]any{
		"title": r.Title,
		"role":  r.Role,
		"date":  r.Date,
		"tools": stringList(r.Tools),
		"modes": stringList(r.Modes.Strings()),
	}
	putString(fields, "conference", r.Conference)
	putString(fields, "posterUrl", r.PosterURL)
	putString(fields, "methodology", r.Methodology)
	if r.Findings != nil {
		fields["findings"] = stringList(r.Findings)
	}
	return fields
}

// Fields implements Data.
func (l *Leadership) Fields() map[string]any {
	return l.Experience.fields()
}

// Fields implements Data.
func (b *Business) Fields() map[string]any {
	return b.Experience.fields()
}

func (e *Experience) fields() (fields map[string]any) {
	fields = map[string]any{
		"organization": e.Organization,
		"role":         e.Role,
		"dateStart":    e.DateStart,
		"summary":      e.Summary,
		"modes":        stringList(e.Modes.Strings()),
	}
	if e.DateEnd != nil {
		fields["dateEnd"] = *e.DateEnd
	}
	if e.Metrics != nil {
		metrics := make([]any, len(e.Metrics))
		for i, m := range e.Metrics {
			metrics[i] = map[string]any{"value": m.Value, "label": m.Label}
		}
		fields["metrics"] = metrics
	}
	if e.Tags != nil {
		fields["tags"] = stringList(e.Tags)
	}
	return fields
}

// Fields implements Data.
func (s *Skill) Fields() (fields map[string]any) {
	fields = map[string]any{
		"name":      s.Name,
		"icon":      s.Icon,
		"shortDesc": s.ShortDesc,
		"level":     string(s.Level),
		"since":     s.Since,
		"featured":  s.Featured,
	}
	if s.Order != nil {
		fields["order"] = *s.Order
	}
	if s.Modes != nil {
		fields["modes"] = stringList(s.Modes.Strings())
	}
	return fields
}

// Fields implements Data.
func (h *Hero) Fields() (fields map[string]any) {
	fields = map[string]any{
		"badgeText":   h.BadgeText,
		"badgeColor":  h.BadgeColor,
		"title":       h.Title,
		"description": h.Description,
	}
	return fields
}

func putString(fields map[string]any, key string, value *string) {
	if value != nil {
		fields[key] = *value
	}
}

// stringList returns the list as decoded YAML would present it.
func stringList(values []string) (list []any) {
	list = make([]any, len(values))
	for i, v := range values {
		list[i] = v
	}
	return list
}
