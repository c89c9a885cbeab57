package content

import (
	"sort"
	"strings"
)

// View is the slice of the corpus rendered for one mode.
type View struct {
	Mode       Mode
	Hero       *Hero
	Journalism []*Entry
	Research   []*Entry
	Leadership []*Entry
	Business   []*Entry
	Skills     []*Entry
	TopSkills  []*Entry
}

// SkillModes computes the effective modes of every skill, keyed by skill ID.
// Declared modes win. Otherwise a skill inherits the union of the modes of every
// research, leadership, and business record that references it by name or ID.
// A skill nothing references gets an empty set.
func SkillModes(corpus *Corpus) (modes map[string]ModeSet) {
	skills := corpus.Entries(KindSkills)
	modes = make(map[string]ModeSet, len(skills))

	refs := references(corpus)
	for _, entry := range skills {
		skill := entry.Data.(*Skill)
		if skill.Modes.Declared() {
			modes[entry.ID] = NewModeSet(skill.Modes...)
			continue
		}

		effective := ModeSet{}
		for _, key := range []string{normalizeRef(skill.Name), normalizeRef(entry.ID)} {
			effective = effective.Union(refs[key])
		}
		modes[entry.ID] = effective
	}

	return modes
}

// references maps each normalized tool or tag to the modes of the records using it.
func references(corpus *Corpus) (refs map[string]ModeSet) {
	refs = make(map[string]ModeSet)
	add := func(names []string, modes ModeSet) {
		for _, name := range names {
			key := normalizeRef(name)
			refs[key] = refs[key].Union(modes)
		}
	}

	for _, entry := range corpus.Entries(KindResearch) {
		r := entry.Data.(*Research)
		add(r.Tools, r.Modes)
	}
	for _, kind := range []Kind{KindLeadership, KindBusiness} {
		for _, entry := range corpus.Entries(kind) {
			exp := ExperienceOf(entry)
			add(exp.Tags, exp.Modes)
		}
	}

	return refs
}

func normalizeRef(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ExperienceOf returns the role fields of a leadership or business entry, or nil.
func ExperienceOf(entry *Entry) (exp *Experience) {
	switch d := entry.Data.(type) {
	case *Leadership:
		exp = &d.Experience
	case *Business:
		exp = &d.Experience
	}
	return exp
}

// SortSkills orders skills by explicit order (unset last), then by name.
func SortSkills(skills []*Entry) (sorted []*Entry) {
	sorted = make([]*Entry, len(skills))
	copy(sorted, skills)
	sort.SliceStable(sorted, func(i, j int) bool {
		a := sorted[i].Data.(*Skill)
		b := sorted[j].Data.(*Skill)
		switch {
		case a.Order != nil && b.Order != nil && *a.Order != *b.Order:
			return *a.Order < *b.Order
		case a.Order != nil && b.Order == nil:
			return true
		case a.Order == nil && b.Order != nil:
			return false
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})
	return sorted
}

// TopSkills returns the featured skills in display order.
func TopSkills(skills []*Entry) (top []*Entry) {
	top = make([]*Entry, 0)
	for _, entry := range SortSkills(skills) {
		if entry.Data.(*Skill).Featured {
			top = append(top, entry)
		}
	}
	return top
}

// SelectView filters the corpus down to what one mode shows.
// Journalism is visible everywhere; other records show when their modes include the mode.
func SelectView(corpus *Corpus, mode Mode) (view View) {
	view = View{Mode: mode}
	view.Hero, _ = corpus.Hero(mode)

	view.Journalism = corpus.Entries(KindJournalism)
	sortByDate(view.Journalism, func(e *Entry) int64 { return e.Data.(*Journalism).Date.Unix() })

	view.Research = make([]*Entry, 0)
	for _, entry := range corpus.Entries(KindResearch) {
		if entry.Data.(*Research).Modes.Contains(mode) {
			view.Research = append(view.Research, entry)
		}
	}
	sortByDate(view.Research, func(e *Entry) int64 { return e.Data.(*Research).Date.Unix() })

	view.Leadership = experienceInMode(corpus, KindLeadership, mode)
	view.Business = experienceInMode(corpus, KindBusiness, mode)

	skillModes := SkillModes(corpus)
	visible := make([]*Entry, 0)
	for _, entry := range corpus.Entries(KindSkills) {
		if skillModes[entry.ID].Contains(mode) {
			visible = append(visible, entry)
		}
	}
	view.Skills = SortSkills(visible)
	view.TopSkills = TopSkills(visible)

	return view
}

func experienceInMode(corpus *Corpus, kind Kind, mode Mode) (entries []*Entry) {
	entries = make([]*Entry, 0)
	for _, entry := range corpus.Entries(kind) {
		if ExperienceOf(entry).Modes.Contains(mode) {
			entries = append(entries, entry)
		}
	}
	sortByDate(entries, func(e *Entry) int64 { return ExperienceOf(e).DateStart.Unix() })
	return entries
}

// sortByDate orders entries newest first, keeping ID order for ties.
func sortByDate(entries []*Entry, date func(*Entry) int64) {
	sort.SliceStable(entries, func(i, j int) bool {
		return date(entries[i]) > date(entries[j])
	})
}
