package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAdd(t *testing.T, corpus *Corpus, kind Kind, id string, raw map[string]any) {
	t.Helper()
	entry, err := NewEntry(kind, id, raw, "")
	require.NoError(t, err)
	require.NoError(t, corpus.Add(entry))
}

func heroFields(mode Mode) map[string]any {
	return map[string]any{
		"badgeText":   mode.Label() + " badge",
		"badgeColor":  "bg-blue-500",
		"title":       mode.Label(),
		"description": "The " + mode.Label() + " portfolio.",
	}
}

func sampleCorpus(t *testing.T) (corpus *Corpus) {
	t.Helper()
	corpus = NewCorpus()

	for _, mode := range Modes() {
		mustAdd(t, corpus, KindModes, string(mode), heroFields(mode))
	}

	mustAdd(t, corpus, KindJournalism, "library-hours", validJournalism())

	poster := validResearch()
	poster["modes"] = []any{"research", "aba"}
	mustAdd(t, corpus, KindResearch, "discounting-poster", poster)

	lab := validResearch()
	lab["tools"] = []any{"Python"}
	lab["date"] = "2023-01-10"
	mustAdd(t, corpus, KindResearch, "lab-assistant", lab)

	chimes := validLeadership()
	chimes["tags"] = []any{"Finances", "spss"}
	mustAdd(t, corpus, KindLeadership, "chimes", chimes)

	spezz := validLeadership()
	spezz["organization"] = "Spezz LLC"
	spezz["tags"] = []any{"E-Commerce"}
	spezz["modes"] = []any{"journalism"}
	mustAdd(t, corpus, KindBusiness, "spezz", spezz)

	mustAdd(t, corpus, KindSkills, "spss", validSkill())

	python := validSkill()
	python["name"] = "Python"
	python["featured"] = true
	python["order"] = 1
	mustAdd(t, corpus, KindSkills, "python", python)

	ecommerce := validSkill()
	ecommerce["name"] = "Shopify"
	ecommerce["featured"] = true
	mustAdd(t, corpus, KindSkills, "e-commerce", ecommerce)

	orphan := validSkill()
	orphan["name"] = "Excel"
	mustAdd(t, corpus, KindSkills, "excel", orphan)

	pinned := validSkill()
	pinned["name"] = "ABA Therapy"
	pinned["featured"] = true
	pinned["modes"] = []any{"aba"}
	mustAdd(t, corpus, KindSkills, "aba-therapy", pinned)

	return corpus
}

func TestSkillModes(t *testing.T) {
	corpus := sampleCorpus(t)
	modes := SkillModes(corpus)

	// SPSS: research poster tools (research, aba) plus chimes tags (business).
	assert.Equal(t, ModeSet{ModeResearch, ModeABA, ModeBusiness}, modes["spss"])
	// Python: lab-assistant tools only.
	assert.Equal(t, ModeSet{ModeResearch}, modes["python"])
	// Referenced by skill ID through the spezz tags.
	assert.Equal(t, ModeSet{ModeJournalism}, modes["e-commerce"])
	// Declared modes are not widened by references.
	assert.Equal(t, ModeSet{ModeABA}, modes["aba-therapy"])
	// Nothing references it.
	assert.Empty(t, modes["excel"])
}

func TestSkillModesIsRecomputed(t *testing.T) {
	corpus := sampleCorpus(t)
	before := SkillModes(corpus)
	assert.Empty(t, before["excel"])

	sheet := validLeadership()
	sheet["tags"] = []any{"Excel"}
	sheet["modes"] = []any{"aba"}
	mustAdd(t, corpus, KindLeadership, "clinic", sheet)

	after := SkillModes(corpus)
	assert.Equal(t, ModeSet{ModeABA}, after["excel"])
	assert.Empty(t, before["excel"], "earlier results are not mutated")
}

func TestSelectView(t *testing.T) {
	corpus := sampleCorpus(t)

	research := SelectView(corpus, ModeResearch)
	require.NotNil(t, research.Hero)
	assert.Equal(t, "Research", research.Hero.Title)
	assert.Len(t, research.Journalism, 1)
	assert.Equal(t, []string{"discounting-poster", "lab-assistant"}, ids(research.Research))
	assert.Empty(t, research.Leadership)
	assert.Empty(t, research.Business)
	assert.Equal(t, []string{"python", "spss"}, ids(research.Skills))
	assert.Equal(t, []string{"python"}, ids(research.TopSkills))

	aba := SelectView(corpus, ModeABA)
	assert.Equal(t, []string{"discounting-poster"}, ids(aba.Research))
	assert.Equal(t, []string{"aba-therapy", "spss"}, ids(aba.Skills))
	assert.Equal(t, []string{"aba-therapy"}, ids(aba.TopSkills))

	business := SelectView(corpus, ModeBusiness)
	assert.Equal(t, []string{"chimes"}, ids(business.Leadership))
	assert.Empty(t, business.Business)
	assert.Len(t, business.Journalism, 1, "journalism shows in every mode")

	journalism := SelectView(corpus, ModeJournalism)
	assert.Equal(t, []string{"spezz"}, ids(journalism.Business))
	assert.Equal(t, []string{"e-commerce"}, ids(journalism.TopSkills))
}

func TestSortSkills(t *testing.T) {
	corpus := NewCorpus()
	for id, order := range map[string]any{"b": 2, "a": nil, "c": 1, "d": nil} {
		raw := validSkill()
		raw["name"] = id
		if order != nil {
			raw["order"] = order
		}
		mustAdd(t, corpus, KindSkills, id, raw)
	}

	assert.Equal(t, []string{"c", "b", "a", "d"}, ids(SortSkills(corpus.Entries(KindSkills))))
}

func TestExperienceOngoing(t *testing.T) {
	ongoing, err := Validate(KindLeadership, validLeadership())
	require.NoError(t, err)

	ended := validLeadership()
	ended["dateEnd"] = "2024-05-01"
	finished, err := Validate(KindBusiness, ended)
	require.NoError(t, err)

	current := ongoing.(*Leadership)
	assert.True(t, current.Ongoing())
	assert.Equal(t, PresentLabel, current.EndLabel("Jan 2006"))
	_, hasEnd := current.Fields()["dateEnd"]
	assert.False(t, hasEnd)

	past := finished.(*Business)
	assert.False(t, past.Ongoing())
	assert.Equal(t, "May 2024", past.EndLabel("Jan 2006"))
	assert.True(t, past.DateEnd.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)))
}

func TestCorpusAddRejectsDuplicates(t *testing.T) {
	corpus := NewCorpus()
	mustAdd(t, corpus, KindResearch, "poster", validResearch())

	entry, err := NewEntry(KindResearch, "poster", validResearch(), "")
	require.NoError(t, err)
	assert.Error(t, corpus.Add(entry))

	// Same ID in another collection is fine.
	mustAdd(t, corpus, KindJournalism, "poster", validJournalism())
	assert.Equal(t, 1, corpus.Len(KindResearch))
}

func TestCorpusCheck(t *testing.T) {
	corpus := sampleCorpus(t)
	require.NoError(t, corpus.Check())

	partial := NewCorpus()
	mustAdd(t, partial, KindModes, "research", heroFields(ModeResearch))
	mustAdd(t, partial, KindModes, "marketing", heroFields(ModeBusiness))

	err := partial.Check()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "marketing")
	assert.Contains(t, err.Error(), "missing modes record for aba")
	assert.Contains(t, err.Error(), "missing modes record for business")
	assert.Contains(t, err.Error(), "missing modes record for journalism")
}

func TestNewEntryTagsValidationError(t *testing.T) {
	_, err := NewEntry(KindResearch, "broken", map[string]any{}, "")
	require.Error(t, err)

	ve, ok := IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "broken", ve.ID)
	assert.Contains(t, err.Error(), "research/broken")
}

func ids(entries []*Entry) (out []string) {
	out = make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}
