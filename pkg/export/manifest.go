package export

import (
	"github.com/pkg/errors"

	"github.com/appsdothingsiguess/portfoliosite/pkg/content"
)

// EndLabelLayout formats experience end dates in manifests.
const EndLabelLayout = "Jan 2006"

// Manifest is the JSON document handed to the page generator for one mode.
type Manifest struct {
	Mode       string         `json:"mode"`
	Label      string         `json:"label"`
	Hero       map[string]any `json:"hero"`
	Journalism []Record       `json:"journalism"`
	Research   []Record       `json:"research"`
	Leadership []Record       `json:"leadership"`
	Business   []Record       `json:"business"`
	Skills     []Record       `json:"skills"`
	TopSkills  []Record       `json:"topSkills"`
}

// Record is one content entry in a manifest.
type Record struct {
	ID       string         `json:"id"`
	Kind     string         `json:"kind"`
	Data     map[string]any `json:"data"`
	HTML     string         `json:"html,omitempty"`
	Ongoing  *bool          `json:"ongoing,omitempty"`
	EndLabel string         `json:"endLabel,omitempty"`
	Modes    []string       `json:"modes,omitempty"` // effective modes, skills only
}

// BuildManifest selects the view for mode and renders every entry body.
func BuildManifest(corpus *content.Corpus, mode content.Mode, renderer Renderer) (manifest Manifest, err error) {
	if renderer == nil {
		renderer = NewMarkdown()
	}

	view := content.SelectView(corpus, mode)
	if view.Hero == nil {
		err = errors.Errorf("missing modes record for %s", mode)
		return manifest, err
	}

	skillModes := content.SkillModes(corpus)

	manifest = Manifest{
		Mode:  mode.String(),
		Label: mode.Label(),
		Hero:  view.Hero.Fields(),
	}

	sections := []struct {
		entries []*content.Entry
		out     *[]Record
	}{
		{view.Journalism, &manifest.Journalism},
		{view.Research, &manifest.Research},
		{view.Leadership, &manifest.Leadership},
		{view.Business, &manifest.Business},
		{view.Skills, &manifest.Skills},
		{view.TopSkills, &manifest.TopSkills},
	}

	for _, section := range sections {
		*section.out = make([]Record, 0, len(section.entries))
		for _, entry := range section.entries {
			var record Record
			record, err = buildRecord(entry, renderer, skillModes)
			if err != nil {
				return manifest, err
			}
			*section.out = append(*section.out, record)
		}
	}

	return manifest, err
}

func buildRecord(entry *content.Entry, renderer Renderer, skillModes map[string]content.ModeSet) (record Record, err error) {
	record = Record{
		ID:   entry.ID,
		Kind: entry.Kind.String(),
		Data: entry.Data.Fields(),
	}

	record.HTML, err = renderer.Render(entry.Body)
	if err != nil {
		err = errors.Wrapf(err, "%s/%s", entry.Kind, entry.ID)
		return record, err
	}

	if exp := content.ExperienceOf(entry); exp != nil {
		ongoing := exp.Ongoing()
		record.Ongoing = &ongoing
		record.EndLabel = exp.EndLabel(EndLabelLayout)
	}

	if entry.Kind == content.KindSkills {
		record.Modes = skillModes[entry.ID].Strings()
	}

	return record, err
}
