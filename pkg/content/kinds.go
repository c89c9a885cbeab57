package content

import (
	"github.com/pkg/errors"
)

// Kind names one of the content collections.
type Kind string

const (
	// KindJournalism holds articles, social posts, and videos.
	KindJournalism Kind = "journalism"
	// KindResearch holds posters, lab work, and abstracts.
	KindResearch Kind = "research"
	// KindLeadership holds management and team leadership roles.
	KindLeadership Kind = "leadership"
	// KindBusiness holds ventures and e-commerce operations.
	KindBusiness Kind = "business"
	// KindSkills holds technical skills, tools, and certifications.
	KindSkills Kind = "skills"
	// KindModes holds the hero metadata for each mode.
	KindModes Kind = "modes"
)

// Kinds returns every collection kind in registry order.
func Kinds() (kinds []Kind) {
	kinds = []Kind{KindJournalism, KindResearch, KindLeadership, KindBusiness, KindSkills, KindModes}
	return kinds
}

// ParseKind converts a collection name to a Kind. Unknown names are an error.
func ParseKind(s string) (kind Kind, err error) {
	for _, k := range Kinds() {
		if string(k) == s {
			kind = k
			return kind, err
		}
	}
	err = errors.Errorf("unknown collection %q", s)
	return kind, err
}

// String returns the collection name.
func (k Kind) String() string {
	return string(k)
}

// JournalismType classifies a journalism piece.
type JournalismType string

// Journalism piece types.
const (
	TypeArticle    JournalismType = "Article"
	TypeSocial     JournalismType = "Social"
	TypeVideo      JournalismType = "Video"
	TypeMultimedia JournalismType = "Multimedia"
)

// JournalismTypes returns the accepted journalism types.
func JournalismTypes() (types []JournalismType) {
	types = []JournalismType{TypeArticle, TypeSocial, TypeVideo, TypeMultimedia}
	return types
}

// SkillLevel is the proficiency claimed for a skill.
type SkillLevel string

// Skill levels.
const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
	LevelCertified    SkillLevel = "Certified"
)

// SkillLevels returns the accepted skill levels.
func SkillLevels() (levels []SkillLevel) {
	levels = []SkillLevel{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelCertified}
	return levels
}
