package content

import (
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Corpus is the set of validated records for one build.
type Corpus struct {
	entries map[Kind]map[string]*Entry
}

// NewCorpus creates an empty corpus.
func NewCorpus() (corpus *Corpus) {
	corpus = &Corpus{entries: make(map[Kind]map[string]*Entry)}
	return corpus
}

// NewEntry validates raw as a record of kind identified by id.
func NewEntry(kind Kind, id string, raw map[string]any, body string) (entry *Entry, err error) {
	var data Data
	data, err = Validate(kind, raw)
	if err != nil {
		if ve, ok := IsValidationError(err); ok {
			ve.ID = id
		}
		return entry, err
	}

	entry = &Entry{ID: id, Kind: kind, Data: data, Body: body}
	return entry, err
}

// Add stores an entry. IDs must be unique within a collection.
func (c *Corpus) Add(entry *Entry) (err error) {
	if entry == nil || entry.Data == nil {
		err = errors.New("cannot add an entry without data")
		return err
	}
	if entry.Data.Kind() != entry.Kind {
		err = errors.Errorf("entry %s is tagged %s but holds %s data", entry.ID, entry.Kind, entry.Data.Kind())
		return err
	}

	byID, ok := c.entries[entry.Kind]
	if !ok {
		byID = make(map[string]*Entry)
		c.entries[entry.Kind] = byID
	}
	if _, exists := byID[entry.ID]; exists {
		err = errors.Errorf("duplicate %s record: %s", entry.Kind, entry.ID)
		return err
	}

	byID[entry.ID] = entry
	return err
}

// Entries returns the records of one collection sorted by ID.
func (c *Corpus) Entries(kind Kind) (entries []*Entry) {
	byID := c.entries[kind]
	entries = make([]*Entry, 0, len(byID))
	for _, e := range byID {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries
}

// Get returns one record by collection and ID.
func (c *Corpus) Get(kind Kind, id string) (entry *Entry, ok bool) {
	entry, ok = c.entries[kind][id]
	return entry, ok
}

// Len returns the number of records in one collection.
func (c *Corpus) Len(kind Kind) int {
	return len(c.entries[kind])
}

// Hero returns the banner metadata of a mode.
func (c *Corpus) Hero(mode Mode) (hero *Hero, ok bool) {
	var entry *Entry
	entry, ok = c.Get(KindModes, string(mode))
	if !ok {
		return hero, ok
	}
	hero, ok = entry.Data.(*Hero)
	return hero, ok
}

// Check verifies cross-record invariants: one hero record per mode, keyed by the mode.
func (c *Corpus) Check() (err error) {
	for _, entry := range c.Entries(KindModes) {
		if _, parseErr := ParseMode(entry.ID); parseErr != nil {
			err = multierr.Append(err, errors.Errorf("modes record %s does not name a mode (expected one of %s)", entry.ID, ModeSet(Modes()).String()))
		}
	}

	for _, mode := range Modes() {
		if _, ok := c.Hero(mode); !ok {
			err = multierr.Append(err, errors.Errorf("missing modes record for %s", mode))
		}
	}

	return err
}
