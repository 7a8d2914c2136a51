package match

import (
	"sort"
	"sync"

	"github.com/kamusis/jobmatch-cli/internal/extract"
	"github.com/kamusis/jobmatch-cli/internal/records"
	"github.com/kamusis/jobmatch-cli/internal/skills"
)

// Profile is the derived, read-only view of a record used for scoring.
type Profile struct {
	Record records.Record
	Skills skills.Set
	// Bag is only populated in ModeBag.
	Bag extract.Bag
}

// profileCache computes each record's profile at most once. Record ids are
// unique and record text never changes, so the id is the cache key.
type profileCache struct {
	ext     *extract.Extractor
	withBag bool

	mu   sync.Mutex
	byID map[string]*profileSlot
}

type profileSlot struct {
	once sync.Once
	p    *Profile
}

func newProfileCache(ext *extract.Extractor, withBag bool) *profileCache {
	return &profileCache{ext: ext, withBag: withBag, byID: make(map[string]*profileSlot)}
}

func (c *profileCache) get(r records.Record) *Profile {
	c.mu.Lock()
	slot, ok := c.byID[r.ID]
	if !ok {
		slot = &profileSlot{}
		c.byID[r.ID] = slot
	}
	c.mu.Unlock()

	slot.once.Do(func() {
		p := &Profile{Record: r, Skills: c.ext.Extract(r.Text)}
		if c.withBag {
			p.Bag = c.ext.Bag(r.Text)
		}
		slot.p = p
	})
	return slot.p
}

func (c *profileCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.byID)
}

func sortedWords(b extract.Bag) []string {
	out := make([]string, 0, len(b))
	for w := range b {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
