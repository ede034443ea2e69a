package catalog

import "github.com/samber/lo"

// Stats counts the messages of a context or a whole catalog by state
type Stats struct {
	Name         string
	Total        int
	Finished     int
	Unfinished   int
	Obsolete     int
	Vanished     int
	Untranslated int
}

// Active is the number of messages that take part in lookups
func (s Stats) Active() int {
	return s.Total - s.Obsolete - s.Vanished
}

// Completion is the percentage of active messages that are finished
func (s Stats) Completion() float64 {
	if s.Active() == 0 {
		return 100
	}
	return float64(s.Finished) * 100 / float64(s.Active())
}

func (s *Stats) add(msg *Message) {
	s.Total++
	switch msg.Status {
	case Obsolete:
		s.Obsolete++
		return
	case Vanished:
		s.Vanished++
		return
	}

	if !msg.IsTranslated() {
		s.Untranslated++
		return
	}
	if msg.Status == Unfinished {
		s.Unfinished++
		return
	}
	s.Finished++
}

// CatalogStats holds the totals of a catalog plus one entry per context
type CatalogStats struct {
	Language string
	Summary  Stats
	Contexts []Stats
}

// ComputeStats counts messages per context, in document order. An active
// message without text is untranslated even when marked finished.
func ComputeStats(c *Catalog) CatalogStats {
	summary := Stats{Name: c.Language}
	contexts := lo.Map(c.Contexts, func(ctx *Context, _ int) Stats {
		s := Stats{Name: ctx.Name}
		for _, msg := range ctx.Messages {
			s.add(msg)
			summary.add(msg)
		}
		return s
	})

	return CatalogStats{
		Language: c.Language,
		Summary:  summary,
		Contexts: contexts,
	}
}
