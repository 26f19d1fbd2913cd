package subject

// Subject is a coarse topic classification bucket.
type Subject string

const (
	Computer  Subject = "computer"
	Science   Subject = "science"
	Math      Subject = "math"
	History   Subject = "history"
	Geography Subject = "geography"

	// General is the fallback when no keyword matches.
	General Subject = "general"
)

// Info holds the keyword set and per-level difficulty labels for a subject.
type Info struct {
	Subject  Subject
	Keywords []string

	// DifficultyLabels describe what study at each level looks like,
	// index 0 = beginner through index 3 = expert.
	DifficultyLabels [4]string
}

// Catalog lists known subjects in declaration order. Classification ties
// are broken by this order.
var Catalog = []Info{
	{
		Subject:  Computer,
		Keywords: []string{"programming", "coding", "computer", "software", "algorithm", "python", "javascript", "html", "css", "database", "ai", "machine learning"},
		DifficultyLabels: [4]string{
			"basic syntax", "intermediate concepts", "advanced patterns", "expert optimization",
		},
	},
	{
		Subject:  Science,
		Keywords: []string{"physics", "chemistry", "biology", "science", "experiment", "atom", "molecule", "gravity", "evolution", "plant", "animal"},
		DifficultyLabels: [4]string{
			"fundamental concepts", "intermediate theories", "advanced applications", "research level",
		},
	},
	{
		Subject:  Math,
		Keywords: []string{"mathematics", "math", "algebra", "geometry", "calculus", "equation", "number", "statistics"},
		DifficultyLabels: [4]string{
			"basic arithmetic", "intermediate algebra", "advanced calculus", "mathematical proofs",
		},
	},
	{
		Subject:  History,
		Keywords: []string{"history", "ancient", "medieval", "independence", "freedom", "battle", "civilization", "empire"},
		DifficultyLabels: [4]string{
			"basic timeline", "detailed events", "complex analysis", "historiographical debate",
		},
	},
	{
		Subject:  Geography,
		Keywords: []string{"geography", "mountain", "river", "country", "capital", "climate", "continent", "ocean"},
		DifficultyLabels: [4]string{
			"basic facts", "regional studies", "advanced patterns", "geopolitical analysis",
		},
	},
}

// Lookup returns the catalog entry for s, or nil for unknown subjects
// (including General, which has no keywords or labels).
func Lookup(s Subject) *Info {
	for i := range Catalog {
		if Catalog[i].Subject == s {
			return &Catalog[i]
		}
	}
	return nil
}

// Known reports whether s is a cataloged subject.
func Known(s Subject) bool {
	return Lookup(s) != nil
}
