package skills

// defaultEntries is the built-in skill table. Weights reflect how strongly a
// skill discriminates between postings; generic soft skills sit at 1.0.
var defaultEntries = []Entry{
	// data analysis
	{Canonical: "sql", Weight: 1.5, Category: "data"},
	{Canonical: "excel", Weight: 1.3, Category: "data", Synonyms: []string{"microsoft excel", "spreadsheets"}},
	{Canonical: "power bi", Weight: 1.4, Category: "data", Synonyms: []string{"powerbi", "ms power bi"}},
	{Canonical: "tableau", Weight: 1.4, Category: "data"},
	{Canonical: "data cleaning", Weight: 1.2, Category: "data"},
	{Canonical: "data analysis", Weight: 1.3, Category: "data"},
	{Canonical: "reporting", Weight: 1.1, Category: "data"},
	{Canonical: "statistics", Weight: 1.2, Category: "data"},
	{Canonical: "data visualization", Weight: 1.3, Category: "data"},
	{Canonical: "dashboards", Weight: 1.1, Category: "data"},

	// data science
	{Canonical: "python", Weight: 1.6, Category: "data_science"},
	{Canonical: "machine learning", Weight: 2.0, Category: "data_science", Synonyms: []string{"ml"}},
	{Canonical: "deep learning", Weight: 2.0, Category: "data_science"},
	{Canonical: "nlp", Weight: 1.8, Category: "data_science", Synonyms: []string{"natural language processing"}},
	{Canonical: "ai", Weight: 1.5, Category: "data_science", Synonyms: []string{"artificial intelligence"}},
	{Canonical: "pandas", Weight: 1.5, Category: "data_science"},
	{Canonical: "numpy", Weight: 1.4, Category: "data_science"},
	{Canonical: "tensorflow", Weight: 1.8, Category: "data_science"},
	{Canonical: "pytorch", Weight: 1.8, Category: "data_science"},
	{Canonical: "keras", Weight: 1.7, Category: "data_science"},
	{Canonical: "scikit-learn", Weight: 1.6, Category: "data_science", Synonyms: []string{"sklearn"}},

	// software engineering
	{Canonical: "java", Weight: 1.5, Category: "engineering"},
	{Canonical: "javascript", Weight: 1.4, Category: "engineering"},
	{Canonical: "c++", Weight: 1.5, Category: "engineering"},
	{Canonical: "spring boot", Weight: 1.6, Category: "engineering"},
	{Canonical: "docker", Weight: 1.4, Category: "engineering"},
	{Canonical: "kubernetes", Weight: 1.5, Category: "engineering", Synonyms: []string{"k8s"}},
	{Canonical: "rest apis", Weight: 1.3, Category: "engineering", Synonyms: []string{"rest api", "restful apis", "restful api"}},
	{Canonical: "microservices", Weight: 1.4, Category: "engineering"},
	{Canonical: "system design", Weight: 1.5, Category: "engineering"},
	{Canonical: "git", Weight: 1.1, Category: "engineering", Synonyms: []string{"version control"}},
	{Canonical: "ci/cd", Weight: 1.3, Category: "engineering", Synonyms: []string{"continuous integration", "continuous delivery"}},
	{Canonical: "linux", Weight: 1.2, Category: "engineering"},
	{Canonical: "aws", Weight: 1.4, Category: "engineering"},

	// machine learning engineering
	{Canonical: "mlops", Weight: 1.6, Category: "ml_engineering", Synonyms: []string{"machine learning ops", "ml operations"}},
	{Canonical: "computer vision", Weight: 1.8, Category: "ml_engineering"},
	{Canonical: "cloud", Weight: 1.5, Category: "ml_engineering"},
	{Canonical: "model deployment", Weight: 1.4, Category: "ml_engineering"},
	{Canonical: "tensorflow serving", Weight: 1.5, Category: "ml_engineering"},
	{Canonical: "pytorch lightning", Weight: 1.5, Category: "ml_engineering"},
	{Canonical: "data pipelines", Weight: 1.3, Category: "ml_engineering"},

	// product management
	{Canonical: "agile", Weight: 1.3, Category: "product_management"},
	{Canonical: "scrum", Weight: 1.3, Category: "product_management"},
	{Canonical: "stakeholder management", Weight: 1.4, Category: "product_management"},
	{Canonical: "user stories", Weight: 1.3, Category: "product_management"},
	{Canonical: "product roadmap", Weight: 1.5, Category: "product_management"},
	{Canonical: "requirements gathering", Weight: 1.2, Category: "product_management"},
	{Canonical: "ui/ux", Weight: 1.1, Category: "product_management"},
	{Canonical: "team leadership", Weight: 1.0, Category: "product_management"},

	// general
	{Canonical: "communication", Weight: 1.0, Category: "general"},
	{Canonical: "time management", Weight: 1.1, Category: "general"},
	{Canonical: "adaptability", Weight: 1.0, Category: "general"},
	{Canonical: "project management", Weight: 1.1, Category: "general"},
	{Canonical: "presentation", Weight: 1.0, Category: "general"},
	{Canonical: "leadership", Weight: 1.0, Category: "general"},
	{Canonical: "collaboration", Weight: 1.0, Category: "general"},
	{Canonical: "problem solving", Weight: 1.2, Category: "general"},
}

var defaultDictionary = MustNew(defaultEntries)

// Default returns the built-in dictionary.
func Default() *Dictionary {
	return defaultDictionary
}
