// Package skills holds the canonical skill vocabulary shared by entity
// extraction and heuristic job-fit scoring.
package skills

import "strings"

// Canonical is the fixed vocabulary of recognized technical skills.
// Matching is case-insensitive substring matching against this list;
// match results preserve list order, not text order.
var Canonical = []string{
	"Python",
	"Java",
	"JavaScript",
	"TypeScript",
	"Golang",
	"C++",
	"C#",
	"Ruby",
	"PHP",
	"Swift",
	"Kotlin",
	"Rust",
	"Scala",
	"SQL",
	"NoSQL",
	"PostgreSQL",
	"MySQL",
	"MongoDB",
	"Redis",
	"Elasticsearch",
	"AWS",
	"Azure",
	"GCP",
	"Docker",
	"Kubernetes",
	"Terraform",
	"Jenkins",
	"Git",
	"CI/CD",
	"React",
	"Angular",
	"Vue",
	"Node.js",
	"Django",
	"Flask",
	"Spring",
	".NET",
	"GraphQL",
	"REST",
	"gRPC",
	"Kafka",
	"RabbitMQ",
	"Spark",
	"Hadoop",
	"Machine Learning",
	"Deep Learning",
	"TensorFlow",
	"PyTorch",
	"NLP",
	"Pandas",
	"NumPy",
	"Tableau",
	"Linux",
	"Agile",
	"Scrum",
	"Microservices",
	"DevOps",
}

// Match returns every canonical skill whose name appears in text,
// case-insensitively, in vocabulary order.
func Match(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	lower := strings.ToLower(text)
	var found []string
	for _, skill := range Canonical {
		if strings.Contains(lower, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}
	return found
}

// MatchSet returns the matches keyed by lowercased name, for
// case-insensitive set operations.
func MatchSet(text string) map[string]string {
	matches := Match(text)
	if len(matches) == 0 {
		return nil
	}
	set := make(map[string]string, len(matches))
	for _, skill := range matches {
		set[strings.ToLower(skill)] = skill
	}
	return set
}
