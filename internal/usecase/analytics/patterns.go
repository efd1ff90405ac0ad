package analytics

import "regexp"

// All extraction patterns and keyword lists live here as package data so
// each table can be exercised independently in tests. Extractors never
// embed regex literals inline.

// --- Participant extraction ---

// selfIntroPatterns match self-introductions; first capture group is the name.
var selfIntroPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bI'?m ([A-Z][a-z]+)\b`),
	regexp.MustCompile(`(?i:\bmy name is) ([A-Z][a-z]+)\b`),
	regexp.MustCompile(`\b([A-Z][a-z]+) here\b`),
}

// Engagement indicator tags and their trigger words.
const (
	indicatorAsksQuestions   = "asks_questions"
	indicatorOpinion         = "expresses_opinion"
	indicatorTechnical       = "technical_contribution"
	indicatorActionOriented  = "action_oriented"
)

var interrogativeWords = []string{"what", "why", "how", "when", "where", "who", "which"}
var opinionWords = []string{"agree", "disagree", "exactly", "i think", "in my opinion", "personally", "absolutely"}
var technicalWords = []string{"code", "function", "api", "database", "algorithm", "deploy", "bug"}
var actionWords = []string{"should", "will", "need to", "let's", "action", "follow up"}

// --- Topic extraction ---

// topicCategory pairs a taxonomy name with its keyword set.
type topicCategory struct {
	Name     string
	Keywords []string
}

// topicTaxonomy is the fixed 12-category topic taxonomy.
var topicTaxonomy = []topicCategory{
	{"Project Planning", []string{"project", "plan", "timeline", "milestone", "deadline", "schedule"}},
	{"Technical Architecture", []string{"architecture", "design", "system", "infrastructure", "scalability", "microservice"}},
	{"Budget & Finance", []string{"budget", "cost", "finance", "revenue", "funding", "expense"}},
	{"Team & Hiring", []string{"team", "hire", "hiring", "onboarding", "recruit", "headcount"}},
	{"Product Features", []string{"feature", "product", "release", "roadmap", "launch", "requirement"}},
	{"Customer Feedback", []string{"customer", "user", "feedback", "complaint", "satisfaction", "support"}},
	{"Marketing & Sales", []string{"marketing", "sales", "campaign", "lead", "conversion", "brand"}},
	{"Operations", []string{"operations", "process", "workflow", "logistics", "vendor", "procurement"}},
	{"Risk & Compliance", []string{"risk", "compliance", "security", "audit", "legal", "policy"}},
	{"Performance & Metrics", []string{"performance", "metric", "kpi", "measurement", "benchmark", "analytics"}},
	{"Research & Innovation", []string{"research", "innovation", "experiment", "prototype", "discovery", "exploration"}},
	{"Process Improvement", []string{"improvement", "optimize", "efficiency", "retrospective", "automation", "refactor"}},
}

// --- Decision extraction ---

// decisionPatterns match decision phrasing; last capture group is the clause.
var decisionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bwe(?:'ve| have)? decided (?:to|that|on) (.+)`),
	regexp.MustCompile(`(?i)\b(?:we|everyone|it was) agreed (?:that|to|on) (.+)`),
	regexp.MustCompile(`(?i)\blet'?s (.+)`),
	regexp.MustCompile(`(?i)\b(?:resolved|final decision|decision made|conclusion):\s*(.+)`),
	regexp.MustCompile(`(?i)\bwe (?:should|will|are going to) (.+)`),
}

var decisionCriticalWords = []string{"urgent", "critical", "asap", "immediately", "deadline", "blocking"}
var decisionHighWords = []string{"important", "should", "need", "required", "must"}
var decisionMediumWords = []string{"will", "going to", "plan"}

var decisionConfidenceWords = []string{"decided", "agreed", "confirmed", "final", "definitely"}
var decisionUncertaintyWords = []string{"maybe", "perhaps", "might", "could", "possibly"}

// --- Action item extraction ---

// actionItemPatterns match task phrasing; the LAST capture group is the task.
var actionItemPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\baction item:?\s*(.+)`),
	regexp.MustCompile(`@(\w+) will (.+)`),
	regexp.MustCompile(`(?i)\bwe (?:need to|should|must) (.+)`),
	regexp.MustCompile(`(?i)\bby ((?:mon|tues|wednes|thurs|fri|satur|sun)day|end of \w+):?\s+(.{6,})`),
	regexp.MustCompile(`(?i)\bassigned to:?\s*(.+)`),
}

var mentionPattern = regexp.MustCompile(`@(\w+)`)
var namedAssigneePattern = regexp.MustCompile(`\b([A-Z][a-z]+) (?:will|should)\b`)
var assignedToPattern = regexp.MustCompile(`(?i)\bassigned to:?\s*(\w+)`)
var volunteerWords = []string{"i will", "i'll", "i can", "i should"}

// dueDatePatterns are tried in order; the first match wins and is kept as
// the raw extracted string, never parsed into a date.
var dueDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bby (?:mon|tues|wednes|thurs|fri|satur|sun)day(?: \d{1,2})?\b`),
	regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}(?:[/-]\d{2,4})?\b`),
	regexp.MustCompile(`(?i)\bnext \w+\b`),
	regexp.MustCompile(`(?i)\bend of \w+\b`),
	regexp.MustCompile(`(?i)\b(?:tomorrow|today)\b`),
}

var actionUrgentWords = []string{"urgent", "asap", "immediately", "critical", "blocking"}
var actionHighWords = []string{"important", "soon", "priority", "key"}

var largeEffortVerbs = []string{"implement", "build", "create", "develop", "design"}
var smallEffortVerbs = []string{"update", "fix", "change", "review", "send"}

// --- Code context extraction ---

var codeReferencePatterns = []*regexp.Regexp{
	regexp.MustCompile("`([^`]+)`"),
	regexp.MustCompile(`\b\w+\.\w+\(\)`),
	regexp.MustCompile(`\b\w+\(\)`),
	regexp.MustCompile(`(?i)\b(?:function|method|class) (\w+)\b`),
}

var repositoryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:github|gitlab|bitbucket)\.com/[\w./-]+`),
	regexp.MustCompile(`(?i)\brepo(?:sitory)? (?:called |named )?([\w-]+)`),
	regexp.MustCompile(`\b[\w-]+\.git\b`),
}

// technicalVocabulary spans infrastructure, languages, and data stores.
// Terms are counted by frequency; the top 15 are reported.
var technicalVocabulary = []string{
	"api", "database", "function", "kubernetes", "docker", "redis",
	"postgres", "mysql", "mongodb", "elasticsearch", "kafka", "queue",
	"cache", "microservice", "monolith", "graphql", "rest", "grpc",
	"websocket", "oauth", "jwt", "terraform", "aws", "azure",
	"gcp", "lambda", "serverless", "jenkins", "git", "linux",
	"nginx", "golang", "python", "javascript", "react",
}

var apiDiscussionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/api/[\w/.-]*`),
	regexp.MustCompile(`\b(?:GET|POST|PUT|DELETE|PATCH) /\S+`),
	regexp.MustCompile(`(?i)\b\w+ endpoint\b`),
}

var architectureKeywords = []string{
	"architecture", "scalability", "microservice", "monolith",
	"design pattern", "refactor", "infrastructure", "migration",
}

var bugReportPattern = regexp.MustCompile(`(?i)\b(?:bug|issue|problem|error|not working|broken|failing|fix|resolve|debug)\b[:\s]+([^.!?]{5,120})`)

// --- Sentiment extraction ---

var positiveSentimentWords = []string{
	"great", "good", "excellent", "awesome", "love", "happy",
	"agree", "perfect", "amazing", "fantastic", "wonderful", "nice",
}

var negativeSentimentWords = []string{
	"bad", "terrible", "hate", "awful", "problem", "issue",
	"wrong", "difficult", "frustrated", "concerned", "worried", "disappointing",
}

var neutralSentimentWords = []string{
	"okay", "fine", "maybe", "perhaps", "possible", "normal",
	"average", "moderate", "acceptable", "reasonable", "standard", "typical",
}
