package catalog

// Subject classifies study content by exam topic.
type Subject string

// Subjects covered by the bundled study content.
const (
	SubjectHistory          Subject = "History"
	SubjectPolity           Subject = "Polity"
	SubjectGeography        Subject = "Geography"
	SubjectEconomy          Subject = "Economy"
	SubjectCurrentAffairs   Subject = "Current Affairs"
	SubjectGeneralKnowledge Subject = "General Knowledge"
	SubjectInterview        Subject = "Interview Prep"
	SubjectStrategy         Subject = "Exam Strategy"
	SubjectScienceTech      Subject = "Science & Tech"
	SubjectEnvironment      Subject = "Environment & Ecology"
	SubjectArtCulture       Subject = "Art & Culture"
	SubjectEthics           Subject = "Ethics"
)

// Difficulty grades a question.
type Difficulty string

// Question difficulty levels.
const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Question is a multiple-choice question with a single correct option.
type Question struct {
	ID          int        `json:"id" yaml:"id"`
	Subject     Subject    `json:"subject" yaml:"subject"`
	Prompt      string     `json:"question" yaml:"question"`
	Options     []string   `json:"options" yaml:"options"`
	Answer      int        `json:"answer" yaml:"answer"`
	Explanation string     `json:"explanation" yaml:"explanation"`
	Difficulty  Difficulty `json:"difficulty" yaml:"difficulty"`
}

// Card is a short-form knowledge card shown in the reel feed.
type Card struct {
	ID      int     `json:"id" yaml:"id"`
	Subject Subject `json:"subject" yaml:"subject"`
	Title   string  `json:"title" yaml:"title"`
	Body    string  `json:"body" yaml:"body"`
	Accent  string  `json:"accent" yaml:"accent"`
}

// Flashcard is a two-sided study card.
type Flashcard struct {
	ID      int     `json:"id" yaml:"id"`
	Subject Subject `json:"subject" yaml:"subject"`
	Front   string  `json:"front" yaml:"front"`
	Back    string  `json:"back" yaml:"back"`
}

// MindMapNode is one branch of a mind map tree.
type MindMapNode struct {
	Label    string        `json:"label" yaml:"label"`
	Children []MindMapNode `json:"children,omitempty" yaml:"children,omitempty"`
}

// MindMap is a central topic with branching nodes.
type MindMap struct {
	ID      int           `json:"id" yaml:"id"`
	Subject Subject       `json:"subject" yaml:"subject"`
	Topic   string        `json:"topic" yaml:"topic"`
	Nodes   []MindMapNode `json:"nodes" yaml:"nodes"`
}

// InterviewCategory classifies interview questions.
type InterviewCategory string

// Interview question categories.
const (
	InterviewPersonal    InterviewCategory = "Personal"
	InterviewSituational InterviewCategory = "Situational"
	InterviewTechnical   InterviewCategory = "Technical"
)

// InterviewQuestion pairs an interview question with answering guidance.
type InterviewQuestion struct {
	ID       int               `json:"id" yaml:"id"`
	Category InterviewCategory `json:"category" yaml:"category"`
	Question string            `json:"question" yaml:"question"`
	Guidance string            `json:"guidance" yaml:"guidance"`
}

// NewsItem is a dated current-affairs digest entry.
type NewsItem struct {
	ID       int     `json:"id" yaml:"id"`
	Date     string  `json:"date" yaml:"date"`
	Title    string  `json:"title" yaml:"title"`
	Summary  string  `json:"summary" yaml:"summary"`
	Category Subject `json:"category" yaml:"category"`
}

// Catalog is the immutable bundled study content schema loaded from JSON or YAML.
type Catalog struct {
	Version    int                 `json:"version" yaml:"version"`
	Questions  []Question          `json:"questions" yaml:"questions"`
	Cards      []Card              `json:"cards,omitempty" yaml:"cards,omitempty"`
	Flashcards []Flashcard         `json:"flashcards,omitempty" yaml:"flashcards,omitempty"`
	MindMaps   []MindMap           `json:"mind_maps,omitempty" yaml:"mind_maps,omitempty"`
	Interview  []InterviewQuestion `json:"interview,omitempty" yaml:"interview,omitempty"`
	News       []NewsItem          `json:"news,omitempty" yaml:"news,omitempty"`
}
