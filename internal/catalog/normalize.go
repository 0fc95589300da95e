package catalog

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a catalog.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("catalog validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Normalize trims whitespace and validates a catalog.
func Normalize(cat Catalog) (Catalog, error) {
	collector := &issueCollector{}
	if cat.Version == 0 {
		collector.add("version", "is required")
	} else if cat.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cat.Version))
	}

	normalizeQuestions(&cat, collector)
	normalizeCards(&cat, collector)
	normalizeFlashcards(&cat, collector)
	normalizeMindMaps(&cat, collector)
	normalizeInterview(&cat, collector)
	normalizeNews(&cat, collector)

	if err := collector.result(); err != nil {
		return Catalog{}, err
	}
	return cat, nil
}

func normalizeQuestions(cat *Catalog, collector *issueCollector) {
	seenIDs := map[int]struct{}{}
	for i, question := range cat.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		if question.ID <= 0 {
			collector.add(prefix+".id", "must be a positive integer")
		} else if _, exists := seenIDs[question.ID]; exists {
			collector.add(prefix+".id", fmt.Sprintf("duplicate id %d", question.ID))
		} else {
			seenIDs[question.ID] = struct{}{}
		}

		question.Prompt = strings.TrimSpace(question.Prompt)
		if question.Prompt == "" {
			collector.add(prefix+".question", "is required")
		}

		question.Options = trimAll(question.Options)
		if len(question.Options) < 2 {
			collector.add(prefix+".options", "must include at least two entries")
		}
		for optionIndex, option := range question.Options {
			if option == "" {
				collector.add(fmt.Sprintf("%s.options[%d]", prefix, optionIndex), "is required")
			}
		}

		if question.Answer < 0 || question.Answer >= len(question.Options) {
			collector.add(prefix+".answer", fmt.Sprintf("index %d is out of range for %d options", question.Answer, len(question.Options)))
		}

		question.Explanation = strings.TrimSpace(question.Explanation)

		switch question.Difficulty {
		case DifficultyEasy, DifficultyMedium, DifficultyHard:
		case "":
			question.Difficulty = DifficultyMedium
		default:
			collector.add(prefix+".difficulty", fmt.Sprintf("unknown difficulty %q", question.Difficulty))
		}
		cat.Questions[i] = question
	}
}

func normalizeCards(cat *Catalog, collector *issueCollector) {
	for i, card := range cat.Cards {
		prefix := fmt.Sprintf("cards[%d]", i)
		card.Title = strings.TrimSpace(card.Title)
		card.Body = strings.TrimSpace(card.Body)
		if card.Title == "" {
			collector.add(prefix+".title", "is required")
		}
		if card.Body == "" {
			collector.add(prefix+".body", "is required")
		}
		cat.Cards[i] = card
	}
}

func normalizeFlashcards(cat *Catalog, collector *issueCollector) {
	for i, card := range cat.Flashcards {
		prefix := fmt.Sprintf("flashcards[%d]", i)
		card.Front = strings.TrimSpace(card.Front)
		card.Back = strings.TrimSpace(card.Back)
		if card.Front == "" {
			collector.add(prefix+".front", "is required")
		}
		if card.Back == "" {
			collector.add(prefix+".back", "is required")
		}
		cat.Flashcards[i] = card
	}
}

func normalizeMindMaps(cat *Catalog, collector *issueCollector) {
	for i, mindMap := range cat.MindMaps {
		prefix := fmt.Sprintf("mind_maps[%d]", i)
		mindMap.Topic = strings.TrimSpace(mindMap.Topic)
		if mindMap.Topic == "" {
			collector.add(prefix+".topic", "is required")
		}
		if len(mindMap.Nodes) == 0 {
			collector.add(prefix+".nodes", "must include at least one entry")
		}
		normalizeMindMapNodes(prefix+".nodes", mindMap.Nodes, collector)
		cat.MindMaps[i] = mindMap
	}
}

func normalizeMindMapNodes(prefix string, nodes []MindMapNode, collector *issueCollector) {
	for i, node := range nodes {
		node.Label = strings.TrimSpace(node.Label)
		if node.Label == "" {
			collector.add(fmt.Sprintf("%s[%d].label", prefix, i), "is required")
		}
		normalizeMindMapNodes(fmt.Sprintf("%s[%d].children", prefix, i), node.Children, collector)
		nodes[i] = node
	}
}

func normalizeInterview(cat *Catalog, collector *issueCollector) {
	for i, question := range cat.Interview {
		prefix := fmt.Sprintf("interview[%d]", i)
		question.Question = strings.TrimSpace(question.Question)
		question.Guidance = strings.TrimSpace(question.Guidance)
		if question.Question == "" {
			collector.add(prefix+".question", "is required")
		}
		switch question.Category {
		case InterviewPersonal, InterviewSituational, InterviewTechnical:
		default:
			collector.add(prefix+".category", fmt.Sprintf("unknown category %q", question.Category))
		}
		cat.Interview[i] = question
	}
}

func normalizeNews(cat *Catalog, collector *issueCollector) {
	for i, item := range cat.News {
		prefix := fmt.Sprintf("news[%d]", i)
		item.Title = strings.TrimSpace(item.Title)
		item.Summary = strings.TrimSpace(item.Summary)
		item.Date = strings.TrimSpace(item.Date)
		if item.Title == "" {
			collector.add(prefix+".title", "is required")
		}
		if item.Date == "" {
			collector.add(prefix+".date", "is required")
		}
		cat.News[i] = item
	}
}

func trimAll(values []string) []string {
	trimmed := make([]string, 0, len(values))
	for _, value := range values {
		trimmed = append(trimmed, strings.TrimSpace(value))
	}
	return trimmed
}
