package analytics

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

const neutralScoreDefault = 50.0

// Engine runs all extractors against one meeting and combines their
// outputs into composite metrics. It holds only immutable extractor
// instances, so a single Engine is safe for concurrent runs.
type Engine struct {
	participants *ParticipantExtractor
	topics       *TopicExtractor
	decisions    *DecisionExtractor
	actionItems  *ActionItemExtractor
	codeContext  *CodeContextExtractor
	sentiment    *SentimentExtractor
	engagement   *EngagementExtractor
	logger       *zap.Logger
}

// NewEngine creates an Engine with all seven extractors
func NewEngine(logger *zap.Logger) *Engine {
	return &Engine{
		participants: NewParticipantExtractor(),
		topics:       NewTopicExtractor(),
		decisions:    NewDecisionExtractor(),
		actionItems:  NewActionItemExtractor(),
		codeContext:  NewCodeContextExtractor(),
		sentiment:    NewSentimentExtractor(),
		engagement:   NewEngagementExtractor(),
		logger:       logger,
	}
}

// ExtractAll fans the seven extractors out concurrently, waits for all of
// them, then computes aggregated metrics from whatever succeeded. A failed
// extractor leaves its category nil and records the reason under Errors;
// no failure ever aborts the run.
func (e *Engine) ExtractAll(meeting *entities.MeetingData) *entities.MeetingAnalytics {
	result := &entities.MeetingAnalytics{MeetingID: meeting.MeetingID}

	var wg sync.WaitGroup
	var mu sync.Mutex

	fail := func(category string, err error) {
		mu.Lock()
		defer mu.Unlock()
		if result.Errors == nil {
			result.Errors = make(map[string]string)
		}
		result.Errors[category] = err.Error()
		if e.logger != nil {
			e.logger.Warn("extractor failed",
				zap.String("meeting_id", meeting.MeetingID),
				zap.String("category", category),
				zap.Error(err),
			)
		}
	}

	run := func(category string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if p := recover(); p != nil {
					fail(category, fmt.Errorf("panic recovered: %v", p))
				}
			}()
			if err := fn(); err != nil {
				fail(category, err)
			}
		}()
	}

	run(entities.CategoryParticipants, func() error {
		out, err := e.participants.Extract(meeting)
		if err != nil {
			return err
		}
		result.Participants = out
		return nil
	})
	run(entities.CategoryTopics, func() error {
		out, err := e.topics.Extract(meeting)
		if err != nil {
			return err
		}
		result.Topics = out
		return nil
	})
	run(entities.CategoryDecisions, func() error {
		out, err := e.decisions.Extract(meeting)
		if err != nil {
			return err
		}
		result.Decisions = out
		return nil
	})
	run(entities.CategoryActionItems, func() error {
		out, err := e.actionItems.Extract(meeting)
		if err != nil {
			return err
		}
		result.ActionItems = out
		return nil
	})
	run(entities.CategoryCodeContext, func() error {
		out, err := e.codeContext.Extract(meeting)
		if err != nil {
			return err
		}
		result.CodeContext = out
		return nil
	})
	run(entities.CategorySentiment, func() error {
		out, err := e.sentiment.Extract(meeting)
		if err != nil {
			return err
		}
		result.Sentiment = out
		return nil
	})
	run(entities.CategoryEngagement, func() error {
		out, err := e.engagement.Extract(meeting)
		if err != nil {
			return err
		}
		result.Engagement = out
		return nil
	})

	wg.Wait()

	result.AggregatedMetrics = e.aggregate(result)
	return result
}

// aggregate computes composite scores from the categories that succeeded.
// Missing categories count as empty; a scoring failure falls back to a
// neutral default instead of failing the run.
func (e *Engine) aggregate(result *entities.MeetingAnalytics) *entities.AggregatedMetrics {
	metrics := &entities.AggregatedMetrics{
		TotalParticipants: len(result.Participants),
		TotalTopics:       len(result.Topics),
		TotalDecisions:    len(result.Decisions),
		TotalActionItems:  len(result.ActionItems),
	}

	metrics.MeetingProductivityScore = e.productivityScore(result)
	metrics.EngagementScore = e.aggregateEngagementScore(result)
	metrics.TechnicalComplexity = e.technicalComplexity(result.CodeContext)

	return metrics
}

func (e *Engine) productivityScore(result *entities.MeetingAnalytics) (score float64) {
	defer func() {
		if p := recover(); p != nil {
			score = neutralScoreDefault
		}
	}()

	topics := len(result.Topics)
	if topics > 5 {
		topics = 5
	}
	score = float64(len(result.Decisions)*30 + len(result.ActionItems)*25 + topics*9)
	if score > 100 {
		score = 100
	}
	return score
}

func (e *Engine) aggregateEngagementScore(result *entities.MeetingAnalytics) (score float64) {
	defer func() {
		if p := recover(); p != nil {
			score = neutralScoreDefault
		}
	}()

	if len(result.Participants) == 0 {
		return neutralScoreDefault
	}

	var sum float64
	for _, p := range result.Participants {
		sum += p.ContributionScore
	}
	score = sum / float64(len(result.Participants)) * 20
	if score > 100 {
		score = 100
	}
	return score
}

func (e *Engine) technicalComplexity(codeContext *entities.CodeContextAnalytics) string {
	if codeContext == nil {
		return entities.ComplexityLow
	}

	codeRefs := len(codeContext.CodeReferences)
	techTerms := len(codeContext.TechnicalTerms)

	switch {
	case codeRefs > 10 || techTerms > 20:
		return entities.ComplexityHigh
	case codeRefs > 3 || techTerms > 8:
		return entities.ComplexityMedium
	default:
		return entities.ComplexityLow
	}
}
