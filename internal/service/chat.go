package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"propertychat/internal/analysis"
	"propertychat/internal/conversation"
	"propertychat/internal/model"
	"propertychat/internal/utils"
)

// CatalogGateway is the catalog read contract the pipeline depends on
type CatalogGateway interface {
	GetByID(ctx context.Context, id int64) (*model.Property, error)
	Filter(ctx context.Context, filter *model.PropertyFilter, limit int) ([]model.Property, error)
}

// Generator is the external generation service contract
type Generator interface {
	GenerateReply(ctx context.Context, prompt string) (string, error)
}

// Fixed follow-up suggestions attached to every chat response.
var responseSuggestions = []string{
	"Show me apartments in Lekki",
	"Find duplexes under ₦50 million",
	"What properties are available in Ikoyi?",
	"Tell me about 3 bedroom flats in Yaba",
	"Compare prices in Ikeja and Surulere",
	"Show me studio apartments in Abuja",
}

// ChatService runs the conversational pipeline: analyze, classify, fetch,
// generate, respond. Every stage after validation fails soft, so the
// service always answers, degrading content before availability.
type ChatService struct {
	catalog     CatalogGateway
	generator   Generator
	store       conversation.Store
	analyzer    *analysis.TextAnalyzer
	classifier  *analysis.IntentClassifier
	logger      *zap.Logger
	resultLimit int
}

// NewChatService creates a new chat service
func NewChatService(
	catalog CatalogGateway,
	generator Generator,
	store conversation.Store,
	analyzer *analysis.TextAnalyzer,
	classifier *analysis.IntentClassifier,
	logger *zap.Logger,
	resultLimit int,
) *ChatService {
	return &ChatService{
		catalog:     catalog,
		generator:   generator,
		store:       store,
		analyzer:    analyzer,
		classifier:  classifier,
		logger:      logger,
		resultLimit: resultLimit,
	}
}

// stageResult carries a stage's value plus the recovered cause when the
// stage substituted its fail-soft default.
type stageResult[T any] struct {
	value T
	cause error
}

func stageOK[T any](v T) stageResult[T] {
	return stageResult[T]{value: v}
}

func stageRecovered[T any](def T, cause error) stageResult[T] {
	return stageResult[T]{value: def, cause: cause}
}

func (r stageResult[T]) degraded() bool {
	return r.cause != nil
}

// Respond runs the full pipeline for one inbound message
func (s *ChatService) Respond(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, model.NewPipelineError(model.ErrValidation, "message is required", nil)
	}

	userID := req.UserID
	if userID == "" {
		userID = "default-user"
	}

	history, err := s.store.Read(ctx, userID)
	if err != nil {
		s.logger.Warn("failed to read conversation context, continuing without history",
			zap.String("user_id", userID), zap.Error(err))
		history = nil
	}

	analyzed := s.analyzeStage(req.Message)
	if analyzed.degraded() {
		s.logger.Warn("text analysis degraded", zap.Error(analyzed.cause))
	}

	classified := s.classifyStage(req.Message)
	if classified.degraded() {
		s.logger.Warn("intent classification degraded", zap.Error(classified.cause))
	}

	fetched := s.fetchStage(ctx, req.PropertyID, analyzed.value.entities)
	if fetched.degraded() {
		s.logger.Warn("catalog fetch degraded, substituting empty result set", zap.Error(fetched.cause))
	}
	properties := fetched.value

	generated := s.generateStage(ctx, history, analyzed.value, classified.value, properties)
	if generated.degraded() {
		s.logger.Warn("generation unavailable, using fallback reply", zap.Error(generated.cause))
	}
	reply := generated.value

	// Both turns land in one append so a failure cannot record the user
	// message without its reply.
	if err := s.store.Append(ctx, userID,
		model.ConversationTurn{Role: "user", Content: req.Message},
		model.ConversationTurn{Role: "assistant", Content: reply},
	); err != nil {
		s.logger.Warn("failed to store conversation turns",
			zap.String("user_id", userID), zap.Error(err))
	}

	return &model.ChatResponse{
		ID:      uuid.NewString(),
		Message: formatMessage(reply, properties),
		Analysis: model.Analysis{
			Sentiment: analyzed.value.sentiment,
			Entities:  analyzed.value.entities,
			Intent:    classified.value,
		},
		Properties:  properties,
		Suggestions: responseSuggestions,
	}, nil
}

type analysisResult struct {
	sentiment model.SentimentResult
	entities  []model.Entity
}

func (s *ChatService) analyzeStage(message string) (result stageResult[analysisResult]) {
	defer func() {
		if r := recover(); r != nil {
			result = stageRecovered(analysisResult{
				sentiment: model.SentimentResult{Sentiment: model.SentimentNeutral},
				entities:  []model.Entity{},
			}, fmt.Errorf("text analyzer panic: %v", r))
		}
	}()

	return stageOK(analysisResult{
		sentiment: s.analyzer.AnalyzeSentiment(message),
		entities:  s.analyzer.ExtractEntities(message),
	})
}

func (s *ChatService) classifyStage(message string) (result stageResult[model.IntentPrediction]) {
	defer func() {
		if r := recover(); r != nil {
			result = stageRecovered(model.IntentPrediction{
				Intent:     model.IntentGeneral,
				Confidence: 0.5,
			}, fmt.Errorf("intent classifier panic: %v", r))
		}
	}()

	return stageOK(s.classifier.Predict(message))
}

// fetchStage resolves candidate properties. A supplied property id
// bypasses entity-based filtering and resolves by direct lookup.
func (s *ChatService) fetchStage(ctx context.Context, propertyID *int64, entities []model.Entity) stageResult[[]model.Property] {
	if propertyID != nil {
		property, err := s.catalog.GetByID(ctx, *propertyID)
		if err != nil {
			return stageRecovered([]model.Property{},
				model.NewPipelineError(model.ErrCatalogUnavailable, "property lookup failed", err))
		}
		if property == nil {
			return stageOK([]model.Property{})
		}
		return stageOK([]model.Property{*property})
	}

	properties, err := s.catalog.Filter(ctx, BuildFilter(entities), s.resultLimit)
	if err != nil {
		return stageRecovered([]model.Property{},
			model.NewPipelineError(model.ErrCatalogUnavailable, "property filter failed", err))
	}
	return stageOK(properties)
}

func (s *ChatService) generateStage(
	ctx context.Context,
	history []model.ConversationTurn,
	analyzed analysisResult,
	intent model.IntentPrediction,
	properties []model.Property,
) stageResult[string] {
	prompt := buildPrompt(history, analyzed, intent, properties)

	reply, err := s.generator.GenerateReply(ctx, prompt)
	if err != nil {
		return stageRecovered(fallbackReply(properties),
			model.NewPipelineError(model.ErrGenerationUnavailable, "generation failed", err))
	}
	return stageOK(reply)
}

// buildPrompt embeds the conversation context, the analysis and the
// candidate records into a single generation prompt.
func buildPrompt(
	history []model.ConversationTurn,
	analyzed analysisResult,
	intent model.IntentPrediction,
	properties []model.Property,
) string {
	var b strings.Builder

	b.WriteString("You are a helpful real-estate assistant for a Nigerian property listing site. ")
	b.WriteString("Answer the user's latest message conversationally and concisely.\n\n")

	if len(history) > 0 {
		b.WriteString("Conversation so far:\n")
		for _, turn := range history {
			fmt.Fprintf(&b, "%s: %s\n", turn.Role, turn.Content)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Detected sentiment: %s (score %d)\n", analyzed.sentiment.Sentiment, analyzed.sentiment.Score)
	fmt.Fprintf(&b, "Predicted intent: %s (confidence %.1f)\n", intent.Intent, intent.Confidence)

	if len(analyzed.entities) > 0 {
		b.WriteString("Detected entities:\n")
		for _, entity := range analyzed.entities {
			fmt.Fprintf(&b, "- %s: %s\n", entity.Type, entity.Text)
		}
	}

	if len(properties) > 0 {
		b.WriteString("\nMatching properties:\n")
		for _, p := range properties {
			fmt.Fprintf(&b, "- %s in %s for %s\n", p.Title, p.Location, utils.FormatPrice(p.Price))
		}
	} else {
		b.WriteString("\nNo matching properties were found.\n")
	}

	b.WriteString("\nReply to the user based on the above.")
	return b.String()
}

// fallbackReply is the deterministic reply used when the generation
// service is unavailable. Its shape matches a successful generation so
// downstream formatting cannot tell the difference.
func fallbackReply(properties []model.Property) string {
	if len(properties) == 0 {
		return "I couldn't find any properties matching your request right now. " +
			"Could you try broadening your search, or tell me more about the location, " +
			"property type, or budget you have in mind?"
	}

	var b strings.Builder
	b.WriteString("Here are some properties that match your search:\n")
	for _, p := range properties {
		fmt.Fprintf(&b, "\n- %s in %s for %s", p.Title, p.Location, utils.FormatPrice(p.Price))
	}
	return b.String()
}

// formatMessage concatenates the reply text with a rendered block per
// candidate record.
func formatMessage(reply string, properties []model.Property) string {
	if len(properties) == 0 {
		return reply
	}

	var b strings.Builder
	b.WriteString(reply)
	for _, p := range properties {
		b.WriteString("\n\n")
		b.WriteString(renderPropertyBlock(p))
	}
	return b.String()
}

func renderPropertyBlock(p model.Property) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", p.Title)
	fmt.Fprintf(&b, "Location: %s\n", p.Location)
	fmt.Fprintf(&b, "Price: %s\n", utils.FormatPrice(p.Price))
	fmt.Fprintf(&b, "Type: %s\n", p.Type)
	fmt.Fprintf(&b, "Bedrooms: %s | Bathrooms: %s\n", utils.IntOrNA(p.Bedrooms), utils.IntOrNA(p.Bathrooms))
	fmt.Fprintf(&b, "Amenities: %s\n", utils.JoinOrNA(p.Amenities))
	fmt.Fprintf(&b, "Status: %s", utils.StatusOrDefault(p.Status))
	return b.String()
}
