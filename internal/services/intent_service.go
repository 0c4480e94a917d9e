package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"

	"placefinder/internal/clients/llm"
	"placefinder/internal/models/response_models"
	"placefinder/pkg/geo"
)

// The model is instructed to answer with this fixed schema and nothing
// else. Its output is still treated as untrusted text.
const intentSystemPrompt = `You are a location extraction assistant. Extract location search information from user queries and return ONLY a valid JSON object with these exact fields:

{
  "search_term": "what the user is looking for (e.g., 'coffee shop', 'restaurant', 'hospital')",
  "location_hint": "a concrete place or area to search near, or an empty string if none is named",
  "query_type": "NEARBY" (query implies proximity to the user, e.g. 'near me'), "SPECIFIC" (query names a concrete place) or "GENERAL" (neither),
  "radius_hint": search radius in meters implied by the query, or 0 if none
}

Examples:
User: "find a coffee shop near Taipei 101"
Response: {"search_term": "coffee shop", "location_hint": "Taipei 101", "query_type": "SPECIFIC", "radius_hint": 0}

User: "good beef noodles around here"
Response: {"search_term": "beef noodles", "location_hint": "", "query_type": "NEARBY", "radius_hint": 0}

User: "best museums"
Response: {"search_term": "museums", "location_hint": "", "query_type": "GENERAL", "radius_hint": 0}

Return ONLY the JSON object, no other text.`

const maxRadiusHintMeters = 50000

type IntentServiceInterface interface {
	// Extract never fails: any backend or parse problem degrades to a
	// fallback intent built from the raw query.
	Extract(ctx context.Context, query string, userLocation *geo.Coordinates) response_models.SearchIntent
}

type IntentService struct {
	llmClient llm.Client
	timeout   time.Duration
	logger    *zap.Logger
}

func NewIntentService(llmClient llm.Client, timeout time.Duration, logger *zap.Logger) IntentServiceInterface {
	return &IntentService{
		llmClient: llmClient,
		timeout:   timeout,
		logger:    logger,
	}
}

type intentPayload struct {
	SearchTerm   string `json:"search_term"`
	LocationHint string `json:"location_hint"`
	QueryType    string `json:"query_type"`
	RadiusHint   int    `json:"radius_hint"`
}

func (s *IntentService) Extract(ctx context.Context, query string, userLocation *geo.Coordinates) response_models.SearchIntent {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	userPrompt := query
	if userLocation != nil {
		userPrompt = query + "\n(the user's current coordinates are known)"
	}

	raw, err := s.llmClient.Complete(ctx, intentSystemPrompt, userPrompt)
	if err != nil {
		s.logger.Warn("intent extraction degraded, using fallback intent",
			zap.String("query", query),
			zap.Error(err))
		return fallbackIntent(query)
	}

	intent, ok := s.parse(raw)
	if !ok {
		s.logger.Warn("intent extraction returned malformed output, using fallback intent",
			zap.String("query", query))
		return fallbackIntent(query)
	}

	return intent
}

func (s *IntentService) parse(raw string) (response_models.SearchIntent, bool) {
	cleaned := cleanJSONResponse(raw)

	var payload intentPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return response_models.SearchIntent{}, false
	}

	payload.SearchTerm = strings.TrimSpace(payload.SearchTerm)
	if payload.SearchTerm == "" {
		return response_models.SearchIntent{}, false
	}

	queryType := response_models.QueryType(strings.ToUpper(strings.TrimSpace(payload.QueryType)))
	if !queryType.Valid() {
		return response_models.SearchIntent{}, false
	}

	hint := strings.TrimSpace(payload.LocationHint)
	// Some models echo "near me" as a place; it is a proximity marker,
	// not a location.
	if strings.EqualFold(hint, "near me") {
		hint = ""
		queryType = response_models.QueryTypeNearby
	}

	radius := payload.RadiusHint
	if radius < 0 {
		radius = 0
	}
	if radius > maxRadiusHintMeters {
		radius = maxRadiusHintMeters
	}

	return response_models.SearchIntent{
		SearchTerm:   payload.SearchTerm,
		LocationHint: hint,
		QueryType:    queryType,
		RadiusHint:   radius,
	}, true
}

func fallbackIntent(query string) response_models.SearchIntent {
	return response_models.SearchIntent{
		SearchTerm: query,
		QueryType:  response_models.QueryTypeGeneral,
	}
}

// cleanJSONResponse strips markdown fences and surrounding prose, keeping
// the first balanced JSON object.
func cleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	if start == -1 {
		return response
	}
	if end := findMatchingBrace(response, start); end != -1 {
		return response[start : end+1]
	}
	return response
}

func findMatchingBrace(s string, start int) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
