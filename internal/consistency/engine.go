package consistency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"promptgen-server/internal/cache"
	"promptgen-server/internal/llm"
	"promptgen-server/internal/utils"
	"promptgen-server/internal/vectorstore"
)

const (
	// historyTTL - время жизни истории сущности в кеше.
	historyTTL = 7200 * time.Second
	// historyLimit - сколько последних записей истории хранится.
	historyLimit = 10
	// correctionContext - сколько записей истории уходит в запрос коррекции.
	correctionContext = 3
	// compatibilityThreshold - минимальное пересечение токенов для
	// совместимости значений признака.
	compatibilityThreshold = 0.5
)

// Entry - одна запись истории описаний сущности.
type Entry struct {
	Prompt    string            `json:"prompt"`
	Features  map[string]string `json:"features"`
	Timestamp time.Time         `json:"timestamp"`
}

// Issue - расхождение значения признака с историей.
type Issue struct {
	Feature  string `json:"feature"`
	Current  string `json:"current"`
	Expected string `json:"expected"`
}

// featureSchema - какие признаки извлекаются для типа сущности.
type featureSchema struct {
	Required []string
	Optional []string
}

var featureSchemas = map[string]featureSchema{
	"character": {
		Required: []string{"appearance", "clothing", "hair", "eyes"},
		Optional: []string{"age", "height", "build", "distinguishing_features"},
	},
	"scene": {
		Required: []string{"location", "lighting", "atmosphere"},
		Optional: []string{"time_of_day", "weather", "season"},
	},
	"object": {
		Required: []string{"appearance", "size", "material"},
		Optional: []string{"color", "condition", "position"},
	},
}

// Engine следит за тем, чтобы описания одной сущности не противоречили
// друг другу между генерациями. История хранится в кеше и зеркалируется
// в векторное хранилище для холодного старта.
type Engine struct {
	llm     llm.Client
	cache   cache.Cache
	vectors vectorstore.Store
	logger  *zap.Logger
}

func NewEngine(llmClient llm.Client, c cache.Cache, vectors vectorstore.Store, logger *zap.Logger) *Engine {
	return &Engine{
		llm:     llmClient,
		cache:   c,
		vectors: vectors,
		logger:  logger.Named("ConsistencyEngine"),
	}
}

// EnsureConsistency проверяет промпт против истории сущности. Первое
// появление устанавливает базовую линию и возвращает промпт без
// изменений. При расхождениях промпт исправляется через LLM; ошибка
// коррекции возвращается вызывающему, неисправленный промпт наружу не
// уходит.
func (e *Engine) EnsureConsistency(ctx context.Context, prompt, bookID, entityType, entityID string) (string, error) {
	history, err := e.loadHistory(ctx, bookID, entityType, entityID)
	if err != nil {
		return "", fmt.Errorf("загрузка истории сущности %s/%s: %w", entityType, entityID, err)
	}

	if len(history) == 0 {
		if err := e.establishBaseline(ctx, prompt, bookID, entityType, entityID); err != nil {
			return "", fmt.Errorf("установка базовой линии %s/%s: %w", entityType, entityID, err)
		}
		return prompt, nil
	}

	issues, err := e.findIssues(ctx, prompt, entityType, history)
	if err != nil {
		return "", err
	}

	if len(issues) == 0 {
		if err := e.updateHistory(ctx, prompt, bookID, entityType, entityID); err != nil {
			return "", err
		}
		return prompt, nil
	}

	e.logger.Info("найдены расхождения с историей сущности",
		zap.String("entity_type", entityType),
		zap.String("entity_id", entityID),
		zap.Int("issues", len(issues)),
	)

	fixed, err := e.correct(ctx, prompt, history, issues)
	if err != nil {
		return "", fmt.Errorf("коррекция промпта %s/%s: %w", entityType, entityID, err)
	}

	if err := e.updateHistory(ctx, fixed, bookID, entityType, entityID); err != nil {
		return "", err
	}

	return fixed, nil
}

// loadHistory читает историю из кеша, при промахе восстанавливает ее из
// векторного хранилища. Недоступный кеш деградирует до холодного пути.
func (e *Engine) loadHistory(ctx context.Context, bookID, entityType, entityID string) ([]Entry, error) {
	key := historyKey(bookID, entityType, entityID)

	raw, found, err := e.cache.Get(ctx, key)
	if err != nil {
		e.logger.Warn("кеш истории недоступен, читаем из векторного хранилища", zap.Error(err))
	} else if found {
		var history []Entry
		if err := json.Unmarshal([]byte(raw), &history); err == nil {
			return history, nil
		}
		e.logger.Warn("испорченная история в кеше, читаем из векторного хранилища", zap.String("key", key))
	}

	query, err := e.llm.Embed(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("эмбеддинг запроса истории: %w", err)
	}

	matches, err := e.vectors.Search(ctx, collectionName(entityType), query, historyLimit, map[string]any{
		"book_id":   bookID,
		"entity_id": entityID,
	})
	if err != nil {
		if errors.Is(err, vectorstore.ErrCollectionNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("поиск истории в векторном хранилище: %w", err)
	}

	history := make([]Entry, 0, len(matches))
	for _, match := range matches {
		history = append(history, entryFromMetadata(match.Metadata))
	}
	return history, nil
}

func (e *Engine) establishBaseline(ctx context.Context, prompt, bookID, entityType, entityID string) error {
	features, err := e.extractFeatures(ctx, prompt, entityType)
	if err != nil {
		return err
	}

	entry := Entry{Prompt: prompt, Features: features, Timestamp: time.Now().UTC()}

	if err := e.persistEntry(ctx, entry, bookID, entityType, entityID, entityID); err != nil {
		return err
	}

	return e.storeHistory(ctx, bookID, entityType, entityID, []Entry{entry})
}

func (e *Engine) updateHistory(ctx context.Context, prompt, bookID, entityType, entityID string) error {
	features, err := e.extractFeatures(ctx, prompt, entityType)
	if err != nil {
		return err
	}

	entry := Entry{Prompt: prompt, Features: features, Timestamp: time.Now().UTC()}

	vectorID := fmt.Sprintf("%s_%x", entityID, promptHash(prompt))
	if err := e.persistEntry(ctx, entry, bookID, entityType, entityID, vectorID); err != nil {
		return err
	}

	history, err := e.loadHistory(ctx, bookID, entityType, entityID)
	if err != nil {
		return err
	}
	history = append(history, entry)
	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}

	return e.storeHistory(ctx, bookID, entityType, entityID, history)
}

// persistEntry зеркалирует запись в векторное хранилище.
func (e *Engine) persistEntry(ctx context.Context, entry Entry, bookID, entityType, entityID, vectorID string) error {
	embedding, err := e.llm.Embed(ctx, entry.Prompt)
	if err != nil {
		return fmt.Errorf("эмбеддинг промпта: %w", err)
	}

	metadata := map[string]any{
		"prompt":    entry.Prompt,
		"features":  entry.Features,
		"book_id":   bookID,
		"entity_id": entityID,
		"timestamp": entry.Timestamp.Format(time.RFC3339),
	}

	if err := e.vectors.Insert(ctx, collectionName(entityType), vectorID, embedding, metadata); err != nil {
		return fmt.Errorf("запись в векторное хранилище: %w", err)
	}
	return nil
}

func (e *Engine) storeHistory(ctx context.Context, bookID, entityType, entityID string, history []Entry) error {
	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("сериализация истории: %w", err)
	}

	if err := e.cache.Set(ctx, historyKey(bookID, entityType, entityID), string(data), historyTTL); err != nil {
		// История переживается векторным хранилищем, промах кеша не фатален.
		e.logger.Warn("не удалось закешировать историю сущности", zap.Error(err))
	}
	return nil
}

// findIssues извлекает признаки текущего промпта и сверяет их с каждой
// записью истории.
func (e *Engine) findIssues(ctx context.Context, prompt, entityType string, history []Entry) ([]Issue, error) {
	current, err := e.extractFeatures(ctx, prompt, entityType)
	if err != nil {
		return nil, err
	}

	var issues []Issue
	for _, historical := range history {
		for _, feature := range sortedKeys(historical.Features) {
			currentValue, ok := current[feature]
			if !ok {
				continue
			}
			expected := historical.Features[feature]
			if !compatible(currentValue, expected) {
				issues = append(issues, Issue{
					Feature:  feature,
					Current:  currentValue,
					Expected: expected,
				})
			}
		}
	}
	return issues, nil
}

// extractFeatures просит LLM вытащить признаки по схеме типа сущности.
// Неразобранный ответ деградирует до пустой карты.
func (e *Engine) extractFeatures(ctx context.Context, prompt, entityType string) (map[string]string, error) {
	schema := featureSchemas[entityType]

	systemPrompt := fmt.Sprintf(
		"Extract the following features from the prompt:\nRequired: %s\nOptional: %s\nReturn as JSON with feature names as keys and short string values.",
		strings.Join(schema.Required, ", "),
		strings.Join(schema.Optional, ", "),
	)

	response, err := e.llm.GenerateText(ctx, systemPrompt, prompt, llm.Options{JSONMode: true})
	if err != nil {
		return nil, fmt.Errorf("извлечение признаков: %w", err)
	}

	return utils.ParseOrDefault(e.logger, response, map[string]string{}), nil
}

// correct просит LLM исправить перечисленные расхождения, сохранив
// остальной текст. В контекст уходят до трех записей истории.
func (e *Engine) correct(ctx context.Context, prompt string, history []Entry, issues []Issue) (string, error) {
	corrections := make([]string, 0, len(issues))
	for _, issue := range issues {
		corrections = append(corrections,
			fmt.Sprintf("- %s: should be '%s' not '%s'", issue.Feature, issue.Expected, issue.Current))
	}

	contextEntries := history
	if len(contextEntries) > correctionContext {
		contextEntries = contextEntries[:correctionContext]
	}
	contextJSON, err := json.MarshalIndent(contextEntries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("сериализация контекста коррекции: %w", err)
	}

	systemPrompt := "Fix the following consistency issues in the prompt. " +
		"Maintain all other aspects while correcting only the specified issues."

	userPrompt := fmt.Sprintf(
		"Original prompt: %s\n\nRequired corrections:\n%s\n\nHistorical context:\n%s\n\nReturn the corrected prompt.",
		prompt,
		strings.Join(corrections, "\n"),
		string(contextJSON),
	)

	fixed, err := e.llm.GenerateText(ctx, systemPrompt, userPrompt, llm.Options{})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(fixed), nil
}

// compatible сравнивает два значения признака: точное совпадение без
// учета регистра либо пересечение множеств токенов больше порога.
func compatible(a, b string) bool {
	if strings.EqualFold(a, b) {
		return true
	}

	wordsA := tokenSet(a)
	wordsB := tokenSet(b)

	union := len(wordsA)
	overlap := 0
	for word := range wordsB {
		if _, ok := wordsA[word]; ok {
			overlap++
		} else {
			union++
		}
	}

	if union == 0 {
		return true
	}
	return float64(overlap)/float64(union) > compatibilityThreshold
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, word := range strings.Fields(strings.ToLower(s)) {
		set[word] = struct{}{}
	}
	return set
}

func historyKey(bookID, entityType, entityID string) string {
	return fmt.Sprintf("consistency:%s:%s:%s", bookID, entityType, entityID)
}

func collectionName(entityType string) string {
	return "consistency_" + entityType
}

func promptHash(prompt string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(prompt))
	return h.Sum64()
}

func entryFromMetadata(metadata map[string]any) Entry {
	entry := Entry{Features: map[string]string{}}

	if prompt, ok := metadata["prompt"].(string); ok {
		entry.Prompt = prompt
	}
	if raw, ok := metadata["timestamp"].(string); ok {
		if ts, err := time.Parse(time.RFC3339, raw); err == nil {
			entry.Timestamp = ts
		}
	}
	switch features := metadata["features"].(type) {
	case map[string]string:
		entry.Features = features
	case map[string]any:
		for key, value := range features {
			if s, ok := value.(string); ok {
				entry.Features[key] = s
			}
		}
	}
	return entry
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
