package bookctx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"promptgen-server/internal/cache"
	"promptgen-server/internal/models"
)

// contextTTL - время жизни контекста книги в кэше.
const contextTTL = 24 * time.Hour

// Store объединяет кэш и durable-репозиторий контекстов книг.
// Чтение идет через кэш, мутации - только через Update: помьютексная
// блокировка на bookID сериализует цикл load-mutate-save, поэтому
// конкурентные правки одной книги не теряются.
type Store struct {
	repo   Repository
	cache  cache.Cache
	logger *zap.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewStore(repo Repository, c cache.Cache, logger *zap.Logger) *Store {
	return &Store{
		repo:   repo,
		cache:  c,
		logger: logger.Named("BookContextStore"),
		locks:  make(map[string]*sync.Mutex),
	}
}

// Get возвращает контекст книги: из кэша, иначе из репозитория, иначе
// свежесозданный пустой контекст. Холодная загрузка прогревает кэш.
func (s *Store) Get(ctx context.Context, bookID string) (*models.BookContext, error) {
	if bctx := s.fromCache(ctx, bookID); bctx != nil {
		return bctx, nil
	}

	bctx, err := s.repo.Get(ctx, bookID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.NewBookContext(bookID), nil
		}
		return nil, err
	}

	s.toCache(ctx, bctx)
	return bctx, nil
}

// Update применяет fn к контексту книги под блокировкой этой книги и
// сохраняет результат в репозиторий и кэш. Единственный путь мутации.
func (s *Store) Update(ctx context.Context, bookID string, fn func(*models.BookContext) error) (*models.BookContext, error) {
	lock := s.lockFor(bookID)
	lock.Lock()
	defer lock.Unlock()

	bctx, err := s.Get(ctx, bookID)
	if err != nil {
		return nil, err
	}

	if err := fn(bctx); err != nil {
		return nil, fmt.Errorf("мутация контекста книги %s: %w", bookID, err)
	}

	bctx.Version++
	bctx.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, bctx); err != nil {
		return nil, err
	}
	s.toCache(ctx, bctx)

	return bctx, nil
}

func (s *Store) lockFor(bookID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[bookID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[bookID] = lock
	}
	return lock
}

// fromCache возвращает nil при промахе, ошибке кэша или испорченных
// данных - все три случая деградируют до чтения из репозитория.
func (s *Store) fromCache(ctx context.Context, bookID string) *models.BookContext {
	raw, found, err := s.cache.Get(ctx, cacheKey(bookID))
	if err != nil {
		s.logger.Warn("кэш контекстов недоступен", zap.Error(err))
		return nil
	}
	if !found {
		return nil
	}

	var bctx models.BookContext
	if err := json.Unmarshal([]byte(raw), &bctx); err != nil {
		s.logger.Warn("испорченный контекст книги в кэше",
			zap.String("bookID", bookID), zap.Error(err))
		return nil
	}
	return &bctx
}

func (s *Store) toCache(ctx context.Context, bctx *models.BookContext) {
	raw, err := json.Marshal(bctx)
	if err != nil {
		s.logger.Warn("сериализация контекста книги для кэша",
			zap.String("bookID", bctx.BookID), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, cacheKey(bctx.BookID), string(raw), contextTTL); err != nil {
		s.logger.Warn("не удалось закэшировать контекст книги",
			zap.String("bookID", bctx.BookID), zap.Error(err))
	}
}

func cacheKey(bookID string) string {
	return "book_context:" + bookID
}
