// Package feed keeps each client's social feed in memory.
package feed

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/passa-a-bola/passa-web/internal/dependencies/clock"
	"github.com/passa-a-bola/passa-web/internal/model"
)

// DefaultAuthorPhoto is used for every author until profiles carry photos
const DefaultAuthorPhoto = "https://via.placeholder.com/50"

// Service holds one post list per client. Nothing is persisted; a
// client's feed is dropped on Reset (logout) or process restart.
type Service struct {
	clock  clock.Clock
	logger *slog.Logger

	mu    sync.Mutex
	feeds map[string][]model.Post
}

// New creates a feed Service
func New(clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		clock:  clock,
		logger: logger,
		feeds:  make(map[string][]model.Post),
	}
}

// Posts returns the client's feed, most recent first. The first call for
// a client seeds the feed with the community's starter posts.
func (s *Service) Posts(clientID string) []model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Post(nil), s.feedLocked(clientID)...)
}

// Publish prepends a new post. Content must contain non-space text.
func (s *Service) Publish(clientID, author, content, image string) (model.Post, error) {
	if strings.TrimSpace(content) == "" {
		return model.Post{}, model.ErrEmptyPost
	}
	if author == "" {
		author = "Usuária"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	posts := s.feedLocked(clientID)
	post := model.Post{
		ID:          model.PostID(len(posts) + 1),
		Author:      author,
		AuthorPhoto: DefaultAuthorPhoto,
		Content:     content,
		Image:       image,
		CreatedAt:   s.clock.Now(),
	}
	s.feeds[clientID] = append([]model.Post{post}, posts...)

	s.logger.Info("post published",
		slog.String("client_id", clientID),
		slog.Int("post_id", int(post.ID)),
	)
	return post, nil
}

// Like adds one like to the post with the given id
func (s *Service) Like(clientID string, id model.PostID) (model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := s.feedLocked(clientID)
	for i := range posts {
		if posts[i].ID == id {
			posts[i].Likes++
			return posts[i], nil
		}
	}
	return model.Post{}, model.ErrPostNotFound
}

// Reset forgets the client's feed
func (s *Service) Reset(clientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.feeds, clientID)
}

func (s *Service) feedLocked(clientID string) []model.Post {
	posts, ok := s.feeds[clientID]
	if !ok {
		posts = starterPosts()
		s.feeds[clientID] = posts
	}
	return posts
}

func starterPosts() []model.Post {
	return []model.Post{
		{
			ID:          1,
			Author:      "Marta Vieira da Silva",
			AuthorPhoto: DefaultAuthorPhoto,
			Content:     "Muito feliz com o treino de hoje! Bora continuar trabalhando forte! 💪⚽",
			Image:       "https://images.unsplash.com/photo-1579952363873-27f3bade9f55?w=600",
			Likes:       234,
			Comments:    45,
			CreatedAt:   time.Date(2025, 11, 5, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:          2,
			Author:      "Debinha",
			AuthorPhoto: DefaultAuthorPhoto,
			Content:     "Peneira aberta em São Paulo! Não percam essa oportunidade! 🌟",
			Likes:       189,
			Comments:    32,
			CreatedAt:   time.Date(2025, 11, 5, 9, 15, 0, 0, time.UTC),
		},
	}
}
