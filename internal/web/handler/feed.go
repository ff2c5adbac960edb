package handler

import (
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/passa-a-bola/passa-web/internal/dependencies/clock"
	"github.com/passa-a-bola/passa-web/internal/feed"
	"github.com/passa-a-bola/passa-web/internal/model"
	"github.com/passa-a-bola/passa-web/internal/web/middleware"
	"github.com/passa-a-bola/passa-web/internal/web/templates/pages"
)

// MaxImageSize is the largest image accepted with a post
const MaxImageSize = 5 << 20

// multipart overhead allowed on top of the image itself
const maxPostBody = MaxImageSize + 1<<20

const (
	emptyPostMessage     = "Escreva algo antes de publicar."
	imageTooLargeMessage = "A imagem deve ter no máximo 5MB."
	notAnImageMessage    = "Selecione um arquivo de imagem."
	badUploadMessage     = "Não foi possível ler a imagem enviada."
)

// FeedHandler handles the community feed
type FeedHandler struct {
	feed   *feed.Service
	clock  clock.Clock
	logger *slog.Logger
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(feed *feed.Service, clock clock.Clock, logger *slog.Logger) *FeedHandler {
	return &FeedHandler{
		feed:   feed,
		clock:  clock,
		logger: logger,
	}
}

// View renders the client's feed
func (h *FeedHandler) View(w http.ResponseWriter, r *http.Request) {
	h.renderFeed(w, r, http.StatusOK, "", "")
}

// Publish handles the new post form, with an optional image upload
func (h *FeedHandler) Publish(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxPostBody)
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.renderFeed(w, r, http.StatusRequestEntityTooLarge, "", imageTooLargeMessage)
			return
		}
		if !errors.Is(err, http.ErrNotMultipart) {
			h.renderFeed(w, r, http.StatusBadRequest, "", badUploadMessage)
			return
		}
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	content := r.FormValue("conteudo")
	image, msg := readImage(r)
	if msg != "" {
		h.renderFeed(w, r, http.StatusBadRequest, content, msg)
		return
	}

	clientID := middleware.GetClientID(r.Context())
	author := ""
	if user := middleware.GetUser(r.Context()); user != nil {
		author = user.DisplayName()
	}
	post, err := h.feed.Publish(clientID, author, content, image)
	if errors.Is(err, model.ErrEmptyPost) {
		h.renderFeed(w, r, http.StatusBadRequest, content, emptyPostMessage)
		return
	}
	if err != nil {
		h.logger.Error("publish post", slog.String("error", err.Error()))
		middleware.ErrorPage(w, http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/feed#post-"+strconv.Itoa(int(post.ID)), http.StatusSeeOther)
}

// Like adds one like to a post
func (h *FeedHandler) Like(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Redirect(w, r, "/feed", http.StatusSeeOther)
		return
	}

	post, err := h.feed.Like(middleware.GetClientID(r.Context()), model.PostID(id))
	if err != nil {
		middleware.SetFlash(w, "error", "Publicação não encontrada.")
		http.Redirect(w, r, "/feed", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/feed#post-"+strconv.Itoa(int(post.ID)), http.StatusSeeOther)
}

func (h *FeedHandler) renderFeed(w http.ResponseWriter, r *http.Request, status int, draft, errorMsg string) {
	render(w, r, status, pages.Feed(pages.FeedData{
		PageData: pageData(r, "Feed"),
		Posts:    h.feed.Posts(middleware.GetClientID(r.Context())),
		Now:      h.clock.Now(),
		Draft:    draft,
		Error:    errorMsg,
	}))
}

// readImage returns the uploaded image as a data URL, or a visitor-facing
// message when the upload is unusable. No file means no image.
func readImage(r *http.Request) (string, string) {
	if r.MultipartForm == nil {
		return "", ""
	}
	file, _, err := r.FormFile("imagem")
	if errors.Is(err, http.ErrMissingFile) {
		return "", ""
	}
	if err != nil {
		return "", badUploadMessage
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxImageSize+1))
	if err != nil {
		return "", badUploadMessage
	}
	if len(data) == 0 {
		return "", ""
	}
	if len(data) > MaxImageSize {
		return "", imageTooLargeMessage
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", notAnImageMessage
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), ""
}
