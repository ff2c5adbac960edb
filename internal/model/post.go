package model

import "time"

// PostID identifies a post within one client's feed
type PostID int

// Post is an entry in the social feed
type Post struct {
	ID          PostID    `json:"id"`
	Author      string    `json:"autor"`
	AuthorPhoto string    `json:"foto_autor"`
	Content     string    `json:"conteudo"`
	Image       string    `json:"imagem,omitempty"`
	Likes       int       `json:"likes"`
	Comments    int       `json:"comentarios"`
	CreatedAt   time.Time `json:"data"`
}
