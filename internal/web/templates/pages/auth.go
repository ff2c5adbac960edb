package pages

import (
	"github.com/a-h/templ"

	"github.com/passa-a-bola/passa-web/internal/model"
	"github.com/passa-a-bola/passa-web/internal/web/templates/layout"
	"github.com/passa-a-bola/passa-web/internal/web/templates/markup"
)

// LoginData holds data for the login page
type LoginData struct {
	layout.PageData
	Email string
	Error string
}

// Login renders the login form
func Login(data LoginData) templ.Component {
	return layout.Base(data.PageData, markup.Func(func(b *markup.Writer) {
		b.Raw(`<section class="auth"><h1>Entrar</h1>`)
		formError(b, data.Error)
		b.Raw(`<form method="post" action="/login" class="login-form">`)
		b.Raw(`<label for="email">Email</label><input type="email" id="email" name="email" value="`)
		b.Text(data.Email)
		b.Raw(`" autocomplete="email">`)
		b.Raw(`<label for="password">Senha</label><input type="password" id="password" name="password" autocomplete="current-password">`)
		b.Raw(`<button type="submit">Entrar</button></form>`)
		b.Raw(`<p>Ainda não tem conta? <a href="/register">Cadastre-se</a></p></section>`)
	}))
}

// RegisterData holds data for the registration page. Passwords are never
// echoed back.
type RegisterData struct {
	layout.PageData
	Name  string
	Email string
	Role  model.Role
	Error string
}

// Register renders the registration form
func Register(data RegisterData) templ.Component {
	return layout.Base(data.PageData, markup.Func(func(b *markup.Writer) {
		b.Raw(`<section class="auth"><h1>Criar conta</h1>`)
		formError(b, data.Error)
		b.Raw(`<form method="post" action="/register" class="register-form">`)
		b.Raw(`<label for="nome">Nome</label><input type="text" id="nome" name="nome" value="`)
		b.Text(data.Name)
		b.Raw(`">`)
		b.Raw(`<label for="email">Email</label><input type="email" id="email" name="email" value="`)
		b.Text(data.Email)
		b.Raw(`">`)
		b.Raw(`<label for="senha">Senha</label><input type="password" id="senha" name="senha" autocomplete="new-password">`)
		b.Raw(`<label for="confirmarSenha">Confirmar senha</label><input type="password" id="confirmarSenha" name="confirmarSenha" autocomplete="new-password">`)
		b.Raw(`<label for="role">Perfil</label><select id="role" name="role">`)
		for _, role := range model.Roles {
			b.Raw(`<option value="` + string(role) + `"`)
			if role == data.Role {
				b.Raw(` selected`)
			}
			b.Raw(`>`)
			b.Text(role.Label())
			b.Raw(`</option>`)
		}
		b.Raw(`</select><button type="submit">Cadastrar</button></form>`)
		b.Raw(`<p>Já tem conta? <a href="/login">Entrar</a></p></section>`)
	}))
}

func formError(b *markup.Writer, msg string) {
	if msg == "" {
		return
	}
	b.Raw(`<div class="form-error" role="alert">`)
	b.Text(msg)
	b.Raw(`</div>`)
}
