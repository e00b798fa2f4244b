package controllers

import (
	"fmt"
	"html/template"
	"innovation-platform-api/models"
	"net/url"
	"os"
	"strings"
)

func appBaseURL() string {
	base := strings.TrimSpace(os.Getenv("APP_BASE_URL"))
	if base == "" {
		base = "http://localhost:3000"
	}
	return base
}

// buildActionURL appends a path segment and token query parameter to the
// frontend base URL.
func buildActionURL(baseURL, path, token string) (string, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}

	parsed.Path = strings.TrimRight(parsed.Path, "/") + path
	query := parsed.Query()
	query.Set("token", token)
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}

// buildEmailHTML renders the shared transactional email layout: a heading,
// body paragraphs, one call-to-action button, and a plain-link fallback.
func buildEmailHTML(title string, paragraphs []string, ctaLabel, ctaURL string) string {
	var body strings.Builder

	body.WriteString(`<div style="max-width:560px;margin:0 auto;padding:24px;font-family:Arial,Helvetica,sans-serif;color:#1f2937;">`)
	fmt.Fprintf(&body, `<h2 style="margin:0 0 16px 0;color:#111827;">%s</h2>`, template.HTMLEscapeString(title))

	for _, p := range paragraphs {
		fmt.Fprintf(&body, `<p style="margin:0 0 12px 0;line-height:1.6;">%s</p>`, template.HTMLEscapeString(p))
	}

	if ctaURL != "" {
		escapedURL := template.HTMLEscapeString(ctaURL)
		fmt.Fprintf(&body,
			`<p style="margin:24px 0;"><a href="%s" style="background:#2563eb;color:#ffffff;padding:12px 24px;border-radius:6px;text-decoration:none;display:inline-block;">%s</a></p>`,
			escapedURL, template.HTMLEscapeString(ctaLabel))
		fmt.Fprintf(&body,
			`<p style="margin:0 0 12px 0;font-size:13px;color:#6b7280;">If the button does not work, copy this link into your browser:<br /><a href="%s" style="color:#2563eb;">%s</a></p>`,
			escapedURL, escapedURL)
	}

	body.WriteString(`<p style="margin:24px 0 0 0;font-size:13px;color:#6b7280;">Innovation Platform</p>`)
	body.WriteString(`</div>`)
	return body.String()
}

func sendConfirmationEmail(user models.User, token string) error {
	confirmURL, err := buildActionURL(appBaseURL(), "/confirm-email", token)
	if err != nil {
		return err
	}

	subject := "Confirm your email address"
	html := buildEmailHTML(subject, []string{
		fmt.Sprintf("Hi %s,", user.Name),
		"Welcome to the Innovation Platform. Please confirm your email address to activate your account.",
		"This link expires in 24 hours.",
	}, "Confirm email", confirmURL)

	return sendMailFunc([]string{user.Email}, subject, html)
}

func sendPasswordResetEmail(user models.User, token string) error {
	resetURL, err := buildActionURL(appBaseURL(), "/reset-password", token)
	if err != nil {
		return err
	}

	subject := "Password reset instructions"
	html := buildEmailHTML(subject, []string{
		fmt.Sprintf("Hi %s,", user.Name),
		"We received a request to reset the password for your account.",
		"Click the button below to choose a new password. This link expires in 15 minutes.",
		"If you did not request this, you can safely ignore this email.",
	}, "Reset password", resetURL)

	return sendMailFunc([]string{user.Email}, subject, html)
}
