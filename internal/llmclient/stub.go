package llmclient

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// StubClient is the deterministic offline tier. It inspects the prompt for
// component keywords and emits a minimal payload with the design-token values
// injected, so the whole loop works with no API key configured.
type StubClient struct {
	tokens map[string]string
}

// NewStubClient creates a stub tier. tokens maps token names to the concrete
// value to inject (typically Registry.Values()).
func NewStubClient(tokens map[string]string) *StubClient {
	if tokens == nil {
		tokens = map[string]string{}
	}
	return &StubClient{tokens: tokens}
}

func (s *StubClient) Name() string { return "Stub" }
func (s *StubClient) Close() error { return nil }

func (s *StubClient) token(name, fallback string) string {
	if v, ok := s.tokens[name]; ok && v != "" {
		return v
	}
	return fallback
}

func (s *StubClient) GenerateJSON(ctx context.Context, prompt string, input any) (json.RawMessage, error) {
	in, _ := json.Marshal(input)
	p := strings.ToLower(prompt + " " + string(in))

	primary := s.token("primary-color", "#6366f1")
	radius := s.token("border-radius", "8px")
	font := s.token("font-family", "Inter, sans-serif")

	var markup, class, selector string
	switch {
	case containsAny(p, "register", "signup", "sign up", "create account"):
		class, selector = "RegisterComponent", "app-register"
		markup = fmt.Sprintf(`<div class="card" style="border-radius:%s">
  <h2 style="color:%s">Create Account</h2>
  <input type="text" placeholder="Full Name">
  <input type="email" placeholder="Email address">
  <input type="password" placeholder="Password">
  <button style="background:%s;border-radius:%s">Register</button>
</div>`, radius, primary, primary, radius)
	case containsAny(p, "navbar", "navigation", "nav bar", "header", "topbar"):
		class, selector = "NavbarComponent", "app-navbar"
		markup = fmt.Sprintf(`<nav class="navbar" style="background:%s;border-radius:%s">
  <span class="brand">AppName</span>
  <a href="#">Home</a>
  <a href="#">About</a>
  <button style="color:%s">Get Started</button>
</nav>`, primary, radius, primary)
	case containsAny(p, "dashboard", "stats", "analytics", "overview", "metric"):
		class, selector = "DashboardComponent", "app-dashboard"
		markup = fmt.Sprintf(`<div class="dashboard">
  <h1 style="color:%s">Dashboard Overview</h1>
  <div class="stat" style="border-color:%s;border-radius:%s">
    <span class="value" style="color:%s">1,284</span>
    <span class="label">Total Users</span>
  </div>
</div>`, primary, primary, radius, primary)
	case containsAny(p, "button", "btn", "cta"):
		class, selector = "ButtonShowcaseComponent", "app-buttons"
		markup = fmt.Sprintf(`<div class="buttons">
  <button style="background:%s;border-radius:%s">Primary</button>
  <button style="border-color:%s;color:%s;border-radius:%s">Outline</button>
</div>`, primary, radius, primary, primary, radius)
	default:
		class, selector = "LoginComponent", "app-login"
		title := "Sign In"
		if strings.Contains(p, "login") {
			title = "Login"
		}
		markup = fmt.Sprintf(`<div class="card" style="border-radius:%s">
  <h2 style="color:%s">%s</h2>
  <label>Email</label>
  <input type="email" placeholder="you@example.com">
  <label>Password</label>
  <input type="password">
  <button style="background:%s;border-radius:%s">%s</button>
</div>`, radius, primary, title, primary, radius, title)
	}

	style := fmt.Sprintf(`.card { font-family: %s; border: 1px solid %s; border-radius: %s; padding: 2rem; }
button { cursor: pointer; }`, font, primary, radius)

	behavior := fmt.Sprintf(`import { Component } from '@angular/core';

@Component({
  selector: '%s',
  standalone: true,
  templateUrl: './%s.component.html',
  styleUrls: ['./%s.component.css']
})
export class %s {}`, selector, strings.TrimPrefix(selector, "app-"), strings.TrimPrefix(selector, "app-"), class)

	payload := map[string]string{
		"markup":   markup,
		"style":    style,
		"behavior": behavior,
	}
	b, _ := json.Marshal(payload)
	return json.RawMessage(b), nil
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
