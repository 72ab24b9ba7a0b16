package llmclient_test

import (
	"context"
	"strings"
	"testing"

	"architect/internal/artifact"
	"architect/internal/designsys"
	"architect/internal/llmclient"
	"architect/internal/validate"
)

func TestStub_OutputPassesValidationAgainstItsRegistry(t *testing.T) {
	reg := designsys.Default()
	stub := llmclient.NewStubClient(reg.Values())

	for _, task := range []string{
		"a modern login card",
		"a register form with confirm password",
		"a top navigation bar",
		"an analytics dashboard",
		"a set of call-to-action buttons",
	} {
		raw, err := stub.GenerateJSON(context.Background(), task, nil)
		if err != nil {
			t.Fatalf("%s: %v", task, err)
		}
		a := artifact.FromRaw(raw)
		if v := validate.Validate(a, reg); !v.Pass() {
			t.Errorf("%s: stub output failed validation: %v", task, v.Findings)
		}
	}
}

func TestStub_InjectsTokenValues(t *testing.T) {
	stub := llmclient.NewStubClient(map[string]string{
		"primary-color": "#123456",
		"border-radius": "99px",
	})
	raw, err := stub.GenerateJSON(context.Background(), "a login card", nil)
	if err != nil {
		t.Fatal(err)
	}
	a := artifact.FromRaw(raw)
	joined := a.Markup + a.Style + a.Behavior
	if !strings.Contains(joined, "#123456") {
		t.Error("primary color value not injected")
	}
	if !strings.Contains(joined, "99px") {
		t.Error("border radius value not injected")
	}
}

func TestStub_KeywordSelection(t *testing.T) {
	stub := llmclient.NewStubClient(nil)
	cases := map[string]string{
		"build me a navbar":        "NavbarComponent",
		"a signup flow":            "RegisterComponent",
		"metrics dashboard please": "DashboardComponent",
		"just a button":            "ButtonShowcaseComponent",
		"something else entirely":  "LoginComponent",
	}
	for task, wantClass := range cases {
		raw, err := stub.GenerateJSON(context.Background(), task, nil)
		if err != nil {
			t.Fatal(err)
		}
		a := artifact.FromRaw(raw)
		if !strings.Contains(a.Behavior, wantClass) {
			t.Errorf("%q: expected class %s in behavior segment", task, wantClass)
		}
	}
}
