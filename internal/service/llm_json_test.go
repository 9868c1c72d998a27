package service

import "testing"

func TestCleanLLMJSONResponse(t *testing.T) {
	cases := map[string]string{
		"":                        "",
		"```json\n{\"a\":1}\n```": "{\"a\":1}",
		"\uFEFF```\n{\"a\":1}```": "{\"a\":1}",
		"  {\"a\":1}  ":           "{\"a\":1}",
	}
	for in, want := range cases {
		if got := cleanLLMJSONResponse(in); got != want {
			t.Fatalf("clean(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestExtractFirstJSONObject(t *testing.T) {
	cases := map[string]string{
		"no json here":                       "",
		"prefix {\"a\":{\"b\":1}} suffix {}": "{\"a\":{\"b\":1}}",
		"{\"s\":\"brace } inside\"}":         "{\"s\":\"brace } inside\"}",
		"{\"s\":\"quote \\\" }\"}":           "{\"s\":\"quote \\\" }\"}",
		"{\"open\": 1":                       "",
	}
	for in, want := range cases {
		if got := extractFirstJSONObject(in); got != want {
			t.Fatalf("extract(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestDecodeLLMJSON(t *testing.T) {
	var out struct {
		Dynamics string `json:"dynamics"`
	}
	if err := decodeLLMJSON("Sure!\n```json\n{\"dynamics\":\"ok\"}\n```", &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Dynamics != "ok" {
		t.Fatalf("unexpected value %q", out.Dynamics)
	}
	if err := decodeLLMJSON("nothing", &out); err != errNoJSONObject {
		t.Fatalf("expected errNoJSONObject, got %v", err)
	}
}
