package extract

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestJSON_WholeText(t *testing.T) {
	raw, err := JSON(`{"a": 1, "b": "two"}`)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	var v map[string]interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("result not valid JSON: %v", err)
	}
	if v["b"] != "two" {
		t.Errorf("unexpected value: %+v", v)
	}
}

func TestJSON_FencedBlock(t *testing.T) {
	text := "Here is your plan:\n```json\n{\"year\": 2026, \"vision\": \"a calm year\"}\n```\nLet me know!"
	raw, err := JSON(text)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	var v struct {
		Year   int    `json:"year"`
		Vision string `json:"vision"`
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v.Year != 2026 || v.Vision != "a calm year" {
		t.Errorf("unexpected result: %+v", v)
	}
}

func TestJSON_FencedBlockNoLanguageTag(t *testing.T) {
	text := "```\n{\"ok\": true}\n```"
	raw, err := JSON(text)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if string(raw) != `{"ok": true}` {
		t.Errorf("unexpected raw: %s", raw)
	}
}

func TestJSON_EmbeddedInProse(t *testing.T) {
	text := `Perfect. I have what I need. {"intake_complete": true, "note": "has } inside a string"} Thanks!`
	raw, err := JSON(text)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	var v map[string]interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v["intake_complete"] != true {
		t.Errorf("unexpected result: %+v", v)
	}
}

func TestJSON_RoundTrip(t *testing.T) {
	orig := map[string]interface{}{
		"aspirations": map[string]interface{}{"career": "ship the thing"},
		"count":       float64(3),
	}
	serialized, _ := json.Marshal(orig)

	for _, text := range []string{
		string(serialized),
		"```json\n" + string(serialized) + "\n```",
	} {
		raw, err := JSON(text)
		if err != nil {
			t.Fatalf("extract failed for %q: %v", text, err)
		}
		var got map[string]interface{}
		if err := json.Unmarshal(raw, &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !reflect.DeepEqual(orig, got) {
			t.Errorf("round trip mismatch: want %+v, got %+v", orig, got)
		}
	}
}

func TestJSON_NoJSON(t *testing.T) {
	_, err := JSON("I'm still thinking about your question.")
	if !errors.Is(err, ErrMalformedDocument) {
		t.Errorf("expected ErrMalformedDocument, got %v", err)
	}
}

func TestJSON_UnbalancedBraces(t *testing.T) {
	_, err := JSON(`here is broken output {"a": 1, "b":`)
	if !errors.Is(err, ErrMalformedDocument) {
		t.Errorf("expected ErrMalformedDocument, got %v", err)
	}
}

func TestInto(t *testing.T) {
	var v struct {
		A int `json:"a"`
	}
	if err := Into(`the answer: {"a": 7}`, &v); err != nil {
		t.Fatalf("Into failed: %v", err)
	}
	if v.A != 7 {
		t.Errorf("expected 7, got %d", v.A)
	}
	if err := Into("no json here", &v); !errors.Is(err, ErrMalformedDocument) {
		t.Errorf("expected ErrMalformedDocument, got %v", err)
	}
}
