package itembank

import (
	"context"
	"testing"
	"time"
)

func testItem(id, skill string) Item {
	return Item{
		ID:             id,
		Discrimination: 1.0,
		Difficulty:     0.0,
		Guessing:       0.2,
		Skills:         []string{skill},
		ExpectedTime:   30 * time.Second,
	}
}

func TestItem_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Item)
		wantErr bool
	}{
		{"valid", func(it *Item) {}, false},
		{"zero discrimination", func(it *Item) { it.Discrimination = 0 }, true},
		{"negative discrimination", func(it *Item) { it.Discrimination = -1 }, true},
		{"guessing at one", func(it *Item) { it.Guessing = 1.0 }, true},
		{"negative guessing", func(it *Item) { it.Guessing = -0.1 }, true},
		{"no skills", func(it *Item) { it.Skills = nil }, true},
		{"unknown skill", func(it *Item) { it.Skills = []string{"not-a-skill"} }, true},
		{"empty ID", func(it *Item) { it.ID = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := testItem("i1", "gr-articles")
			tt.mutate(&it)
			err := it.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestItem_PrimarySkill(t *testing.T) {
	it := testItem("i1", "gr-articles")
	it.Skills = []string{"gr-articles", "vo-core"}
	if got := it.PrimarySkill(); got != "gr-articles" {
		t.Errorf("PrimarySkill() = %q, want gr-articles", got)
	}
	if got := (Item{}).PrimarySkill(); got != "" {
		t.Errorf("PrimarySkill() on untagged item = %q, want empty", got)
	}
}

func TestNewBank_RejectsDuplicateIDs(t *testing.T) {
	_, err := NewBank([]Item{
		testItem("i1", "gr-articles"),
		testItem("i1", "vo-core"),
	})
	if err == nil {
		t.Fatal("expected duplicate ID error")
	}
}

func TestBank_FetchBySkill(t *testing.T) {
	b, err := NewBank([]Item{
		testItem("i1", "gr-articles"),
		testItem("i2", "gr-articles"),
		testItem("i3", "vo-core"),
	})
	if err != nil {
		t.Fatalf("NewBank: %v", err)
	}

	ctx := context.Background()
	grammar, err := b.FetchBySkill(ctx, "gr-articles")
	if err != nil {
		t.Fatalf("FetchBySkill: %v", err)
	}
	if len(grammar) != 2 {
		t.Errorf("got %d items, want 2", len(grammar))
	}

	none, err := b.FetchBySkill(ctx, "li-gist")
	if err != nil {
		t.Fatalf("FetchBySkill: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("got %d items for untagged skill, want 0", len(none))
	}
}

func TestBank_Lookup(t *testing.T) {
	b, err := NewBank([]Item{testItem("i1", "gr-articles")})
	if err != nil {
		t.Fatalf("NewBank: %v", err)
	}
	if _, ok := b.Lookup("i1"); !ok {
		t.Error("Lookup(i1) should succeed")
	}
	if _, ok := b.Lookup("i2"); ok {
		t.Error("Lookup(i2) should fail")
	}
}

func TestParse_ValidBank(t *testing.T) {
	raw := []byte(`{
		"items": [
			{"id": "q1", "discrimination": 1.2, "difficulty": -0.5, "guessing": 0.25,
			 "skills": ["gr-articles"], "expected_time_secs": 45},
			{"id": "q2", "discrimination": 0.8, "difficulty": 1.0, "guessing": 0.2,
			 "skills": ["vo-core", "gr-articles"], "expected_time_secs": 30}
		]
	}`)
	b, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if b.Len() != 2 {
		t.Errorf("got %d items, want 2", b.Len())
	}
	it, ok := b.Lookup("q2")
	if !ok {
		t.Fatal("Lookup(q2) failed")
	}
	if it.ExpectedTime != 30*time.Second {
		t.Errorf("ExpectedTime = %s, want 30s", it.ExpectedTime)
	}
	if it.PrimarySkill() != "vo-core" {
		t.Errorf("PrimarySkill = %q, want vo-core", it.PrimarySkill())
	}
}

func TestParse_SchemaRejections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not JSON", `{"items": [`},
		{"missing items", `{}`},
		{"missing field", `{"items": [{"id": "q1"}]}`},
		{"zero discrimination", `{"items": [{"id": "q1", "discrimination": 0, "difficulty": 0, "guessing": 0, "skills": ["gr-articles"], "expected_time_secs": 30}]}`},
		{"empty skills", `{"items": [{"id": "q1", "discrimination": 1, "difficulty": 0, "guessing": 0, "skills": [], "expected_time_secs": 30}]}`},
		{"guessing out of range", `{"items": [{"id": "q1", "discrimination": 1, "difficulty": 0, "guessing": 1.0, "skills": ["gr-articles"], "expected_time_secs": 30}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.raw)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
