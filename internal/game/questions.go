package game

import (
	"fmt"
	"math/rand"

	"gopkg.in/yaml.v3"
)

// Category groups a set of prompts under a display name.
type Category struct {
	Name    string   `yaml:"name"`
	Prompts []string `yaml:"prompts"`
}

type catalog struct {
	Categories []Category `yaml:"categories"`
}

// QuestionBank is a read-only catalog of prompts. Draws are uniform
// and independent; repeats across rounds are expected.
type QuestionBank struct {
	categories []Category
}

// NewQuestionBank parses a YAML catalog. It fails fast on an empty or
// malformed catalog so a broken deploy is caught at startup.
func NewQuestionBank(raw []byte) (*QuestionBank, error) {
	var c catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("failed to parse question catalog: %w", err)
	}
	if len(c.Categories) == 0 {
		return nil, fmt.Errorf("question catalog has no categories")
	}
	for _, cat := range c.Categories {
		if len(cat.Prompts) == 0 {
			return nil, fmt.Errorf("category %q has no prompts", cat.Name)
		}
	}
	return &QuestionBank{categories: c.Categories}, nil
}

// Draw picks a category, then a prompt within it, uniformly at random.
func (qb *QuestionBank) Draw() (category, prompt string) {
	cat := qb.categories[rand.Intn(len(qb.categories))]
	return cat.Name, cat.Prompts[rand.Intn(len(cat.Prompts))]
}
