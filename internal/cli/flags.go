package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// choiceValue is a string flag restricted to a fixed set of values.
type choiceValue struct {
	value   string
	choices []string
}

var _ pflag.Value = (*choiceValue)(nil)

func newChoiceValue(def string, choices ...string) *choiceValue {
	return &choiceValue{value: def, choices: choices}
}

func (c *choiceValue) String() string {
	return c.value
}

// Set accepts any listed choice, ignoring case. Underscores and spaces are
// read as hyphens so "split_complementary" works.
func (c *choiceValue) Set(s string) error {
	norm := strings.NewReplacer("_", "-", " ", "-").Replace(strings.ToLower(strings.TrimSpace(s)))
	for _, choice := range c.choices {
		if norm == choice {
			c.value = choice
			return nil
		}
	}
	return fmt.Errorf("must be one of: %s", strings.Join(c.choices, ", "))
}

func (c *choiceValue) Type() string {
	return "string"
}
