package mockapi

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"nycschools/internal/domain"
)

//go:embed fixture.yaml
var defaultFixture []byte

// Fixture is the data served by the mock.
type Fixture struct {
	Schools []domain.School        `yaml:"schools"`
	Scores  []domain.AverageScores `yaml:"scores"`
}

// DefaultFixture returns the built-in fixture. Its last school has no scores
// record.
func DefaultFixture() Fixture {
	f, err := ParseFixture(defaultFixture)
	if err != nil {
		panic(fmt.Sprintf("mockapi: built-in fixture: %v", err))
	}
	return f
}

// ParseFixture decodes a YAML fixture.
func ParseFixture(b []byte) (Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(b, &f); err != nil {
		return Fixture{}, fmt.Errorf("decode fixture: %w", err)
	}
	return f, nil
}

// LoadFixture reads a YAML fixture from path.
func LoadFixture(path string) (Fixture, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture: %w", err)
	}
	return ParseFixture(b)
}
