package bank

import (
	"fmt"
	"os"
	"strings"

	"talentscout/internal/domain"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// file is the on-disk layout:
//
//	questions:
//	  Python:
//	    - "Explain ..."
type file struct {
	Questions map[string][]string `yaml:"questions"`
}

// Load returns the built-in bank when path is empty, otherwise the bank read from the YAML file at path
func Load(path string) (domain.QuestionBank, error) {
	if strings.TrimSpace(path) == "" {
		return domain.DefaultQuestionBank(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question bank %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML question bank. Technologies outside the catalog are
// skipped with a warning; blank and repeated questions are dropped.
func Parse(data []byte) (domain.QuestionBank, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse question bank: %w", err)
	}
	if len(f.Questions) == 0 {
		return nil, fmt.Errorf("question bank has no questions")
	}

	bank := make(domain.QuestionBank, len(f.Questions))
	for name, questions := range f.Questions {
		tech := domain.TechID(name)
		if !tech.IsValid() {
			logrus.Warnf("Ignoring unknown technology %q in question bank", name)
			continue
		}

		seen := make(map[string]struct{}, len(questions))
		for _, q := range questions {
			q = strings.TrimSpace(q)
			if q == "" {
				continue
			}
			if _, dup := seen[q]; dup {
				continue
			}
			seen[q] = struct{}{}
			bank[tech] = append(bank[tech], q)
		}
	}

	for _, tech := range domain.Technologies {
		if len(bank[tech]) == 0 {
			logrus.Warnf("Question bank has no questions for %s", tech)
		}
	}
	return bank, nil
}
