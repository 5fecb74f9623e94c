package templates

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a bank from a YAML file and validates it
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template bank: %w", err)
	}

	var bank Bank
	if err := yaml.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("failed to parse template bank %s: %w", path, err)
	}

	if err := bank.Validate(); err != nil {
		return nil, fmt.Errorf("invalid template bank %s: %w", path, err)
	}

	return &bank, nil
}

// Write dumps a bank to a YAML file so it can be edited and loaded back
func Write(bank *Bank, path string) error {
	data, err := yaml.Marshal(bank)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// LoadOrDefault returns the bank at path, or the compiled-in bank when path is empty
func LoadOrDefault(path string) (*Bank, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
