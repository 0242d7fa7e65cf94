package utils

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/forja-fit/forja/internal/models"
)

// ParseCatalogFromTOML reads catalog exercise definitions from a TOML file.
func ParseCatalogFromTOML(path string) (*models.CatalogImport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var imp models.CatalogImport
	if err := toml.Unmarshal(data, &imp); err != nil {
		return nil, err
	}

	return &imp, nil
}
