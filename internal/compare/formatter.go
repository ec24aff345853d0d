package compare

import (
	"github.com/taxgo/taxgo/internal/domain"
)

// Formatter renders a ComparisonResult for the report-rendering shell.
type Formatter interface {
	Format(result *domain.ComparisonResult) (string, error)
}

// GetFormatterByName returns the formatter registered under the given name,
// or nil if the name is unknown. Pretty only affects the JSON formatter.
func GetFormatterByName(name string, pretty bool) Formatter {
	switch name {
	case "table", "console":
		return &TableFormatter{}
	case "json":
		return &JSONFormatter{Pretty: pretty}
	case "csv":
		return &CSVFormatter{}
	}
	return nil
}
