package clix

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"twm/internal/generator"
	"twm/pkg/categorizer"
)

type PaginationParams struct {
	Limit  int
	Offset int
}

func ParsePagination(flags *pflag.FlagSet) (PaginationParams, error) {
	limit, _ := flags.GetInt("limit")
	offset, _ := flags.GetInt("offset")
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return PaginationParams{Limit: limit, Offset: offset}, nil
}

// ParseContentType reads the --type flag. An empty flag means no filter.
func ParseContentType(flags *pflag.FlagSet) (generator.ContentType, error) {
	raw, _ := flags.GetString("type")
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	return generator.ParseContentType(raw)
}

// ParseCategory reads the --category flag. An empty flag means the prompt
// is classified.
func ParseCategory(flags *pflag.FlagSet) (categorizer.Category, error) {
	raw, _ := flags.GetString("category")
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	c, err := categorizer.ParseCategory(raw)
	if err != nil {
		return "", fmt.Errorf("--category: %w", err)
	}
	return c, nil
}

// JoinArgs turns positional arguments into one prompt.
func JoinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
