// Package codegen provides the concrete business-code generator for listings.
package codegen

import (
	"fmt"
	"time"

	"orla/config"
	"orla/internal/domain/service"
)

// timestampGenerator derives codes from the wall clock in milliseconds.
type timestampGenerator struct {
	prefix string
}

// NewTimestampCodeGenerator is the constructor for timestampGenerator.
// The prefix comes from configuration so agencies can brand their codes.
func NewTimestampCodeGenerator(cfg *config.Config) service.CodeGenerator {
	prefix := ""
	if cfg.Listing != nil {
		prefix = cfg.Listing.CodePrefix
	}

	return &timestampGenerator{prefix: prefix}
}

// Generate returns a new business code of the form PREFIX-<unix millis>.
func (g *timestampGenerator) Generate() string {
	return fmt.Sprintf("%s-%d", g.prefix, time.Now().UnixMilli())
}
