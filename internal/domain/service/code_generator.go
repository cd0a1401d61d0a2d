package service

// CodeGenerator produces the human-readable business code assigned to a
// listing at payload-construction time. Codes are prefix + "-" + a
// timestamp-derived value; uniqueness holds under normal single-writer use
// but concurrent writers within the same millisecond can collide. That is a
// documented limitation of the code scheme, not of the generator.
type CodeGenerator interface {
	// Generate returns a new business code.
	Generate() string
}
