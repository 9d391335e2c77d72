package testutil

// FixedBatchGenerator returns the same batch id every time.
//
// This keeps ingestion reports byte-identical across runs so they can be
// compared against golden files. Unlike engine.FixedGenerator, which hands
// out ids in sequence, it never runs out.
//
// Thread-safety: FixedBatchGenerator is stateless and safe for concurrent use.
type FixedBatchGenerator struct {
	id string
}

// NewFixedBatchGenerator creates a new fixed batch id generator.
// If id is empty, Generate() returns "test-batch-default".
func NewFixedBatchGenerator(id string) *FixedBatchGenerator {
	if id == "" {
		id = "test-batch-default"
	}
	return &FixedBatchGenerator{id: id}
}

// Generate returns the fixed batch id.
//
// Implements engine.BatchIDGenerator interface.
func (g *FixedBatchGenerator) Generate() string {
	return g.id
}
