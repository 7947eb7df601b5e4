package sgd

import (
	"context"
	"strings"
)

// Gene is a locus addressed by its human-readable gene name. The name is
// resolved to a canonical locus identifier via the search endpoint at
// construction; afterwards a Gene behaves exactly like the Locus it
// resolved to.
type Gene struct {
	Locus

	name string
}

// NewGene creates a gene entity by resolving the given gene name against
// the search endpoint. The name must match exactly one known gene;
// otherwise construction fails with an InvalidGeneError
// (errors.Is(err, sgderrors.ErrInvalidGene)). Transport failures during
// resolution propagate unmodified.
func NewGene(ctx context.Context, geneName string, opts ...Option) (*Gene, error) {
	o := defaults().apply(opts...)
	name := strings.ToUpper(geneName)

	locusID, err := resolveGene(ctx, name, o)
	if err != nil {
		return nil, err
	}

	return &Gene{
		Locus: Locus{entity: newEntity(ClassLocus, locusID, o)},
		name:  name,
	}, nil
}

// GeneName returns the uppercased gene name the locus was resolved from.
func (g *Gene) GeneName() string {
	return g.name
}
