package sgd

import (
	"context"
	"net/http"
)

// Phenotype is a phenotype record addressed by its observable name
// (e.g. "increased_chemical_compound_accumulation"). Names are used
// verbatim; the backend's phenotype names are case-sensitive.
type Phenotype struct {
	entity
}

// NewPhenotype creates a phenotype entity for the given phenotype name.
func NewPhenotype(phenotypeName string, opts ...Option) *Phenotype {
	o := defaults().apply(opts...)
	return &Phenotype{
		entity: newEntity(ClassPhenotype, phenotypeName, o),
	}
}

// Details gets basic information about the phenotype.
func (p *Phenotype) Details(ctx context.Context) (*http.Response, error) {
	return p.Get(ctx, "details")
}

// LocusDetails gets a list of genes annotated to the phenotype with some
// information about the experiment and strain background.
func (p *Phenotype) LocusDetails(ctx context.Context) (*http.Response, error) {
	return p.Get(ctx, "locus_details")
}
