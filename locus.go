package sgd

import (
	"context"
	"net/http"
	"strings"
)

// Locus is a genomic location record addressed by its stable SGD
// identifier (e.g. "S000002534"). It exposes the full locus endpoint set.
type Locus struct {
	entity
}

// NewLocus creates a locus entity for the given SGD identifier.
// The identifier is uppercased and used directly; no remote validation
// is performed.
func NewLocus(locusID string, opts ...Option) *Locus {
	o := defaults().apply(opts...)
	return &Locus{
		entity: newEntity(ClassLocus, strings.ToUpper(locusID), o),
	}
}

// LocusID returns the canonical locus identifier.
func (l *Locus) LocusID() string {
	return l.id
}

// Details gets basic information about the locus.
func (l *Locus) Details(ctx context.Context) (*http.Response, error) {
	return l.Get(ctx, "details")
}

// GoDetails gets GO (gene ontology) annotations and the references used
// to make them.
func (l *Locus) GoDetails(ctx context.Context) (*http.Response, error) {
	return l.Get(ctx, "go_details")
}

// InteractionDetails gets interaction annotations and the references
// used to make them.
func (l *Locus) InteractionDetails(ctx context.Context) (*http.Response, error) {
	return l.Get(ctx, "interaction_details")
}

// LiteratureDetails gets references which refer to a gene, organized by
// subject of relevance.
func (l *Locus) LiteratureDetails(ctx context.Context) (*http.Response, error) {
	return l.Get(ctx, "literature_details")
}

// NeighborSequenceDetails gets sequences for neighboring loci in the
// strains for which they are available.
func (l *Locus) NeighborSequenceDetails(ctx context.Context) (*http.Response, error) {
	return l.Get(ctx, "neighbor_sequence_details")
}

// PhenotypeDetails gets phenotype annotations and the references used to
// make them.
func (l *Locus) PhenotypeDetails(ctx context.Context) (*http.Response, error) {
	return l.Get(ctx, "phenotype_details")
}

// PosttranslationalDetails gets posttranslational protein data.
func (l *Locus) PosttranslationalDetails(ctx context.Context) (*http.Response, error) {
	return l.Get(ctx, "posttranslational_details")
}

// ProteinDomainDetails gets protein domains, their sources, and their
// positions relative to protein sequence.
func (l *Locus) ProteinDomainDetails(ctx context.Context) (*http.Response, error) {
	return l.Get(ctx, "protein_domain_details")
}

// ProteinExperimentDetails gets metadata and data values for protein
// experiments.
func (l *Locus) ProteinExperimentDetails(ctx context.Context) (*http.Response, error) {
	return l.Get(ctx, "protein_experiment_details")
}

// RegulationDetails gets regulation annotations and the references used
// to make them.
func (l *Locus) RegulationDetails(ctx context.Context) (*http.Response, error) {
	return l.Get(ctx, "regulation_details")
}

// SequenceDetails gets sequence for genomic, coding, protein, and
// +/- 1KB sequence.
func (l *Locus) SequenceDetails(ctx context.Context) (*http.Response, error) {
	return l.Get(ctx, "sequence_details")
}
