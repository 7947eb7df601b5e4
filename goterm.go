package sgd

import (
	"context"
	"net/http"
	"strings"
)

// GOTerm is a Gene Ontology term addressed by its GO identifier
// (e.g. "GO:0000001"). The identifier is uppercased at construction.
type GOTerm struct {
	entity
}

// NewGO creates a GO term entity for the given GO identifier.
func NewGO(goID string, opts ...Option) *GOTerm {
	o := defaults().apply(opts...)
	return &GOTerm{
		entity: newEntity(ClassGO, strings.ToUpper(goID), o),
	}
}

// Details gets basic information about the GO term.
func (g *GOTerm) Details(ctx context.Context) (*http.Response, error) {
	return g.Get(ctx, "details")
}

// LocusDetails gets a list of genes annotated to the GO term.
func (g *GOTerm) LocusDetails(ctx context.Context) (*http.Response, error) {
	return g.Get(ctx, "locus_details")
}
