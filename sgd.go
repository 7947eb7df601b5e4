// Package sgd provides a lightweight Go client for the Saccharomyces
// Genome Database (SGD) backend REST API.
//
// The package maps four entity classes onto fixed URL templates: locus,
// gene, phenotype, and GO term. Each entity is constructed with an
// identifier and optional passthrough request options, exposes the fixed
// set of REST endpoints defined for its class, and returns the raw
// *http.Response from every endpoint access for the caller to interpret.
// No parsing, caching, or retrying happens on the endpoint path.
//
// Example usage:
//
//	// Look up a locus directly by its stable SGD identifier.
//	locus := sgd.NewLocus("S000002534")
//	resp, err := locus.GoDetails(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer resp.Body.Close()
//
//	// Resolve a gene name to its locus via the search endpoint.
//	gene, err := sgd.NewGene(ctx, "ARO1")
//	if errors.Is(err, sgderrors.ErrInvalidGene) {
//	    // unknown or ambiguous gene name
//	}
//
//	// Discover the endpoints available for a class.
//	names := sgd.Endpoints(sgd.ClassGO) // ["details", "locus_details"]
//
// Instances are immutable after construction, hold no network resources,
// and are safe for concurrent use; every endpoint access issues one
// blocking GET with the options supplied at construction.
package sgd

// Class identifies an SGD entity class. It selects both the URL path
// segment under the service root and the endpoint set exposed by
// instances of that class.
type Class string

// Entity classes supported by the SGD backend.
const (
	// ClassLocus covers loci addressed by stable SGD identifiers.
	// Genes share this class once their name is resolved to a locus ID.
	ClassLocus Class = "locus"

	// ClassPhenotype covers phenotype records addressed by APO-style names.
	ClassPhenotype Class = "phenotype"

	// ClassGO covers Gene Ontology terms addressed by GO identifiers.
	ClassGO Class = "go"
)

// String returns the class's URL path segment.
func (c Class) String() string {
	return string(c)
}
