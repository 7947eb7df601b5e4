package sgd

import "sort"

// Endpoint describes a named REST endpoint for an entity class. The full
// URL is the entity's base URL joined with Suffix; an empty Suffix means
// the base URL itself is the endpoint.
type Endpoint struct {
	Name        string
	Suffix      string
	Description string
}

// classEndpoints is the fixed (class, endpoint name) table. It is defined
// once at package level and never mutated, replacing the dynamic
// attribute dispatch of the upstream service's reference clients with a
// single explicit lookup.
var classEndpoints = map[Class]map[string]Endpoint{
	ClassLocus: {
		"details":                   {Name: "details", Suffix: "", Description: "Gets basic information about a locus."},
		"go_details":                {Name: "go_details", Suffix: "go_details", Description: "Gets GO (gene ontology) annotations and the references used to make them."},
		"interaction_details":       {Name: "interaction_details", Suffix: "interaction_details", Description: "Gets interaction annotations and the references used to make them."},
		"literature_details":        {Name: "literature_details", Suffix: "literature_details", Description: "Gets references which refer to a gene, organized by subject of relevance."},
		"neighbor_sequence_details": {Name: "neighbor_sequence_details", Suffix: "neighbor_sequence_details", Description: "Gets sequences for neighboring loci in the strains for which they are available."},
		"phenotype_details":         {Name: "phenotype_details", Suffix: "phenotype_details", Description: "Gets phenotype annotations and the references used to make them."},
		"posttranslational_details": {Name: "posttranslational_details", Suffix: "posttranslational_details", Description: "Gets posttranslational protein data."},
		"protein_domain_details":    {Name: "protein_domain_details", Suffix: "protein_domain_details", Description: "Gets protein domains, their sources, and their positions relative to protein sequence."},
		"protein_experiment_details": {Name: "protein_experiment_details", Suffix: "protein_experiment_details", Description: "Gets metadata and data values for protein experiments."},
		"regulation_details": {Name: "regulation_details", Suffix: "regulation_details", Description: "Gets regulation annotations and the references used to make them."},
		"sequence_details":   {Name: "sequence_details", Suffix: "sequence_details", Description: "Gets sequence for genomic, coding, protein, and +/- 1KB sequence."},
	},
	ClassPhenotype: {
		"details":       {Name: "details", Suffix: "", Description: "Gets basic information about a phenotype."},
		"locus_details": {Name: "locus_details", Suffix: "locus_details", Description: "Gets a list of genes annotated to a phenotype with some information about the experiment and strain background."},
	},
	ClassGO: {
		"details":       {Name: "details", Suffix: "", Description: "Gets basic information about a GO term."},
		"locus_details": {Name: "locus_details", Suffix: "locus_details", Description: "Gets a list of genes annotated to a GO term."},
	},
}

// Endpoints returns the sorted endpoint names available for a class.
// It returns nil for an unknown class.
func Endpoints(class Class) []string {
	table, ok := classEndpoints[class]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EndpointDescriptors returns the endpoint descriptors for a class,
// sorted by name. It returns nil for an unknown class.
func EndpointDescriptors(class Class) []Endpoint {
	table, ok := classEndpoints[class]
	if !ok {
		return nil
	}
	descriptors := make([]Endpoint, 0, len(table))
	for _, ep := range table {
		descriptors = append(descriptors, ep)
	}
	sort.Slice(descriptors, func(i, j int) bool { return descriptors[i].Name < descriptors[j].Name })
	return descriptors
}

// lookupEndpoint resolves an endpoint name for a class.
func lookupEndpoint(class Class, name string) (Endpoint, bool) {
	ep, ok := classEndpoints[class][name]
	return ep, ok
}
