package sgd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genomekit/sgd"
)

func TestEndpoints(t *testing.T) {
	t.Run("locus", func(t *testing.T) {
		assert.Equal(t, []string{
			"details",
			"go_details",
			"interaction_details",
			"literature_details",
			"neighbor_sequence_details",
			"phenotype_details",
			"posttranslational_details",
			"protein_domain_details",
			"protein_experiment_details",
			"regulation_details",
			"sequence_details",
		}, sgd.Endpoints(sgd.ClassLocus))
	})

	t.Run("phenotype", func(t *testing.T) {
		assert.Equal(t, []string{"details", "locus_details"}, sgd.Endpoints(sgd.ClassPhenotype))
	})

	t.Run("go", func(t *testing.T) {
		assert.Equal(t, []string{"details", "locus_details"}, sgd.Endpoints(sgd.ClassGO))
	})

	t.Run("unknown class", func(t *testing.T) {
		assert.Nil(t, sgd.Endpoints(sgd.Class("chromosome")))
	})
}

func TestEndpointDescriptors(t *testing.T) {
	descriptors := sgd.EndpointDescriptors(sgd.ClassGO)
	require.Len(t, descriptors, 2)

	assert.Equal(t, "details", descriptors[0].Name)
	assert.Empty(t, descriptors[0].Suffix, "details endpoint is the base URL itself")
	assert.NotEmpty(t, descriptors[0].Description)

	assert.Equal(t, "locus_details", descriptors[1].Name)
	assert.Equal(t, "locus_details", descriptors[1].Suffix)

	assert.Nil(t, sgd.EndpointDescriptors(sgd.Class("chromosome")))
}

func TestEndpointsMatchInstances(t *testing.T) {
	// Class-level introspection and instance-level introspection agree.
	locus := sgd.NewLocus("S000002534")
	assert.Equal(t, sgd.Endpoints(sgd.ClassLocus), locus.Endpoints())

	goTerm := sgd.NewGO("GO:0000001")
	assert.Equal(t, sgd.Endpoints(sgd.ClassGO), goTerm.Endpoints())
}
