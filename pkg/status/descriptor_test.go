package status

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewJobDescriptor(t *testing.T) {
	descriptor := NewJobDescriptor("default", "send-email", []string{"42"})
	require.NotEmpty(t, descriptor.ID)

	descriptorJSON, err := descriptor.ToJSON()
	require.NoError(t, err)
	rehydrated, err := JobDescriptorFromJSON(descriptorJSON)
	require.NoError(t, err)
	require.Equal(t, descriptor, rehydrated)
}
