package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_FreshDatabaseIsCurrent(t *testing.T) {
	st := openTestStorage(t)

	version, err := st.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, latestSchemaVersion, version)

	from, to, err := st.Migrate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, from, to, "an up-to-date schema migrates nowhere")
}
