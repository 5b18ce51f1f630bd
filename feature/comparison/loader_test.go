package comparison_test

import (
	"testing"

	"parcel-recon/core/config"
	"parcel-recon/feature/comparison"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFeature(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	f, err := comparison.NewFeature(cfg, nil, nil, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "comparison", f.Name())
	assert.True(t, f.IsEnabled())
	assert.NoError(t, f.Load(fiber.New()))
}
