package cert

import (
	"context"
	"crypto/x509"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/env"
)

func TestSelfSignedQACertificate(
	t *testing.T,
) {
	ctx := env.With(context.Background(), &env.Env{Environment: env.QA})

	c, err := TLSConfig(ctx, "127.0.0.1:2408", "", "")
	require.NoError(t, err)
	require.Len(t, c.Certificates, 1)

	leaf, err := x509.ParseCertificate(c.Certificates[0].Certificate[0])
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", leaf.IPAddresses[0].String())
	assert.NoError(t, leaf.VerifyHostname("127.0.0.1"))

	c, err = TLSConfig(ctx, "node.vaulta.qa", "", "")
	require.NoError(t, err)
	leaf, err = x509.ParseCertificate(c.Certificates[0].Certificate[0])
	require.NoError(t, err)
	assert.Equal(t, []string{"node.vaulta.qa"}, leaf.DNSNames)
}

func TestProductionRequiresFiles(
	t *testing.T,
) {
	ctx := env.With(context.Background(), &env.Env{Environment: env.Production})

	_, err := TLSConfig(ctx, "node.vaulta.io", "", "")
	assert.Error(t, err)
}
