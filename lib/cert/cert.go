package cert

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"net"
	"strings"
	"time"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/env"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/logging"
)

// TLSConfig returns the TLS configuration to serve the API with: the
// certificate found in certFile and keyFile in production, a self signed
// certificate for host in QA.
func TLSConfig(
	ctx context.Context,
	host string,
	certFile string,
	keyFile string,
) (*tls.Config, error) {
	var cert *tls.Certificate
	var err error

	switch env.Get(ctx).Environment {
	case env.Production:
		if certFile == "" || keyFile == "" {
			return nil, errors.Trace(errors.Newf(
				"A certificate and key file are required to serve TLS in " +
					"production"))
		}
		cert, err = CertificateFromFiles(ctx, certFile, keyFile)
	default:
		cert, err = SelfSignedQACertificate(ctx, host)
	}
	if err != nil {
		return nil, errors.Trace(err)
	}

	return &tls.Config{
		Certificates: []tls.Certificate{*cert},
		MinVersion:   tls.VersionTLS12,
	}, nil
}

// CertificateFromFiles loads the certificate from the specified files.
func CertificateFromFiles(
	ctx context.Context,
	certFile string,
	keyFile string,
) (*tls.Certificate, error) {
	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return nil, errors.Trace(err)
	}

	logging.Logf(ctx,
		"Loading certificate: crt_file=%s, key_file=%s", certFile, keyFile)

	return &cert, nil
}

// SelfSignedQACertificate returns a self signed certificate for host. QA
// clients do not verify certificates (see lib/client).
func SelfSignedQACertificate(
	ctx context.Context,
	host string,
) (*tls.Certificate, error) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, errors.Trace(err)
	}

	notBefore := time.Now()
	notAfter := notBefore.Add(365 * 24 * time.Hour)

	serialNumberLimit := new(big.Int).Lsh(big.NewInt(1), 128)
	serialNumber, err := rand.Int(rand.Reader, serialNumberLimit)
	if err != nil {
		return nil, errors.Trace(err)
	}

	template := x509.Certificate{
		SerialNumber: serialNumber,
		Subject: pkix.Name{
			Organization: []string{"QA Wrapper Node (invalid)"},
		},
		NotBefore: notBefore,
		NotAfter:  notAfter,

		KeyUsage: x509.KeyUsageKeyEncipherment |
			x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
	}

	h := strings.Split(host, ":")[0]
	if ip := net.ParseIP(h); ip != nil {
		template.IPAddresses = append(template.IPAddresses, ip)
		logging.Logf(ctx, "Self-signing QA certificate: ip=%s", ip)
	} else {
		template.DNSNames = append(template.DNSNames, h)
		logging.Logf(ctx, "Self-signing QA certificate: dns=%s", h)
	}

	der, err := x509.CreateCertificate(
		rand.Reader, &template, &template, priv.Public(), priv)
	if err != nil {
		return nil, errors.Trace(err)
	}

	return &tls.Certificate{
		Certificate: [][]byte{der},
		PrivateKey:  priv,
	}, nil
}
