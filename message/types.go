package message

import "github.com/openkmip/kmipclient/kmip14"

// Key is the decoded result of a Get operation against a symmetric
// key's unique identifier.
type Key struct {
	Algorithm kmip14.CryptographicAlgorithm
	Material  []byte
}

// Secret is the decoded result of a Get operation against a
// SecretData unique identifier.
type Secret struct {
	Material   []byte
	SecretType int32
}
