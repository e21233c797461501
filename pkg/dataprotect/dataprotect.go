/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package dataprotect

import (
	"context"
	"fmt"
)

//go:generate mockgen -source dataprotect.go -destination dataprotect_mocks_test.go -package dataprotect_test

// crypto is the aries-framework-go crypto.Crypto AEAD surface this package encrypts
// transaction claims with, keyed by a KMS-managed key handle rather than a raw key this
// package ever sees.
type crypto interface {
	Encrypt(msg, aad []byte, kh interface{}) ([]byte, []byte, error)
	Decrypt(cipher, aad, nonce []byte, kh interface{}) ([]byte, error)
}

// DataProtector seals claim payloads with a single KMS-managed key, identified by
// cryptoKeyID, before they ever reach the transaction claims store.
type DataProtector struct {
	crypto      crypto
	cryptoKeyID string
}

// NewDataProtector builds a DataProtector backed by crypto and the key named cryptoKeyID.
func NewDataProtector(crypto crypto, cryptoKeyID string) *DataProtector {
	return &DataProtector{crypto: crypto, cryptoKeyID: cryptoKeyID}
}

func (d *DataProtector) Encrypt(_ context.Context, msg []byte) (*EncryptedData, error) {
	encrypted, nonce, err := d.crypto.Encrypt(msg, nil, d.cryptoKeyID)
	if err != nil {
		return nil, fmt.Errorf("encrypt: %w", err)
	}

	return &EncryptedData{Encrypted: encrypted, EncryptedNonce: nonce}, nil
}

func (d *DataProtector) Decrypt(_ context.Context, encryptedData *EncryptedData) ([]byte, error) {
	decrypted, err := d.crypto.Decrypt(encryptedData.Encrypted, nil, encryptedData.EncryptedNonce, d.cryptoKeyID)
	if err != nil {
		return nil, fmt.Errorf("decrypt: %w", err)
	}

	return decrypted, nil
}
