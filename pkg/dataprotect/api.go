/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package dataprotect encrypts data at rest for storage layers that are not otherwise
// protected, e.g. transaction claims held in Redis pending Wallet retrieval.
package dataprotect

import "context"

// EncryptedData is the ciphertext plus the nonce it was sealed with, ready to persist
// as opaque bytes in a transaction store.
type EncryptedData struct {
	Encrypted      []byte `json:"encrypted"`
	EncryptedNonce []byte `json:"encrypted_nonce"`
}

// Protector encrypts and decrypts opaque payloads.
type Protector interface {
	Encrypt(ctx context.Context, msg []byte) (*EncryptedData, error)
	Decrypt(ctx context.Context, encryptedData *EncryptedData) ([]byte, error)
}
