package database

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/ovreland/teamload/internal/util"
)

var (
	ErrExportEncrypted = errors.New("export is encrypted and needs a passphrase")
	ErrWrongPassphrase = errors.New("incorrect passphrase")
	ErrCorruptedExport = errors.New("export file is corrupted")
)

type encryptedExport struct {
	Encrypted bool   `json:"encrypted"`
	Salt      string `json:"salt"`
	Nonce     string `json:"nonce"`
	Data      string `json:"data"`
}

func encryptExport(payload []byte, passphrase string) ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}
	key, err := util.DeriveKey(passphrase, salt)
	if err != nil {
		return nil, fmt.Errorf("deriving key: %w", err)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generating nonce: %w", err)
	}
	ciphertext := gcm.Seal(nil, nonce, payload, nil)
	wrapped := encryptedExport{
		Encrypted: true,
		Salt:      base64.StdEncoding.EncodeToString(salt),
		Nonce:     base64.StdEncoding.EncodeToString(nonce),
		Data:      base64.StdEncoding.EncodeToString(ciphertext),
	}
	return json.Marshal(wrapped)
}

// maybeDecryptExport unwraps an encrypted export envelope. Plain exports
// pass through untouched.
func maybeDecryptExport(data []byte, passphrase string) ([]byte, error) {
	var wrapped encryptedExport
	if err := json.Unmarshal(data, &wrapped); err != nil || !wrapped.Encrypted {
		return data, nil
	}
	if passphrase == "" {
		return nil, ErrExportEncrypted
	}

	salt, err := base64.StdEncoding.DecodeString(wrapped.Salt)
	if err != nil {
		return nil, ErrCorruptedExport
	}
	nonce, err := base64.StdEncoding.DecodeString(wrapped.Nonce)
	if err != nil {
		return nil, ErrCorruptedExport
	}
	ciphertext, err := base64.StdEncoding.DecodeString(wrapped.Data)
	if err != nil {
		return nil, ErrCorruptedExport
	}

	key, err := util.DeriveKey(passphrase, salt)
	if err != nil {
		return nil, fmt.Errorf("deriving key: %w", err)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, ErrCorruptedExport
	}
	payload, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		// GCM authentication failure: wrong key or tampered data.
		return nil, ErrWrongPassphrase
	}
	return payload, nil
}
