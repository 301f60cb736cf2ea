package store

import (
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

// The current version of the sealed blob format stored on disk.
const sealedFormatVersion = 1

// Returned when the passphrase is incorrect or the ciphertext was modified.
var errWrongPassphrase = errors.New("wrong passphrase or corrupted snapshot")

// sealedBlob holds the ciphertext and the KDF parameters used to derive its key.
type sealedBlob struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// Tunables for scrypt key derivation.
var scryptN, scryptR, scryptP = 1 << 15, 8, 1

// seal derives a key from passphrase and encrypts raw.
func seal(passphrase string, raw []byte) (sealedBlob, error) {
	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return sealedBlob{}, err
	}
	aead, err := newAEAD(passphrase, salt[:], scryptN, scryptR, scryptP)
	if err != nil {
		return sealedBlob{}, err
	}
	var nonce [chacha20poly1305.NonceSize]byte // zero nonce; the key is unique per salt
	return sealedBlob{
		V:      sealedFormatVersion,
		Salt:   salt[:],
		N:      scryptN,
		R:      scryptR,
		P:      scryptP,
		Cipher: aead.Seal(nil, nonce[:], raw, salt[:]),
	}, nil
}

// open decrypts b with a key derived from passphrase.
func open(passphrase string, b sealedBlob) ([]byte, error) {
	if b.V > sealedFormatVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", b.V)
	}
	aead, err := newAEAD(passphrase, b.Salt, b.N, b.R, b.P)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], b.Cipher, b.Salt)
	if err != nil {
		return nil, errWrongPassphrase
	}
	return pt, nil
}

func newAEAD(passphrase string, salt []byte, n, r, p int) (cipher.AEAD, error) {
	key, err := scrypt.Key([]byte(passphrase), salt, n, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	return chacha20poly1305.New(key)
}
