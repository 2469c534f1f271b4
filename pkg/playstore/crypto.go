package playstore

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"encoding/base64"
	"encoding/binary"
	"math/big"

	"github.com/pkg/errors"
)

// googlePubKey is the service's well-known public key blob: a 4-byte
// big-endian length-prefixed modulus followed by a 4-byte big-endian
// length-prefixed exponent, base64 encoded.
const googlePubKey = "AAAAgMom/1a/v0lblO2Ubrt60J2gcuXSljGFQXgcyZWveWLEwo6prwgi3iJIZdo" +
	"dyhKZQrNWp5nKJ3srRXcUW+F1BD3baEVGcmEgqaLZUNBjm057pKRI16kB0YppeG" +
	"x5qIQ5QjKzsR8ETQbKLNWgRY0QRNVz34kMJR3P/LgHax/6rmf5AAAAAwEAAQ=="

// EncryptCredentials encodes the account credentials into the opaque token the
// login endpoint requires: RSA-OAEP(SHA-1) over "username\x00password" with
// the service key, prefixed by a format marker and a 4-byte key fingerprint,
// then base64url encoded.
func EncryptCredentials(username, password string) (string, error) {
	if len(username) == 0 || len(password) == 0 {
		return "", errors.New("username and/or password cannot be blank")
	}

	blob, err := base64.StdEncoding.DecodeString(googlePubKey)
	if err != nil {
		return "", errors.Wrap(err, "failed to decode public key blob")
	}
	if len(blob) < 8 {
		return "", errors.New("public key blob is truncated")
	}

	modLen := binary.BigEndian.Uint32(blob[:4])
	modulus := new(big.Int).SetBytes(blob[4 : 4+modLen])
	expLen := binary.BigEndian.Uint32(blob[4+modLen : 8+modLen])
	exponent := new(big.Int).SetBytes(blob[8+modLen : 8+modLen+expLen])

	pub := &rsa.PublicKey{N: modulus, E: int(exponent.Int64())}

	ciphertext, err := rsa.EncryptOAEP(sha1.New(), rand.Reader, pub, []byte(username+"\x00"+password), nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to encrypt credentials")
	}

	fingerprint := sha1.Sum(blob)

	signature := make([]byte, 0, 5+len(ciphertext))
	signature = append(signature, 0x00)
	signature = append(signature, fingerprint[:4]...)
	signature = append(signature, ciphertext...)

	return base64.URLEncoding.EncodeToString(signature), nil
}
