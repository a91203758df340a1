package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/asn1"
	"encoding/pem"

	"github.com/ledgerkit/ledgersdk-go/status"
	"golang.org/x/crypto/pbkdf2"
)

// PrivateKeyFromPEM parses a PEM block labeled "PRIVATE KEY" or
// "ENCRYPTED PRIVATE KEY" (spec.md §4.3 "Parsing"). password is ignored for
// the unencrypted label and required for the encrypted one.
func PrivateKeyFromPEM(pemText string, password string) (PrivateKey, error) {
	block, _ := pem.Decode([]byte(pemText))
	if block == nil {
		return PrivateKey{}, status.KeyParse("no PEM block found", nil)
	}
	switch block.Type {
	case "PRIVATE KEY":
		return PrivateKeyFromDER(block.Bytes)
	case "ENCRYPTED PRIVATE KEY":
		der, err := decryptPKCS8(block.Bytes, password)
		if err != nil {
			return PrivateKey{}, err
		}
		return PrivateKeyFromDER(der)
	default:
		return PrivateKey{}, status.KeyParse("unsupported PEM block type "+block.Type, nil)
	}
}

// pbkdf2Params mirrors RFC 8018's PBKDF2-params ASN.1 shape.
type pbkdf2Params struct {
	Salt           []byte
	IterationCount int
	KeyLength      int `asn1:"optional"`
}

type pbes2KDF struct {
	Algorithm asn1.ObjectIdentifier
	Params    pbkdf2Params
}

type pbes2EncryptionScheme struct {
	Algorithm asn1.ObjectIdentifier
	IV        []byte
}

type pbes2Params struct {
	KeyDerivationFunc pbes2KDF
	EncryptionScheme  pbes2EncryptionScheme
}

type algorithmIdentifierWithPBES2Params struct {
	Algorithm asn1.ObjectIdentifier
	Params    pbes2Params
}

type encryptedPrivateKeyInfo struct {
	Algorithm      algorithmIdentifierWithPBES2Params
	EncryptedData []byte
}

// decryptPKCS8 decrypts a PBES2(PBKDF2, AES-CBC) wrapped PKCS8 key, the
// scheme used by OpenSSL's `openssl pkcs8 -topk8 -v2 aes-256-cbc`.
func decryptPKCS8(der []byte, password string) ([]byte, error) {
	var info encryptedPrivateKeyInfo
	if _, err := asn1.Unmarshal(der, &info); err != nil {
		return nil, status.KeyParse("malformed encrypted PKCS8 key", err)
	}
	params := info.Algorithm.Params
	keyLen := params.EncryptionScheme.ivKeyLength()
	// PBKDF2-params' optional PRF AlgorithmIdentifier (HMAC-SHA1 by RFC 8018
	// default, commonly HMAC-SHA256 in modern PKCS8 tooling) is not
	// round-tripped here; this SDK always derives with HMAC-SHA256.
	key := pbkdf2.Key([]byte(password), params.KeyDerivationFunc.Params.Salt,
		params.KeyDerivationFunc.Params.IterationCount, keyLen, sha256.New)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, status.KeyParse("failed to build AES cipher", err)
	}
	if len(info.EncryptedData)%block.BlockSize() != 0 {
		return nil, status.KeyParse("encrypted key data is not block-aligned", nil)
	}
	mode := cipher.NewCBCDecrypter(block, params.EncryptionScheme.IV)
	out := make([]byte, len(info.EncryptedData))
	mode.CryptBlocks(out, info.EncryptedData)
	return pkcs7Unpad(out)
}

func pkcs7Unpad(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, status.KeyParse("empty decrypted key data", nil)
	}
	n := int(b[len(b)-1])
	if n == 0 || n > len(b) {
		return nil, status.KeyParse("invalid PKCS7 padding (wrong password?)", nil)
	}
	return b[:len(b)-n], nil
}

func (s pbes2EncryptionScheme) ivKeyLength() int {
	// AES-128/192/256-CBC are the only schemes this SDK decrypts.
	switch s.Algorithm.String() {
	case "2.16.840.1.101.3.4.1.2": // aes128-CBC
		return 16
	case "2.16.840.1.101.3.4.1.22": // aes192-CBC
		return 24
	default: // aes256-CBC and unrecognized default to 32
		return 32
	}
}
