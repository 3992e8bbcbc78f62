package gift_test

import (
	"bytes"
	"crypto/cipher"
	"testing"

	"github.com/codahale/gift"
)

func TestNewCipher(t *testing.T) {
	for _, tt := range knownAnswers {
		t.Run(tt.name, func(t *testing.T) {
			block, err := gift.NewCipher(tt.params, mustHex(t, tt.key))
			if err != nil {
				t.Fatal(err)
			}

			if got, want := block.BlockSize(), tt.params.BlockSize(); got != want {
				t.Errorf("BlockSize() = %d, want = %d", got, want)
			}

			buf := mustHex(t, tt.plaintext)
			block.Encrypt(buf, buf)
			if got, want := buf, mustHex(t, tt.ciphertext); !bytes.Equal(got, want) {
				t.Errorf("Encrypt = %x, want = %x", got, want)
			}

			block.Decrypt(buf, buf)
			if got, want := buf, mustHex(t, tt.plaintext); !bytes.Equal(got, want) {
				t.Errorf("Decrypt = %x, want = %x", got, want)
			}
		})
	}
}

func TestNewCipher_CTR(t *testing.T) {
	block, err := gift.NewCipher(gift.GIFT128, make([]byte, gift.KeySize))
	if err != nil {
		t.Fatal(err)
	}

	iv := make([]byte, block.BlockSize())
	message := []byte("a message that spans more than one block")

	ciphertext := make([]byte, len(message))
	cipher.NewCTR(block, iv).XORKeyStream(ciphertext, message)

	// The first keystream block is the encryption of the all-zero counter.
	if got, want := ciphertext[0]^message[0], byte(0xcd); got != want {
		t.Errorf("first keystream byte = %02x, want = %02x", got, want)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCTR(block, iv).XORKeyStream(plaintext, ciphertext)
	if !bytes.Equal(plaintext, message) {
		t.Errorf("CTR round trip = %q, want = %q", plaintext, message)
	}
}

func TestNewCipher_Panics(t *testing.T) {
	block, err := gift.NewCipher(gift.GIFT64, make([]byte, gift.KeySize))
	if err != nil {
		t.Fatal(err)
	}

	overlap := make([]byte, 9)
	tests := []struct {
		name     string
		dst, src []byte
	}{
		{"short input", make([]byte, 8), make([]byte, 7)},
		{"short output", make([]byte, 7), make([]byte, 8)},
		{"inexact overlap", overlap[1:], overlap[:8]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Encrypt did not panic")
				}
			}()
			block.Encrypt(tt.dst, tt.src)
		})
	}
}

func TestNewCipher_Errors(t *testing.T) {
	if _, err := gift.NewCipher(gift.GIFT64, make([]byte, 10)); err == nil {
		t.Error("NewCipher(80-bit key) should have failed")
	}
}
