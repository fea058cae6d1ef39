package config_test

import (
	"os"
	"testing"

	"github.com/growthfarm/opsboard-lambda/internal/config"
)

const testKey = "01234567890123456789012345678901"

func TestInitCrypto(t *testing.T) {
	t.Run("ShortKey", func(t *testing.T) {
		os.Setenv("CRYPTO_KEY", "too-short")

		defer func() {
			if r := recover(); r == nil {
				t.Errorf("InitCrypto should panic on a short key")
			}
		}()
		config.InitCrypto()
	})

	t.Run("ValidKey", func(t *testing.T) {
		os.Setenv("CRYPTO_KEY", testKey)

		config.InitCrypto()
	})
}

func TestEncryptDecrypt(t *testing.T) {
	os.Setenv("CRYPTO_KEY", testKey)
	config.InitCrypto()

	t.Run("SimpleText", func(t *testing.T) {
		plaintext := "refresh-token-material"

		ciphertext, err := config.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}

		decrypted, err := config.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}

		if decrypted != plaintext {
			t.Errorf("decrypted text %q does not match original %q", decrypted, plaintext)
		}

		ciphertext2, _ := config.Encrypt(plaintext)
		if ciphertext == ciphertext2 {
			t.Errorf("two encryptions of the same text should differ (random nonce)")
		}
	})

	t.Run("EmptyText", func(t *testing.T) {
		ciphertext, err := config.Encrypt("")
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}
		decrypted, err := config.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}
		if decrypted != "" {
			t.Errorf("decrypted empty text is incorrect: %q", decrypted)
		}
	})

	t.Run("Garbage", func(t *testing.T) {
		if _, err := config.Decrypt("bm90LXZhbGlk"); err == nil {
			t.Error("Decrypt should fail on garbage input")
		}
	})
}
