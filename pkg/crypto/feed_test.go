package crypto

import "testing"

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key, err := GenerateKey()
	if err != nil {
		t.Fatalf("generate key failed: %v", err)
	}
	cipher, err := NewFeedCipher(key)
	if err != nil {
		t.Fatalf("new cipher failed: %v", err)
	}

	for _, plain := range []string{"alice", "张三", "a_b-c.42"} {
		token, err := cipher.Encrypt(plain)
		if err != nil {
			t.Fatalf("encrypt %q failed: %v", plain, err)
		}
		if token == plain {
			t.Fatalf("ciphertext equals plaintext for %q", plain)
		}
		got, err := cipher.Decrypt(token)
		if err != nil {
			t.Fatalf("decrypt %q failed: %v", plain, err)
		}
		if got != plain {
			t.Fatalf("round-trip mismatch: want %q got %q", plain, got)
		}
	}
}

func TestDecryptWrongKey(t *testing.T) {
	key1, _ := GenerateKey()
	key2, _ := GenerateKey()
	c1, err := NewFeedCipher(key1)
	if err != nil {
		t.Fatalf("new cipher failed: %v", err)
	}
	c2, err := NewFeedCipher(key2)
	if err != nil {
		t.Fatalf("new cipher failed: %v", err)
	}

	token, err := c1.Encrypt("alice")
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	if _, err := c2.Decrypt(token); err == nil {
		t.Fatal("expected decryption failure with wrong key")
	}
}

func TestNewFeedCipherInvalidKey(t *testing.T) {
	if _, err := NewFeedCipher(""); err == nil {
		t.Fatal("expected error for empty key")
	}
	if _, err := NewFeedCipher("not-a-key"); err == nil {
		t.Fatal("expected error for malformed key")
	}
}
