package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("super-secret")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if hash == "super-secret" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !Verify("super-secret", hash) {
		t.Fatal("verify failed for correct password")
	}
	if Verify("wrong", hash) {
		t.Fatal("verify succeeded for wrong password")
	}
}
