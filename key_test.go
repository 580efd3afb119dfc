package crypto

import "testing"

func TestUsageString(t *testing.T) {
	tests := []struct {
		usage Usage
		want  string
	}{
		{0, "none"},
		{UsageEncrypt, "encrypt"},
		{UsageDecrypt, "decrypt"},
		{UsageEncrypt | UsageDecrypt, "encrypt|decrypt"},
	}

	for _, tt := range tests {
		if got := tt.usage.String(); got != tt.want {
			t.Errorf("Usage(%d).String(): got %q, want %q", tt.usage, got, tt.want)
		}
	}
}

func TestGeneratedKeyPairUsages(t *testing.T) {
	pub, priv := testKeyPair(t)

	if pub.Algorithm() != AlgorithmRSAOAEP {
		t.Errorf("public Algorithm(): got %q, want %q", pub.Algorithm(), AlgorithmRSAOAEP)
	}
	if priv.Algorithm() != AlgorithmRSAOAEP {
		t.Errorf("private Algorithm(): got %q, want %q", priv.Algorithm(), AlgorithmRSAOAEP)
	}
	if pub.Usages() != UsageEncrypt {
		t.Errorf("public Usages(): got %v, want %v", pub.Usages(), UsageEncrypt)
	}
	if priv.Usages() != UsageDecrypt {
		t.Errorf("private Usages(): got %v, want %v", priv.Usages(), UsageDecrypt)
	}
}

func TestImportedPublicKeyIsEncryptOnly(t *testing.T) {
	pub, _ := testKeyPair(t)
	exported, err := ExportPublicKey(pub)
	if err != nil {
		t.Fatalf("ExportPublicKey: %v", err)
	}

	imported, err := ImportPublicKey(exported)
	if err != nil {
		t.Fatalf("ImportPublicKey: %v", err)
	}
	if imported.Usages() != UsageEncrypt {
		t.Errorf("Usages(): got %v, want %v", imported.Usages(), UsageEncrypt)
	}
	if imported.Usages()&UsageDecrypt != 0 {
		t.Error("imported public key must not carry decrypt usage")
	}
}

func TestImportedPrivateKeyIsDecryptOnly(t *testing.T) {
	_, priv := testKeyPair(t)
	exported, err := ExportPrivateKey(priv)
	if err != nil {
		t.Fatalf("ExportPrivateKey: %v", err)
	}

	imported, err := ImportPrivateKey(exported)
	if err != nil {
		t.Fatalf("ImportPrivateKey: %v", err)
	}
	if imported.Usages() != UsageDecrypt {
		t.Errorf("Usages(): got %v, want %v", imported.Usages(), UsageDecrypt)
	}
	if imported.Usages()&UsageEncrypt != 0 {
		t.Error("imported private key must not carry encrypt usage")
	}
}

func TestSymmetricKeyUsagesAndLen(t *testing.T) {
	key, err := GenerateAESKey()
	if err != nil {
		t.Fatalf("GenerateAESKey: %v", err)
	}
	defer key.Destroy()

	if key.Algorithm() != AlgorithmAESCBC {
		t.Errorf("Algorithm(): got %q, want %q", key.Algorithm(), AlgorithmAESCBC)
	}
	if key.Usages() != UsageEncrypt|UsageDecrypt {
		t.Errorf("Usages(): got %v, want %v", key.Usages(), UsageEncrypt|UsageDecrypt)
	}
	if key.Len() != 32 {
		t.Errorf("Len(): got %d, want 32", key.Len())
	}
}

func TestSymmetricKeyDestroy(t *testing.T) {
	key, err := GenerateAESKey()
	if err != nil {
		t.Fatalf("GenerateAESKey: %v", err)
	}

	if _, err := ExportAESKey(key); err != nil {
		t.Fatalf("ExportAESKey before destroy: %v", err)
	}

	key.Destroy()

	if _, err := ExportAESKey(key); !IsKeyDestroyed(err) {
		t.Errorf("ExportAESKey after destroy: expected ErrKeyDestroyed, got %v", err)
	}
	if _, err := EncryptAES(key, "data"); !IsKeyDestroyed(err) {
		t.Errorf("EncryptAES after destroy: expected ErrKeyDestroyed, got %v", err)
	}
	if _, err := DecryptAESWithKey(key, "data"); !IsKeyDestroyed(err) {
		t.Errorf("DecryptAESWithKey after destroy: expected ErrKeyDestroyed, got %v", err)
	}
	if key.Len() != 0 {
		t.Errorf("Len() after destroy: got %d, want 0", key.Len())
	}
}

func TestSymmetricKeyDestroyIdempotent(t *testing.T) {
	key, err := GenerateAESKey()
	if err != nil {
		t.Fatalf("GenerateAESKey: %v", err)
	}

	// Double destroy should not panic
	key.Destroy()
	key.Destroy()
}

func TestZeroValueHandlesRejected(t *testing.T) {
	if _, err := ExportAESKey(&SymmetricKey{}); !IsKeyDestroyed(err) {
		t.Errorf("zero SymmetricKey export: expected ErrKeyDestroyed, got %v", err)
	}
	if _, err := EncryptAES(&SymmetricKey{}, "data"); !IsKeyDestroyed(err) {
		t.Errorf("zero SymmetricKey encrypt: expected ErrKeyDestroyed, got %v", err)
	}
	if _, err := EncryptRSAWithKey("aGVsbG8=", &PublicKey{}); !IsEncrypt(err) {
		t.Errorf("zero PublicKey encrypt: expected ErrEncrypt, got %v", err)
	}
	if _, err := DecryptRSA("aGVsbG8=", &PrivateKey{}); !IsDecrypt(err) {
		t.Errorf("zero PrivateKey decrypt: expected ErrDecrypt, got %v", err)
	}
	if _, err := DecryptRSA("aGVsbG8=", nil); !IsDecrypt(err) {
		t.Errorf("nil PrivateKey decrypt: expected ErrDecrypt, got %v", err)
	}

	var none *PublicKey
	if got := none.Usages(); got != 0 {
		t.Errorf("nil handle Usages(): got %v, want 0", got)
	}
}

func TestImportedSymmetricKeyLen(t *testing.T) {
	key, err := ImportAESKey(Encode(makeKey(16)))
	if err != nil {
		t.Fatalf("ImportAESKey: %v", err)
	}
	defer key.Destroy()

	if key.Len() != 16 {
		t.Errorf("Len(): got %d, want 16", key.Len())
	}
}
