//go:build gofuzz

package crypto

import (
	"bytes"

	fuzz "github.com/AdamKorcz/go-118-fuzz-build/testing"
)

// libFuzzer entry points for OSS-Fuzz builds. They mirror the native fuzz
// targets in fuzz_test.go; the shim replaces the testing package when the
// harness is compiled with the gofuzz tag.

func FuzzLibDecode(f *fuzz.F) {
	f.Fuzz(func(t *fuzz.T, s string) {
		b, err := Decode(s)
		if err != nil {
			if !IsDecode(err) {
				t.Errorf("Decode(%q): unexpected error class: %v", s, err)
			}
			return
		}
		round, err := Decode(Encode(b))
		if err != nil {
			t.Errorf("Decode(Encode(b)): %v", err)
			return
		}
		if !bytes.Equal(round, b) {
			t.Errorf("round trip mismatch: got %x, want %x", round, b)
		}
	})
}

func FuzzLibOpenFrame(f *fuzz.F) {
	f.Fuzz(func(t *fuzz.T, frame []byte) {
		key := make([]byte, aesKeySize)
		for i := range key {
			key[i] = byte(i)
		}
		if _, err := openFrame(key, frame); err != nil && !IsDecrypt(err) {
			t.Errorf("openFrame: unexpected error class: %v", err)
		}
	})
}

func FuzzLibSealOpenFrame(f *fuzz.F) {
	f.Fuzz(func(t *fuzz.T, data []byte) {
		key := make([]byte, aesKeySize)
		for i := range key {
			key[i] = byte(i)
		}
		frame, err := sealFrame(key, data)
		if err != nil {
			t.Errorf("sealFrame: %v", err)
			return
		}
		got, err := openFrame(key, frame)
		if err != nil {
			t.Errorf("openFrame after sealFrame: %v", err)
			return
		}
		if !bytes.Equal(got, data) {
			t.Errorf("round trip mismatch: got %x, want %x", got, data)
		}
	})
}
