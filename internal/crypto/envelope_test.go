// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/secure-vault/models"
)

func testKey(b byte) Key {
	return Key(bytes.Repeat([]byte{b}, KeySize))
}

func TestCipher_RoundTrip(t *testing.T) {
	c := NewCipher(NewRandomSource())
	key := testKey(0x11)

	tests := []struct {
		name      string
		plaintext string
	}{
		{name: "entry json", plaintext: `{"title":"Bank","username":"me","password":"p@ss","url":"https://bank.example","notes":""}`},
		{name: "empty", plaintext: ""},
		{name: "exact block", plaintext: "0123456789abcdef"},
		{name: "unicode", plaintext: "пароль 🔐"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := c.Encrypt([]byte(tt.plaintext), key)
			require.NoError(t, err)

			iv, err := base64.StdEncoding.DecodeString(enc.IV)
			require.NoError(t, err)
			assert.Len(t, iv, IVSize)

			plain, err := c.Decrypt(enc.Data, enc.IV, key)
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, string(plain))
		})
	}
}

func TestCipher_FreshIVPerCall(t *testing.T) {
	c := NewCipher(NewRandomSource())
	key := testKey(0x22)

	a, err := c.Encrypt([]byte("same plaintext"), key)
	require.NoError(t, err)
	b, err := c.Encrypt([]byte("same plaintext"), key)
	require.NoError(t, err)

	assert.NotEqual(t, a.IV, b.IV)
	assert.NotEqual(t, a.Data, b.Data)
}

func TestCipher_WrongKeyFails(t *testing.T) {
	c := NewCipher(NewRandomSource())

	enc, err := c.Encrypt([]byte(`{"title":"x","username":"","password":"secret","url":"","notes":""}`), testKey(0x33))
	require.NoError(t, err)

	_, err = c.Decrypt(enc.Data, enc.IV, testKey(0x34))
	assert.ErrorIs(t, err, ErrDecryption)
}

func TestCipher_MalformedInputFails(t *testing.T) {
	c := NewCipher(NewRandomSource())
	key := testKey(0x44)

	enc, err := c.Encrypt([]byte("payload"), key)
	require.NoError(t, err)

	shortIV := base64.StdEncoding.EncodeToString([]byte("short"))
	partialBlock := base64.StdEncoding.EncodeToString([]byte("0123456789"))

	tests := []struct {
		name string
		data string
		iv   string
		key  Key
	}{
		{name: "data not base64", data: "%%%", iv: enc.IV, key: key},
		{name: "iv not base64", data: enc.Data, iv: "%%%", key: key},
		{name: "iv wrong length", data: enc.Data, iv: shortIV, key: key},
		{name: "partial block", data: partialBlock, iv: enc.IV, key: key},
		{name: "empty data", data: "", iv: enc.IV, key: key},
		{name: "bad key size", data: enc.Data, iv: enc.IV, key: Key("short")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Decrypt(tt.data, tt.iv, tt.key)
			assert.ErrorIs(t, err, ErrDecryption)
		})
	}
}

func TestCipher_EncryptErrors(t *testing.T) {
	t.Run("bad key size", func(t *testing.T) {
		_, err := NewCipher(NewRandomSource()).Encrypt([]byte("x"), Key("short"))
		assert.ErrorIs(t, err, ErrEncryption)
	})

	t.Run("random source failure", func(t *testing.T) {
		failing := NewReaderRandomSource(iotest.ErrReader(errors.New("entropy exhausted")))
		_, err := NewCipher(failing).Encrypt([]byte("x"), testKey(0x01))
		assert.ErrorIs(t, err, ErrEncryption)
		assert.ErrorIs(t, err, ErrRandomSource)
	})
}

func TestPKCS7_Unpad(t *testing.T) {
	tests := []struct {
		name    string
		in      []byte
		want    []byte
		wantErr bool
	}{
		{name: "one byte", in: append(bytes.Repeat([]byte{'a'}, 15), 1), want: bytes.Repeat([]byte{'a'}, 15)},
		{name: "full block", in: bytes.Repeat([]byte{16}, 16), want: []byte{}},
		{name: "zero pad", in: append(bytes.Repeat([]byte{'a'}, 15), 0), wantErr: true},
		{name: "pad too big", in: append(bytes.Repeat([]byte{'a'}, 15), 17), wantErr: true},
		{name: "inconsistent", in: append(bytes.Repeat([]byte{'a'}, 14), 3, 2), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pkcs7Unpad(tt.in, 16)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrDecryption)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVerifier(t *testing.T) {
	c := NewCipher(NewRandomSource())
	key := testKey(0x55)

	v, err := NewVerifier(c, key)
	require.NoError(t, err)

	assert.NoError(t, CheckVerifier(c, key, v))
	assert.ErrorIs(t, CheckVerifier(c, testKey(0x56), v), ErrDecryption)

	other, err := c.Encrypt([]byte("something else"), key)
	require.NoError(t, err)
	assert.ErrorIs(t, CheckVerifier(c, key, models.EncryptedResult{Data: other.Data, IV: other.IV}), ErrDecryption)
}

func TestRandomSource_Uint32s(t *testing.T) {
	src := NewReaderRandomSource(bytes.NewReader([]byte{1, 0, 0, 0, 0xFF, 0xFF, 0xFF, 0xFF}))

	got, err := src.Uint32s(2)
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 0xFFFFFFFF}, got)

	_, err = src.Uint32s(1)
	assert.ErrorIs(t, err, ErrRandomSource)
}
