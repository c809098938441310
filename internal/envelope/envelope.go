package envelope

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"sigcore/internal/codec"
	"sigcore/internal/crypto"
	"sigcore/internal/domain"
)

// Format selects the bundle encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

const bundleVersion = 1

var (
	// ErrUnknownFormat is returned for a format name other than json or msgpack.
	ErrUnknownFormat = errors.New("unknown bundle format")

	// ErrUnsupportedVersion is returned for bundles newer than this package.
	ErrUnsupportedVersion = errors.New("unsupported bundle version")
)

// ParseFormat maps a user-supplied name to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatMsgpack:
		return Format(s), nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// SignedMessage is a detached signature bundle.
type SignedMessage struct {
	PublicKey domain.PublicKey
	Message   []byte
	Signature domain.Signature
}

// New signs message with s and returns the bundle. message is copied.
func New(s domain.Signer, message []byte) SignedMessage {
	return SignedMessage{
		PublicKey: s.PublicKey(),
		Message:   append([]byte(nil), message...),
		Signature: s.Sign(message),
	}
}

// Verify checks the bundle's signature against its own public key and message.
func (m SignedMessage) Verify() (bool, error) {
	return crypto.VerifySignature(m.PublicKey, m.Message, m.Signature)
}

type jsonBundle struct {
	V         int    `json:"v"`
	PublicKey string `json:"publicKey"`
	Message   string `json:"message"`
	Signature string `json:"signature"`
}

type msgpackBundle struct {
	V         int    `msgpack:"v"`
	PublicKey []byte `msgpack:"pk"`
	Message   []byte `msgpack:"msg"`
	Signature []byte `msgpack:"sig"`
}

// Marshal encodes the bundle in the given format.
func (m SignedMessage) Marshal(format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(jsonBundle{
			V:         bundleVersion,
			PublicKey: codec.EncodePublicKey(m.PublicKey),
			Message:   codec.EncodeBase64(m.Message),
			Signature: codec.EncodeSignature(m.Signature),
		}, "", "  ")
	case FormatMsgpack:
		return msgpack.Marshal(msgpackBundle{
			V:         bundleVersion,
			PublicKey: m.PublicKey[:],
			Message:   m.Message,
			Signature: m.Signature[:],
		})
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// Unmarshal decodes a bundle. An empty format is detected from the data: a
// leading '{' means JSON, anything else msgpack.
func Unmarshal(format Format, data []byte) (SignedMessage, error) {
	if format == "" {
		format = Detect(data)
	}
	switch format {
	case FormatJSON:
		return unmarshalJSON(data)
	case FormatMsgpack:
		return unmarshalMsgpack(data)
	default:
		return SignedMessage{}, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// Detect guesses the format of an encoded bundle.
func Detect(data []byte) Format {
	if t := bytes.TrimSpace(data); len(t) > 0 && t[0] == '{' {
		return FormatJSON
	}
	return FormatMsgpack
}

func unmarshalJSON(data []byte) (SignedMessage, error) {
	var b jsonBundle
	if err := json.Unmarshal(data, &b); err != nil {
		return SignedMessage{}, fmt.Errorf("decoding json bundle: %w", err)
	}
	if b.V > bundleVersion {
		return SignedMessage{}, fmt.Errorf("version %d: %w", b.V, ErrUnsupportedVersion)
	}
	pub, err := codec.DecodePublicKey(b.PublicKey)
	if err != nil {
		return SignedMessage{}, err
	}
	sig, err := codec.DecodeSignature(b.Signature)
	if err != nil {
		return SignedMessage{}, err
	}
	msg, err := codec.DecodeBase64(b.Message)
	if err != nil {
		return SignedMessage{}, fmt.Errorf("message: %w", err)
	}
	return SignedMessage{PublicKey: pub, Message: msg, Signature: sig}, nil
}

func unmarshalMsgpack(data []byte) (SignedMessage, error) {
	var b msgpackBundle
	if err := msgpack.Unmarshal(data, &b); err != nil {
		return SignedMessage{}, fmt.Errorf("decoding msgpack bundle: %w", err)
	}
	if b.V > bundleVersion {
		return SignedMessage{}, fmt.Errorf("version %d: %w", b.V, ErrUnsupportedVersion)
	}
	pub, err := domain.PublicKeyFromSlice(b.PublicKey)
	if err != nil {
		return SignedMessage{}, err
	}
	sig, err := domain.SignatureFromSlice(b.Signature)
	if err != nil {
		return SignedMessage{}, err
	}
	if b.Message == nil {
		b.Message = []byte{}
	}
	return SignedMessage{PublicKey: pub, Message: b.Message, Signature: sig}, nil
}
